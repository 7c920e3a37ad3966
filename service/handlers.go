package service

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"bookshelf/cache"
	"bookshelf/models"
	"bookshelf/view"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const (
	MSG_FILL_ALL_FIELDS = "Please fill in all fields"
	MSG_BOOK_ADDED      = "book has been added successfully"
	MSG_BOOK_REMOVED    = "book has been removed successfully"
)

type Handlers struct {
	Library  models.Library
	Journal  *cache.ActivityJournal
	Renderer *view.PageRenderer
	Sessions sessions.Store
	Logger   *slog.Logger
	Now      func() time.Time
}

func NewHandlers(library models.Library, journal *cache.ActivityJournal, sessionStore sessions.Store, logger *slog.Logger) *Handlers {
	return &Handlers{
		Library:  library,
		Journal:  journal,
		Renderer: view.NewPageRenderer(),
		Sessions: sessionStore,
		Logger:   logger,
		Now:      time.Now,
	}
}

func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

func (h *Handlers) renderHTML(c *gin.Context, status int, name string, page view.Page) {
	var buf bytes.Buffer
	if err := h.Renderer.Render(&buf, name, page); err != nil {
		h.Logger.Error("render page", "page", name, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func (h *Handlers) storageFailed(c *gin.Context, op string, err error) {
	h.Logger.Error("storage failure", "op", op, "err", err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}

// Index renders every book together with alerts flashed by the previous
// request.
func (h *Handlers) Index(c *gin.Context) {
	alerts := h.takeFlashes(c)
	page := view.RenderPage(h.Library.List(), h.Library.Stats(), alerts, view.ClearForm())

	if wantsJSON(c) {
		c.JSON(http.StatusOK, page)
		return
	}
	h.renderHTML(c, http.StatusOK, view.INDEX_PAGE, page)
}

// SubmitBook handles the add-book form.
func (h *Handlers) SubmitBook(c *gin.Context) {
	var input models.BookInput
	if err := c.ShouldBind(&input); err != nil {
		alert := view.NewAlert(MSG_FILL_ALL_FIELDS, view.ALERT_DANGER)
		if wantsJSON(c) {
			c.JSON(http.StatusBadRequest, view.AlertPatch(alert))
			return
		}
		page := view.RenderPage(h.Library.List(), h.Library.Stats(), []view.Alert{alert}, view.KeepForm(input))
		h.renderHTML(c, http.StatusUnprocessableEntity, view.INDEX_PAGE, page)
		return
	}

	book, err := h.Library.Create(c, input)
	if err != nil {
		h.storageFailed(c, "create", err)
		return
	}
	c.Set(BOOK_ID_KEY, book.Id)

	alert := view.NewAlert(MSG_BOOK_ADDED, view.ALERT_SUCCESS)
	if wantsJSON(c) {
		c.JSON(http.StatusOK, view.AddedPatch(*book, alert))
		return
	}
	h.flash(c, alert)
	c.Redirect(http.StatusSeeOther, "/")
}

// ConfirmDelete asks before anything is removed.
func (h *Handlers) ConfirmDelete(c *gin.Context) {
	book, ok := h.Library.GetById(c.Param("id"))
	if !ok {
		if wantsJSON(c) {
			c.JSON(http.StatusOK, view.Patch{Alerts: []view.Alert{}})
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	confirm := view.ConfirmDelete(*book)
	page := view.Page{Rows: []view.Row{}, Alerts: []view.Alert{}, Confirm: &confirm}
	if wantsJSON(c) {
		c.JSON(http.StatusOK, page)
		return
	}
	h.renderHTML(c, http.StatusOK, view.CONFIRM_PAGE, page)
}

// DeleteBook removes a book once the confirmation form was accepted.
// Unknown ids are ignored.
func (h *Handlers) DeleteBook(c *gin.Context) {
	book, ok := h.Library.GetById(c.Param("id"))
	if c.PostForm("confirm") != "yes" || !ok {
		if wantsJSON(c) {
			c.JSON(http.StatusOK, view.Patch{Alerts: []view.Alert{}})
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	if err := h.Library.Remove(c, book); err != nil {
		h.storageFailed(c, "remove", err)
		return
	}
	c.Set(BOOK_ID_KEY, book.Id)

	alert := view.NewAlert(MSG_BOOK_REMOVED, view.ALERT_SUCCESS)
	if wantsJSON(c) {
		c.JSON(http.StatusOK, view.RemovedPatch(book.Id, alert))
		return
	}
	h.flash(c, alert)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handlers) ListBooks(c *gin.Context) {
	c.JSON(http.StatusOK, h.Library.List())
}

func (h *Handlers) CreateBook(c *gin.Context) {
	var input models.BookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": MSG_FILL_ALL_FIELDS})
		return
	}

	book, err := h.Library.Create(c, input)
	if err != nil {
		h.storageFailed(c, "create", err)
		return
	}
	c.Set(BOOK_ID_KEY, book.Id)

	c.JSON(http.StatusOK, gin.H{
		"status": "created",
		"id":     book.Id,
	})
}

func (h *Handlers) GetBookById(c *gin.Context) {
	id := c.Param("id")

	book, ok := h.Library.GetById(id)
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("%v: '%v'", models.ErrBookNotFound, id)})
		return
	}

	c.JSON(http.StatusOK, book)
}

func (h *Handlers) UpdateBookById(c *gin.Context) {
	id := c.Param("id")

	var input models.BookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": MSG_FILL_ALL_FIELDS})
		return
	}

	if err := h.Library.Update(c, input.Book(id)); err != nil {
		h.storageFailed(c, "update", err)
		return
	}
	c.Set(BOOK_ID_KEY, id)

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handlers) DeleteBookById(c *gin.Context) {
	id := c.Param("id")

	if book, ok := h.Library.GetById(id); ok {
		if err := h.Library.Remove(c, book); err != nil {
			h.storageFailed(c, "remove", err)
			return
		}
	}
	c.Set(BOOK_ID_KEY, id)

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handlers) Store(c *gin.Context) {
	c.JSON(http.StatusOK, h.Library.Stats())
}

func (h *Handlers) Activity(c *gin.Context) {
	activities, err := h.Journal.Recent()

	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, activities)
}
