// Package view turns books into a description of what the page shows.
// Nothing here touches a request or a response; the HTML renderer and the
// JSON handlers consume these values.
package view

import (
	"bookshelf/models"
)

const CONFIRM_DELETE_PROMPT = "do you really want to delete this book ?"

// Row is one table row. DeleteId is the element id of its delete control.
type Row struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	DeleteId    string `json:"delete_id"`
}

// Form holds the values shown in the add-book inputs.
type Form struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
}

type Confirmation struct {
	BookId string `json:"book_id"`
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
}

type Page struct {
	Rows    []Row         `json:"rows"`
	Alerts  []Alert       `json:"alerts"`
	Form    Form          `json:"form"`
	Stats   models.Stats  `json:"stats"`
	Confirm *Confirmation `json:"confirm,omitempty"`
}

// Patch describes an incremental change to an already rendered page.
type Patch struct {
	Append    *Row    `json:"append,omitempty"`
	Remove    string  `json:"remove,omitempty"`
	ClearForm bool    `json:"clear_form"`
	Alerts    []Alert `json:"alerts"`
}

func RenderRow(book models.Book) Row {
	return Row{
		Title:       book.Title,
		Author:      book.Author,
		Description: book.Description,
		DeleteId:    book.Id,
	}
}

func RenderList(books []models.Book) []Row {
	rows := make([]Row, 0, len(books))
	for _, book := range books {
		rows = append(rows, RenderRow(book))
	}
	return rows
}

// RemoveRow returns rows without the first row whose delete control is id.
func RemoveRow(rows []Row, id string) []Row {
	remaining := make([]Row, 0, len(rows))
	removed := false
	for _, row := range rows {
		if !removed && row.DeleteId == id {
			removed = true
			continue
		}
		remaining = append(remaining, row)
	}
	return remaining
}

func ClearForm() Form {
	return Form{}
}

// KeepForm echoes submitted values back, used when a submission is rejected.
func KeepForm(input models.BookInput) Form {
	return Form{
		Title:       input.Title,
		Author:      input.Author,
		Description: input.Description,
	}
}

func ConfirmDelete(book models.Book) Confirmation {
	return Confirmation{
		BookId: book.Id,
		Title:  book.Title,
		Prompt: CONFIRM_DELETE_PROMPT,
	}
}

func RenderPage(books []models.Book, stats models.Stats, alerts []Alert, form Form) Page {
	if alerts == nil {
		alerts = []Alert{}
	}
	return Page{
		Rows:   RenderList(books),
		Alerts: alerts,
		Form:   form,
		Stats:  stats,
	}
}

func AddedPatch(book models.Book, alert Alert) Patch {
	row := RenderRow(book)
	return Patch{Append: &row, ClearForm: true, Alerts: []Alert{alert}}
}

func RemovedPatch(id string, alert Alert) Patch {
	return Patch{Remove: id, Alerts: []Alert{alert}}
}

func AlertPatch(alert Alert) Patch {
	return Patch{Alerts: []Alert{alert}}
}
