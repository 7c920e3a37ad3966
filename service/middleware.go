package service

import (
	"log/slog"
	"time"

	"bookshelf/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	BOOK_ID_KEY       = "book_id"
	REQUEST_ID_HEADER = "X-Request-Id"
)

// RequestLogger tags each request with an id and logs it once served.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestId := uuid.New().String()
		c.Header(REQUEST_ID_HEADER, requestId)

		c.Next()

		logger.Info("request",
			"request_id", requestId,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

// CacheUserRequest records successful mutating requests in the activity
// journal.
func (h *Handlers) CacheUserRequest(c *gin.Context) {
	c.Next()

	if c.Writer.Status() >= 400 {
		return
	}
	bookId, ok := c.Get(BOOK_ID_KEY)
	if !ok {
		return
	}

	activity := models.Activity{
		Method: c.Request.Method,
		Route:  c.Request.URL.Path,
		BookId: bookId.(string),
		At:     h.Now().UTC(),
	}
	// Not failing a request if there's a problem caching it
	if err := h.Journal.Record(activity); err != nil {
		h.Logger.Warn("record activity", "err", err)
	}
}
