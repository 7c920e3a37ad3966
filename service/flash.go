package service

import (
	"encoding/gob"

	"bookshelf/view"

	"github.com/gin-gonic/gin"
)

const SESSION_NAME = "bookshelf"

// flashAlert is what survives the redirect. Ids and timings are assigned
// again when the alert is shown.
type flashAlert struct {
	Message string
	Type    string
}

func init() {
	gob.Register(flashAlert{})
}

func (h *Handlers) flash(c *gin.Context, alert view.Alert) {
	// A broken cookie still yields a fresh session.
	session, _ := h.Sessions.Get(c.Request, SESSION_NAME)
	session.AddFlash(flashAlert{Message: alert.Message, Type: alert.Type})
	if err := session.Save(c.Request, c.Writer); err != nil {
		h.Logger.Warn("save flash", "err", err)
	}
}

func (h *Handlers) takeFlashes(c *gin.Context) []view.Alert {
	session, err := h.Sessions.Get(c.Request, SESSION_NAME)
	if err != nil {
		h.Logger.Debug("discarding session", "err", err)
	}

	flashes := session.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	if err := session.Save(c.Request, c.Writer); err != nil {
		h.Logger.Warn("clear flashes", "err", err)
	}

	alerts := make([]view.Alert, 0, len(flashes))
	for _, flash := range flashes {
		if f, ok := flash.(flashAlert); ok {
			alerts = append(alerts, view.NewAlert(f.Message, f.Type))
		}
	}
	return alerts
}
