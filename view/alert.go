package view

import (
	"time"

	"github.com/google/uuid"
)

const (
	ALERT_DANGER  = "danger"
	ALERT_SUCCESS = "success"

	DEFAULT_ALERT_MESSAGE = "you've made an error"
	ALERT_DISMISS_AFTER   = 3 * time.Second
)

// Alert is a transient status message. The page removes it after
// DismissAfterMs milliseconds.
type Alert struct {
	Id             string `json:"id"`
	Message        string `json:"message"`
	Type           string `json:"type"`
	DismissAfterMs int64  `json:"dismiss_after_ms"`
}

// NewAlert builds an alert. An empty message or type falls back to a
// generic error.
func NewAlert(message, alertType string) Alert {
	if message == "" {
		message = DEFAULT_ALERT_MESSAGE
	}
	if alertType == "" {
		alertType = ALERT_DANGER
	}
	return Alert{
		Id:             uuid.New().String(),
		Message:        message,
		Type:           alertType,
		DismissAfterMs: ALERT_DISMISS_AFTER.Milliseconds(),
	}
}
