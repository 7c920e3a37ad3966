package models

import "time"

// Activity is one mutating request remembered by the activity journal.
type Activity struct {
	Method string    `json:"method"`
	Route  string    `json:"route"`
	BookId string    `json:"book_id,omitempty"`
	At     time.Time `json:"at"`
}
