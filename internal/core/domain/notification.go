package domain

import "time"

// Notification is one entry of the shared activity log.
type Notification struct {
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
