package models

import "time"

// Notification is an event alert delivered to a user
type Notification struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Type       string    `json:"type,omitempty"`
	Read       bool      `json:"read"`
	ActionLink string    `json:"action_link,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// UnreadCountResponse is the unread-notification counter
type UnreadCountResponse struct {
	Count int `json:"count"`
}
