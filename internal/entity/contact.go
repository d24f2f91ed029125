package entity

import "time"

// ContactMessage is a contact form submission. It is forwarded to the
// mailer and returned to the caller, never mutated afterwards.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	UserID    *string   `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `json:"is_read"`
}
