package models

import "time"

// Note is a single free-text note owned by exactly one user.
//
// The ID is an opaque string supplied by the client at creation time (the web
// UI generates a UUID before the first keystroke), not assigned by the server.
// A note is created with empty text and filled in afterwards, so an empty
// Text is valid. The owner is set at creation and never reassigned.
type Note struct {
	// ID is the client-supplied identifier of the note.
	ID string `json:"id"`

	// UserID is the identifier of the owning user. Not exposed via JSON;
	// ownership is always derived from the authenticated session.
	UserID int64 `json:"-"`

	// Text is the free-text body of the note.
	Text string `json:"text"`

	// CreatedAt is the creation timestamp, assigned by the database.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the last-modification timestamp, maintained by the
	// database on every text update.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
