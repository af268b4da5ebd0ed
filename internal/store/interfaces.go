package store

import (
	"context"

	"github.com/dsemenko/notesage/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// NoteRepository persists notes. Every mutating operation that targets an
// existing note is keyed by the compound (id, user_id) pair, so ownership is
// enforced at the storage boundary: a non-owner hitting an existing id gets
// the same "no record matched" outcome as a missing id.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	UpdateNoteText(ctx context.Context, noteID string, userID int64, text string) error
	DeleteNote(ctx context.Context, noteID string, userID int64) error
	GetAllNotes(ctx context.Context, userID int64) ([]models.Note, error)
	GetNoteTexts(ctx context.Context, userID int64) ([]string, error)
}
