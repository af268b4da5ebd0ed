package service

import (
	"context"

	"github.com/dsemenko/notesage/models"
)

// AuthService issues and verifies user sessions. It is the credential-issuing
// counterpart of the session lookup performed by the HTTP auth middleware.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService implements the note lifecycle: create, update, delete, list.
// Every operation acts on behalf of an authenticated user; ownership is
// enforced uniformly on update and delete through the storage layer's
// compound (id, owner) key.
type NoteService interface {
	Create(ctx context.Context, userID int64, noteID string) (models.Note, error)
	Update(ctx context.Context, userID int64, noteID string, text string) error
	Delete(ctx context.Context, userID int64, noteID string) error
	List(ctx context.Context, userID int64) ([]models.Note, error)
}

// AssistantService answers natural-language questions using only the user's
// own notes as grounding context.
//
// Questions holds the full ordered question sequence including the newest
// one; responses holds the model's answers to all but the last question.
// The conversation is rebuilt from scratch on every call — nothing is
// persisted between calls.
type AssistantService interface {
	Ask(ctx context.Context, userID int64, questions []string, responses []string) (string, error)
}
