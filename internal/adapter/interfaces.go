// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating with
// the notesage server.
//
// The primary abstraction is [ServerAdapter], which decouples the CLI client
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/dsemenko/notesage/models"
)

// ServerAdapter defines transport-agnostic communication with the notesage
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request to the server with the provided
	// user credentials. On success it stores the returned bearer token via
	// SetToken and returns the user value. Returns an error if the request
	// fails or the server responds with a non-2xx status.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the user with the server. On success it stores the
	// returned bearer token via SetToken. Returns an error if the request
	// fails or the server responds with a non-2xx status.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// CreateNote creates an empty note under the client-supplied id and
	// returns the stored note. Returns [ErrConflict] (wrapped) if a note with
	// that id already exists.
	CreateNote(ctx context.Context, noteID string) (models.Note, error)

	// UpdateNote replaces the text of the note identified by noteID. The
	// server responds with a bare 200 on success, so no note value is
	// returned. Returns [ErrNotFound] (wrapped) if the note does not exist or
	// belongs to another user.
	UpdateNote(ctx context.Context, noteID string, text string) error

	// DeleteNote removes the note identified by noteID. Returns [ErrNotFound]
	// (wrapped) if the note does not exist or belongs to another user.
	DeleteNote(ctx context.Context, noteID string) error

	// ListNotes retrieves all of the caller's notes, newest first.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// Ask sends a question about the caller's notes together with the prior
	// conversation and returns the assistant's answer.
	Ask(ctx context.Context, questions []string, responses []string) (string, error)
}
