package store

import (
	"context"

	"github.com/dsemenko/notesage/internal/config"
	"github.com/dsemenko/notesage/internal/logger"
	"github.com/dsemenko/notesage/migrations"
)

// Storages bundles all repositories backed by the shared database connection.
type Storages struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and
// constructs all repositories over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		NoteRepository: NewNoteRepository(db, log),
	}, nil
}
