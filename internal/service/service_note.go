package service

import (
	"context"
	"fmt"

	"github.com/dsemenko/notesage/internal/logger"
	"github.com/dsemenko/notesage/internal/store"
	"github.com/dsemenko/notesage/models"
)

// noteService is the concrete implementation of [NoteService].
//
// All mutating operations go through the repository's compound (id, owner)
// key, so ownership is checked before the store is touched in exactly the
// same way for update and delete. A non-owner hitting an existing id gets
// [store.ErrNoteNotFound] — no record matched the compound key — rather than
// an authorization-specific error.
type noteService struct {
	noteRepository store.NoteRepository
	logger         *logger.Logger
}

// NewNoteService constructs a [NoteService] over the given repository.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

// Create inserts a new empty note owned by userID under the caller-supplied
// noteID. The text starts empty; the note is filled in afterwards via Update.
//
// Returns the persisted note or:
//   - ErrValidationNoNoteID if noteID is empty.
//   - store.ErrNoteAlreadyExists if the id collides with an existing note.
func (s *noteService) Create(ctx context.Context, userID int64, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	if noteID == "" {
		return models.Note{}, ErrValidationNoNoteID
	}

	note, err := s.noteRepository.CreateNote(ctx, models.Note{
		ID:     noteID,
		UserID: userID,
		Text:   "",
	})
	if err != nil {
		log.Err(err).Str("note_id", noteID).Int64("user_id", userID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return note, nil
}

// Update overwrites the note's text. The repository filters by the compound
// (id, owner) key, so only the owner can change a note's text.
//
// Returns:
//   - ErrValidationNoNoteID if noteID is empty.
//   - store.ErrNoteNotFound if no note matched id+owner.
func (s *noteService) Update(ctx context.Context, userID int64, noteID string, text string) error {
	log := logger.FromContext(ctx)

	if noteID == "" {
		return ErrValidationNoNoteID
	}

	if err := s.noteRepository.UpdateNoteText(ctx, noteID, userID, text); err != nil {
		log.Err(err).Str("note_id", noteID).Int64("user_id", userID).Msg("note update ended with error")
		return fmt.Errorf("note update ended with error: %w", err)
	}

	return nil
}

// Delete permanently removes the note matching id+owner.
//
// Returns:
//   - ErrValidationNoNoteID if noteID is empty.
//   - store.ErrNoteNotFound if no note matched id+owner.
func (s *noteService) Delete(ctx context.Context, userID int64, noteID string) error {
	log := logger.FromContext(ctx)

	if noteID == "" {
		return ErrValidationNoNoteID
	}

	if err := s.noteRepository.DeleteNote(ctx, noteID, userID); err != nil {
		log.Err(err).Str("note_id", noteID).Int64("user_id", userID).Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}

// List returns all of the user's notes, newest first.
func (s *noteService) List(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	notes, err := s.noteRepository.GetAllNotes(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("note listing ended with error")
		return nil, fmt.Errorf("note listing ended with error: %w", err)
	}

	return notes, nil
}
