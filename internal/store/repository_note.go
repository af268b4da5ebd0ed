package store

import (
	"context"
	"fmt"

	"github.com/dsemenko/notesage/internal/logger"
	"github.com/dsemenko/notesage/models"
	"github.com/jackc/pgerrcode"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// It executes all note CRUD operations directly against the "notes" table
// using the embedded [*DB] connection.
//
// Update and delete statements always filter by the compound (id, user_id)
// key. A zero affected-row count is reported as [ErrNoteNotFound] whether the
// id is missing or belongs to a different user; the storage layer does not
// distinguish the two cases.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateNote inserts a new note with the caller-supplied id and returns the
// persisted record with database-assigned timestamps. The text column is
// whatever the caller provides; the service layer always passes an empty
// string at creation.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrNoteAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped as [ErrScanningRow].
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createNote, note.ID, note.UserID, note.Text)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*noteRepository.CreateNote").
			Str("note_id", note.ID).
			Int64("user_id", note.UserID).
			Bool("retryable", r.errorClassificator.Classify(err) == Retryable).
			Msg("error inserting note")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Note{}, ErrNoteAlreadyExists
		default:
			return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var saved models.Note
	if err := row.Scan(&saved.ID, &saved.UserID, &saved.Text, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Note{}, ErrNoteAlreadyExists
		}
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: scanning error")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// UpdateNoteText overwrites the text of the note matching the compound
// (id, user_id) key and bumps updated_at.
//
// Returns [ErrNoteNotFound] when no record matched the key — either the note
// does not exist or it belongs to another user.
func (r *noteRepository) UpdateNoteText(ctx context.Context, noteID string, userID int64, text string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, updateNoteText, text, noteID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.UpdateNoteText").
			Str("note_id", noteID).
			Int64("user_id", userID).
			Bool("retryable", r.errorClassificator.Classify(err) == Retryable).
			Msg("error updating note text")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// DeleteNote permanently removes the note matching the compound
// (id, user_id) key.
//
// Returns [ErrNoteNotFound] when no record matched the key.
func (r *noteRepository) DeleteNote(ctx context.Context, noteID string, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteNote, noteID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.DeleteNote").
			Str("note_id", noteID).
			Int64("user_id", userID).
			Bool("retryable", r.errorClassificator.Classify(err) == Retryable).
			Msg("error deleting note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// GetAllNotes returns every note owned by userID, newest first.
func (r *noteRepository) GetAllNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllNotes, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.GetAllNotes").
			Int64("user_id", userID).
			Msg("failed to execute query for getting user notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 16)
	for rows.Next() {
		var note models.Note
		if scanErr := rows.Scan(&note.ID, &note.UserID, &note.Text, &note.CreatedAt, &note.UpdatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*noteRepository.GetAllNotes").
				Int64("user_id", userID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// GetNoteTexts returns only the text column of every note owned by userID,
// newest first. This is the projection fed to the assistant; timestamps are
// excluded at the SQL level (see [buildGetNoteTextsQuery]).
func (r *noteRepository) GetNoteTexts(ctx context.Context, userID int64) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetNoteTextsQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.GetNoteTexts").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.GetNoteTexts").
			Int64("user_id", userID).
			Msg("failed to execute query for getting note texts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	texts := make([]string, 0, 16)
	for rows.Next() {
		var text string
		if scanErr := rows.Scan(&text); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		texts = append(texts, text)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return texts, nil
}
