package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (login, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, login, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, created_at
    FROM users
    WHERE login = $1;`

	createNote = `INSERT INTO notes (id, user_id, text)
    VALUES ($1, $2, $3)
    RETURNING id, user_id, text, created_at, updated_at;`

	updateNoteText = `UPDATE notes
		SET text = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3;`

	deleteNote = `DELETE FROM notes
		WHERE id = $1 AND user_id = $2;`

	getAllNotes = `SELECT id, user_id, text, created_at, updated_at
		FROM notes
		WHERE user_id = $1
		ORDER BY created_at DESC;`
)

// buildGetNoteTextsQuery builds the projection query that feeds the
// assistant's grounding context: text column only, newest note first.
// Timestamps are deliberately left out of the SELECT so they can never end
// up in the payload sent to the model.
func buildGetNoteTextsQuery(userID int64) (string, []any, error) {
	query, args, err := sq.
		Select("text").
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
