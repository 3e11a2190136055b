// Package repository implements learning note persistence for MySQL.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	apperrors "github.com/allisson/lifetrack/internal/errors"
	learningDomain "github.com/allisson/lifetrack/internal/learning/domain"
)

// MySQLLearningNoteRepository implements LearningNote persistence for MySQL
// databases. Tags are stored as a JSON array column.
type MySQLLearningNoteRepository struct {
	db *sql.DB
}

// NewMySQLLearningNoteRepository creates a new MySQLLearningNoteRepository.
func NewMySQLLearningNoteRepository(db *sql.DB) *MySQLLearningNoteRepository {
	return &MySQLLearningNoteRepository{db: db}
}

// Create inserts a new learning note row and reads back its generated fields.
func (m *MySQLLearningNoteRepository) Create(
	ctx context.Context,
	note *learningDomain.LearningNote,
) error {
	tags, err := json.Marshal(note.Tags)
	if err != nil {
		return apperrors.Wrap(err, "failed to encode learning note tags")
	}

	query := `INSERT INTO learning_notes (user_id, topic, content, tags) VALUES (?, ?, ?, ?)`
	result, err := m.db.ExecContext(ctx, query, note.UserID, note.Topic, note.Content, string(tags))
	if err != nil {
		return apperrors.Wrap(err, "failed to create learning note")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get learning note id")
	}
	note.ID = id

	readBack := `SELECT created_at FROM learning_notes WHERE id = ?`
	if err := m.db.QueryRowContext(ctx, readBack, id).Scan(&note.CreatedAt); err != nil {
		return apperrors.Wrap(err, "failed to read back learning note")
	}

	return nil
}

// List retrieves all of the user's notes, newest first.
func (m *MySQLLearningNoteRepository) List(
	ctx context.Context,
	userID int64,
) ([]learningDomain.LearningNote, error) {
	query := `SELECT id, user_id, topic, content, tags, created_at
			  FROM learning_notes
			  WHERE user_id = ?
			  ORDER BY created_at DESC`
	return m.query(ctx, query, userID)
}

// ListByWindow retrieves the user's notes created within the past windowDays
// days, newest first.
func (m *MySQLLearningNoteRepository) ListByWindow(
	ctx context.Context,
	userID int64,
	windowDays int,
) ([]learningDomain.LearningNote, error) {
	query := `SELECT id, user_id, topic, content, tags, created_at
			  FROM learning_notes
			  WHERE user_id = ? AND created_at >= NOW() - INTERVAL ? DAY
			  ORDER BY created_at DESC`
	return m.query(ctx, query, userID, windowDays)
}

// Delete removes the user's note. Missing rows are not an error.
func (m *MySQLLearningNoteRepository) Delete(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM learning_notes WHERE id = ? AND user_id = ?`
	if _, err := m.db.ExecContext(ctx, query, id, userID); err != nil {
		return apperrors.Wrap(err, "failed to delete learning note")
	}
	return nil
}

func (m *MySQLLearningNoteRepository) query(
	ctx context.Context,
	query string,
	args ...any,
) ([]learningDomain.LearningNote, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list learning notes")
	}
	defer func() { _ = rows.Close() }()

	var notes []learningDomain.LearningNote
	for rows.Next() {
		var note learningDomain.LearningNote
		var tags sql.NullString
		if err := rows.Scan(
			&note.ID,
			&note.UserID,
			&note.Topic,
			&note.Content,
			&tags,
			&note.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan learning note")
		}
		note.Tags = []string{}
		if tags.Valid && tags.String != "" {
			if err := json.Unmarshal([]byte(tags.String), &note.Tags); err != nil {
				return nil, apperrors.Wrap(err, "failed to decode learning note tags")
			}
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate learning notes")
	}

	return notes, nil
}
