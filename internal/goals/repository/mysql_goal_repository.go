// Package repository implements goal persistence for MySQL.
package repository

import (
	"context"
	"database/sql"

	apperrors "github.com/allisson/lifetrack/internal/errors"
	goalsDomain "github.com/allisson/lifetrack/internal/goals/domain"
)

// MySQLGoalRepository implements Goal persistence for MySQL databases.
type MySQLGoalRepository struct {
	db *sql.DB
}

// NewMySQLGoalRepository creates a new MySQLGoalRepository.
func NewMySQLGoalRepository(db *sql.DB) *MySQLGoalRepository {
	return &MySQLGoalRepository{db: db}
}

// Create inserts a new goal row and reads back its generated fields.
func (m *MySQLGoalRepository) Create(ctx context.Context, goal *goalsDomain.Goal) error {
	query := `INSERT INTO goals (user_id, type, title, target) VALUES (?, ?, ?, ?)`

	result, err := m.db.ExecContext(ctx, query, goal.UserID, goal.Type, goal.Title, goal.Target)
	if err != nil {
		return apperrors.Wrap(err, "failed to create goal")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get goal id")
	}
	goal.ID = id

	readBack := `SELECT created_at FROM goals WHERE id = ?`
	if err := m.db.QueryRowContext(ctx, readBack, id).Scan(&goal.CreatedAt); err != nil {
		return apperrors.Wrap(err, "failed to read back goal")
	}

	return nil
}

// List retrieves the user's goals, optionally filtered by type, newest first.
func (m *MySQLGoalRepository) List(
	ctx context.Context,
	userID int64,
	goalType *goalsDomain.GoalType,
) ([]goalsDomain.Goal, error) {
	query := `SELECT id, user_id, type, title, target, created_at
			  FROM goals
			  WHERE user_id = ?
			  ORDER BY created_at DESC`
	args := []any{userID}
	if goalType != nil {
		query = `SELECT id, user_id, type, title, target, created_at
				 FROM goals
				 WHERE user_id = ? AND type = ?
				 ORDER BY created_at DESC`
		args = append(args, *goalType)
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list goals")
	}
	defer func() { _ = rows.Close() }()

	var goals []goalsDomain.Goal
	for rows.Next() {
		var goal goalsDomain.Goal
		if err := rows.Scan(
			&goal.ID,
			&goal.UserID,
			&goal.Type,
			&goal.Title,
			&goal.Target,
			&goal.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan goal")
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate goals")
	}

	return goals, nil
}

// Delete removes the user's goal. Missing rows are not an error.
func (m *MySQLGoalRepository) Delete(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM goals WHERE id = ? AND user_id = ?`
	if _, err := m.db.ExecContext(ctx, query, id, userID); err != nil {
		return apperrors.Wrap(err, "failed to delete goal")
	}
	return nil
}
