// Package repository implements fitness log persistence for MySQL.
package repository

import (
	"context"
	"database/sql"

	apperrors "github.com/allisson/lifetrack/internal/errors"
	fitnessDomain "github.com/allisson/lifetrack/internal/fitness/domain"
)

// MySQLFitnessLogRepository implements FitnessLog persistence for MySQL databases.
type MySQLFitnessLogRepository struct {
	db *sql.DB
}

// NewMySQLFitnessLogRepository creates a new MySQLFitnessLogRepository.
func NewMySQLFitnessLogRepository(db *sql.DB) *MySQLFitnessLogRepository {
	return &MySQLFitnessLogRepository{db: db}
}

// Create inserts a new fitness log row and reads back its generated fields.
func (m *MySQLFitnessLogRepository) Create(
	ctx context.Context,
	log *fitnessDomain.FitnessLog,
) error {
	query := `INSERT INTO fitness_logs (user_id, activity, activity_type, duration_minutes, calories, steps, notes)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := m.db.ExecContext(
		ctx,
		query,
		log.UserID,
		log.Activity,
		log.ActivityType,
		log.DurationMinutes,
		log.Calories,
		log.Steps,
		log.Notes,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create fitness log")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get fitness log id")
	}
	log.ID = id

	readBack := `SELECT logged_at FROM fitness_logs WHERE id = ?`
	if err := m.db.QueryRowContext(ctx, readBack, id).Scan(&log.LoggedAt); err != nil {
		return apperrors.Wrap(err, "failed to read back fitness log")
	}

	return nil
}

// ListByWindow retrieves the user's rows logged within the past windowDays
// days, newest first.
func (m *MySQLFitnessLogRepository) ListByWindow(
	ctx context.Context,
	userID int64,
	windowDays int,
) ([]fitnessDomain.FitnessLog, error) {
	query := `SELECT id, user_id, activity, activity_type, duration_minutes, calories, steps, notes, logged_at
			  FROM fitness_logs
			  WHERE user_id = ? AND logged_at >= NOW() - INTERVAL ? DAY
			  ORDER BY logged_at DESC`

	rows, err := m.db.QueryContext(ctx, query, userID, windowDays)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list fitness logs")
	}
	defer func() { _ = rows.Close() }()

	var logs []fitnessDomain.FitnessLog
	for rows.Next() {
		var log fitnessDomain.FitnessLog
		if err := rows.Scan(
			&log.ID,
			&log.UserID,
			&log.Activity,
			&log.ActivityType,
			&log.DurationMinutes,
			&log.Calories,
			&log.Steps,
			&log.Notes,
			&log.LoggedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan fitness log")
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate fitness logs")
	}

	return logs, nil
}
