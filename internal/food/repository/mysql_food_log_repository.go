// Package repository implements food tracking persistence for MySQL.
package repository

import (
	"context"
	"database/sql"

	apperrors "github.com/allisson/lifetrack/internal/errors"
	foodDomain "github.com/allisson/lifetrack/internal/food/domain"
)

// MySQLFoodLogRepository implements FoodLog persistence for MySQL databases.
type MySQLFoodLogRepository struct {
	db *sql.DB
}

// NewMySQLFoodLogRepository creates a new MySQLFoodLogRepository.
func NewMySQLFoodLogRepository(db *sql.DB) *MySQLFoodLogRepository {
	return &MySQLFoodLogRepository{db: db}
}

// Create inserts a new food log row and reads back its generated fields.
func (m *MySQLFoodLogRepository) Create(ctx context.Context, log *foodDomain.FoodLog) error {
	query := `INSERT INTO food_logs (user_id, food_name, kcal, serving_unit, serving_size, meal_type, image_analyzed)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := m.db.ExecContext(
		ctx,
		query,
		log.UserID,
		log.FoodName,
		log.Kcal,
		log.ServingUnit,
		log.ServingSize,
		log.MealType,
		log.ImageAnalyzed,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create food log")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get food log id")
	}
	log.ID = id

	readBack := `SELECT logged_at FROM food_logs WHERE id = ?`
	if err := m.db.QueryRowContext(ctx, readBack, id).Scan(&log.LoggedAt); err != nil {
		return apperrors.Wrap(err, "failed to read back food log")
	}

	return nil
}

// ListToday retrieves the user's rows logged today, oldest first.
func (m *MySQLFoodLogRepository) ListToday(
	ctx context.Context,
	userID int64,
) ([]foodDomain.FoodLog, error) {
	query := `SELECT id, user_id, food_name, kcal, serving_unit, serving_size, meal_type, image_analyzed, logged_at
			  FROM food_logs
			  WHERE user_id = ? AND DATE(logged_at) = CURDATE()
			  ORDER BY logged_at ASC`

	rows, err := m.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list food logs")
	}
	defer func() { _ = rows.Close() }()

	var logs []foodDomain.FoodLog
	for rows.Next() {
		var log foodDomain.FoodLog
		if err := rows.Scan(
			&log.ID,
			&log.UserID,
			&log.FoodName,
			&log.Kcal,
			&log.ServingUnit,
			&log.ServingSize,
			&log.MealType,
			&log.ImageAnalyzed,
			&log.LoggedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan food log")
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate food logs")
	}

	return logs, nil
}

// WeeklyByDay aggregates the past 7 days of rows per day, newest day first.
func (m *MySQLFoodLogRepository) WeeklyByDay(
	ctx context.Context,
	userID int64,
) ([]foodDomain.WeeklyDay, error) {
	query := `SELECT DATE(logged_at) AS date, SUM(kcal) AS total_kcal, COUNT(*) AS entries
			  FROM food_logs
			  WHERE user_id = ? AND logged_at >= NOW() - INTERVAL 7 DAY
			  GROUP BY DATE(logged_at)
			  ORDER BY date DESC`

	rows, err := m.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to aggregate food logs")
	}
	defer func() { _ = rows.Close() }()

	var days []foodDomain.WeeklyDay
	for rows.Next() {
		var day foodDomain.WeeklyDay
		if err := rows.Scan(&day.Date, &day.TotalKcal, &day.Entries); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan food log aggregate")
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate food log aggregates")
	}

	return days, nil
}

// Delete removes the user's row. Missing rows are not an error.
func (m *MySQLFoodLogRepository) Delete(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM food_logs WHERE id = ? AND user_id = ?`
	if _, err := m.db.ExecContext(ctx, query, id, userID); err != nil {
		return apperrors.Wrap(err, "failed to delete food log")
	}
	return nil
}
