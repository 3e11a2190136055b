package repository

import (
	"context"
	"database/sql"

	apperrors "github.com/allisson/lifetrack/internal/errors"
)

// MySQLFoodTargetRepository implements daily kcal target persistence for
// MySQL databases. One row per user.
type MySQLFoodTargetRepository struct {
	db *sql.DB
}

// NewMySQLFoodTargetRepository creates a new MySQLFoodTargetRepository.
func NewMySQLFoodTargetRepository(db *sql.DB) *MySQLFoodTargetRepository {
	return &MySQLFoodTargetRepository{db: db}
}

// Upsert creates or replaces the user's daily kcal target.
func (m *MySQLFoodTargetRepository) Upsert(
	ctx context.Context,
	userID int64,
	dailyKcalTarget int,
) error {
	query := `INSERT INTO food_targets (user_id, daily_kcal_target)
			  VALUES (?, ?)
			  ON DUPLICATE KEY UPDATE daily_kcal_target = VALUES(daily_kcal_target)`

	if _, err := m.db.ExecContext(ctx, query, userID, dailyKcalTarget); err != nil {
		return apperrors.Wrap(err, "failed to upsert food target")
	}
	return nil
}

// Get returns the user's daily kcal target, or ErrNotFound when never set.
func (m *MySQLFoodTargetRepository) Get(ctx context.Context, userID int64) (int, error) {
	query := `SELECT daily_kcal_target FROM food_targets WHERE user_id = ?`

	var target int
	err := m.db.QueryRowContext(ctx, query, userID).Scan(&target)
	if err != nil {
		if apperrors.Is(err, sql.ErrNoRows) {
			return 0, apperrors.Wrap(apperrors.ErrNotFound, "food target not found")
		}
		return 0, apperrors.Wrap(err, "failed to get food target")
	}
	return target, nil
}
