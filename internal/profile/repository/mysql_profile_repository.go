// Package repository implements profile persistence for MySQL.
package repository

import (
	"context"
	"database/sql"

	apperrors "github.com/allisson/lifetrack/internal/errors"
	profileDomain "github.com/allisson/lifetrack/internal/profile/domain"
)

// MySQLProfileRepository implements Profile persistence for MySQL databases.
// One row per user, keyed by user_id.
type MySQLProfileRepository struct {
	db *sql.DB
}

// NewMySQLProfileRepository creates a new MySQLProfileRepository.
func NewMySQLProfileRepository(db *sql.DB) *MySQLProfileRepository {
	return &MySQLProfileRepository{db: db}
}

// Get returns the user's profile, or ErrNotFound when no row exists.
func (m *MySQLProfileRepository) Get(
	ctx context.Context,
	userID int64,
) (profileDomain.Profile, error) {
	query := `SELECT user_id, age, height_cm, weight_kg, profession, goal_description, updated_at
			  FROM user_profiles
			  WHERE user_id = ?`

	var profile profileDomain.Profile
	err := m.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Age,
		&profile.HeightCm,
		&profile.WeightKg,
		&profile.Profession,
		&profile.GoalDescription,
		&profile.UpdatedAt,
	)
	if err != nil {
		if apperrors.Is(err, sql.ErrNoRows) {
			return profileDomain.Profile{}, apperrors.Wrap(apperrors.ErrNotFound, "profile not found")
		}
		return profileDomain.Profile{}, apperrors.Wrap(err, "failed to get profile")
	}
	return profile, nil
}

// Upsert merges the non-nil fields into the user's row, creating it when
// missing.
func (m *MySQLProfileRepository) Upsert(
	ctx context.Context,
	userID int64,
	input profileDomain.UpdateProfileInput,
) error {
	query := `INSERT INTO user_profiles (user_id, age, height_cm, weight_kg, profession, goal_description)
			  VALUES (?, ?, ?, ?, ?, ?)
			  ON DUPLICATE KEY UPDATE
			  age = COALESCE(VALUES(age), age),
			  height_cm = COALESCE(VALUES(height_cm), height_cm),
			  weight_kg = COALESCE(VALUES(weight_kg), weight_kg),
			  profession = COALESCE(VALUES(profession), profession),
			  goal_description = COALESCE(VALUES(goal_description), goal_description)`

	_, err := m.db.ExecContext(
		ctx,
		query,
		userID,
		input.Age,
		input.HeightCm,
		input.WeightKg,
		input.Profession,
		input.GoalDescription,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to upsert profile")
	}
	return nil
}
