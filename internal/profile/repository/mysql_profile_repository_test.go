package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/lifetrack/internal/errors"
	profileDomain "github.com/allisson/lifetrack/internal/profile/domain"
)

func TestMySQLProfileRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored profile", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		updatedAt := time.Now().UTC()
		rows := sqlmock.NewRows([]string{
			"user_id", "age", "height_cm", "weight_kg", "profession", "goal_description", "updated_at",
		}).AddRow(int64(2), 34, nil, 82.5, "engineer", nil, updatedAt)

		mock.ExpectQuery("SELECT user_id, age, height_cm, weight_kg").
			WithArgs(int64(2)).
			WillReturnRows(rows)

		repo := NewMySQLProfileRepository(db)
		profile, err := repo.Get(ctx, 2)
		require.NoError(t, err)
		require.NotNil(t, profile.WeightKg)
		assert.Equal(t, 82.5, *profile.WeightKg)
		assert.Nil(t, profile.HeightCm)
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery("SELECT user_id, age, height_cm, weight_kg").
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{
				"user_id", "age", "height_cm", "weight_kg", "profession", "goal_description", "updated_at",
			}))

		repo := NewMySQLProfileRepository(db)
		_, err = repo.Get(ctx, 2)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}

func TestMySQLProfileRepository_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("merges only the given fields", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		weight := 82.5
		mock.ExpectExec("INSERT INTO user_profiles").
			WithArgs(int64(2), nil, nil, &weight, nil, nil).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewMySQLProfileRepository(db)
		err = repo.Upsert(ctx, 2, profileDomain.UpdateProfileInput{WeightKg: &weight})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
