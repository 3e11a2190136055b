package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/lifetrack/internal/errors"
	foodDomain "github.com/allisson/lifetrack/internal/food/domain"
)

func TestMySQLFoodLogRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts row and reads back generated fields", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		loggedAt := time.Now().UTC()
		mock.ExpectExec("INSERT INTO food_logs").
			WithArgs(int64(4), "apple", 95, "quantity", 1.0, foodDomain.MealTypeSnack, false).
			WillReturnResult(sqlmock.NewResult(21, 1))
		mock.ExpectQuery("SELECT logged_at FROM food_logs WHERE id = ?").
			WithArgs(int64(21)).
			WillReturnRows(sqlmock.NewRows([]string{"logged_at"}).AddRow(loggedAt))

		repo := NewMySQLFoodLogRepository(db)
		log := foodDomain.FoodLog{
			UserID:      4,
			FoodName:    "apple",
			Kcal:        95,
			ServingUnit: "quantity",
			ServingSize: 1.0,
			MealType:    foodDomain.MealTypeSnack,
		}

		require.NoError(t, repo.Create(ctx, &log))
		assert.Equal(t, int64(21), log.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMySQLFoodLogRepository_WeeklyByDay(t *testing.T) {
	ctx := context.Background()

	t.Run("returns per-day aggregates", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		rows := sqlmock.NewRows([]string{"date", "total_kcal", "entries"}).
			AddRow("2026-08-28", 1850, 4).
			AddRow("2026-08-27", 2100, 5)

		mock.ExpectQuery("SELECT DATE\\(logged_at\\) AS date").
			WithArgs(int64(4)).
			WillReturnRows(rows)

		repo := NewMySQLFoodLogRepository(db)
		days, err := repo.WeeklyByDay(ctx, 4)
		require.NoError(t, err)
		require.Len(t, days, 2)
		assert.Equal(t, "2026-08-28", days[0].Date)
		assert.Equal(t, 1850, days[0].TotalKcal)
		assert.Equal(t, 5, days[1].Entries)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMySQLFoodTargetRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored target", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery("SELECT daily_kcal_target FROM food_targets").
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows([]string{"daily_kcal_target"}).AddRow(2200))

		repo := NewMySQLFoodTargetRepository(db)
		target, err := repo.Get(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, 2200, target)
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery("SELECT daily_kcal_target FROM food_targets").
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows([]string{"daily_kcal_target"}))

		repo := NewMySQLFoodTargetRepository(db)
		_, err = repo.Get(ctx, 4)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}

func TestMySQLFoodTargetRepository_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("upserts the user's target", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("INSERT INTO food_targets").
			WithArgs(int64(4), 1800).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewMySQLFoodTargetRepository(db)
		require.NoError(t, repo.Upsert(ctx, 4, 1800))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
