package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goalsDomain "github.com/allisson/lifetrack/internal/goals/domain"
)

func TestMySQLGoalRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts row and reads back generated fields", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		createdAt := time.Now().UTC()
		target := `{"amount":5000}`
		mock.ExpectExec("INSERT INTO goals").
			WithArgs(int64(2), goalsDomain.GoalTypeFinance, "emergency fund", &target).
			WillReturnResult(sqlmock.NewResult(7, 1))
		mock.ExpectQuery("SELECT created_at FROM goals WHERE id = ?").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

		repo := NewMySQLGoalRepository(db)
		goal := goalsDomain.Goal{
			UserID: 2,
			Type:   goalsDomain.GoalTypeFinance,
			Title:  "emergency fund",
			Target: &target,
		}

		require.NoError(t, repo.Create(ctx, &goal))
		assert.Equal(t, int64(7), goal.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMySQLGoalRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by type when given", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		createdAt := time.Now().UTC()
		rows := sqlmock.NewRows([]string{"id", "user_id", "type", "title", "target", "created_at"}).
			AddRow(int64(7), int64(2), "finance", "emergency fund", nil, createdAt)

		mock.ExpectQuery("WHERE user_id = \\? AND type = \\?").
			WithArgs(int64(2), goalsDomain.GoalTypeFinance).
			WillReturnRows(rows)

		repo := NewMySQLGoalRepository(db)
		finance := goalsDomain.GoalTypeFinance
		goals, err := repo.List(ctx, 2, &finance)
		require.NoError(t, err)
		require.Len(t, goals, 1)
		assert.Equal(t, goalsDomain.GoalTypeFinance, goals[0].Type)
		assert.Nil(t, goals[0].Target)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lists everything without a filter", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery("WHERE user_id = \\?").
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "type", "title", "target", "created_at"}))

		repo := NewMySQLGoalRepository(db)
		goals, err := repo.List(ctx, 2, nil)
		require.NoError(t, err)
		assert.Empty(t, goals)
	})
}
