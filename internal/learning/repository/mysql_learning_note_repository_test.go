package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	learningDomain "github.com/allisson/lifetrack/internal/learning/domain"
)

func TestMySQLLearningNoteRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores tags as a JSON array", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		createdAt := time.Now().UTC()
		mock.ExpectExec("INSERT INTO learning_notes").
			WithArgs(int64(3), "goroutines", "channels and select", `["go","concurrency"]`).
			WillReturnResult(sqlmock.NewResult(9, 1))
		mock.ExpectQuery("SELECT created_at FROM learning_notes WHERE id = ?").
			WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

		repo := NewMySQLLearningNoteRepository(db)
		note := learningDomain.LearningNote{
			UserID:  3,
			Topic:   "goroutines",
			Content: "channels and select",
			Tags:    []string{"go", "concurrency"},
		}

		require.NoError(t, repo.Create(ctx, &note))
		assert.Equal(t, int64(9), note.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMySQLLearningNoteRepository_ListByWindow(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes tags, treating NULL as empty", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		createdAt := time.Now().UTC()
		rows := sqlmock.NewRows([]string{"id", "user_id", "topic", "content", "tags", "created_at"}).
			AddRow(int64(2), int64(3), "generics", "type params", `["go"]`, createdAt).
			AddRow(int64(1), int64(3), "sql", "joins", nil, createdAt)

		mock.ExpectQuery("SELECT id, user_id, topic, content, tags, created_at").
			WithArgs(int64(3), 7).
			WillReturnRows(rows)

		repo := NewMySQLLearningNoteRepository(db)
		notes, err := repo.ListByWindow(ctx, 3, 7)
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, []string{"go"}, notes[0].Tags)
		assert.Empty(t, notes[1].Tags)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
