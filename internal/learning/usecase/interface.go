// Package usecase contains the learning notes business logic.
package usecase

import (
	"context"

	learningDomain "github.com/allisson/lifetrack/internal/learning/domain"
)

// LearningNoteRepository defines learning note persistence.
type LearningNoteRepository interface {
	Create(ctx context.Context, note *learningDomain.LearningNote) error
	List(ctx context.Context, userID int64) ([]learningDomain.LearningNote, error)
	ListByWindow(ctx context.Context, userID int64, windowDays int) ([]learningDomain.LearningNote, error)
	Delete(ctx context.Context, userID, id int64) error
}

// LearningUseCase defines the learning notes operations.
type LearningUseCase interface {
	CreateNote(ctx context.Context, userID int64, input learningDomain.CreateLearningNoteInput) (learningDomain.LearningNote, error)
	ListNotes(ctx context.Context, userID int64) ([]learningDomain.LearningNote, error)
	WeeklyTopics(ctx context.Context, userID int64) ([]string, error)
	DeleteNote(ctx context.Context, userID, id int64) error
}
