// Package usecase contains the goals business logic.
package usecase

import (
	"context"

	goalsDomain "github.com/allisson/lifetrack/internal/goals/domain"
)

// GoalRepository defines goal persistence.
type GoalRepository interface {
	Create(ctx context.Context, goal *goalsDomain.Goal) error
	// List returns the user's goals, optionally filtered by type. A nil
	// goalType returns everything.
	List(ctx context.Context, userID int64, goalType *goalsDomain.GoalType) ([]goalsDomain.Goal, error)
	Delete(ctx context.Context, userID, id int64) error
}

// GoalUseCase defines the goals operations.
type GoalUseCase interface {
	Create(ctx context.Context, userID int64, input goalsDomain.CreateGoalInput) (goalsDomain.Goal, error)
	List(ctx context.Context, userID int64, goalType *goalsDomain.GoalType) ([]goalsDomain.Goal, error)
	Delete(ctx context.Context, userID, id int64) error
}
