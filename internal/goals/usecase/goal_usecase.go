package usecase

import (
	"context"

	goalsDomain "github.com/allisson/lifetrack/internal/goals/domain"
	"github.com/allisson/lifetrack/internal/validation"
)

type goalUseCase struct {
	repo GoalRepository
}

// NewGoalUseCase creates the goals use case.
func NewGoalUseCase(repo GoalRepository) GoalUseCase {
	return &goalUseCase{repo: repo}
}

func (g *goalUseCase) Create(
	ctx context.Context,
	userID int64,
	input goalsDomain.CreateGoalInput,
) (goalsDomain.Goal, error) {
	if err := input.Validate(); err != nil {
		return goalsDomain.Goal{}, validation.WrapValidationError(err)
	}

	goal := goalsDomain.Goal{
		UserID: userID,
		Type:   input.Type,
		Title:  input.Title,
		Target: input.Target,
	}
	if err := g.repo.Create(ctx, &goal); err != nil {
		return goalsDomain.Goal{}, err
	}
	return goal, nil
}

func (g *goalUseCase) List(
	ctx context.Context,
	userID int64,
	goalType *goalsDomain.GoalType,
) ([]goalsDomain.Goal, error) {
	return g.repo.List(ctx, userID, goalType)
}

func (g *goalUseCase) Delete(ctx context.Context, userID, id int64) error {
	return g.repo.Delete(ctx, userID, id)
}
