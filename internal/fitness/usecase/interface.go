// Package usecase implements fitness log business logic.
package usecase

import (
	"context"

	fitnessDomain "github.com/allisson/lifetrack/internal/fitness/domain"
)

// FitnessLogRepository defines persistence for workout rows.
type FitnessLogRepository interface {
	// Create inserts a new row and populates its ID and LoggedAt.
	Create(ctx context.Context, log *fitnessDomain.FitnessLog) error

	// ListByWindow retrieves the user's rows logged within the past
	// windowDays days, newest first.
	ListByWindow(ctx context.Context, userID int64, windowDays int) ([]fitnessDomain.FitnessLog, error)
}

// FitnessUseCase defines the fitness log operations.
type FitnessUseCase interface {
	// Log validates and persists a new workout, auto-detecting the activity
	// type when the caller supplies none.
	Log(ctx context.Context, userID int64, input fitnessDomain.CreateFitnessLogInput) (fitnessDomain.FitnessLog, error)

	// WeeklySummary aggregates the user's workouts over the past 7 days.
	WeeklySummary(ctx context.Context, userID int64) (fitnessDomain.WeeklySummary, error)
}
