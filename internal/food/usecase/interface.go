// Package usecase contains the food tracking business logic.
package usecase

import (
	"context"

	foodDomain "github.com/allisson/lifetrack/internal/food/domain"
)

// FoodLogRepository defines food log persistence.
type FoodLogRepository interface {
	Create(ctx context.Context, log *foodDomain.FoodLog) error
	ListToday(ctx context.Context, userID int64) ([]foodDomain.FoodLog, error)
	WeeklyByDay(ctx context.Context, userID int64) ([]foodDomain.WeeklyDay, error)
	Delete(ctx context.Context, userID, id int64) error
}

// FoodTargetRepository defines daily kcal target persistence.
type FoodTargetRepository interface {
	Upsert(ctx context.Context, userID int64, dailyKcalTarget int) error
	// Get returns ErrNotFound when the user never set a target.
	Get(ctx context.Context, userID int64) (int, error)
}

// FoodUseCase defines the food tracking operations.
type FoodUseCase interface {
	Log(ctx context.Context, userID int64, input foodDomain.CreateFoodLogInput) (foodDomain.FoodLog, error)
	TodaySummary(ctx context.Context, userID int64) (foodDomain.DailySummary, error)
	WeeklyByDay(ctx context.Context, userID int64) ([]foodDomain.WeeklyDay, error)
	DeleteLog(ctx context.Context, userID, id int64) error
	SetTarget(ctx context.Context, userID int64, input foodDomain.SetFoodTargetInput) error
	GetTarget(ctx context.Context, userID int64) (int, error)
}
