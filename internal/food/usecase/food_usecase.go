package usecase

import (
	"context"

	apperrors "github.com/allisson/lifetrack/internal/errors"
	foodDomain "github.com/allisson/lifetrack/internal/food/domain"
	"github.com/allisson/lifetrack/internal/validation"
)

type foodUseCase struct {
	logRepo    FoodLogRepository
	targetRepo FoodTargetRepository
}

// NewFoodUseCase creates the food use case.
func NewFoodUseCase(logRepo FoodLogRepository, targetRepo FoodTargetRepository) FoodUseCase {
	return &foodUseCase{logRepo: logRepo, targetRepo: targetRepo}
}

// Log validates and persists a new food intake row, filling serving defaults.
func (f *foodUseCase) Log(
	ctx context.Context,
	userID int64,
	input foodDomain.CreateFoodLogInput,
) (foodDomain.FoodLog, error) {
	if err := input.Validate(); err != nil {
		return foodDomain.FoodLog{}, validation.WrapValidationError(err)
	}

	log := foodDomain.FoodLog{
		UserID:        userID,
		FoodName:      input.FoodName,
		Kcal:          input.Kcal,
		ServingUnit:   "quantity",
		ServingSize:   1.0,
		MealType:      foodDomain.MealTypeSnack,
		ImageAnalyzed: input.ImageAnalyzed,
	}
	if input.ServingUnit != nil {
		log.ServingUnit = *input.ServingUnit
	}
	if input.ServingSize != nil {
		log.ServingSize = *input.ServingSize
	}
	if input.MealType != nil {
		log.MealType = *input.MealType
	}

	if err := f.logRepo.Create(ctx, &log); err != nil {
		return foodDomain.FoodLog{}, err
	}
	return log, nil
}

// TodaySummary lists today's rows with their kcal total and the user's target.
func (f *foodUseCase) TodaySummary(
	ctx context.Context,
	userID int64,
) (foodDomain.DailySummary, error) {
	logs, err := f.logRepo.ListToday(ctx, userID)
	if err != nil {
		return foodDomain.DailySummary{}, err
	}

	target, err := f.GetTarget(ctx, userID)
	if err != nil {
		return foodDomain.DailySummary{}, err
	}

	summary := foodDomain.DailySummary{Logs: logs, DailyKcalTarget: target}
	for _, log := range logs {
		summary.TotalKcal += log.Kcal
	}
	return summary, nil
}

func (f *foodUseCase) WeeklyByDay(
	ctx context.Context,
	userID int64,
) ([]foodDomain.WeeklyDay, error) {
	return f.logRepo.WeeklyByDay(ctx, userID)
}

func (f *foodUseCase) DeleteLog(ctx context.Context, userID, id int64) error {
	return f.logRepo.Delete(ctx, userID, id)
}

func (f *foodUseCase) SetTarget(
	ctx context.Context,
	userID int64,
	input foodDomain.SetFoodTargetInput,
) error {
	if err := input.Validate(); err != nil {
		return validation.WrapValidationError(err)
	}
	return f.targetRepo.Upsert(ctx, userID, input.DailyKcalTarget)
}

// GetTarget returns the user's daily kcal target, falling back to the default
// when none was ever set.
func (f *foodUseCase) GetTarget(ctx context.Context, userID int64) (int, error) {
	target, err := f.targetRepo.Get(ctx, userID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return foodDomain.DefaultDailyKcalTarget, nil
		}
		return 0, err
	}
	return target, nil
}
