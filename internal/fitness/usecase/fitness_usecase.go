package usecase

import (
	"context"

	fitnessDomain "github.com/allisson/lifetrack/internal/fitness/domain"
	"github.com/allisson/lifetrack/internal/validation"
)

// weeklyWindowDays is the summary window used across the tracking modules.
const weeklyWindowDays = 7

// fitnessUseCase implements FitnessUseCase.
type fitnessUseCase struct {
	repo FitnessLogRepository
}

// NewFitnessUseCase creates the fitness use case.
func NewFitnessUseCase(repo FitnessLogRepository) FitnessUseCase {
	return &fitnessUseCase{repo: repo}
}

// Log validates and persists a new workout.
func (f *fitnessUseCase) Log(
	ctx context.Context,
	userID int64,
	input fitnessDomain.CreateFitnessLogInput,
) (fitnessDomain.FitnessLog, error) {
	if err := input.Validate(); err != nil {
		return fitnessDomain.FitnessLog{}, validation.WrapValidationError(err)
	}

	activityType := fitnessDomain.DetectActivityType(input.Activity)
	if input.ActivityType != nil {
		activityType = *input.ActivityType
	}

	log := fitnessDomain.FitnessLog{
		UserID:          userID,
		Activity:        input.Activity,
		ActivityType:    activityType,
		DurationMinutes: input.DurationMinutes,
		Calories:        input.Calories,
		Steps:           input.Steps,
		Notes:           input.Notes,
	}
	if err := f.repo.Create(ctx, &log); err != nil {
		return fitnessDomain.FitnessLog{}, err
	}
	return log, nil
}

// WeeklySummary aggregates the user's workouts over the past 7 days.
func (f *fitnessUseCase) WeeklySummary(
	ctx context.Context,
	userID int64,
) (fitnessDomain.WeeklySummary, error) {
	logs, err := f.repo.ListByWindow(ctx, userID, weeklyWindowDays)
	if err != nil {
		return fitnessDomain.WeeklySummary{}, err
	}

	summary := fitnessDomain.WeeklySummary{Logs: logs}
	for _, log := range logs {
		summary.TotalDuration += log.DurationMinutes
		if log.Calories != nil {
			summary.TotalCalories += *log.Calories
		}
		if log.Steps != nil {
			summary.TotalSteps += *log.Steps
		}
	}
	return summary, nil
}
