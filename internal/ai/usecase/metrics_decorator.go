package usecase

import (
	"context"
	"time"

	aiDomain "github.com/allisson/lifetrack/internal/ai/domain"
	"github.com/allisson/lifetrack/internal/metrics"
)

// estimationUseCaseWithMetrics decorates EstimationUseCase with metrics
// instrumentation.
type estimationUseCaseWithMetrics struct {
	next    EstimationUseCase
	metrics metrics.BusinessMetrics
}

// NewEstimationUseCaseWithMetrics wraps an EstimationUseCase with metrics
// recording.
func NewEstimationUseCaseWithMetrics(
	useCase EstimationUseCase,
	m metrics.BusinessMetrics,
) EstimationUseCase {
	return &estimationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// EstimateActivityCalories records metrics for activity estimates. A fallback
// answer is recorded with its own status so dashboards can track model
// health.
func (e *estimationUseCaseWithMetrics) EstimateActivityCalories(
	ctx context.Context,
	userID int64,
	input aiDomain.ActivityEstimateInput,
) (aiDomain.EstimationResult, error) {
	start := time.Now()
	result, err := e.next.EstimateActivityCalories(ctx, userID, input)

	status := "success"
	switch {
	case err != nil:
		status = "error"
	case result.Fallback:
		status = "fallback"
	}

	e.metrics.RecordOperation(ctx, "ai", "activity_estimate", status)
	e.metrics.RecordDuration(ctx, "ai", "activity_estimate", time.Since(start), status)

	return result, err
}

// EstimateFoodKcal records metrics for food kcal estimates.
func (e *estimationUseCaseWithMetrics) EstimateFoodKcal(
	ctx context.Context,
	input aiDomain.FoodEstimateInput,
) (aiDomain.EstimationResult, error) {
	start := time.Now()
	result, err := e.next.EstimateFoodKcal(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "ai", "food_estimate", status)
	e.metrics.RecordDuration(ctx, "ai", "food_estimate", time.Since(start), status)

	return result, err
}

// AnalyzeFoodImage records metrics for food image analysis.
func (e *estimationUseCaseWithMetrics) AnalyzeFoodImage(
	ctx context.Context,
	image []byte,
) (aiDomain.ImageAnalysisResult, error) {
	start := time.Now()
	result, err := e.next.AnalyzeFoodImage(ctx, image)

	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "ai", "image_analysis", status)
	e.metrics.RecordDuration(ctx, "ai", "image_analysis", time.Since(start), status)

	return result, err
}

// WeeklyInsight records metrics for the weekly insight advisory.
func (e *estimationUseCaseWithMetrics) WeeklyInsight(
	ctx context.Context,
	userID int64,
) (string, error) {
	start := time.Now()
	advice, err := e.next.WeeklyInsight(ctx, userID)

	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "ai", "weekly_insight", status)
	e.metrics.RecordDuration(ctx, "ai", "weekly_insight", time.Since(start), status)

	return advice, err
}

// FinanceGoalPlan records metrics for the finance goal planner.
func (e *estimationUseCaseWithMetrics) FinanceGoalPlan(
	ctx context.Context,
	userID int64,
) (string, error) {
	start := time.Now()
	plan, err := e.next.FinanceGoalPlan(ctx, userID)

	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "ai", "finance_goal_plan", status)
	e.metrics.RecordDuration(ctx, "ai", "finance_goal_plan", time.Since(start), status)

	return plan, err
}
