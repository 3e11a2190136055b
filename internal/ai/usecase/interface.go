// Package usecase implements the estimation engine and the advisory
// operations on top of the generation service client.
package usecase

import (
	"context"

	aiDomain "github.com/allisson/lifetrack/internal/ai/domain"
	financeDomain "github.com/allisson/lifetrack/internal/finance/domain"
	fitnessDomain "github.com/allisson/lifetrack/internal/fitness/domain"
	goalsDomain "github.com/allisson/lifetrack/internal/goals/domain"
	profileDomain "github.com/allisson/lifetrack/internal/profile/domain"
)

// FitnessReader supplies the weekly workout aggregate for advisory prompts.
type FitnessReader interface {
	WeeklySummary(ctx context.Context, userID int64) (fitnessDomain.WeeklySummary, error)
}

// LedgerReader supplies decrypted ledger aggregates for advisory prompts.
type LedgerReader interface {
	Summarize(ctx context.Context, userID int64, windowDays int) (financeDomain.LedgerSummary, error)
}

// TopicsReader supplies the week's learning topics for advisory prompts.
type TopicsReader interface {
	WeeklyTopics(ctx context.Context, userID int64) ([]string, error)
}

// GoalsReader supplies the user's goals for the finance planner.
type GoalsReader interface {
	List(ctx context.Context, userID int64, goalType *goalsDomain.GoalType) ([]goalsDomain.Goal, error)
}

// ProfileReader supplies the user's profile to personalize prompts.
type ProfileReader interface {
	Get(ctx context.Context, userID int64) (profileDomain.Profile, error)
}

// EstimationUseCase defines the estimation and advisory operations.
type EstimationUseCase interface {
	// EstimateActivityCalories estimates calories burned for a workout.
	// Generation or parse failures are absorbed by a deterministic
	// MET-based fallback; this operation never fails once the input
	// validates.
	EstimateActivityCalories(ctx context.Context, userID int64, input aiDomain.ActivityEstimateInput) (aiDomain.EstimationResult, error)

	// EstimateFoodKcal estimates calories for a food serving. There is no
	// deterministic fallback; failures propagate to the caller.
	EstimateFoodKcal(ctx context.Context, input aiDomain.FoodEstimateInput) (aiDomain.EstimationResult, error)

	// AnalyzeFoodImage identifies foods and calories in a meal photo using
	// the vision model. Failures surface as ErrImageAnalysis.
	AnalyzeFoodImage(ctx context.Context, image []byte) (aiDomain.ImageAnalysisResult, error)

	// WeeklyInsight joins the week's fitness, finance and learning data
	// into one coaching prompt and returns the model's advice verbatim.
	WeeklyInsight(ctx context.Context, userID int64) (string, error)

	// FinanceGoalPlan builds a savings plan from the user's finance goals
	// and the last 30 days of decrypted ledger totals. Generation failure
	// is reported inside the plan text rather than as an error.
	FinanceGoalPlan(ctx context.Context, userID int64) (string, error)
}
