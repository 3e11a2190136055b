package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	aiDomain "github.com/allisson/lifetrack/internal/ai/domain"
	aiService "github.com/allisson/lifetrack/internal/ai/service"
	cryptoService "github.com/allisson/lifetrack/internal/crypto/service"
	apperrors "github.com/allisson/lifetrack/internal/errors"
	financeDomain "github.com/allisson/lifetrack/internal/finance/domain"
	fitnessDomain "github.com/allisson/lifetrack/internal/fitness/domain"
	goalsDomain "github.com/allisson/lifetrack/internal/goals/domain"
	"github.com/allisson/lifetrack/internal/validation"
)

const (
	weeklyWindowDays  = 7
	plannerWindowDays = 30
	plannerGoalsLimit = 10
)

// ModelConfig selects the models and per-call timeouts.
type ModelConfig struct {
	Model         string
	VisionModel   string
	Timeout       time.Duration
	VisionTimeout time.Duration
}

type estimationUseCase struct {
	client    aiService.ModelClient
	extractor aiService.Extractor
	fitness   FitnessReader
	ledger    LedgerReader
	topics    TopicsReader
	goals     GoalsReader
	profile   ProfileReader
	cfg       ModelConfig
	logger    *slog.Logger
}

// NewEstimationUseCase creates the estimation engine.
func NewEstimationUseCase(
	client aiService.ModelClient,
	extractor aiService.Extractor,
	fitness FitnessReader,
	ledger LedgerReader,
	topics TopicsReader,
	goals GoalsReader,
	profile ProfileReader,
	cfg ModelConfig,
	logger *slog.Logger,
) EstimationUseCase {
	return &estimationUseCase{
		client:    client,
		extractor: extractor,
		fitness:   fitness,
		ledger:    ledger,
		topics:    topics,
		goals:     goals,
		profile:   profile,
		cfg:       cfg,
		logger:    logger,
	}
}

// EstimateActivityCalories asks the model for a calorie-burn estimate and
// falls back to the deterministic MET formula when the model is unreachable
// or its reply cannot be parsed.
func (e *estimationUseCase) EstimateActivityCalories(
	ctx context.Context,
	userID int64,
	input aiDomain.ActivityEstimateInput,
) (aiDomain.EstimationResult, error) {
	if err := input.Validate(); err != nil {
		return aiDomain.EstimationResult{}, validation.WrapValidationError(err)
	}

	weight, explicit := e.resolveWeight(ctx, userID, input.WeightKg)

	weightNote := "Assume average adult weight of 70 kg."
	if explicit {
		weightNote = fmt.Sprintf("The person weighs approximately %s kg.", formatFloat(weight))
	}

	prompt := fmt.Sprintf(`You are a fitness and nutrition expert. Estimate the calories burned for the following workout.

Activity: %s
Duration: %d minutes
%s

Respond ONLY with a valid JSON object in this exact format (no markdown, no extra text):
{"calories": <integer>, "explanation": "<one sentence explanation>"}

Consider MET values, intensity, and standard calorie burn rates. Be realistic.`,
		input.Activity, input.DurationMinutes, weightNote)

	result, err := e.generateEstimate(ctx, prompt, "calories")
	if err != nil {
		e.logger.Warn(
			"activity estimate falling back to MET formula",
			"activity", input.Activity,
			"error", err,
		)
		return aiDomain.EstimationResult{
			Value:       aiDomain.FallbackActivityCalories(input.Activity, input.DurationMinutes, weight),
			Explanation: fmt.Sprintf("Estimated using MET value for %s.", input.Activity),
			Fallback:    true,
		}, nil
	}

	result.Value = max(1, result.Value)
	return result, nil
}

// EstimateFoodKcal asks the model for a food kcal estimate. Failures
// propagate; a wrong guess about food energy is worse than an error.
func (e *estimationUseCase) EstimateFoodKcal(
	ctx context.Context,
	input aiDomain.FoodEstimateInput,
) (aiDomain.EstimationResult, error) {
	if err := input.Validate(); err != nil {
		return aiDomain.EstimationResult{}, validation.WrapValidationError(err)
	}

	prompt := fmt.Sprintf(`You are a nutrition expert. Estimate the calories (kcal) for the following food item.
Food: %s
Quantity: %s
Unit: %s

Respond ONLY with a valid JSON object in this exact format (no markdown, no extra text):
{"kcal": <integer>, "explanation": "<one sentence explanation>"}
Be as accurate as possible for the given portion.`,
		input.FoodName, formatFloat(input.ServingSize), input.ServingUnit)

	result, err := e.generateEstimate(ctx, prompt, "kcal")
	if err != nil {
		return aiDomain.EstimationResult{}, err
	}

	result.Value = max(0, result.Value)
	return result, nil
}

// generateEstimate runs one text generation and coerces the reply into the
// {<valueKey>, explanation} shape shared by the scalar estimators.
func (e *estimationUseCase) generateEstimate(
	ctx context.Context,
	prompt string,
	valueKey string,
) (aiDomain.EstimationResult, error) {
	raw, err := e.client.Generate(ctx, prompt, aiService.GenerateOptions{
		Model:   e.cfg.Model,
		Timeout: e.cfg.Timeout,
	})
	if err != nil {
		return aiDomain.EstimationResult{}, err
	}

	obj, err := e.extractor.Extract(raw, []string{valueKey, "explanation"})
	if err != nil {
		return aiDomain.EstimationResult{}, err
	}

	value, err := aiService.IntField(obj, valueKey)
	if err != nil {
		return aiDomain.EstimationResult{}, err
	}
	explanation, err := aiService.StringField(obj, "explanation")
	if err != nil {
		return aiDomain.EstimationResult{}, err
	}

	return aiDomain.EstimationResult{Value: value, Explanation: explanation}, nil
}

// AnalyzeFoodImage runs the vision model over a meal photo and extracts the
// identified foods with their calorie estimates.
func (e *estimationUseCase) AnalyzeFoodImage(
	ctx context.Context,
	image []byte,
) (aiDomain.ImageAnalysisResult, error) {
	if len(image) == 0 {
		return aiDomain.ImageAnalysisResult{}, apperrors.Wrap(apperrors.ErrInvalidInput, "empty image")
	}

	prompt := `You are a nutrition expert and dietitian. Carefully analyze this food image.

Identify every food item visible. For each item estimate:
- Food name
- Estimated portion size (e.g. "1 cup", "100g", "1 medium")
- Estimated calories (kcal) for that portion

Respond ONLY with a valid JSON object, no markdown, no extra text:
{
  "foods": [
    { "name": "food name", "portion": "serving size", "kcal": 123 }
  ],
  "totalKcal": 456,
  "details": "one sentence summary of the meal"
}`

	raw, err := e.client.Generate(ctx, prompt, aiService.GenerateOptions{
		Model:   e.cfg.VisionModel,
		Images:  [][]byte{image},
		Timeout: e.cfg.VisionTimeout,
	})
	if err != nil {
		return aiDomain.ImageAnalysisResult{}, apperrors.Wrap(aiDomain.ErrImageAnalysis, err.Error())
	}

	obj, err := e.extractor.Extract(raw, []string{"foods", "totalKcal", "details"})
	if err != nil {
		return aiDomain.ImageAnalysisResult{}, apperrors.Wrap(aiDomain.ErrImageAnalysis, err.Error())
	}

	result := aiDomain.ImageAnalysisResult{Foods: []aiDomain.FoodItem{}}
	if foods, ok := obj["foods"]; ok && foods != nil {
		// Coerce the loosely typed food list through JSON; malformed items
		// drop the list rather than failing the whole analysis.
		if encoded, err := json.Marshal(foods); err == nil {
			_ = json.Unmarshal(encoded, &result.Foods)
		}
	}
	if total, err := aiService.IntField(obj, "totalKcal"); err == nil {
		result.TotalKcal = max(0, total)
	}
	if details, err := aiService.StringField(obj, "details"); err == nil {
		result.Details = details
	}

	return result, nil
}

// WeeklyInsight fans out the three weekly reads concurrently, joins them into
// one coaching prompt and returns the model's advice verbatim.
func (e *estimationUseCase) WeeklyInsight(ctx context.Context, userID int64) (string, error) {
	var (
		fitnessSummary string
		financeSummary string
		topicsSummary  string
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		summary, err := e.fitness.WeeklySummary(groupCtx, userID)
		if err != nil {
			return err
		}
		fitnessSummary = formatFitnessSummary(summary.Logs)
		return nil
	})
	group.Go(func() error {
		summary, err := e.ledger.Summarize(groupCtx, userID, weeklyWindowDays)
		if err != nil {
			return err
		}
		financeSummary = formatLedgerEntries(summary.Entries)
		return nil
	})
	group.Go(func() error {
		topics, err := e.topics.WeeklyTopics(groupCtx, userID)
		if err != nil {
			return err
		}
		topicsSummary = formatTopics(topics)
		return nil
	})
	if err := group.Wait(); err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`You are a personal wellness and productivity coach. Give a short (3-5 bullet points), warm, and motivating response.

User data (private - do NOT store or repeat back):
- Fitness this week: %s
- Finance this week: %s
- Learning this week: %s

Provide specific, actionable advice based on this data. Be concise and encouraging.`,
		fitnessSummary, financeSummary, topicsSummary)

	return e.client.Generate(ctx, prompt, aiService.GenerateOptions{
		Model:   e.cfg.Model,
		Timeout: e.cfg.Timeout,
	})
}

// FinanceGoalPlan builds a savings plan prompt from the user's finance goals
// and the last 30 days of decrypted totals. A generation failure becomes part
// of the plan text so the caller still renders something useful.
func (e *estimationUseCase) FinanceGoalPlan(ctx context.Context, userID int64) (string, error) {
	financeType := goalsDomain.GoalTypeFinance
	goals, err := e.goals.List(ctx, userID, &financeType)
	if err != nil {
		return "", err
	}
	if len(goals) > plannerGoalsLimit {
		goals = goals[:plannerGoalsLimit]
	}

	summary, err := e.ledger.Summarize(ctx, userID, plannerWindowDays)
	if err != nil {
		return "", err
	}

	goalsText := "- No specific finance goals set yet."
	if len(goals) > 0 {
		lines := make([]string, 0, len(goals))
		for _, goal := range goals {
			line := "- " + goal.Title
			if goal.Target != nil {
				line += fmt.Sprintf(" (target: %s)", *goal.Target)
			}
			lines = append(lines, line)
		}
		goalsText = strings.Join(lines, "\n")
	}

	income := summary.Totals[financeDomain.BucketIncome]
	expense := summary.Totals[financeDomain.BucketExpense]
	saved := summary.Totals[financeDomain.BucketSavings]

	prompt := fmt.Sprintf(`You are a personal finance expert and advisor. Analyze the user's financial data and provide a concrete, actionable savings plan.

FINANCE GOALS (last set goals):
%s

LAST 30 DAYS SUMMARY (all amounts in INR):
- Total Income logged: %.0f
- Total Expenses: %.0f
- Total Saved/Invested: %.0f
- Net (Income - Expenses - Savings): %.0f

Provide a response with:
1. Current financial health assessment (1-2 sentences)
2. Specific monthly savings targets to achieve each goal (with realistic timelines)
3. 3 actionable tips to improve savings based on the spending pattern
4. A suggested budget split (%% for needs, wants, savings)

Be specific with amounts. Keep it concise and encouraging.`,
		goalsText, income, expense, saved, summary.Net())

	plan, err := e.client.Generate(ctx, prompt, aiService.GenerateOptions{
		Model:   e.cfg.Model,
		Timeout: e.cfg.Timeout,
	})
	if err != nil {
		return "Plan unavailable: " + err.Error(), nil
	}
	return plan, nil
}

// resolveWeight picks the explicit input weight, then the profile weight,
// then the documented default. The second return reports whether the weight
// came from the user rather than the default.
func (e *estimationUseCase) resolveWeight(
	ctx context.Context,
	userID int64,
	inputWeight *float64,
) (float64, bool) {
	if inputWeight != nil {
		return *inputWeight, true
	}
	if e.profile != nil && userID > 0 {
		profile, err := e.profile.Get(ctx, userID)
		if err == nil && profile.WeightKg != nil {
			return *profile.WeightKg, true
		}
	}
	return aiDomain.DefaultWeightKg, false
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatFitnessSummary(logs []fitnessDomain.FitnessLog) string {
	if len(logs) == 0 {
		return "No fitness data this week."
	}
	parts := make([]string, 0, len(logs))
	for _, log := range logs {
		part := fmt.Sprintf("%s for %d min", log.Activity, log.DurationMinutes)
		if log.Calories != nil {
			part += fmt.Sprintf(", %d kcal", *log.Calories)
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "; ")
}

func formatLedgerEntries(entries []financeDomain.LedgerEntry) string {
	if len(entries) == 0 {
		return "No finance data this week."
	}
	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		amount := cryptoService.DecryptionSentinel
		if entry.Countable() {
			amount = formatFloat(entry.Amount)
		}
		part := fmt.Sprintf("%s: %s", entry.Category, amount)
		if entry.Note != nil {
			part += fmt.Sprintf(" (%s)", *entry.Note)
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "; ")
}

func formatTopics(topics []string) string {
	if len(topics) == 0 {
		return "No learning notes this week."
	}
	return strings.Join(topics, ", ")
}
