// Package dto provides data transfer objects for the food endpoints.
package dto

import (
	"time"

	foodDomain "github.com/allisson/lifetrack/internal/food/domain"
)

// CreateFoodLogRequest carries a new food intake row.
type CreateFoodLogRequest struct {
	FoodName      string   `json:"food_name"`
	Kcal          int      `json:"kcal"`
	ServingUnit   *string  `json:"serving_unit,omitempty"`
	ServingSize   *float64 `json:"serving_size,omitempty"`
	MealType      *string  `json:"meal_type,omitempty"`
	ImageAnalyzed bool     `json:"image_analyzed,omitempty"`
}

// ToInput converts the request to the use case input.
func (r CreateFoodLogRequest) ToInput() foodDomain.CreateFoodLogInput {
	input := foodDomain.CreateFoodLogInput{
		FoodName:      r.FoodName,
		Kcal:          r.Kcal,
		ServingUnit:   r.ServingUnit,
		ServingSize:   r.ServingSize,
		ImageAnalyzed: r.ImageAnalyzed,
	}
	if r.MealType != nil {
		mealType := foodDomain.MealType(*r.MealType)
		input.MealType = &mealType
	}
	return input
}

// FoodLogResponse is one food intake row.
type FoodLogResponse struct {
	ID            int64     `json:"id"`
	FoodName      string    `json:"food_name"`
	Kcal          int       `json:"kcal"`
	ServingUnit   string    `json:"serving_unit"`
	ServingSize   float64   `json:"serving_size"`
	MealType      string    `json:"meal_type"`
	ImageAnalyzed bool      `json:"image_analyzed"`
	LoggedAt      time.Time `json:"logged_at"`
}

// MapFoodLog converts a domain row to its API shape.
func MapFoodLog(log foodDomain.FoodLog) FoodLogResponse {
	return FoodLogResponse{
		ID:            log.ID,
		FoodName:      log.FoodName,
		Kcal:          log.Kcal,
		ServingUnit:   log.ServingUnit,
		ServingSize:   log.ServingSize,
		MealType:      string(log.MealType),
		ImageAnalyzed: log.ImageAnalyzed,
		LoggedAt:      log.LoggedAt,
	}
}

// DailySummaryResponse is today's intake with the kcal target.
type DailySummaryResponse struct {
	Logs            []FoodLogResponse `json:"logs"`
	TotalKcal       int               `json:"total_kcal"`
	DailyKcalTarget int               `json:"daily_kcal_target"`
}

// MapDailySummary converts the domain summary to its API shape.
func MapDailySummary(summary foodDomain.DailySummary) DailySummaryResponse {
	logs := make([]FoodLogResponse, 0, len(summary.Logs))
	for _, log := range summary.Logs {
		logs = append(logs, MapFoodLog(log))
	}
	return DailySummaryResponse{
		Logs:            logs,
		TotalKcal:       summary.TotalKcal,
		DailyKcalTarget: summary.DailyKcalTarget,
	}
}

// WeeklyDayResponse is one day's aggregate.
type WeeklyDayResponse struct {
	Date      string `json:"date"`
	TotalKcal int    `json:"total_kcal"`
	Entries   int    `json:"entries"`
}

// MapWeeklyDays converts per-day aggregates to their API shape.
func MapWeeklyDays(days []foodDomain.WeeklyDay) []WeeklyDayResponse {
	responses := make([]WeeklyDayResponse, 0, len(days))
	for _, day := range days {
		responses = append(responses, WeeklyDayResponse{
			Date:      day.Date,
			TotalKcal: day.TotalKcal,
			Entries:   day.Entries,
		})
	}
	return responses
}

// SetFoodTargetRequest carries a daily kcal target update.
type SetFoodTargetRequest struct {
	DailyKcalTarget int `json:"daily_kcal_target"`
}

// FoodTargetResponse carries the effective daily kcal target.
type FoodTargetResponse struct {
	DailyKcalTarget int `json:"daily_kcal_target"`
}
