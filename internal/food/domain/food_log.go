// Package domain defines the food log and daily target models.
package domain

import (
	"time"

	validation "github.com/jellydator/validation"
)

// DefaultDailyKcalTarget applies when the user never set a target.
const DefaultDailyKcalTarget = 2000

// MealType classifies where in the day a food log belongs.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// FoodLog is a single food intake row.
type FoodLog struct {
	ID            int64
	UserID        int64
	FoodName      string
	Kcal          int
	ServingUnit   string
	ServingSize   float64
	MealType      MealType
	ImageAnalyzed bool
	LoggedAt      time.Time
}

// DailySummary is today's food logs plus their kcal total and the target.
type DailySummary struct {
	Logs            []FoodLog
	TotalKcal       int
	DailyKcalTarget int
}

// WeeklyDay is one day's aggregate within a weekly report.
type WeeklyDay struct {
	Date      string
	TotalKcal int
	Entries   int
}

// CreateFoodLogInput carries a new food intake row. Omitted serving fields
// default to one quantity, omitted meal type to snack.
type CreateFoodLogInput struct {
	FoodName      string
	Kcal          int
	ServingUnit   *string
	ServingSize   *float64
	MealType      *MealType
	ImageAnalyzed bool
}

// Validate checks the input before persistence.
func (i CreateFoodLogInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.FoodName, validation.Required, validation.Length(1, 255)),
		validation.Field(&i.Kcal, validation.Min(0)),
		validation.Field(&i.MealType, validation.In(
			MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack,
		)),
	)
}

// SetFoodTargetInput carries a daily kcal target update.
type SetFoodTargetInput struct {
	DailyKcalTarget int
}

// Validate checks the input before persistence.
func (i SetFoodTargetInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.DailyKcalTarget, validation.Required, validation.Min(1)),
	)
}
