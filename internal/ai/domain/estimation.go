// Package domain defines the estimation request/response model and the
// deterministic fallback data used when the generation service fails.
package domain

import (
	validation "github.com/jellydator/validation"
)

// ActivityEstimateInput requests a calorie-burn estimate for a workout.
type ActivityEstimateInput struct {
	// Activity is the free-text activity name (e.g., "running", "hot yoga").
	Activity string
	// DurationMinutes is the workout duration.
	DurationMinutes int
	// WeightKg optionally personalizes the estimate. When absent the prompt
	// and the fallback formula both assume DefaultWeightKg explicitly; the
	// weight is never silently treated as zero.
	WeightKg *float64
}

// Validate checks the input before any external call is attempted.
func (i ActivityEstimateInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Activity, validation.Required, validation.Length(1, 255)),
		validation.Field(&i.DurationMinutes, validation.Required, validation.Min(1)),
	)
}

// FoodEstimateInput requests a kcal estimate for a food serving.
type FoodEstimateInput struct {
	FoodName    string
	ServingSize float64
	ServingUnit string
}

// Validate checks the input before any external call is attempted.
func (i FoodEstimateInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.FoodName, validation.Required, validation.Length(1, 255)),
		validation.Field(&i.ServingSize, validation.Required, validation.Min(0.01)),
		validation.Field(&i.ServingUnit, validation.Required, validation.Length(1, 50)),
	)
}

// EstimationResult is the typed numeric answer for scalar estimates.
type EstimationResult struct {
	// Value is the estimated calories (burned or consumed), never negative.
	Value int
	// Explanation is a short human-readable justification, never empty.
	Explanation string
	// Fallback reports that the value came from the deterministic MET
	// formula instead of the model.
	Fallback bool
}

// FoodItem is a single food identified in an image.
type FoodItem struct {
	Name    string `json:"name"`
	Portion string `json:"portion"`
	Kcal    int    `json:"kcal"`
}

// ImageAnalysisResult is the structured outcome of food image analysis.
type ImageAnalysisResult struct {
	Foods     []FoodItem
	TotalKcal int
	Details   string
}
