// Package dto provides data transfer objects for the estimation and advisory
// endpoints.
package dto

import (
	aiDomain "github.com/allisson/lifetrack/internal/ai/domain"
)

// EstimateCaloriesRequest asks for a calorie-burn estimate.
type EstimateCaloriesRequest struct {
	Activity        string   `json:"activity"`
	DurationMinutes int      `json:"duration_minutes"`
	WeightKg        *float64 `json:"weight_kg,omitempty"`
}

// ToInput converts the request to the use case input.
func (r EstimateCaloriesRequest) ToInput() aiDomain.ActivityEstimateInput {
	return aiDomain.ActivityEstimateInput{
		Activity:        r.Activity,
		DurationMinutes: r.DurationMinutes,
		WeightKg:        r.WeightKg,
	}
}

// EstimateCaloriesResponse carries the calorie-burn answer.
type EstimateCaloriesResponse struct {
	Calories    int    `json:"calories"`
	Explanation string `json:"explanation"`
}

// EstimateFoodKcalRequest asks for a food kcal estimate.
type EstimateFoodKcalRequest struct {
	FoodName    string  `json:"food_name"`
	ServingSize float64 `json:"serving_size"`
	ServingUnit string  `json:"serving_unit"`
}

// ToInput converts the request to the use case input.
func (r EstimateFoodKcalRequest) ToInput() aiDomain.FoodEstimateInput {
	return aiDomain.FoodEstimateInput{
		FoodName:    r.FoodName,
		ServingSize: r.ServingSize,
		ServingUnit: r.ServingUnit,
	}
}

// EstimateFoodKcalResponse carries the food kcal answer.
type EstimateFoodKcalResponse struct {
	Kcal        int    `json:"kcal"`
	Explanation string `json:"explanation"`
}

// AnalyzeFoodImageRequest carries a base64-encoded meal photo. A data-URL
// prefix is tolerated and stripped by the handler.
type AnalyzeFoodImageRequest struct {
	Image string `json:"image"`
}

// AnalyzeFoodImageResponse carries the vision analysis.
type AnalyzeFoodImageResponse struct {
	Foods     []aiDomain.FoodItem `json:"foods"`
	TotalKcal int                 `json:"total_kcal"`
	Details   string              `json:"details"`
}

// MapImageAnalysis converts the domain result to its API shape.
func MapImageAnalysis(result aiDomain.ImageAnalysisResult) AnalyzeFoodImageResponse {
	return AnalyzeFoodImageResponse{
		Foods:     result.Foods,
		TotalKcal: result.TotalKcal,
		Details:   result.Details,
	}
}

// InsightResponse carries the weekly coaching advice.
type InsightResponse struct {
	Advice string `json:"advice"`
}

// FinanceGoalPlanResponse carries the savings plan text.
type FinanceGoalPlanResponse struct {
	Plan string `json:"plan"`
}
