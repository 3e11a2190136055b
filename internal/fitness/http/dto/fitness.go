// Package dto provides data transfer objects for the fitness endpoints.
package dto

import (
	"time"

	fitnessDomain "github.com/allisson/lifetrack/internal/fitness/domain"
)

// CreateFitnessLogRequest carries a new workout.
type CreateFitnessLogRequest struct {
	Activity        string  `json:"activity"`
	ActivityType    *string `json:"activity_type,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
	Calories        *int    `json:"calories,omitempty"`
	Steps           *int    `json:"steps,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// ToInput converts the request to the use case input.
func (r CreateFitnessLogRequest) ToInput() fitnessDomain.CreateFitnessLogInput {
	input := fitnessDomain.CreateFitnessLogInput{
		Activity:        r.Activity,
		DurationMinutes: r.DurationMinutes,
		Calories:        r.Calories,
		Steps:           r.Steps,
		Notes:           r.Notes,
	}
	if r.ActivityType != nil {
		activityType := fitnessDomain.ActivityType(*r.ActivityType)
		input.ActivityType = &activityType
	}
	return input
}

// FitnessLogResponse is one workout row.
type FitnessLogResponse struct {
	ID              int64     `json:"id"`
	Activity        string    `json:"activity"`
	ActivityType    string    `json:"activity_type"`
	DurationMinutes int       `json:"duration_minutes"`
	Calories        *int      `json:"calories,omitempty"`
	Steps           *int      `json:"steps,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	LoggedAt        time.Time `json:"logged_at"`
}

// MapFitnessLog converts a domain row to its API shape.
func MapFitnessLog(log fitnessDomain.FitnessLog) FitnessLogResponse {
	return FitnessLogResponse{
		ID:              log.ID,
		Activity:        log.Activity,
		ActivityType:    string(log.ActivityType),
		DurationMinutes: log.DurationMinutes,
		Calories:        log.Calories,
		Steps:           log.Steps,
		Notes:           log.Notes,
		LoggedAt:        log.LoggedAt,
	}
}

// WeeklySummaryResponse aggregates a week of workouts.
type WeeklySummaryResponse struct {
	Logs          []FitnessLogResponse `json:"logs"`
	TotalCalories int                  `json:"total_calories"`
	TotalDuration int                  `json:"total_duration"`
	TotalSteps    int                  `json:"total_steps"`
}

// MapWeeklySummary converts the domain summary to its API shape.
func MapWeeklySummary(summary fitnessDomain.WeeklySummary) WeeklySummaryResponse {
	logs := make([]FitnessLogResponse, 0, len(summary.Logs))
	for _, log := range summary.Logs {
		logs = append(logs, MapFitnessLog(log))
	}
	return WeeklySummaryResponse{
		Logs:          logs,
		TotalCalories: summary.TotalCalories,
		TotalDuration: summary.TotalDuration,
		TotalSteps:    summary.TotalSteps,
	}
}
