// Package domain defines the fitness log model and activity-type detection.
package domain

import (
	"strings"
	"time"

	validation "github.com/jellydator/validation"
)

// ActivityType classifies a workout for filtering and display.
type ActivityType string

const (
	ActivityTypeCardio ActivityType = "cardio"
	ActivityTypeGym    ActivityType = "gym"
	ActivityTypeOther  ActivityType = "other"
)

var cardioKeywords = []string{
	"walking", "running", "jogging", "hiking", "trekking", "cycling",
	"walk", "run", "jog", "hike",
}

var gymKeywords = []string{
	"gym", "weight", "bench", "squat", "deadlift", "lift", "press",
	"curl", "row", "dumbbell", "barbell", "workout",
}

// DetectActivityType classifies a free-text activity name by keyword.
func DetectActivityType(activity string) ActivityType {
	lower := strings.ToLower(activity)
	for _, kw := range cardioKeywords {
		if strings.Contains(lower, kw) {
			return ActivityTypeCardio
		}
	}
	for _, kw := range gymKeywords {
		if strings.Contains(lower, kw) {
			return ActivityTypeGym
		}
	}
	return ActivityTypeOther
}

// FitnessLog is a workout row.
type FitnessLog struct {
	ID              int64
	UserID          int64
	Activity        string
	ActivityType    ActivityType
	DurationMinutes int
	Calories        *int
	Steps           *int
	Notes           *string
	LoggedAt        time.Time
}

// WeeklySummary aggregates a week of workouts.
type WeeklySummary struct {
	Logs          []FitnessLog
	TotalCalories int
	TotalDuration int
	TotalSteps    int
}

// CreateFitnessLogInput carries a new workout row.
type CreateFitnessLogInput struct {
	Activity        string
	ActivityType    *ActivityType
	DurationMinutes int
	Calories        *int
	Steps           *int
	Notes           *string
}

// Validate checks the input before persistence.
func (i CreateFitnessLogInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Activity, validation.Required, validation.Length(1, 255)),
		validation.Field(&i.DurationMinutes, validation.Required, validation.Min(1)),
	)
}
