// Package domain defines the goal model.
package domain

import (
	"time"

	validation "github.com/jellydator/validation"
)

// GoalType groups goals by the tracking area they belong to.
type GoalType string

const (
	GoalTypeFitness  GoalType = "fitness"
	GoalTypeFinance  GoalType = "finance"
	GoalTypeLearning GoalType = "learning"
	GoalTypeFood     GoalType = "food"
)

// Goal is a user goal row. Target holds an optional free-form JSON document
// describing the numeric target (amount, deadline and so on).
type Goal struct {
	ID        int64
	UserID    int64
	Type      GoalType
	Title     string
	Target    *string
	CreatedAt time.Time
}

// CreateGoalInput carries a new goal row.
type CreateGoalInput struct {
	Type   GoalType
	Title  string
	Target *string
}

// Validate checks the input before persistence.
func (i CreateGoalInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Type, validation.Required, validation.In(
			GoalTypeFitness, GoalTypeFinance, GoalTypeLearning, GoalTypeFood,
		)),
		validation.Field(&i.Title, validation.Required, validation.Length(1, 255)),
	)
}
