// Package dto contains the goals HTTP request and response payloads.
package dto

import (
	"time"

	goalsDomain "github.com/allisson/lifetrack/internal/goals/domain"
)

// CreateGoalRequest is the request body for creating a goal.
type CreateGoalRequest struct {
	Type   string  `json:"type"`
	Title  string  `json:"title"`
	Target *string `json:"target"`
}

// ToInput converts the request into the domain input.
func (r CreateGoalRequest) ToInput() goalsDomain.CreateGoalInput {
	return goalsDomain.CreateGoalInput{
		Type:   goalsDomain.GoalType(r.Type),
		Title:  r.Title,
		Target: r.Target,
	}
}

// GoalResponse is a single goal row.
type GoalResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Target    *string   `json:"target"`
	CreatedAt time.Time `json:"created_at"`
}

// MapGoal converts a domain goal into the response payload.
func MapGoal(goal goalsDomain.Goal) GoalResponse {
	return GoalResponse{
		ID:        goal.ID,
		Type:      string(goal.Type),
		Title:     goal.Title,
		Target:    goal.Target,
		CreatedAt: goal.CreatedAt,
	}
}

// MapGoals converts a list of domain goals into response payloads.
func MapGoals(goals []goalsDomain.Goal) []GoalResponse {
	out := make([]GoalResponse, 0, len(goals))
	for _, goal := range goals {
		out = append(out, MapGoal(goal))
	}
	return out
}
