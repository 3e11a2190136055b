// Package dto contains the profile HTTP request and response payloads.
package dto

import (
	"time"

	profileDomain "github.com/allisson/lifetrack/internal/profile/domain"
)

// UpdateProfileRequest is the request body for a partial profile update.
// Omitted fields keep their stored values.
type UpdateProfileRequest struct {
	Age             *int     `json:"age"`
	HeightCm        *float64 `json:"height_cm"`
	WeightKg        *float64 `json:"weight_kg"`
	Profession      *string  `json:"profession"`
	GoalDescription *string  `json:"goal_description"`
}

// ToInput converts the request into the domain input.
func (r UpdateProfileRequest) ToInput() profileDomain.UpdateProfileInput {
	return profileDomain.UpdateProfileInput{
		Age:             r.Age,
		HeightCm:        r.HeightCm,
		WeightKg:        r.WeightKg,
		Profession:      r.Profession,
		GoalDescription: r.GoalDescription,
	}
}

// ProfileResponse is the user profile payload.
type ProfileResponse struct {
	UserID          int64     `json:"user_id"`
	Age             *int      `json:"age"`
	HeightCm        *float64  `json:"height_cm"`
	WeightKg        *float64  `json:"weight_kg"`
	Profession      *string   `json:"profession"`
	GoalDescription *string   `json:"goal_description"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MapProfile converts a domain profile into the response payload.
func MapProfile(profile profileDomain.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:          profile.UserID,
		Age:             profile.Age,
		HeightCm:        profile.HeightCm,
		WeightKg:        profile.WeightKg,
		Profession:      profile.Profession,
		GoalDescription: profile.GoalDescription,
		UpdatedAt:       profile.UpdatedAt,
	}
}
