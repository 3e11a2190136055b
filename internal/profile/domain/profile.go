// Package domain defines the user profile model.
package domain

import (
	"time"

	validation "github.com/jellydator/validation"
)

// Profile holds the personal attributes used to personalize estimation
// prompts. All attributes are optional.
type Profile struct {
	UserID          int64
	Age             *int
	HeightCm        *float64
	WeightKg        *float64
	Profession      *string
	GoalDescription *string
	UpdatedAt       time.Time
}

// UpdateProfileInput carries a partial profile update. Nil fields keep their
// stored values.
type UpdateProfileInput struct {
	Age             *int
	HeightCm        *float64
	WeightKg        *float64
	Profession      *string
	GoalDescription *string
}

// Validate checks the input before persistence.
func (i UpdateProfileInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Age, validation.Min(1), validation.Max(150)),
		validation.Field(&i.HeightCm, validation.Min(30.0), validation.Max(300.0)),
		validation.Field(&i.WeightKg, validation.Min(1.0), validation.Max(500.0)),
		validation.Field(&i.Profession, validation.Length(0, 255)),
	)
}
