package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectActivityType(t *testing.T) {
	tests := []struct {
		activity string
		expected ActivityType
	}{
		{"morning run", ActivityTypeCardio},
		{"Cycling to work", ActivityTypeCardio},
		{"hiking the ridge", ActivityTypeCardio},
		{"bench press session", ActivityTypeGym},
		{"Deadlift PR attempt", ActivityTypeGym},
		{"leg workout", ActivityTypeGym},
		{"meditation", ActivityTypeOther},
		{"", ActivityTypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.activity, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectActivityType(tt.activity))
		})
	}
}

func TestCreateFitnessLogInput_Validate(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		input := CreateFitnessLogInput{Activity: "running", DurationMinutes: 30}
		assert.NoError(t, input.Validate())
	})

	t.Run("missing activity", func(t *testing.T) {
		input := CreateFitnessLogInput{DurationMinutes: 30}
		assert.Error(t, input.Validate())
	})

	t.Run("zero duration", func(t *testing.T) {
		input := CreateFitnessLogInput{Activity: "running"}
		assert.Error(t, input.Validate())
	})
}
