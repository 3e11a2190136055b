package domain

import (
	"math"
	"strings"
)

// DefaultWeightKg is the assumed body weight when the caller supplies none.
const DefaultWeightKg = 70.0

// DefaultMET is the coefficient used for activities not in the table.
const DefaultMET = 5.0

// metTable maps the normalized first word of an activity name to its MET
// (Metabolic Equivalent of Task) coefficient, used for the deterministic
// calorie-burn fallback when the generation service fails.
var metTable = map[string]float64{
	"running":    9.8,
	"jogging":    7.5,
	"walking":    3.8,
	"cycling":    6.8,
	"swimming":   6.0,
	"yoga":       3.0,
	"hiit":       10.0,
	"gym":        5.0,
	"dancing":    5.5,
	"climbing":   8.0,
	"basketball": 6.5,
	"football":   7.0,
}

// MET returns the coefficient for an activity, looked up by its lowercased
// first word. Unknown activities get DefaultMET.
func MET(activity string) float64 {
	first, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(activity)), " ")
	if met, ok := metTable[first]; ok {
		return met
	}
	return DefaultMET
}

// FallbackActivityCalories computes the deterministic calorie-burn estimate:
// round(MET * weight * minutes / 60). The result is clamped to a minimum of 1;
// an activity cannot burn zero calories in this domain.
func FallbackActivityCalories(activity string, durationMinutes int, weightKg float64) int {
	calories := int(math.Round(MET(activity) * weightKg * float64(durationMinutes) / 60.0))
	return max(1, calories)
}
