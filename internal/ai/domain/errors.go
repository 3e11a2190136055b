package domain

import (
	"github.com/allisson/lifetrack/internal/errors"
)

// Estimation and advisory error definitions.
//
// ErrModelUnavailable and ErrResponseParse select the per-operation failure
// policy in the use case layer: the activity-calorie path absorbs both and
// falls back to the deterministic formula, the food-kcal path propagates them,
// and the image/advisory paths surface them to the caller.
var (
	// ErrModelUnavailable indicates the generation service could not be
	// reached, timed out, or reported a remote error.
	ErrModelUnavailable = errors.Wrap(errors.ErrUnavailable, "generation service unavailable")

	// ErrResponseParse indicates the generation service replied but no JSON
	// object with the required keys could be located or coerced.
	ErrResponseParse = errors.Wrap(errors.ErrUnavailable, "unparseable model response")

	// ErrImageAnalysis indicates the food image analysis failed; there is no
	// deterministic fallback for vision tasks.
	ErrImageAnalysis = errors.Wrap(errors.ErrUnavailable, "food image analysis failed")
)
