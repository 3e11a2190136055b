// Package service provides the low-level generation service client and the
// best-effort JSON extraction used to turn freeform model text into typed data.
package service

import (
	"context"
	"time"
)

// GenerateOptions controls a single generation call.
type GenerateOptions struct {
	// Model is the name of the model to run (e.g., "llama3", "llava").
	Model string
	// Images holds raw image bytes for multimodal prompts; nil for text-only.
	Images [][]byte
	// Timeout bounds the whole call. Cancellation and timeout are not
	// distinguished; both surface as ErrModelUnavailable.
	Timeout time.Duration
}

// ModelClient defines the low-level call to the generation service.
// Implementations issue exactly one outbound call per invocation; retry
// policy belongs to callers, not to this layer.
type ModelClient interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// Extractor locates a JSON object inside freeform model text and validates it
// against a set of required keys. Isolated behind an interface so the
// heuristic scan can be swapped for model-native structured output without
// touching callers.
type Extractor interface {
	Extract(raw string, requiredKeys []string) (map[string]any, error)
}
