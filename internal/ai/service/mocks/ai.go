// Package mocks provides mock implementations for the generation service
// interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	aiService "github.com/allisson/lifetrack/internal/ai/service"
)

// MockModelClient is a mock implementation of ModelClient.
type MockModelClient struct {
	mock.Mock
}

func (m *MockModelClient) Generate(
	ctx context.Context,
	prompt string,
	opts aiService.GenerateOptions,
) (string, error) {
	args := m.Called(ctx, prompt, opts)
	return args.String(0), args.Error(1)
}

// MockExtractor is a mock implementation of Extractor.
type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) Extract(raw string, requiredKeys []string) (map[string]any, error) {
	args := m.Called(raw, requiredKeys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}
