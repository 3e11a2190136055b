// Package mocks provides mock implementations for the estimation interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	aiDomain "github.com/allisson/lifetrack/internal/ai/domain"
)

// MockEstimationUseCase is a mock implementation of EstimationUseCase.
type MockEstimationUseCase struct {
	mock.Mock
}

func (m *MockEstimationUseCase) EstimateActivityCalories(
	ctx context.Context,
	userID int64,
	input aiDomain.ActivityEstimateInput,
) (aiDomain.EstimationResult, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(aiDomain.EstimationResult), args.Error(1)
}

func (m *MockEstimationUseCase) EstimateFoodKcal(
	ctx context.Context,
	input aiDomain.FoodEstimateInput,
) (aiDomain.EstimationResult, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(aiDomain.EstimationResult), args.Error(1)
}

func (m *MockEstimationUseCase) AnalyzeFoodImage(
	ctx context.Context,
	image []byte,
) (aiDomain.ImageAnalysisResult, error) {
	args := m.Called(ctx, image)
	return args.Get(0).(aiDomain.ImageAnalysisResult), args.Error(1)
}

func (m *MockEstimationUseCase) WeeklyInsight(ctx context.Context, userID int64) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockEstimationUseCase) FinanceGoalPlan(ctx context.Context, userID int64) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}
