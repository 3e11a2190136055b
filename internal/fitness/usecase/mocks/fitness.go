// Package mocks provides mock implementations for fitness interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	fitnessDomain "github.com/allisson/lifetrack/internal/fitness/domain"
)

// MockFitnessLogRepository is a mock implementation of FitnessLogRepository.
type MockFitnessLogRepository struct {
	mock.Mock
}

func (m *MockFitnessLogRepository) Create(ctx context.Context, log *fitnessDomain.FitnessLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockFitnessLogRepository) ListByWindow(
	ctx context.Context,
	userID int64,
	windowDays int,
) ([]fitnessDomain.FitnessLog, error) {
	args := m.Called(ctx, userID, windowDays)
	return args.Get(0).([]fitnessDomain.FitnessLog), args.Error(1)
}

// MockFitnessUseCase is a mock implementation of FitnessUseCase.
type MockFitnessUseCase struct {
	mock.Mock
}

func (m *MockFitnessUseCase) Log(
	ctx context.Context,
	userID int64,
	input fitnessDomain.CreateFitnessLogInput,
) (fitnessDomain.FitnessLog, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(fitnessDomain.FitnessLog), args.Error(1)
}

func (m *MockFitnessUseCase) WeeklySummary(
	ctx context.Context,
	userID int64,
) (fitnessDomain.WeeklySummary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(fitnessDomain.WeeklySummary), args.Error(1)
}
