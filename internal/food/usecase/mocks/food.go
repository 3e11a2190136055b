// Package mocks provides mock implementations for food interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	foodDomain "github.com/allisson/lifetrack/internal/food/domain"
)

// MockFoodLogRepository is a mock implementation of FoodLogRepository.
type MockFoodLogRepository struct {
	mock.Mock
}

func (m *MockFoodLogRepository) Create(ctx context.Context, log *foodDomain.FoodLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockFoodLogRepository) ListToday(
	ctx context.Context,
	userID int64,
) ([]foodDomain.FoodLog, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]foodDomain.FoodLog), args.Error(1)
}

func (m *MockFoodLogRepository) WeeklyByDay(
	ctx context.Context,
	userID int64,
) ([]foodDomain.WeeklyDay, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]foodDomain.WeeklyDay), args.Error(1)
}

func (m *MockFoodLogRepository) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// MockFoodTargetRepository is a mock implementation of FoodTargetRepository.
type MockFoodTargetRepository struct {
	mock.Mock
}

func (m *MockFoodTargetRepository) Upsert(ctx context.Context, userID int64, dailyKcalTarget int) error {
	args := m.Called(ctx, userID, dailyKcalTarget)
	return args.Error(0)
}

func (m *MockFoodTargetRepository) Get(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// MockFoodUseCase is a mock implementation of FoodUseCase.
type MockFoodUseCase struct {
	mock.Mock
}

func (m *MockFoodUseCase) Log(
	ctx context.Context,
	userID int64,
	input foodDomain.CreateFoodLogInput,
) (foodDomain.FoodLog, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(foodDomain.FoodLog), args.Error(1)
}

func (m *MockFoodUseCase) TodaySummary(
	ctx context.Context,
	userID int64,
) (foodDomain.DailySummary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(foodDomain.DailySummary), args.Error(1)
}

func (m *MockFoodUseCase) WeeklyByDay(
	ctx context.Context,
	userID int64,
) ([]foodDomain.WeeklyDay, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]foodDomain.WeeklyDay), args.Error(1)
}

func (m *MockFoodUseCase) DeleteLog(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockFoodUseCase) SetTarget(
	ctx context.Context,
	userID int64,
	input foodDomain.SetFoodTargetInput,
) error {
	args := m.Called(ctx, userID, input)
	return args.Error(0)
}

func (m *MockFoodUseCase) GetTarget(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}
