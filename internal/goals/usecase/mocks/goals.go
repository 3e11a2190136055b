// Package mocks provides mock implementations for goals interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	goalsDomain "github.com/allisson/lifetrack/internal/goals/domain"
)

// MockGoalRepository is a mock implementation of GoalRepository.
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) Create(ctx context.Context, goal *goalsDomain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) List(
	ctx context.Context,
	userID int64,
	goalType *goalsDomain.GoalType,
) ([]goalsDomain.Goal, error) {
	args := m.Called(ctx, userID, goalType)
	return args.Get(0).([]goalsDomain.Goal), args.Error(1)
}

func (m *MockGoalRepository) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// MockGoalUseCase is a mock implementation of GoalUseCase.
type MockGoalUseCase struct {
	mock.Mock
}

func (m *MockGoalUseCase) Create(
	ctx context.Context,
	userID int64,
	input goalsDomain.CreateGoalInput,
) (goalsDomain.Goal, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(goalsDomain.Goal), args.Error(1)
}

func (m *MockGoalUseCase) List(
	ctx context.Context,
	userID int64,
	goalType *goalsDomain.GoalType,
) ([]goalsDomain.Goal, error) {
	args := m.Called(ctx, userID, goalType)
	return args.Get(0).([]goalsDomain.Goal), args.Error(1)
}

func (m *MockGoalUseCase) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
