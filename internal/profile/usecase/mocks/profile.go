// Package mocks provides mock implementations for profile interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	profileDomain "github.com/allisson/lifetrack/internal/profile/domain"
)

// MockProfileRepository is a mock implementation of ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Get(
	ctx context.Context,
	userID int64,
) (profileDomain.Profile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(profileDomain.Profile), args.Error(1)
}

func (m *MockProfileRepository) Upsert(
	ctx context.Context,
	userID int64,
	input profileDomain.UpdateProfileInput,
) error {
	args := m.Called(ctx, userID, input)
	return args.Error(0)
}

// MockProfileUseCase is a mock implementation of ProfileUseCase.
type MockProfileUseCase struct {
	mock.Mock
}

func (m *MockProfileUseCase) Get(
	ctx context.Context,
	userID int64,
) (profileDomain.Profile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(profileDomain.Profile), args.Error(1)
}

func (m *MockProfileUseCase) Update(
	ctx context.Context,
	userID int64,
	input profileDomain.UpdateProfileInput,
) (profileDomain.Profile, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(profileDomain.Profile), args.Error(1)
}
