// Package mocks provides mock implementations for learning interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	learningDomain "github.com/allisson/lifetrack/internal/learning/domain"
)

// MockLearningNoteRepository is a mock implementation of LearningNoteRepository.
type MockLearningNoteRepository struct {
	mock.Mock
}

func (m *MockLearningNoteRepository) Create(ctx context.Context, note *learningDomain.LearningNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockLearningNoteRepository) List(
	ctx context.Context,
	userID int64,
) ([]learningDomain.LearningNote, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]learningDomain.LearningNote), args.Error(1)
}

func (m *MockLearningNoteRepository) ListByWindow(
	ctx context.Context,
	userID int64,
	windowDays int,
) ([]learningDomain.LearningNote, error) {
	args := m.Called(ctx, userID, windowDays)
	return args.Get(0).([]learningDomain.LearningNote), args.Error(1)
}

func (m *MockLearningNoteRepository) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// MockLearningUseCase is a mock implementation of LearningUseCase.
type MockLearningUseCase struct {
	mock.Mock
}

func (m *MockLearningUseCase) CreateNote(
	ctx context.Context,
	userID int64,
	input learningDomain.CreateLearningNoteInput,
) (learningDomain.LearningNote, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(learningDomain.LearningNote), args.Error(1)
}

func (m *MockLearningUseCase) ListNotes(
	ctx context.Context,
	userID int64,
) ([]learningDomain.LearningNote, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]learningDomain.LearningNote), args.Error(1)
}

func (m *MockLearningUseCase) WeeklyTopics(ctx context.Context, userID int64) ([]string, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLearningUseCase) DeleteNote(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
