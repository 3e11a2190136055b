// Package mocks provides mock implementations for finance interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	financeDomain "github.com/allisson/lifetrack/internal/finance/domain"
)

// MockFinanceLogRepository is a mock implementation of FinanceLogRepository for testing.
type MockFinanceLogRepository struct {
	mock.Mock
}

// Create mocks the Create method of FinanceLogRepository.
func (m *MockFinanceLogRepository) Create(ctx context.Context, log *financeDomain.FinanceLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

// ListByWindow mocks the ListByWindow method of FinanceLogRepository.
func (m *MockFinanceLogRepository) ListByWindow(
	ctx context.Context,
	userID int64,
	windowDays int,
) ([]financeDomain.FinanceLog, error) {
	args := m.Called(ctx, userID, windowDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]financeDomain.FinanceLog), args.Error(1)
}

// MockFinanceUseCase is a mock implementation of FinanceUseCase for testing.
type MockFinanceUseCase struct {
	mock.Mock
}

// Log mocks the Log method of FinanceUseCase.
func (m *MockFinanceUseCase) Log(
	ctx context.Context,
	userID int64,
	input financeDomain.CreateFinanceLogInput,
) (financeDomain.LedgerEntry, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(financeDomain.LedgerEntry), args.Error(1)
}

// Summarize mocks the Summarize method of FinanceUseCase.
func (m *MockFinanceUseCase) Summarize(
	ctx context.Context,
	userID int64,
	windowDays int,
) (financeDomain.LedgerSummary, error) {
	args := m.Called(ctx, userID, windowDays)
	return args.Get(0).(financeDomain.LedgerSummary), args.Error(1)
}
