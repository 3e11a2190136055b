// Package usecase implements finance ledger business logic: encrypting new
// rows on write and the safe-decrypt aggregation used by summaries and the
// advisory prompts.
package usecase

import (
	"context"

	financeDomain "github.com/allisson/lifetrack/internal/finance/domain"
)

// FinanceLogRepository defines persistence for encrypted ledger rows.
type FinanceLogRepository interface {
	// Create inserts a new row and populates its ID and LoggedAt.
	Create(ctx context.Context, log *financeDomain.FinanceLog) error

	// ListByWindow retrieves the user's rows logged within the past
	// windowDays days, newest first.
	ListByWindow(ctx context.Context, userID int64, windowDays int) ([]financeDomain.FinanceLog, error)
}

// FinanceUseCase defines the finance ledger operations.
type FinanceUseCase interface {
	// Log validates and encrypts a new ledger entry and persists it.
	Log(ctx context.Context, userID int64, input financeDomain.CreateFinanceLogInput) (financeDomain.LedgerEntry, error)

	// Summarize decrypts and aggregates the user's rows for the window.
	// A row that fails to decrypt is surfaced with a NaN amount and
	// contributes zero to every total.
	Summarize(ctx context.Context, userID int64, windowDays int) (financeDomain.LedgerSummary, error)
}
