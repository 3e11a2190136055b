// Package dto provides data transfer objects for the finance endpoints.
package dto

import (
	"time"

	financeDomain "github.com/allisson/lifetrack/internal/finance/domain"
)

// CreateFinanceLogRequest carries a new ledger entry.
type CreateFinanceLogRequest struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Note     *string `json:"note,omitempty"`
}

// ToInput converts the request to the use case input.
func (r CreateFinanceLogRequest) ToInput() financeDomain.CreateFinanceLogInput {
	return financeDomain.CreateFinanceLogInput{
		Category: r.Category,
		Amount:   r.Amount,
		Note:     r.Note,
	}
}

// LedgerEntryResponse is one decrypted ledger row. Amount is null when the
// stored payload could not be decrypted; such rows contribute zero to totals.
type LedgerEntryResponse struct {
	ID            int64     `json:"id"`
	Category      string    `json:"category"`
	Amount        *float64  `json:"amount"`
	Note          *string   `json:"note,omitempty"`
	LoggedAt      time.Time `json:"logged_at"`
	DecryptFailed bool      `json:"decrypt_failed,omitempty"`
}

// LedgerSummaryResponse aggregates a window of ledger rows.
type LedgerSummaryResponse struct {
	Entries      []LedgerEntryResponse `json:"entries"`
	TotalIncome  float64               `json:"total_income"`
	TotalExpense float64               `json:"total_expense"`
	TotalSavings float64               `json:"total_savings"`
	Net          float64               `json:"net"`
}

// MapLedgerSummary converts the domain summary to its API shape. NaN amounts
// become null; JSON has no NaN.
func MapLedgerSummary(summary financeDomain.LedgerSummary) LedgerSummaryResponse {
	entries := make([]LedgerEntryResponse, 0, len(summary.Entries))
	for _, entry := range summary.Entries {
		item := LedgerEntryResponse{
			ID:       entry.ID,
			Category: entry.Category,
			Note:     entry.Note,
			LoggedAt: entry.LoggedAt,
		}
		if entry.Countable() {
			amount := entry.Amount
			item.Amount = &amount
		} else {
			item.DecryptFailed = true
		}
		entries = append(entries, item)
	}

	return LedgerSummaryResponse{
		Entries:      entries,
		TotalIncome:  summary.Totals[financeDomain.BucketIncome],
		TotalExpense: summary.Totals[financeDomain.BucketExpense],
		TotalSavings: summary.Totals[financeDomain.BucketSavings],
		Net:          summary.Net(),
	}
}

// LedgerEntryCreatedResponse echoes the stored entry after creation.
type LedgerEntryCreatedResponse struct {
	ID       int64     `json:"id"`
	Category string    `json:"category"`
	Amount   float64   `json:"amount"`
	Note     *string   `json:"note,omitempty"`
	LoggedAt time.Time `json:"logged_at"`
}

// MapLedgerEntryCreated converts a freshly created entry to its API shape.
func MapLedgerEntryCreated(entry financeDomain.LedgerEntry) LedgerEntryCreatedResponse {
	return LedgerEntryCreatedResponse{
		ID:       entry.ID,
		Category: entry.Category,
		Amount:   entry.Amount,
		Note:     entry.Note,
		LoggedAt: entry.LoggedAt,
	}
}
