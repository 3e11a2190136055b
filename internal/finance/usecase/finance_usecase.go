package usecase

import (
	"context"
	"math"
	"strconv"

	cryptoService "github.com/allisson/lifetrack/internal/crypto/service"
	apperrors "github.com/allisson/lifetrack/internal/errors"
	financeDomain "github.com/allisson/lifetrack/internal/finance/domain"
	"github.com/allisson/lifetrack/internal/validation"
)

// financeUseCase implements FinanceUseCase.
//
// The write path uses the raw codec so that encryption failures abort the
// write; the read path uses the safe decryptor so that one bad historical row
// never aborts an aggregate listing.
type financeUseCase struct {
	repo  FinanceLogRepository
	codec cryptoService.Codec
	safe  cryptoService.SafeDecryptor
}

// NewFinanceUseCase creates the finance use case.
func NewFinanceUseCase(
	repo FinanceLogRepository,
	codec cryptoService.Codec,
	safe cryptoService.SafeDecryptor,
) FinanceUseCase {
	return &financeUseCase{repo: repo, codec: codec, safe: safe}
}

// Log validates and encrypts a new ledger entry and persists it.
func (f *financeUseCase) Log(
	ctx context.Context,
	userID int64,
	input financeDomain.CreateFinanceLogInput,
) (financeDomain.LedgerEntry, error) {
	if err := input.Validate(); err != nil {
		return financeDomain.LedgerEntry{}, validation.WrapValidationError(err)
	}

	amountEnc, err := f.codec.Encrypt(strconv.FormatFloat(input.Amount, 'f', -1, 64))
	if err != nil {
		return financeDomain.LedgerEntry{}, apperrors.Wrap(err, "failed to encrypt amount")
	}

	var noteEnc *string
	if input.Note != nil {
		enc, err := f.codec.Encrypt(*input.Note)
		if err != nil {
			return financeDomain.LedgerEntry{}, apperrors.Wrap(err, "failed to encrypt note")
		}
		noteEnc = &enc
	}

	log := financeDomain.FinanceLog{
		UserID:    userID,
		Category:  input.Category,
		AmountEnc: amountEnc,
		NoteEnc:   noteEnc,
	}
	if err := f.repo.Create(ctx, &log); err != nil {
		return financeDomain.LedgerEntry{}, err
	}

	return financeDomain.LedgerEntry{
		ID:       log.ID,
		Category: log.Category,
		Amount:   input.Amount,
		Note:     input.Note,
		LoggedAt: log.LoggedAt,
	}, nil
}

// Summarize decrypts and aggregates the user's rows for the window.
//
// Repeated calls over the same rows yield identical totals; the aggregation
// carries no state between calls. Totals stay unrounded here, presentation
// decides how to format them.
func (f *financeUseCase) Summarize(
	ctx context.Context,
	userID int64,
	windowDays int,
) (financeDomain.LedgerSummary, error) {
	rows, err := f.repo.ListByWindow(ctx, userID, windowDays)
	if err != nil {
		return financeDomain.LedgerSummary{}, err
	}

	summary := financeDomain.LedgerSummary{
		Entries: make([]financeDomain.LedgerEntry, 0, len(rows)),
		Totals: map[financeDomain.Bucket]float64{
			financeDomain.BucketIncome:  0,
			financeDomain.BucketExpense: 0,
			financeDomain.BucketSavings: 0,
		},
	}

	for _, row := range rows {
		entry := financeDomain.LedgerEntry{
			ID:       row.ID,
			Category: row.Category,
			LoggedAt: row.LoggedAt,
		}

		// A sentinel or otherwise non-numeric amount becomes NaN: surfaced
		// for display, excluded from sums.
		amount, err := strconv.ParseFloat(f.safe.SafeDecrypt(row.AmountEnc), 64)
		if err != nil {
			amount = math.NaN()
		}
		entry.Amount = amount

		if row.NoteEnc != nil {
			note := f.safe.SafeDecrypt(*row.NoteEnc)
			entry.Note = &note
		}

		if entry.Countable() {
			summary.Totals[financeDomain.CategoryBucket(entry.Category)] += entry.Amount
		}
		summary.Entries = append(summary.Entries, entry)
	}

	return summary, nil
}
