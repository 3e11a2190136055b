// Package domain defines the finance ledger model: encrypted rows as stored,
// their decrypted ephemeral form, and the category-to-bucket classification
// used for aggregate totals.
package domain

import (
	"math"
	"time"

	validation "github.com/jellydator/validation"
)

// Bucket groups ledger categories for aggregate totals.
type Bucket string

const (
	BucketIncome  Bucket = "income"
	BucketExpense Bucket = "expense"
	BucketSavings Bucket = "savings"
)

// Known ledger categories. The set mirrors what the frontend offers; rows
// from older clients may carry categories outside it.
const (
	CategoryIncome        = "Income"
	CategoryExpense       = "Expense"
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryEntertainment = "Entertainment"
	CategoryHealth        = "Health"
	CategoryOther         = "Other"
	CategorySavings       = "Savings"
	CategoryInvestment    = "Investment"
)

// categoryBuckets classifies each known category.
var categoryBuckets = map[string]Bucket{
	CategoryIncome:        BucketIncome,
	CategoryExpense:       BucketExpense,
	CategoryFood:          BucketExpense,
	CategoryTransport:     BucketExpense,
	CategoryEntertainment: BucketExpense,
	CategoryHealth:        BucketExpense,
	CategoryOther:         BucketExpense,
	CategorySavings:       BucketSavings,
	CategoryInvestment:    BucketSavings,
}

// CategoryBucket classifies a category into its totals bucket. Unknown
// categories fall into the expense bucket to keep totals conservative.
func CategoryBucket(category string) Bucket {
	if bucket, ok := categoryBuckets[category]; ok {
		return bucket
	}
	return BucketExpense
}

// FinanceLog is a ledger row as stored: the amount and optional note are
// encrypted payloads. Rows are only ever read by this module, never mutated.
type FinanceLog struct {
	ID        int64
	UserID    int64
	Category  string
	AmountEnc string
	NoteEnc   *string
	LoggedAt  time.Time
}

// LedgerEntry is the decrypted, ephemeral form of a ledger row. It exists
// only within a single aggregation call and is never persisted.
//
// Amount is NaN when the stored payload could not be decrypted or did not
// contain a numeric value; such entries are still surfaced for display but
// contribute zero to totals.
type LedgerEntry struct {
	ID       int64
	Category string
	Amount   float64
	Note     *string
	LoggedAt time.Time
}

// Countable reports whether the entry's amount may contribute to sums.
func (e LedgerEntry) Countable() bool {
	return !math.IsNaN(e.Amount)
}

// LedgerSummary aggregates a window of decrypted entries.
//
// Totals are plain arithmetic sums of bucket members; rounding happens only
// at presentation, never during aggregation.
type LedgerSummary struct {
	Entries []LedgerEntry
	Totals  map[Bucket]float64
}

// Net returns income minus expenses minus savings for the window.
func (s LedgerSummary) Net() float64 {
	return s.Totals[BucketIncome] - s.Totals[BucketExpense] - s.Totals[BucketSavings]
}

// CreateFinanceLogInput carries a new ledger row before encryption.
type CreateFinanceLogInput struct {
	Category string
	Amount   float64
	Note     *string
}

// Validate checks the input before encryption and persistence.
func (i CreateFinanceLogInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Category, validation.Required, validation.Length(1, 50)),
		validation.Field(&i.Amount, validation.Min(0.0)),
	)
}
