package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryBucket(t *testing.T) {
	tests := []struct {
		category string
		expected Bucket
	}{
		{CategoryIncome, BucketIncome},
		{CategoryExpense, BucketExpense},
		{CategoryFood, BucketExpense},
		{CategoryTransport, BucketExpense},
		{CategorySavings, BucketSavings},
		{CategoryInvestment, BucketSavings},
		{"SomethingNew", BucketExpense},
		{"", BucketExpense},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.expected, CategoryBucket(tt.category))
		})
	}
}

func TestLedgerEntry_Countable(t *testing.T) {
	assert.True(t, LedgerEntry{Amount: 100}.Countable())
	assert.True(t, LedgerEntry{Amount: 0}.Countable())
	assert.False(t, LedgerEntry{Amount: math.NaN()}.Countable())
}

func TestLedgerSummary_Net(t *testing.T) {
	summary := LedgerSummary{Totals: map[Bucket]float64{
		BucketIncome:  5000,
		BucketExpense: 3200,
		BucketSavings: 1000,
	}}
	assert.InDelta(t, 800, summary.Net(), 0.0001)
}

func TestCreateFinanceLogInput_Validate(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		input := CreateFinanceLogInput{Category: CategoryExpense, Amount: 250.50}
		assert.NoError(t, input.Validate())
	})

	t.Run("missing category", func(t *testing.T) {
		input := CreateFinanceLogInput{Amount: 250.50}
		assert.Error(t, input.Validate())
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		input := CreateFinanceLogInput{Category: CategoryExpense}
		assert.NoError(t, input.Validate())
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		input := CreateFinanceLogInput{Category: CategoryExpense, Amount: -500}
		assert.Error(t, input.Validate())
	})
}
