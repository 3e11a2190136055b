package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Run("wraps error with context", func(t *testing.T) {
		err := Wrap(ErrInvalidInput, "amount must be numeric")
		assert.Error(t, err)
		assert.True(t, Is(err, ErrInvalidInput))
		assert.Contains(t, err.Error(), "amount must be numeric")
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "context"))
	})

	t.Run("preserves chain through multiple wraps", func(t *testing.T) {
		err := Wrap(Wrap(ErrUnavailable, "generate"), "estimate calories")
		assert.True(t, Is(err, ErrUnavailable))
	})
}

func TestIs(t *testing.T) {
	assert.True(t, Is(ErrNotFound, ErrNotFound))
	assert.False(t, Is(ErrNotFound, ErrConflict))
	assert.False(t, Is(nil, ErrNotFound))
}
