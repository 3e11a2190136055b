package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/lifetrack/internal/errors"
	profileDomain "github.com/allisson/lifetrack/internal/profile/domain"
	"github.com/allisson/lifetrack/internal/profile/usecase/mocks"
)

func TestProfileUseCaseUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("upserts and returns the merged profile", func(t *testing.T) {
		repo := new(mocks.MockProfileRepository)
		uc := NewProfileUseCase(repo)

		weight := 82.5
		input := profileDomain.UpdateProfileInput{WeightKg: &weight}
		stored := profileDomain.Profile{UserID: 2, WeightKg: &weight}

		repo.On("Upsert", ctx, int64(2), input).Return(nil)
		repo.On("Get", ctx, int64(2)).Return(stored, nil)

		profile, err := uc.Update(ctx, 2, input)
		require.NoError(t, err)
		require.NotNil(t, profile.WeightKg)
		assert.Equal(t, 82.5, *profile.WeightKg)
		repo.AssertExpectations(t)
	})

	t.Run("rejects out-of-range values", func(t *testing.T) {
		repo := new(mocks.MockProfileRepository)
		uc := NewProfileUseCase(repo)

		age := 300
		_, err := uc.Update(ctx, 2, profileDomain.UpdateProfileInput{Age: &age})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}
