package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/lifetrack/internal/errors"
	foodDomain "github.com/allisson/lifetrack/internal/food/domain"
	"github.com/allisson/lifetrack/internal/food/usecase/mocks"
)

func TestFoodUseCaseLog(t *testing.T) {
	ctx := context.Background()

	t.Run("applies serving and meal defaults", func(t *testing.T) {
		logRepo := new(mocks.MockFoodLogRepository)
		targetRepo := new(mocks.MockFoodTargetRepository)
		uc := NewFoodUseCase(logRepo, targetRepo)

		logRepo.On("Create", ctx, mock.AnythingOfType("*domain.FoodLog")).
			Run(func(args mock.Arguments) {
				log := args.Get(1).(*foodDomain.FoodLog)
				log.ID = 1
				assert.Equal(t, "quantity", log.ServingUnit)
				assert.Equal(t, 1.0, log.ServingSize)
				assert.Equal(t, foodDomain.MealTypeSnack, log.MealType)
			}).
			Return(nil)

		log, err := uc.Log(ctx, 4, foodDomain.CreateFoodLogInput{FoodName: "apple", Kcal: 95})
		require.NoError(t, err)
		assert.Equal(t, int64(1), log.ID)
		logRepo.AssertExpectations(t)
	})

	t.Run("explicit serving fields win over defaults", func(t *testing.T) {
		logRepo := new(mocks.MockFoodLogRepository)
		targetRepo := new(mocks.MockFoodTargetRepository)
		uc := NewFoodUseCase(logRepo, targetRepo)

		logRepo.On("Create", ctx, mock.AnythingOfType("*domain.FoodLog")).Return(nil)

		unit := "grams"
		size := 150.0
		meal := foodDomain.MealTypeLunch
		log, err := uc.Log(ctx, 4, foodDomain.CreateFoodLogInput{
			FoodName:    "rice",
			Kcal:        195,
			ServingUnit: &unit,
			ServingSize: &size,
			MealType:    &meal,
		})
		require.NoError(t, err)
		assert.Equal(t, "grams", log.ServingUnit)
		assert.Equal(t, 150.0, log.ServingSize)
		assert.Equal(t, foodDomain.MealTypeLunch, log.MealType)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		logRepo := new(mocks.MockFoodLogRepository)
		targetRepo := new(mocks.MockFoodTargetRepository)
		uc := NewFoodUseCase(logRepo, targetRepo)

		_, err := uc.Log(ctx, 4, foodDomain.CreateFoodLogInput{Kcal: 100})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}

func TestFoodUseCaseTodaySummary(t *testing.T) {
	ctx := context.Background()

	t.Run("sums kcal and carries the target", func(t *testing.T) {
		logRepo := new(mocks.MockFoodLogRepository)
		targetRepo := new(mocks.MockFoodTargetRepository)
		uc := NewFoodUseCase(logRepo, targetRepo)

		logs := []foodDomain.FoodLog{{Kcal: 95}, {Kcal: 300}}
		logRepo.On("ListToday", ctx, int64(4)).Return(logs, nil)
		targetRepo.On("Get", ctx, int64(4)).Return(1800, nil)

		summary, err := uc.TodaySummary(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, 395, summary.TotalKcal)
		assert.Equal(t, 1800, summary.DailyKcalTarget)
	})
}

func TestFoodUseCaseGetTarget(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored target", func(t *testing.T) {
		logRepo := new(mocks.MockFoodLogRepository)
		targetRepo := new(mocks.MockFoodTargetRepository)
		uc := NewFoodUseCase(logRepo, targetRepo)

		targetRepo.On("Get", ctx, int64(4)).Return(2500, nil)

		target, err := uc.GetTarget(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, 2500, target)
	})

	t.Run("falls back to the default when never set", func(t *testing.T) {
		logRepo := new(mocks.MockFoodLogRepository)
		targetRepo := new(mocks.MockFoodTargetRepository)
		uc := NewFoodUseCase(logRepo, targetRepo)

		targetRepo.On("Get", ctx, int64(4)).
			Return(0, apperrors.Wrap(apperrors.ErrNotFound, "food target not found"))

		target, err := uc.GetTarget(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, foodDomain.DefaultDailyKcalTarget, target)
	})
}
