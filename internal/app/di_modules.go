package app

import (
	"fmt"

	financeRepository "github.com/allisson/lifetrack/internal/finance/repository"
	financeUseCase "github.com/allisson/lifetrack/internal/finance/usecase"
	fitnessRepository "github.com/allisson/lifetrack/internal/fitness/repository"
	fitnessUseCase "github.com/allisson/lifetrack/internal/fitness/usecase"
	foodRepository "github.com/allisson/lifetrack/internal/food/repository"
	foodUseCase "github.com/allisson/lifetrack/internal/food/usecase"
	goalsRepository "github.com/allisson/lifetrack/internal/goals/repository"
	goalsUseCase "github.com/allisson/lifetrack/internal/goals/usecase"
	learningRepository "github.com/allisson/lifetrack/internal/learning/repository"
	learningUseCase "github.com/allisson/lifetrack/internal/learning/usecase"
	profileRepository "github.com/allisson/lifetrack/internal/profile/repository"
	profileUseCase "github.com/allisson/lifetrack/internal/profile/usecase"
)

// FitnessUseCase returns the fitness tracking use case.
func (c *Container) FitnessUseCase() (fitnessUseCase.FitnessUseCase, error) {
	c.fitnessUseCaseInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["fitnessUseCase"] = fmt.Errorf("failed to get database for fitness use case: %w", err)
			return
		}
		repo := fitnessRepository.NewMySQLFitnessLogRepository(db)
		c.fitnessUseCase = fitnessUseCase.NewFitnessUseCase(repo)
	})
	if err, exists := c.initErrors["fitnessUseCase"]; exists {
		return nil, err
	}
	return c.fitnessUseCase, nil
}

// FinanceUseCase returns the finance tracking use case with field encryption.
func (c *Container) FinanceUseCase() (financeUseCase.FinanceUseCase, error) {
	c.financeUseCaseInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["financeUseCase"] = fmt.Errorf("failed to get database for finance use case: %w", err)
			return
		}
		codec, safe, err := c.Codec()
		if err != nil {
			c.initErrors["financeUseCase"] = err
			return
		}
		repo := financeRepository.NewMySQLFinanceLogRepository(db)
		c.financeUseCase = financeUseCase.NewFinanceUseCase(repo, codec, safe)
	})
	if err, exists := c.initErrors["financeUseCase"]; exists {
		return nil, err
	}
	return c.financeUseCase, nil
}

// LearningUseCase returns the learning notes use case.
func (c *Container) LearningUseCase() (learningUseCase.LearningUseCase, error) {
	c.learningUseCaseInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["learningUseCase"] = fmt.Errorf("failed to get database for learning use case: %w", err)
			return
		}
		repo := learningRepository.NewMySQLLearningNoteRepository(db)
		c.learningUseCase = learningUseCase.NewLearningUseCase(repo)
	})
	if err, exists := c.initErrors["learningUseCase"]; exists {
		return nil, err
	}
	return c.learningUseCase, nil
}

// FoodUseCase returns the food tracking use case.
func (c *Container) FoodUseCase() (foodUseCase.FoodUseCase, error) {
	c.foodUseCaseInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["foodUseCase"] = fmt.Errorf("failed to get database for food use case: %w", err)
			return
		}
		logRepo := foodRepository.NewMySQLFoodLogRepository(db)
		targetRepo := foodRepository.NewMySQLFoodTargetRepository(db)
		c.foodUseCase = foodUseCase.NewFoodUseCase(logRepo, targetRepo)
	})
	if err, exists := c.initErrors["foodUseCase"]; exists {
		return nil, err
	}
	return c.foodUseCase, nil
}

// GoalUseCase returns the goals use case.
func (c *Container) GoalUseCase() (goalsUseCase.GoalUseCase, error) {
	c.goalUseCaseInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["goalUseCase"] = fmt.Errorf("failed to get database for goal use case: %w", err)
			return
		}
		repo := goalsRepository.NewMySQLGoalRepository(db)
		c.goalUseCase = goalsUseCase.NewGoalUseCase(repo)
	})
	if err, exists := c.initErrors["goalUseCase"]; exists {
		return nil, err
	}
	return c.goalUseCase, nil
}

// ProfileUseCase returns the user profile use case.
func (c *Container) ProfileUseCase() (profileUseCase.ProfileUseCase, error) {
	c.profileUseCaseInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["profileUseCase"] = fmt.Errorf("failed to get database for profile use case: %w", err)
			return
		}
		repo := profileRepository.NewMySQLProfileRepository(db)
		c.profileUseCase = profileUseCase.NewProfileUseCase(repo)
	})
	if err, exists := c.initErrors["profileUseCase"]; exists {
		return nil, err
	}
	return c.profileUseCase, nil
}
