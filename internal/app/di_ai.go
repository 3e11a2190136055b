package app

import (
	"fmt"

	aiService "github.com/allisson/lifetrack/internal/ai/service"
	aiUseCase "github.com/allisson/lifetrack/internal/ai/usecase"
	cryptoDomain "github.com/allisson/lifetrack/internal/crypto/domain"
	cryptoService "github.com/allisson/lifetrack/internal/crypto/service"
)

// Codec returns the field encryption codec and its error-masking decryptor.
// The key is derived from the configured secret on first access.
func (c *Container) Codec() (cryptoService.Codec, cryptoService.SafeDecryptor, error) {
	c.codecInit.Do(func() {
		key, err := cryptoDomain.KeyFromSecret(c.config.EncryptionSecret)
		if err != nil {
			c.initErrors["codec"] = fmt.Errorf("failed to derive encryption key: %w", err)
			return
		}
		codec, err := cryptoService.NewAESGCMCodec(key)
		if err != nil {
			c.initErrors["codec"] = fmt.Errorf("failed to create codec: %w", err)
			return
		}
		c.codec = codec
		c.safeDecryptor = cryptoService.NewSafeCodec(codec)
	})
	if err, exists := c.initErrors["codec"]; exists {
		return nil, nil, err
	}
	return c.codec, c.safeDecryptor, nil
}

// EstimationUseCase returns the estimation engine, wrapped with metrics
// instrumentation when metrics are enabled.
func (c *Container) EstimationUseCase() (aiUseCase.EstimationUseCase, error) {
	c.estimationUseCaseInit.Do(func() {
		logger := c.Logger()

		fitnessUC, err := c.FitnessUseCase()
		if err != nil {
			c.initErrors["estimationUseCase"] = err
			return
		}
		financeUC, err := c.FinanceUseCase()
		if err != nil {
			c.initErrors["estimationUseCase"] = err
			return
		}
		learningUC, err := c.LearningUseCase()
		if err != nil {
			c.initErrors["estimationUseCase"] = err
			return
		}
		goalUC, err := c.GoalUseCase()
		if err != nil {
			c.initErrors["estimationUseCase"] = err
			return
		}
		profileUC, err := c.ProfileUseCase()
		if err != nil {
			c.initErrors["estimationUseCase"] = err
			return
		}

		client := aiService.NewOllamaClient(c.config.OllamaURL, logger)
		extractor := aiService.NewJSONExtractor()
		modelConfig := aiUseCase.ModelConfig{
			Model:         c.config.OllamaModel,
			VisionModel:   c.config.OllamaVisionModel,
			Timeout:       c.config.OllamaTimeout,
			VisionTimeout: c.config.OllamaVisionTimeout,
		}

		engine := aiUseCase.NewEstimationUseCase(
			client,
			extractor,
			fitnessUC,
			financeUC,
			learningUC,
			goalUC,
			profileUC,
			modelConfig,
			logger,
		)

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["estimationUseCase"] = err
			return
		}
		c.estimationUseCase = aiUseCase.NewEstimationUseCaseWithMetrics(engine, businessMetrics)
	})
	if err, exists := c.initErrors["estimationUseCase"]; exists {
		return nil, err
	}
	return c.estimationUseCase, nil
}
