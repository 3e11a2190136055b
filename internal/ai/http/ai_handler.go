// Package http provides HTTP handlers for the estimation and advisory
// endpoints.
package http

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/allisson/lifetrack/internal/ai/http/dto"
	aiUseCase "github.com/allisson/lifetrack/internal/ai/usecase"
	"github.com/allisson/lifetrack/internal/httputil"
)

// AIHandler handles HTTP requests for estimation and advisory operations.
type AIHandler struct {
	estimationUseCase aiUseCase.EstimationUseCase
	logger            *slog.Logger
}

// NewAIHandler creates a new AI handler with required dependencies.
func NewAIHandler(estimationUseCase aiUseCase.EstimationUseCase, logger *slog.Logger) *AIHandler {
	return &AIHandler{
		estimationUseCase: estimationUseCase,
		logger:            logger,
	}
}

// EstimateCaloriesHandler estimates calories burned for a workout.
// POST /v1/ai/estimate-calories
// Always answers 200 once the input validates; the deterministic fallback
// covers generation failures.
func (h *AIHandler) EstimateCaloriesHandler(c *gin.Context) {
	userID, err := httputil.UserID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.EstimateCaloriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	result, err := h.estimationUseCase.EstimateActivityCalories(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.EstimateCaloriesResponse{
		Calories:    result.Value,
		Explanation: result.Explanation,
	})
}

// EstimateFoodKcalHandler estimates calories for a food serving.
// POST /v1/ai/estimate-food-kcal
// Returns 503 when the generation service is unavailable; there is no
// fallback for food energy.
func (h *AIHandler) EstimateFoodKcalHandler(c *gin.Context) {
	var req dto.EstimateFoodKcalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	result, err := h.estimationUseCase.EstimateFoodKcal(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.EstimateFoodKcalResponse{
		Kcal:        result.Value,
		Explanation: result.Explanation,
	})
}

// AnalyzeFoodImageHandler identifies foods and calories in a meal photo.
// POST /v1/ai/analyze-food-image
func (h *AIHandler) AnalyzeFoodImageHandler(c *gin.Context) {
	var req dto.AnalyzeFoodImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Clients may send data URLs (data:image/jpeg;base64,...).
	encoded := req.Image
	if idx := strings.IndexByte(encoded, ','); idx >= 0 {
		encoded = encoded[idx+1:]
	}
	image, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid base64 image: %w", err), h.logger)
		return
	}

	result, err := h.estimationUseCase.AnalyzeFoodImage(c.Request.Context(), image)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapImageAnalysis(result))
}

// InsightHandler returns the weekly coaching advice.
// GET /v1/ai/insight
func (h *AIHandler) InsightHandler(c *gin.Context) {
	userID, err := httputil.UserID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	advice, err := h.estimationUseCase.WeeklyInsight(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.InsightResponse{Advice: advice})
}

// FinanceGoalPlanHandler returns the savings plan.
// GET /v1/ai/finance-plan
// Generation failures are reported inside the plan text, so this answers 200
// unless the storage reads fail.
func (h *AIHandler) FinanceGoalPlanHandler(c *gin.Context) {
	userID, err := httputil.UserID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	plan, err := h.estimationUseCase.FinanceGoalPlan(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.FinanceGoalPlanResponse{Plan: plan})
}
