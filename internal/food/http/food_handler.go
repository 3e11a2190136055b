// Package http provides HTTP handlers for food tracking.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	foodDomain "github.com/allisson/lifetrack/internal/food/domain"
	"github.com/allisson/lifetrack/internal/food/http/dto"
	foodUseCase "github.com/allisson/lifetrack/internal/food/usecase"
	"github.com/allisson/lifetrack/internal/httputil"
)

// FoodHandler handles HTTP requests for food tracking.
type FoodHandler struct {
	foodUseCase foodUseCase.FoodUseCase
	logger      *slog.Logger
}

// NewFoodHandler creates a new food handler with required dependencies.
func NewFoodHandler(uc foodUseCase.FoodUseCase, logger *slog.Logger) *FoodHandler {
	return &FoodHandler{
		foodUseCase: uc,
		logger:      logger,
	}
}

// CreateHandler records a new food intake row.
// POST /v1/food/logs
func (h *FoodHandler) CreateHandler(c *gin.Context) {
	userID, err := httputil.UserID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.CreateFoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	log, err := h.foodUseCase.Log(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapFoodLog(log))
}

// TodayHandler returns today's intake with the kcal target.
// GET /v1/food/today
func (h *FoodHandler) TodayHandler(c *gin.Context) {
	userID, err := httputil.UserID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	summary, err := h.foodUseCase.TodaySummary(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDailySummary(summary))
}

// WeeklyHandler returns the past week's per-day aggregates.
// GET /v1/food/weekly
func (h *FoodHandler) WeeklyHandler(c *gin.Context) {
	userID, err := httputil.UserID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	days, err := h.foodUseCase.WeeklyByDay(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapWeeklyDays(days))
}

// DeleteHandler removes a food log row.
// DELETE /v1/food/logs/:id
func (h *FoodHandler) DeleteHandler(c *gin.Context) {
	userID, err := httputil.UserID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid food log id"), h.logger)
		return
	}

	if err := h.foodUseCase.DeleteLog(c.Request.Context(), userID, id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Food log deleted"})
}

// SetTargetHandler sets the daily kcal target.
// PUT /v1/food/target
func (h *FoodHandler) SetTargetHandler(c *gin.Context) {
	userID, err := httputil.UserID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.SetFoodTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	input := foodDomain.SetFoodTargetInput{DailyKcalTarget: req.DailyKcalTarget}
	if err := h.foodUseCase.SetTarget(c.Request.Context(), userID, input); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.FoodTargetResponse{DailyKcalTarget: req.DailyKcalTarget})
}

// GetTargetHandler returns the effective daily kcal target.
// GET /v1/food/target
func (h *FoodHandler) GetTargetHandler(c *gin.Context) {
	userID, err := httputil.UserID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	target, err := h.foodUseCase.GetTarget(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.FoodTargetResponse{DailyKcalTarget: target})
}
