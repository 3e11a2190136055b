// Package http provides HTTP handlers for fitness tracking.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/lifetrack/internal/fitness/http/dto"
	fitnessUseCase "github.com/allisson/lifetrack/internal/fitness/usecase"
	"github.com/allisson/lifetrack/internal/httputil"
)

// FitnessHandler handles HTTP requests for fitness tracking.
type FitnessHandler struct {
	fitnessUseCase fitnessUseCase.FitnessUseCase
	logger         *slog.Logger
}

// NewFitnessHandler creates a new fitness handler with required dependencies.
func NewFitnessHandler(uc fitnessUseCase.FitnessUseCase, logger *slog.Logger) *FitnessHandler {
	return &FitnessHandler{
		fitnessUseCase: uc,
		logger:         logger,
	}
}

// CreateHandler records a new workout.
// POST /v1/fitness/logs
func (h *FitnessHandler) CreateHandler(c *gin.Context) {
	userID, err := httputil.UserID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.CreateFitnessLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	log, err := h.fitnessUseCase.Log(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapFitnessLog(log))
}

// WeeklySummaryHandler returns the past week's workout aggregate.
// GET /v1/fitness/weekly
func (h *FitnessHandler) WeeklySummaryHandler(c *gin.Context) {
	userID, err := httputil.UserID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	summary, err := h.fitnessUseCase.WeeklySummary(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapWeeklySummary(summary))
}
