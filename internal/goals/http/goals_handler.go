// Package http provides HTTP handlers for goals.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	goalsDomain "github.com/allisson/lifetrack/internal/goals/domain"
	"github.com/allisson/lifetrack/internal/goals/http/dto"
	goalsUseCase "github.com/allisson/lifetrack/internal/goals/usecase"
	"github.com/allisson/lifetrack/internal/httputil"
)

// GoalsHandler handles HTTP requests for goals.
type GoalsHandler struct {
	goalUseCase goalsUseCase.GoalUseCase
	logger      *slog.Logger
}

// NewGoalsHandler creates a new goals handler with required dependencies.
func NewGoalsHandler(uc goalsUseCase.GoalUseCase, logger *slog.Logger) *GoalsHandler {
	return &GoalsHandler{
		goalUseCase: uc,
		logger:      logger,
	}
}

// CreateHandler records a new goal.
// POST /v1/goals
func (h *GoalsHandler) CreateHandler(c *gin.Context) {
	userID, err := httputil.UserID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	goal, err := h.goalUseCase.Create(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapGoal(goal))
}

// ListHandler returns the user's goals, optionally filtered by type.
// GET /v1/goals?type=finance
func (h *GoalsHandler) ListHandler(c *gin.Context) {
	userID, err := httputil.UserID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var goalType *goalsDomain.GoalType
	if raw := c.Query("type"); raw != "" {
		gt := goalsDomain.GoalType(raw)
		switch gt {
		case goalsDomain.GoalTypeFitness, goalsDomain.GoalTypeFinance,
			goalsDomain.GoalTypeLearning, goalsDomain.GoalTypeFood:
			goalType = &gt
		default:
			httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid goal type %q", raw), h.logger)
			return
		}
	}

	goals, err := h.goalUseCase.List(c.Request.Context(), userID, goalType)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapGoals(goals))
}

// DeleteHandler removes a goal.
// DELETE /v1/goals/:id
func (h *GoalsHandler) DeleteHandler(c *gin.Context) {
	userID, err := httputil.UserID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid goal id"), h.logger)
		return
	}

	if err := h.goalUseCase.Delete(c.Request.Context(), userID, id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted"})
}
