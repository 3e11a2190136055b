// Package http provides HTTP handlers for the user profile.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/lifetrack/internal/httputil"
	"github.com/allisson/lifetrack/internal/profile/http/dto"
	profileUseCase "github.com/allisson/lifetrack/internal/profile/usecase"
)

// ProfileHandler handles HTTP requests for the user profile.
type ProfileHandler struct {
	profileUseCase profileUseCase.ProfileUseCase
	logger         *slog.Logger
}

// NewProfileHandler creates a new profile handler with required dependencies.
func NewProfileHandler(uc profileUseCase.ProfileUseCase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: uc,
		logger:         logger,
	}
}

// GetHandler returns the user profile.
// GET /v1/profile
func (h *ProfileHandler) GetHandler(c *gin.Context) {
	userID, err := httputil.UserID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	profile, err := h.profileUseCase.Get(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProfile(profile))
}

// UpdateHandler applies a partial profile update and returns the stored row.
// PUT /v1/profile
func (h *ProfileHandler) UpdateHandler(c *gin.Context) {
	userID, err := httputil.UserID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	profile, err := h.profileUseCase.Update(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProfile(profile))
}
