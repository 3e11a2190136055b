// Package http provides HTTP handlers for learning notes.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/allisson/lifetrack/internal/httputil"
	"github.com/allisson/lifetrack/internal/learning/http/dto"
	learningUseCase "github.com/allisson/lifetrack/internal/learning/usecase"
)

// LearningHandler handles HTTP requests for learning notes.
type LearningHandler struct {
	learningUseCase learningUseCase.LearningUseCase
	logger          *slog.Logger
}

// NewLearningHandler creates a new learning handler with required dependencies.
func NewLearningHandler(uc learningUseCase.LearningUseCase, logger *slog.Logger) *LearningHandler {
	return &LearningHandler{
		learningUseCase: uc,
		logger:          logger,
	}
}

// CreateHandler records a new study note.
// POST /v1/learning/notes
func (h *LearningHandler) CreateHandler(c *gin.Context) {
	userID, err := httputil.UserID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.CreateLearningNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	note, err := h.learningUseCase.CreateNote(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapLearningNote(note))
}

// ListHandler lists the user's notes, newest first.
// GET /v1/learning/notes
func (h *LearningHandler) ListHandler(c *gin.Context) {
	userID, err := httputil.UserID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	notes, err := h.learningUseCase.ListNotes(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapLearningNotes(notes))
}

// DeleteHandler removes a note.
// DELETE /v1/learning/notes/:id
func (h *LearningHandler) DeleteHandler(c *gin.Context) {
	userID, err := httputil.UserID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid note id"), h.logger)
		return
	}

	if err := h.learningUseCase.DeleteNote(c.Request.Context(), userID, id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note deleted"})
}
