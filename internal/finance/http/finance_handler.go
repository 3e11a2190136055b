// Package http provides HTTP handlers for the finance ledger.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/allisson/lifetrack/internal/finance/http/dto"
	financeUseCase "github.com/allisson/lifetrack/internal/finance/usecase"
	"github.com/allisson/lifetrack/internal/httputil"
)

const defaultSummaryWindowDays = 7

// FinanceHandler handles HTTP requests for the finance ledger.
type FinanceHandler struct {
	financeUseCase financeUseCase.FinanceUseCase
	logger         *slog.Logger
}

// NewFinanceHandler creates a new finance handler with required dependencies.
func NewFinanceHandler(uc financeUseCase.FinanceUseCase, logger *slog.Logger) *FinanceHandler {
	return &FinanceHandler{
		financeUseCase: uc,
		logger:         logger,
	}
}

// CreateHandler records a new ledger entry, encrypting the amount and note.
// POST /v1/finance/logs
func (h *FinanceHandler) CreateHandler(c *gin.Context) {
	userID, err := httputil.UserID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.CreateFinanceLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	entry, err := h.financeUseCase.Log(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapLedgerEntryCreated(entry))
}

// SummaryHandler returns the decrypted aggregate for a window of days.
// GET /v1/finance/summary?window_days=7
func (h *FinanceHandler) SummaryHandler(c *gin.Context) {
	userID, err := httputil.UserID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	windowDays := defaultSummaryWindowDays
	if raw := c.Query("window_days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 365 {
			httputil.HandleValidationErrorGin(
				c,
				fmt.Errorf("window_days must be an integer between 1 and 365"),
				h.logger,
			)
			return
		}
		windowDays = parsed
	}

	summary, err := h.financeUseCase.Summarize(c.Request.Context(), userID, windowDays)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapLedgerSummary(summary))
}
