package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Shalini-Dasari/TrustMed/internal/apperrors"
	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
	portssvc "github.com/Shalini-Dasari/TrustMed/internal/core/ports/services"
	"github.com/Shalini-Dasari/TrustMed/internal/dto"
	"github.com/Shalini-Dasari/TrustMed/internal/middleware"
	"github.com/gin-gonic/gin"
)

// LedgerHandler handles deposit/withdrawal ledger requests.
type LedgerHandler struct {
	ledger portssvc.LedgerSvcFacade
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledger portssvc.LedgerSvcFacade) *LedgerHandler {
	return &LedgerHandler{ledger: ledger}
}

// RecordEntry godoc
// @Summary Record a deposit or withdrawal
// @Description Persists a ledger entry and adjusts the account balance in the same transaction
// @Tags transactions
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   entry body dto.RecordEntryRequest true "Entry details"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to record entry"
// @Router /accounts/me/transactions [post]
func (h *LedgerHandler) RecordEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.RecordEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for ledger entry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	entry, err := h.ledger.Record(c.Request.Context(), accountID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
			return
		}
		logger.Error("Failed to record ledger entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record entry"})
		return
	}

	logger.Info("Ledger entry recorded",
		slog.Int64("account_id", accountID),
		slog.Int64("entry_id", entry.EntryID),
		slog.String("type", string(entry.Type)))
	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(*entry))
}

// ListEntries godoc
// @Summary List ledger entries
// @Description Returns the account's ledger entries newest first, optionally filtered by type and date range, with cursor pagination
// @Tags transactions
// @Produce  json
// @Security BearerAuth
// @Param   type query string false "Entry type" Enums(deposit, withdrawal)
// @Param   from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   to query string false "Inclusive end date (YYYY-MM-DD)"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Cursor from a previous page"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to list entries"
// @Router /accounts/me/transactions [get]
func (h *LedgerHandler) ListEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query for ledger listing", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	filter, err := toLedgerFilter(params)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	entries, nextToken, err := h.ledger.List(c.Request.Context(), accountID, filter)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
			return
		}
		logger.Error("Failed to list ledger entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListEntriesResponse(entries, nextToken))
}

func toLedgerFilter(params dto.ListEntriesParams) (domain.LedgerFilter, error) {
	filter := domain.LedgerFilter{
		Limit:     params.Limit,
		NextToken: params.NextToken,
	}
	if params.Type != "" {
		t := domain.EntryType(params.Type)
		filter.Type = &t
	}
	if params.From != "" {
		from, err := time.Parse("2006-01-02", params.From)
		if err != nil {
			return domain.LedgerFilter{}, err
		}
		filter.From = &from
	}
	if params.To != "" {
		to, err := time.Parse("2006-01-02", params.To)
		if err != nil {
			return domain.LedgerFilter{}, err
		}
		filter.To = &to
	}
	return filter, nil
}
