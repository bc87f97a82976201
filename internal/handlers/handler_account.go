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
	"github.com/Shalini-Dasari/TrustMed/internal/utils/instrument"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles account and payment instrument requests.
type AccountHandler struct {
	sessions portssvc.SessionSvcFacade
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(sessions portssvc.SessionSvcFacade) *AccountHandler {
	return &AccountHandler{sessions: sessions}
}

// GetCurrentAccount godoc
// @Summary Get the authenticated account
// @Description Returns the full account record for the caller
// @Tags accounts
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} ErrorResponse "Account not found"
// @Router /accounts/me [get]
func (h *AccountHandler) GetCurrentAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	account, err := h.sessions.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Account not found"})
			return
		}
		logger.Error("Failed to load account", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load account"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// RegenerateCard godoc
// @Summary Issue a replacement card
// @Description Replaces the account's card number, expiry, and CVV with freshly generated values; the new card starts active
// @Tags accounts
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} dto.AccountResponse
// @Failure 500 {object} ErrorResponse "Card update failed"
// @Router /accounts/me/card [post]
func (h *AccountHandler) RegenerateCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	card := instrument.Issue(time.Now())
	account, err := h.sessions.UpdatePartial(c.Request.Context(), accountID, domain.AccountPatch{Card: &card})
	if err != nil {
		logger.Error("Failed to regenerate card", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Card update failed"})
		return
	}

	logger.Info("Card regenerated", slog.Int64("account_id", accountID))
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// UpdateCardStatus godoc
// @Summary Freeze or unfreeze the card
// @Description Toggles the card's freeze state without touching the card details
// @Tags accounts
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   status body dto.UpdateCardStatusRequest true "Target card status"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Card update failed"
// @Router /accounts/me/card/status [patch]
func (h *AccountHandler) UpdateCardStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateCardStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for card status request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	status := domain.CardStatus(req.Status)
	account, err := h.sessions.UpdatePartial(c.Request.Context(), accountID, domain.AccountPatch{CardStatus: &status})
	if err != nil {
		logger.Error("Failed to update card status", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Card update failed"})
		return
	}

	logger.Info("Card status updated", slog.Int64("account_id", accountID), slog.String("status", req.Status))
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}
