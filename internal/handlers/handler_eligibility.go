package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Shalini-Dasari/TrustMed/internal/core/ports/services"
	"github.com/Shalini-Dasari/TrustMed/internal/dto"
	"github.com/Shalini-Dasari/TrustMed/internal/middleware"
	"github.com/Shalini-Dasari/TrustMed/internal/utils/lending"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// EligibilityHandler computes loan eligibility for the authenticated account.
type EligibilityHandler struct {
	sessions portssvc.SessionSvcFacade
}

// NewEligibilityHandler creates a new EligibilityHandler.
func NewEligibilityHandler(sessions portssvc.SessionSvcFacade) *EligibilityHandler {
	return &EligibilityHandler{sessions: sessions}
}

// CheckEligibility godoc
// @Summary Compute maximum loan amount
// @Description Derives the maximum loan amount from declared income, declared assets, and the account's stored credit score
// @Tags eligibility
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   financials body dto.EligibilityRequest true "Declared financials"
// @Success 200 {object} dto.EligibilityResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Eligibility check failed"
// @Router /eligibility [post]
func (h *EligibilityHandler) CheckEligibility(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.EligibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for eligibility request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	account, err := h.sessions.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		logger.Error("Failed to load account for eligibility check", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Eligibility check failed"})
		return
	}

	assets := make([]decimal.Decimal, len(req.AssetValues))
	for i, v := range req.AssetValues {
		assets[i] = decimal.NewFromFloat(v)
	}
	maxLoan := lending.MaxLoan(decimal.NewFromFloat(req.MonthlyIncome), assets, account.CreditScore)

	c.JSON(http.StatusOK, dto.EligibilityResponse{
		MaxLoanAmount: maxLoan.String(),
		CreditScore:   account.CreditScore,
	})
}
