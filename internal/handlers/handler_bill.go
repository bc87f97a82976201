package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Shalini-Dasari/TrustMed/internal/apperrors"
	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
	portssvc "github.com/Shalini-Dasari/TrustMed/internal/core/ports/services"
	"github.com/Shalini-Dasari/TrustMed/internal/dto"
	"github.com/Shalini-Dasari/TrustMed/internal/middleware"
	"github.com/gin-gonic/gin"
)

// BillHandler handles medical bill record requests.
type BillHandler struct {
	bills portssvc.BillSvcFacade
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(bills portssvc.BillSvcFacade) *BillHandler {
	return &BillHandler{bills: bills}
}

// SubmitBill godoc
// @Summary Submit a bill for review
// @Description Creates a bill record in the pending state, referencing an uploaded document
// @Tags bills
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   bill body dto.SubmitBillRequest true "Bill details"
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to submit bill"
// @Router /accounts/me/bills [post]
func (h *BillHandler) SubmitBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SubmitBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for bill submission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	bill, err := h.bills.Submit(c.Request.Context(), accountID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
			return
		}
		logger.Error("Failed to submit bill", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to submit bill"})
		return
	}

	logger.Info("Bill submitted", slog.Int64("account_id", accountID), slog.Int64("bill_id", bill.BillID))
	c.JSON(http.StatusCreated, dto.ToBillResponse(*bill))
}

// ListBills godoc
// @Summary List bill records
// @Description Returns the account's bill records newest first, optionally narrowed to one status
// @Tags bills
// @Produce  json
// @Security BearerAuth
// @Param   status query string false "Bill status" Enums(pending, approved, rejected)
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListBillsResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to list bills"
// @Router /accounts/me/bills [get]
func (h *BillHandler) ListBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListBillsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query for bill listing", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	var status *domain.BillStatus
	if params.Status != "" {
		s := domain.BillStatus(params.Status)
		status = &s
	}

	bills, err := h.bills.List(c.Request.Context(), accountID, status, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list bills", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list bills"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBillsResponse(bills))
}

// UpdateBillStatus godoc
// @Summary Resolve a pending bill
// @Description Moves a pending bill to approved or rejected; resolved bills cannot change again
// @Tags bills
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   billID path int true "Bill ID"
// @Param   status body dto.UpdateBillStatusRequest true "Target status"
// @Success 200 {object} dto.BillResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Bill not found"
// @Failure 409 {object} ErrorResponse "Bill already resolved"
// @Router /bills/{billID}/status [patch]
func (h *BillHandler) UpdateBillStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	billID, err := strconv.ParseInt(c.Param("billID"), 10, 64)
	if err != nil || billID <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	var req dto.UpdateBillStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for bill status update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	bill, err := h.bills.SetStatus(c.Request.Context(), billID, domain.BillStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Bill not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Bill already resolved"})
		default:
			logger.Error("Failed to update bill status", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update bill"})
		}
		return
	}

	logger.Info("Bill status updated", slog.Int64("bill_id", billID), slog.String("status", req.Status))
	c.JSON(http.StatusOK, dto.ToBillResponse(*bill))
}
