package dto

import (
	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
)

// SubmitBillRequest creates one medical bill record for review.
type SubmitBillRequest struct {
	DocumentRef string  `json:"documentRef" binding:"required"`
	Date        string  `json:"date" binding:"required"` // YYYY-MM-DD
	Amount      float64 `json:"amount" binding:"required,gt=0"`
}

// UpdateBillStatusRequest resolves a pending bill.
type UpdateBillStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

// ListBillsParams defines query parameters for listing bill records.
type ListBillsParams struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// BillResponse is the externally visible shape of a bill record.
type BillResponse struct {
	BillID      int64  `json:"billID"`
	DocumentRef string `json:"documentRef"`
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Status      string `json:"status"`
}

// ListBillsResponse wraps a list of bill records.
type ListBillsResponse struct {
	Bills []BillResponse `json:"bills"`
}

// ToBillResponse converts a domain BillRecord to its DTO
func ToBillResponse(b domain.BillRecord) BillResponse {
	return BillResponse{
		BillID:      b.BillID,
		DocumentRef: b.DocumentRef,
		Date:        b.Date.Format("2006-01-02"),
		Amount:      b.Amount.String(),
		Status:      string(b.Status),
	}
}

// ToListBillsResponse converts domain bills to the list DTO
func ToListBillsResponse(bills []domain.BillRecord) ListBillsResponse {
	resp := ListBillsResponse{Bills: make([]BillResponse, len(bills))}
	for i, b := range bills {
		resp.Bills[i] = ToBillResponse(b)
	}
	return resp
}
