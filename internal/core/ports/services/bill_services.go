package services

import (
	"context"

	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
	"github.com/Shalini-Dasari/TrustMed/internal/dto"
)

// BillSvcFacade manages uploaded medical bill records.
type BillSvcFacade interface {
	// Submit creates a new bill record in the pending state.
	Submit(ctx context.Context, accountID int64, req dto.SubmitBillRequest) (*domain.BillRecord, error)

	// List returns bill records for an account, newest first,
	// optionally narrowed to one status.
	List(ctx context.Context, accountID int64, status *domain.BillStatus, limit, offset int) ([]domain.BillRecord, error)

	// SetStatus moves a pending bill to approved or rejected.
	SetStatus(ctx context.Context, billID int64, status domain.BillStatus) (*domain.BillRecord, error)
}
