package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Shalini-Dasari/TrustMed/internal/apperrors"
	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
	portsrepo "github.com/Shalini-Dasari/TrustMed/internal/core/ports/repositories"
	portssvc "github.com/Shalini-Dasari/TrustMed/internal/core/ports/services"
	"github.com/Shalini-Dasari/TrustMed/internal/dto"
	"github.com/shopspring/decimal"
)

// BillService manages uploaded medical bill records.
type BillService struct {
	billRepo portsrepo.BillRepositoryFacade
}

func NewBillService(billRepo portsrepo.BillRepositoryFacade) portssvc.BillSvcFacade {
	return &BillService{billRepo: billRepo}
}

var _ portssvc.BillSvcFacade = (*BillService)(nil)

// Submit creates a new bill record in the pending state.
func (s *BillService) Submit(ctx context.Context, accountID int64, req dto.SubmitBillRequest) (*domain.BillRecord, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	now := time.Now()
	bill := domain.BillRecord{
		AccountID:   accountID,
		DocumentRef: req.DocumentRef,
		Date:        date,
		Amount:      decimal.NewFromFloat(req.Amount),
		Status:      domain.BillPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	billID, err := s.billRepo.SaveBill(ctx, bill)
	if err != nil {
		return nil, classifyStoreError(err)
	}

	persisted, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return persisted, nil
}

// List returns the account's bill records, optionally narrowed to one status.
func (s *BillService) List(ctx context.Context, accountID int64, status *domain.BillStatus, limit, offset int) ([]domain.BillRecord, error) {
	bills, err := s.billRepo.FindBillsByAccount(ctx, accountID, status, limit, offset)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return bills, nil
}

// SetStatus resolves a pending bill. Only pending bills may move.
func (s *BillService) SetStatus(ctx context.Context, billID int64, status domain.BillStatus) (*domain.BillRecord, error) {
	if !status.Valid() || status == domain.BillPending {
		return nil, fmt.Errorf("%w: cannot set bill status to %q", apperrors.ErrValidation, status)
	}

	bill, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	if bill.Status != domain.BillPending {
		return nil, fmt.Errorf("%w: bill %d already resolved as %q", apperrors.ErrValidation, billID, bill.Status)
	}

	if err := s.billRepo.UpdateBillStatus(ctx, billID, status); err != nil {
		return nil, classifyStoreError(err)
	}

	updated, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return updated, nil
}
