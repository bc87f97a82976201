package repositories

import (
	"context"

	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
)

// BillReader defines read operations for bill records
type BillReader interface {
	// FindBillByID retrieves a specific bill record by its primary key.
	FindBillByID(ctx context.Context, billID int64) (*domain.BillRecord, error)

	// FindBillsByAccount retrieves bill records for an account, newest
	// first, optionally narrowed to one status.
	FindBillsByAccount(ctx context.Context, accountID int64, status *domain.BillStatus, limit, offset int) ([]domain.BillRecord, error)
}

// BillWriter defines write operations for bill records
type BillWriter interface {
	// SaveBill persists a new bill record and returns the store-assigned primary key.
	SaveBill(ctx context.Context, bill domain.BillRecord) (int64, error)

	// UpdateBillStatus sets the review status of a bill record.
	UpdateBillStatus(ctx context.Context, billID int64, status domain.BillStatus) error
}

// BillRepositoryFacade combines all bill-related repository interfaces
type BillRepositoryFacade interface {
	BillReader
	BillWriter
}
