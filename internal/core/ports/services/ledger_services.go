package services

import (
	"context"

	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
	"github.com/Shalini-Dasari/TrustMed/internal/dto"
)

// LedgerSvcFacade records and lists deposit/withdrawal events.
type LedgerSvcFacade interface {
	// Record persists a ledger entry and adjusts the account balance.
	Record(ctx context.Context, accountID int64, req dto.RecordEntryRequest) (*domain.LedgerEntry, error)

	// List returns ledger entries for an account, newest first, with
	// an opaque next-page token ("" when there are no more pages).
	List(ctx context.Context, accountID int64, filter domain.LedgerFilter) ([]domain.LedgerEntry, string, error)
}
