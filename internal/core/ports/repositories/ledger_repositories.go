package repositories

import (
	"context"

	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
)

// LedgerReader defines read operations for ledger entries
type LedgerReader interface {
	// FindEntriesByAccount retrieves ledger entries for an account,
	// newest first, narrowed by the filter. It returns the page of
	// entries and an opaque token for the next page ("" when done).
	FindEntriesByAccount(ctx context.Context, accountID int64, filter domain.LedgerFilter) ([]domain.LedgerEntry, string, error)
}

// LedgerWriter defines write operations for ledger entries
type LedgerWriter interface {
	// RecordEntry inserts a ledger entry and adjusts the owning
	// account's balance in the same transaction. It returns the
	// persisted entry with its assigned primary key.
	RecordEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error)
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
