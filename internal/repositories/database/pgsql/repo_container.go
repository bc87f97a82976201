package pgsql

import (
	portsrepo "github.com/Shalini-Dasari/TrustMed/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryContainer assembles all pgsql-backed repositories over
// one shared connection pool.
func NewRepositoryContainer(pool *pgxpool.Pool) *portsrepo.RepositoryContainer {
	return &portsrepo.RepositoryContainer{
		Account: NewAccountRepository(pool),
		Ledger:  NewLedgerRepository(pool),
		Bill:    NewBillRepository(pool),
	}
}
