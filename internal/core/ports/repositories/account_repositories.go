package repositories

import (
	"context"
	"time"

	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its primary key.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// FindAccountByEmail retrieves the unique account registered with the given email.
	FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account and returns the store-assigned primary key.
	SaveAccount(ctx context.Context, account domain.Account) (int64, error)

	// UpdateAccount applies a typed partial update to the identified account.
	UpdateAccount(ctx context.Context, accountID int64, patch domain.AccountPatch) error

	// UpdateRefreshToken stores the refresh token hash and expiry for an account.
	UpdateRefreshToken(ctx context.Context, accountID int64, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken removes the stored refresh token for an account.
	ClearRefreshToken(ctx context.Context, accountID int64) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
