package services

import (
	"context"
	"time"

	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
	"github.com/Shalini-Dasari/TrustMed/internal/dto"
)

// SessionReaderSvc defines read operations against the active session and account store
type SessionReaderSvc interface {
	// Current returns the active session's account snapshot, if any.
	Current() (*domain.Account, bool)

	// GetAccountByID retrieves an account by its primary key.
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)
}

// SessionAuthSvc defines authentication operations
type SessionAuthSvc interface {
	// Login authenticates by email and exact password match. On
	// success the account becomes the active session snapshot.
	Login(ctx context.Context, email, password string) (*domain.Account, error)

	// Logout clears the active session unconditionally.
	Logout()

	// Signup registers a new account with a freshly issued instrument
	// and makes it the active session.
	Signup(ctx context.Context, req dto.SignupRequest) (*domain.Account, error)

	// UpdateRefreshToken stores the refresh token details for an account.
	UpdateRefreshToken(ctx context.Context, accountID int64, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken clears the refresh token for an account.
	ClearRefreshToken(ctx context.Context, accountID int64) error
}

// SessionWriterSvc defines account mutation operations
type SessionWriterSvc interface {
	// UpdatePartial applies a typed partial update to the identified
	// account and returns the re-read record. The session snapshot is
	// refreshed only when the target matches the active session.
	UpdatePartial(ctx context.Context, accountID int64, patch domain.AccountPatch) (*domain.Account, error)
}

// SessionSvcFacade combines all session-related service interfaces
type SessionSvcFacade interface {
	SessionReaderSvc
	SessionAuthSvc
	SessionWriterSvc
}
