package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Shalini-Dasari/TrustMed/internal/apperrors"
	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
	portsrepo "github.com/Shalini-Dasari/TrustMed/internal/core/ports/repositories"
	portssvc "github.com/Shalini-Dasari/TrustMed/internal/core/ports/services"
	"github.com/Shalini-Dasari/TrustMed/internal/core/session"
	"github.com/Shalini-Dasari/TrustMed/internal/dto"
	"github.com/Shalini-Dasari/TrustMed/internal/utils/instrument"
	"github.com/shopspring/decimal"
)

// SessionService mediates all account authentication and mutation and
// owns publishing snapshots into the injected session context.
type SessionService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	session     *session.Context
}

func NewSessionService(accountRepo portsrepo.AccountRepositoryFacade, sess *session.Context) portssvc.SessionSvcFacade {
	return &SessionService{accountRepo: accountRepo, session: sess}
}

var _ portssvc.SessionSvcFacade = (*SessionService)(nil)

// classifyStoreError keeps the taggable sentinels intact and folds
// everything else into ErrStoreUnavailable.
func classifyStoreError(err error) error {
	if errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrDuplicate) ||
		errors.Is(err, apperrors.ErrValidation) {
		return err
	}
	return fmt.Errorf("%w: %w", apperrors.ErrStoreUnavailable, err)
}

// Login authenticates by email and exact password match. The stored
// password is compared byte-for-byte (case-sensitive, no trimming),
// matching the product's plain-text credential handling; an unknown
// email and a wrong password are indistinguishable to the caller.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, classifyStoreError(err)
	}

	if account.Password != password {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.session.Set(account)
	return account, nil
}

// Logout clears the active session. Idempotent from the anonymous state.
func (s *SessionService) Logout() {
	s.session.Clear()
}

// Signup registers a new account. The instrument is issued up front,
// the record is persisted with a zero balance and no documents, then
// re-read by its assigned primary key and published as the session.
func (s *SessionService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.Account, error) {
	existing, err := s.accountRepo.FindAccountByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, classifyStoreError(err)
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicate
	}

	now := time.Now()
	account := domain.Account{
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		CreditScore: req.CreditScore,
		Card:        instrument.Issue(now),
		Balance:     decimal.Zero,
		Documents:   []string{},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	// The store enforces email uniqueness too; a concurrent signup
	// racing past the read above still surfaces as ErrDuplicate here.
	accountID, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		return nil, classifyStoreError(err)
	}

	persisted, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, classifyStoreError(err)
	}

	s.session.Set(persisted)
	return persisted, nil
}

// UpdatePartial applies a typed partial update, re-reads the full
// record, and republishes it as the session snapshot when the target
// is the active session's account. Updates aimed at another account
// touch the store only.
func (s *SessionService) UpdatePartial(ctx context.Context, accountID int64, patch domain.AccountPatch) (*domain.Account, error) {
	if err := s.accountRepo.UpdateAccount(ctx, accountID, patch); err != nil {
		return nil, classifyStoreError(err)
	}

	updated, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, classifyStoreError(err)
	}

	if current, ok := s.session.Current(); ok && current.AccountID == accountID {
		s.session.Set(updated)
	}
	return updated, nil
}

// Current returns the active session's account snapshot, if any.
func (s *SessionService) Current() (*domain.Account, bool) {
	return s.session.Current()
}

// GetAccountByID retrieves an account by its primary key.
func (s *SessionService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return account, nil
}

// UpdateRefreshToken stores the refresh token details for an account.
func (s *SessionService) UpdateRefreshToken(ctx context.Context, accountID int64, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	if err := s.accountRepo.UpdateRefreshToken(ctx, accountID, refreshTokenHash, refreshTokenExpiryTime); err != nil {
		return classifyStoreError(err)
	}
	return nil
}

// ClearRefreshToken clears the refresh token for an account.
func (s *SessionService) ClearRefreshToken(ctx context.Context, accountID int64) error {
	if err := s.accountRepo.ClearRefreshToken(ctx, accountID); err != nil {
		return classifyStoreError(err)
	}
	return nil
}
