package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Shalini-Dasari/TrustMed/internal/apperrors"
	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
	portsrepo "github.com/Shalini-Dasari/TrustMed/internal/core/ports/repositories"
	portssvc "github.com/Shalini-Dasari/TrustMed/internal/core/ports/services"
	"github.com/Shalini-Dasari/TrustMed/internal/core/session"
	"github.com/Shalini-Dasari/TrustMed/internal/dto"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// LedgerService records deposit/withdrawal events and lists history.
type LedgerService struct {
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	accountRepo portsrepo.AccountReader
	session     *session.Context
}

func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, accountRepo portsrepo.AccountReader, sess *session.Context) portssvc.LedgerSvcFacade {
	return &LedgerService{ledgerRepo: ledgerRepo, accountRepo: accountRepo, session: sess}
}

var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

// Record persists the entry and the balance adjustment together, then
// refreshes the session snapshot when the entry belongs to the active
// account (its cached balance just changed).
func (s *LedgerService) Record(ctx context.Context, accountID int64, req dto.RecordEntryRequest) (*domain.LedgerEntry, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	now := time.Now()
	entry := domain.LedgerEntry{
		AccountID:   accountID,
		Type:        domain.EntryType(req.Type),
		Amount:      decimal.NewFromFloat(req.Amount),
		Date:        date,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	persisted, err := s.ledgerRepo.RecordEntry(ctx, entry)
	if err != nil {
		return nil, classifyStoreError(err)
	}

	if current, ok := s.session.Current(); ok && current.AccountID == accountID {
		if account, err := s.accountRepo.FindAccountByID(ctx, accountID); err == nil {
			s.session.Set(account)
		}
	}
	return persisted, nil
}

// List returns ledger entries for the account, newest first.
func (s *LedgerService) List(ctx context.Context, accountID int64, filter domain.LedgerFilter) ([]domain.LedgerEntry, string, error) {
	entries, nextToken, err := s.ledgerRepo.FindEntriesByAccount(ctx, accountID, filter)
	if err != nil {
		return nil, "", classifyStoreError(err)
	}
	return entries, nextToken, nil
}
