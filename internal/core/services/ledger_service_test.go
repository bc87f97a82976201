package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Shalini-Dasari/TrustMed/internal/apperrors"
	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
	portssvc "github.com/Shalini-Dasari/TrustMed/internal/core/ports/services"
	"github.com/Shalini-Dasari/TrustMed/internal/core/services"
	"github.com/Shalini-Dasari/TrustMed/internal/core/session"
	"github.com/Shalini-Dasari/TrustMed/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerRepository (based on LedgerService usage) ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) RecordEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entry)
	var persisted *domain.LedgerEntry
	if args.Get(0) != nil {
		persisted = args.Get(0).(*domain.LedgerEntry)
	}
	return persisted, args.Error(1)
}

func (m *MockLedgerRepository) FindEntriesByAccount(ctx context.Context, accountID int64, filter domain.LedgerFilter) ([]domain.LedgerEntry, string, error) {
	args := m.Called(ctx, accountID, filter)
	var entries []domain.LedgerEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.LedgerEntry)
	}
	return entries, args.String(1), args.Error(2)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo  *MockLedgerRepository
	mockAccountRepo *MockAccountRepository
	sess            *session.Context
	service         portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.sess = session.NewContext()
	suite.service = services.NewLedgerService(suite.mockLedgerRepo, suite.mockAccountRepo, suite.sess)
}

// --- Record Tests ---

func (suite *LedgerServiceTestSuite) TestRecord_Success() {
	ctx := context.Background()
	req := dto.RecordEntryRequest{
		Type:        "deposit",
		Amount:      250.50,
		Date:        "2025-08-01",
		Description: "insurance reimbursement",
	}

	persisted := &domain.LedgerEntry{
		EntryID:     10,
		AccountID:   21,
		Type:        domain.Deposit,
		Amount:      decimal.NewFromFloat(250.50),
		Date:        time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		Description: req.Description,
	}

	suite.mockLedgerRepo.On("RecordEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.AccountID == 21 &&
			e.Type == domain.Deposit &&
			e.Amount.Equal(decimal.NewFromFloat(250.50)) &&
			e.Date.Equal(time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC))
	})).Return(persisted, nil).Once()

	entry, err := suite.service.Record(ctx, 21, req)

	suite.Require().NoError(err)
	suite.Equal(int64(10), entry.EntryID)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecord_InvalidDate() {
	ctx := context.Background()
	req := dto.RecordEntryRequest{
		Type:        "deposit",
		Amount:      10,
		Date:        "01/08/2025",
		Description: "bad date format",
	}

	_, err := suite.service.Record(ctx, 21, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "RecordEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecord_RefreshesActiveSessionBalance() {
	ctx := context.Background()
	active := storedAccount() // account 21, balance 100
	suite.sess.Set(active)

	req := dto.RecordEntryRequest{
		Type:        "withdrawal",
		Amount:      40,
		Date:        "2025-08-02",
		Description: "pharmacy",
	}

	persisted := &domain.LedgerEntry{EntryID: 11, AccountID: 21, Type: domain.Withdrawal, Amount: decimal.NewFromInt(40)}
	refreshed := storedAccount()
	refreshed.Balance = decimal.NewFromInt(60)

	suite.mockLedgerRepo.On("RecordEntry", ctx, mock.Anything).Return(persisted, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(21)).Return(refreshed, nil).Once()

	_, err := suite.service.Record(ctx, 21, req)

	suite.Require().NoError(err)
	current, ok := suite.sess.Current()
	suite.True(ok)
	suite.True(current.Balance.Equal(decimal.NewFromInt(60)), "session balance should track the store")

	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecord_OtherAccountSkipsSessionRefresh() {
	ctx := context.Background()
	suite.sess.Set(storedAccount()) // account 21 is active

	req := dto.RecordEntryRequest{
		Type:        "deposit",
		Amount:      5,
		Date:        "2025-08-02",
		Description: "other account",
	}

	persisted := &domain.LedgerEntry{EntryID: 12, AccountID: 99, Type: domain.Deposit, Amount: decimal.NewFromInt(5)}
	suite.mockLedgerRepo.On("RecordEntry", ctx, mock.Anything).Return(persisted, nil).Once()

	_, err := suite.service.Record(ctx, 99, req)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByID", mock.Anything, mock.Anything)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecord_StoreErrorTagged() {
	ctx := context.Background()
	req := dto.RecordEntryRequest{
		Type:        "deposit",
		Amount:      5,
		Date:        "2025-08-02",
		Description: "store down",
	}

	suite.mockLedgerRepo.On("RecordEntry", ctx, mock.Anything).Return(nil, assert.AnError).Once()

	_, err := suite.service.Record(ctx, 21, req)

	suite.Require().ErrorIs(err, apperrors.ErrStoreUnavailable)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

// --- List Tests ---

func (suite *LedgerServiceTestSuite) TestList_PassesFilterThrough() {
	ctx := context.Background()
	entryType := domain.Withdrawal
	filter := domain.LedgerFilter{Type: &entryType, Limit: 10}

	entries := []domain.LedgerEntry{
		{EntryID: 3, AccountID: 21, Type: domain.Withdrawal, Amount: decimal.NewFromInt(7)},
	}

	suite.mockLedgerRepo.On("FindEntriesByAccount", ctx, int64(21), filter).Return(entries, "next-token", nil).Once()

	got, nextToken, err := suite.service.List(ctx, 21, filter)

	suite.Require().NoError(err)
	suite.Equal(entries, got)
	suite.Equal("next-token", nextToken)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
