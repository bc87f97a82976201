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

// --- Mock AccountRepository (based on SessionService usage) ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (int64, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, accountID int64, patch domain.AccountPatch) error {
	args := m.Called(ctx, accountID, patch)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateRefreshToken(ctx context.Context, accountID int64, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, accountID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockAccountRepository) ClearRefreshToken(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// --- Test Suite ---
type SessionServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	sess            *session.Context
	service         portssvc.SessionSvcFacade
}

func (suite *SessionServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.sess = session.NewContext()
	suite.service = services.NewSessionService(suite.mockAccountRepo, suite.sess)
}

func storedAccount() *domain.Account {
	return &domain.Account{
		AccountID:   21,
		Email:       "ada@example.com",
		Password:    "s3cret",
		FullName:    "Ada Lovelace",
		CreditScore: 720,
		Card: domain.Card{
			Number: "1234 5678 9012 3456",
			Expiry: "09/29",
			CVV:    "123",
			Status: domain.CardActive,
		},
		Balance:   decimal.NewFromInt(100),
		Documents: []string{},
	}
}

// --- Login Tests ---

func (suite *SessionServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	account := storedAccount()

	suite.mockAccountRepo.On("FindAccountByEmail", ctx, "ada@example.com").Return(account, nil).Once()

	loggedIn, err := suite.service.Login(ctx, "ada@example.com", "s3cret")

	suite.Require().NoError(err)
	suite.Require().NotNil(loggedIn)
	suite.Equal(account.AccountID, loggedIn.AccountID)

	current, ok := suite.service.Current()
	suite.True(ok, "successful login should publish the session snapshot")
	suite.Equal(account.AccountID, current.AccountID)

	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByEmail", ctx, "ada@example.com").Return(storedAccount(), nil).Once()

	loggedIn, err := suite.service.Login(ctx, "ada@example.com", "S3CRET")

	suite.Require().ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.Nil(loggedIn)
	suite.False(suite.sess.IsAuthenticated(), "failed login must not publish a session")

	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestLogin_UnknownEmailSameError() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Login(ctx, "nobody@example.com", "whatever")

	// An unknown email and a wrong password must be indistinguishable.
	suite.Require().ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestLogin_EmptyPasswordRejected() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByEmail", ctx, "ada@example.com").Return(storedAccount(), nil).Once()

	_, err := suite.service.Login(ctx, "ada@example.com", "")

	suite.Require().ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestLogin_StoreErrorTagged() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByEmail", ctx, "ada@example.com").Return(nil, assert.AnError).Once()

	_, err := suite.service.Login(ctx, "ada@example.com", "s3cret")

	suite.Require().ErrorIs(err, apperrors.ErrStoreUnavailable)
	suite.NotErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

// --- Logout Tests ---

func (suite *SessionServiceTestSuite) TestLogout_ClearsSession() {
	suite.sess.Set(storedAccount())

	suite.service.Logout()

	suite.False(suite.sess.IsAuthenticated())

	// Logging out while anonymous is a no-op.
	suite.service.Logout()
	suite.False(suite.sess.IsAuthenticated())
}

// --- Signup Tests ---

func (suite *SessionServiceTestSuite) TestSignup_Success() {
	ctx := context.Background()
	req := dto.SignupRequest{
		FullName:    "Grace Hopper",
		Email:       "grace@example.com",
		Password:    "compilers",
		CreditScore: 810,
	}

	persisted := storedAccount()
	persisted.AccountID = 30
	persisted.Email = req.Email
	persisted.FullName = req.FullName
	persisted.CreditScore = req.CreditScore
	persisted.Balance = decimal.Zero

	suite.mockAccountRepo.On("FindAccountByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Email == req.Email &&
			a.FullName == req.FullName &&
			a.CreditScore == req.CreditScore &&
			a.Balance.IsZero() &&
			a.Documents != nil && len(a.Documents) == 0 &&
			a.Card.Issued() && a.Card.Status == domain.CardActive
	})).Return(int64(30), nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, int64(30)).Return(persisted, nil).Once()

	created, err := suite.service.Signup(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(int64(30), created.AccountID)

	current, ok := suite.service.Current()
	suite.True(ok, "signup should publish the new account as the session")
	suite.Equal(int64(30), current.AccountID)

	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestSignup_DuplicateEmail() {
	ctx := context.Background()
	req := dto.SignupRequest{
		FullName: "Ada Again",
		Email:    "ada@example.com",
		Password: "another",
	}

	suite.mockAccountRepo.On("FindAccountByEmail", ctx, req.Email).Return(storedAccount(), nil).Once()

	created, err := suite.service.Signup(ctx, req)

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(created)
	suite.False(suite.sess.IsAuthenticated())
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestSignup_RaceSurfacesDuplicate() {
	ctx := context.Background()
	req := dto.SignupRequest{
		FullName: "Ada Again",
		Email:    "ada@example.com",
		Password: "another",
	}

	// A concurrent signup can slip between the existence check and the
	// insert; the store's unique constraint still reports it.
	suite.mockAccountRepo.On("FindAccountByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.Anything).Return(int64(0), apperrors.ErrDuplicate).Once()

	_, err := suite.service.Signup(ctx, req)

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

// --- UpdatePartial Tests ---

func (suite *SessionServiceTestSuite) TestUpdatePartial_RefreshesActiveSession() {
	ctx := context.Background()
	account := storedAccount()
	suite.sess.Set(account)

	frozen := domain.CardFrozen
	patch := domain.AccountPatch{CardStatus: &frozen}

	updated := storedAccount()
	updated.Card.Status = domain.CardFrozen

	suite.mockAccountRepo.On("UpdateAccount", ctx, account.AccountID, patch).Return(nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(updated, nil).Once()

	result, err := suite.service.UpdatePartial(ctx, account.AccountID, patch)

	suite.Require().NoError(err)
	suite.Equal(domain.CardFrozen, result.Card.Status)

	// Untouched fields survive the partial update.
	suite.Equal(account.Email, result.Email)
	suite.Equal(account.Card.Number, result.Card.Number)
	suite.True(account.Balance.Equal(result.Balance))

	current, ok := suite.service.Current()
	suite.True(ok)
	suite.Equal(domain.CardFrozen, current.Card.Status, "active session snapshot should be refreshed")

	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestUpdatePartial_OtherAccountLeavesSessionAlone() {
	ctx := context.Background()
	suite.sess.Set(storedAccount()) // account 21 is active

	otherID := int64(99)
	balance := decimal.NewFromInt(500)
	patch := domain.AccountPatch{Balance: &balance}

	other := storedAccount()
	other.AccountID = otherID
	other.Balance = balance

	suite.mockAccountRepo.On("UpdateAccount", ctx, otherID, patch).Return(nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, otherID).Return(other, nil).Once()

	result, err := suite.service.UpdatePartial(ctx, otherID, patch)

	suite.Require().NoError(err)
	suite.Equal(otherID, result.AccountID)

	current, ok := suite.service.Current()
	suite.True(ok)
	suite.Equal(int64(21), current.AccountID, "session must still point at the original account")
	suite.True(current.Balance.Equal(decimal.NewFromInt(100)), "session balance must be untouched")

	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestUpdatePartial_NotFound() {
	ctx := context.Background()
	balance := decimal.NewFromInt(500)
	patch := domain.AccountPatch{Balance: &balance}

	suite.mockAccountRepo.On("UpdateAccount", ctx, int64(404), patch).Return(apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdatePartial(ctx, int64(404), patch)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

// --- Refresh Token Tests ---

func (suite *SessionServiceTestSuite) TestUpdateRefreshToken() {
	ctx := context.Background()
	expiry := time.Now().Add(24 * time.Hour)

	suite.mockAccountRepo.On("UpdateRefreshToken", ctx, int64(21), "hash", expiry).Return(nil).Once()

	err := suite.service.UpdateRefreshToken(ctx, 21, "hash", expiry)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestClearRefreshToken_StoreErrorTagged() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ClearRefreshToken", ctx, int64(21)).Return(assert.AnError).Once()

	err := suite.service.ClearRefreshToken(ctx, 21)

	suite.Require().ErrorIs(err, apperrors.ErrStoreUnavailable)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}
