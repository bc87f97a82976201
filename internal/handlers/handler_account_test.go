package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Shalini-Dasari/TrustMed/internal/apperrors"
	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
	portssvc "github.com/Shalini-Dasari/TrustMed/internal/core/ports/services"
	"github.com/Shalini-Dasari/TrustMed/internal/dto"
	"github.com/Shalini-Dasari/TrustMed/internal/handlers"
	"github.com/Shalini-Dasari/TrustMed/internal/middleware"
	"github.com/Shalini-Dasari/TrustMed/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SessionService ---
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Current() (*domain.Account, bool) {
	args := m.Called()
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Bool(1)
}

func (m *MockSessionService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockSessionService) Login(ctx context.Context, email, password string) (*domain.Account, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockSessionService) Logout() {
	m.Called()
}

func (m *MockSessionService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockSessionService) UpdateRefreshToken(ctx context.Context, accountID int64, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, accountID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockSessionService) ClearRefreshToken(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockSessionService) UpdatePartial(ctx context.Context, accountID int64, patch domain.AccountPatch) (*domain.Account, error) {
	args := m.Called(ctx, accountID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.SessionSvcFacade = (*MockSessionService)(nil)

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockSessionService *MockSessionService
	jwtSecret          string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *AccountHandlerTestSuite) generateTestToken(accountID int64) string {
	token, err := utils.GenerateJWT(accountID, suite.jwtSecret, time.Hour, "trustmed-test")
	suite.Require().NoError(err)
	return token
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockSessionService = new(MockSessionService)
	h := handlers.NewAccountHandler(suite.mockSessionService)

	v1 := suite.router.Group("/api/v1")
	v1.GET("/accounts/me", h.GetCurrentAccount)
	v1.POST("/accounts/me/card", h.RegenerateCard)
	v1.PATCH("/accounts/me/card/status", h.UpdateCardStatus)
}

func activeAccount(accountID int64) *domain.Account {
	return &domain.Account{
		AccountID:   accountID,
		Email:       "ada@example.com",
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

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestGetCurrentAccount_Success() {
	accountID := int64(21)
	suite.mockSessionService.On("GetAccountByID", mock.Anything, accountID).Return(activeAccount(accountID), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/me", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(accountID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(accountID, resp.AccountID)
	suite.Equal("ada@example.com", resp.Email)
	suite.Equal("1234 5678 9012 3456", resp.CardNumber)
	suite.Equal("active", resp.CardStatus)

	suite.mockSessionService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestGetCurrentAccount_MissingToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/me", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSessionService.AssertNotCalled(suite.T(), "GetAccountByID", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestGetCurrentAccount_NotFound() {
	accountID := int64(404)
	suite.mockSessionService.On("GetAccountByID", mock.Anything, accountID).Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/me", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(accountID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockSessionService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestRegenerateCard_Success() {
	accountID := int64(21)

	updated := activeAccount(accountID)
	updated.Card.Number = "9999 8888 7777 6666"

	suite.mockSessionService.On("UpdatePartial", mock.Anything, accountID, mock.MatchedBy(func(patch domain.AccountPatch) bool {
		return patch.Card != nil && patch.Card.Issued() && patch.Card.Status == domain.CardActive
	})).Return(updated, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/me/card", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(accountID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("9999 8888 7777 6666", resp.CardNumber)

	suite.mockSessionService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestUpdateCardStatus_Freeze() {
	accountID := int64(21)

	updated := activeAccount(accountID)
	updated.Card.Status = domain.CardFrozen

	suite.mockSessionService.On("UpdatePartial", mock.Anything, accountID, mock.MatchedBy(func(patch domain.AccountPatch) bool {
		return patch.CardStatus != nil && *patch.CardStatus == domain.CardFrozen && patch.Card == nil
	})).Return(updated, nil).Once()

	body, _ := json.Marshal(dto.UpdateCardStatusRequest{Status: "frozen"})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/accounts/me/card/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(accountID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("frozen", resp.CardStatus)

	suite.mockSessionService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestUpdateCardStatus_InvalidStatus() {
	accountID := int64(21)

	body := []byte(`{"status":"melted"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/accounts/me/card/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(accountID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSessionService.AssertNotCalled(suite.T(), "UpdatePartial", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
