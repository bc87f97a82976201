package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Shalini-Dasari/TrustMed/internal/apperrors"
	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
	portssvc "github.com/Shalini-Dasari/TrustMed/internal/core/ports/services"
	"github.com/Shalini-Dasari/TrustMed/internal/core/services"
	"github.com/Shalini-Dasari/TrustMed/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BillRepository (based on BillService usage) ---
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) SaveBill(ctx context.Context, bill domain.BillRecord) (int64, error) {
	args := m.Called(ctx, bill)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBillRepository) FindBillByID(ctx context.Context, billID int64) (*domain.BillRecord, error) {
	args := m.Called(ctx, billID)
	var bill *domain.BillRecord
	if args.Get(0) != nil {
		bill = args.Get(0).(*domain.BillRecord)
	}
	return bill, args.Error(1)
}

func (m *MockBillRepository) FindBillsByAccount(ctx context.Context, accountID int64, status *domain.BillStatus, limit, offset int) ([]domain.BillRecord, error) {
	args := m.Called(ctx, accountID, status, limit, offset)
	var bills []domain.BillRecord
	if args.Get(0) != nil {
		bills = args.Get(0).([]domain.BillRecord)
	}
	return bills, args.Error(1)
}

func (m *MockBillRepository) UpdateBillStatus(ctx context.Context, billID int64, status domain.BillStatus) error {
	args := m.Called(ctx, billID, status)
	return args.Error(0)
}

// --- Test Suite ---
type BillServiceTestSuite struct {
	suite.Suite
	mockBillRepo *MockBillRepository
	service      portssvc.BillSvcFacade
}

func (suite *BillServiceTestSuite) SetupTest() {
	suite.mockBillRepo = new(MockBillRepository)
	suite.service = services.NewBillService(suite.mockBillRepo)
}

func pendingBill() *domain.BillRecord {
	return &domain.BillRecord{
		BillID:      5,
		AccountID:   21,
		DocumentRef: "data:application/pdf;base64,aGk=",
		Date:        time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromInt(180),
		Status:      domain.BillPending,
	}
}

// --- Submit Tests ---

func (suite *BillServiceTestSuite) TestSubmit_Success() {
	ctx := context.Background()
	req := dto.SubmitBillRequest{
		DocumentRef: "data:application/pdf;base64,aGk=",
		Date:        "2025-07-20",
		Amount:      180,
	}

	suite.mockBillRepo.On("SaveBill", ctx, mock.MatchedBy(func(b domain.BillRecord) bool {
		return b.AccountID == 21 &&
			b.Status == domain.BillPending &&
			b.DocumentRef == req.DocumentRef &&
			b.Amount.Equal(decimal.NewFromInt(180))
	})).Return(int64(5), nil).Once()
	suite.mockBillRepo.On("FindBillByID", ctx, int64(5)).Return(pendingBill(), nil).Once()

	bill, err := suite.service.Submit(ctx, 21, req)

	suite.Require().NoError(err)
	suite.Equal(int64(5), bill.BillID)
	suite.Equal(domain.BillPending, bill.Status, "new bills always start pending")
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestSubmit_InvalidDate() {
	ctx := context.Background()
	req := dto.SubmitBillRequest{
		DocumentRef: "ref",
		Date:        "20-07-2025",
		Amount:      180,
	}

	_, err := suite.service.Submit(ctx, 21, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "SaveBill", mock.Anything, mock.Anything)
}

// --- List Tests ---

func (suite *BillServiceTestSuite) TestList_FiltersByStatus() {
	ctx := context.Background()
	status := domain.BillApproved
	bills := []domain.BillRecord{*pendingBill()}
	bills[0].Status = domain.BillApproved

	suite.mockBillRepo.On("FindBillsByAccount", ctx, int64(21), &status, 20, 0).Return(bills, nil).Once()

	got, err := suite.service.List(ctx, 21, &status, 20, 0)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.Equal(domain.BillApproved, got[0].Status)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

// --- SetStatus Tests ---

func (suite *BillServiceTestSuite) TestSetStatus_ApprovePending() {
	ctx := context.Background()

	approved := pendingBill()
	approved.Status = domain.BillApproved

	suite.mockBillRepo.On("FindBillByID", ctx, int64(5)).Return(pendingBill(), nil).Once()
	suite.mockBillRepo.On("UpdateBillStatus", ctx, int64(5), domain.BillApproved).Return(nil).Once()
	suite.mockBillRepo.On("FindBillByID", ctx, int64(5)).Return(approved, nil).Once()

	bill, err := suite.service.SetStatus(ctx, 5, domain.BillApproved)

	suite.Require().NoError(err)
	suite.Equal(domain.BillApproved, bill.Status)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestSetStatus_CannotResolveTwice() {
	ctx := context.Background()

	rejected := pendingBill()
	rejected.Status = domain.BillRejected

	suite.mockBillRepo.On("FindBillByID", ctx, int64(5)).Return(rejected, nil).Once()

	_, err := suite.service.SetStatus(ctx, 5, domain.BillApproved)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "UpdateBillStatus", mock.Anything, mock.Anything, mock.Anything)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestSetStatus_PendingIsNotATarget() {
	ctx := context.Background()

	_, err := suite.service.SetStatus(ctx, 5, domain.BillPending)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "FindBillByID", mock.Anything, mock.Anything)
}

func (suite *BillServiceTestSuite) TestSetStatus_UnknownStatusRejected() {
	ctx := context.Background()

	_, err := suite.service.SetStatus(ctx, 5, domain.BillStatus("archived"))

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BillServiceTestSuite) TestSetStatus_NotFound() {
	ctx := context.Background()

	suite.mockBillRepo.On("FindBillByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.SetStatus(ctx, 404, domain.BillRejected)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func TestBillServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillServiceTestSuite))
}
