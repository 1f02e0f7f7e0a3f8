package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/finops_core/internal/apperrors"
	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/SscSPs/finops_core/internal/core/payment"
	"github.com/SscSPs/finops_core/internal/core/services"
	"github.com/SscSPs/finops_core/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	transactionRepo *MockTransactionRepository
	categoryRepo    *MockCategoryRepository
	accountRepo     *MockAccountRepository
	service         *services.TransactionService
	now             time.Time
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.transactionRepo = new(MockTransactionRepository)
	suite.categoryRepo = new(MockCategoryRepository)
	suite.accountRepo = new(MockAccountRepository)
	suite.now = time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	suite.service = services.NewTransactionService(suite.transactionRepo, suite.categoryRepo, suite.accountRepo,
		services.WithTransactionClock(func() time.Time { return suite.now }))

	suite.categoryRepo.On("ListCategories", mock.Anything, companyID).Return([]domain.Category{
		{CategoryID: "cat-rent", Name: "Rent", Kind: domain.Expense, IsActive: true},
		{CategoryID: "cat-sales", Name: "Sales", Kind: domain.Income, IsActive: true},
		{CategoryID: "cat-old", Name: "Old", Kind: domain.Expense, IsActive: false},
	}, nil)
	suite.accountRepo.On("FindAccountByID", mock.Anything, companyID, "acc-1").Return(&domain.Account{AccountID: "acc-1"}, nil)
	suite.accountRepo.On("FindAccountByID", mock.Anything, companyID, "acc-missing").Return(nil, apperrors.ErrNotFound)
}

func expenseRequest() dto.TransactionRequest {
	return dto.TransactionRequest{
		Date:          "2024-05-01",
		Description:   "May rent",
		Amount:        dec("1000.00"),
		Kind:          domain.Expense,
		CategoryID:    "cat-rent",
		AccountID:     "acc-1",
		Method:        "TRANSFER",
		PaymentStatus: domain.Paid,
	}
}

func deltasEqual(want map[string]string) interface{} {
	return mock.MatchedBy(func(got map[string]decimal.Decimal) bool {
		if len(got) != len(want) {
			return false
		}
		for k, v := range want {
			if !got[k].Equal(dec(v)) {
				return false
			}
		}
		return true
	})
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_SinglePaidPayment() {
	ctx := context.Background()
	suite.transactionRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), deltasEqual(map[string]string{"acc-1": "-1000"})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, companyID, expenseRequest(), userID)

	suite.Require().NoError(err)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(domain.Paid, txn.Status)
	suite.Equal("Rent", txn.CategoryName)
	suite.Require().Len(txn.Payments, 1)
	suite.Equal(txn.TransactionID, txn.Payments[0].TransactionID)
	suite.Equal("TRANSFER", txn.Payments[0].Method)
	suite.True(txn.Payments[0].Amount.Equal(dec("1000")))
	suite.Equal(userID, txn.CreatedBy)
	suite.Equal(suite.now, txn.CreatedAt)
	suite.transactionRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_EmptyStatusDefaultsToPaid() {
	ctx := context.Background()
	req := expenseRequest()
	req.PaymentStatus = ""
	suite.transactionRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), deltasEqual(map[string]string{"acc-1": "-1000"})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, companyID, req, userID)

	suite.Require().NoError(err)
	suite.Equal(payment.DefaultStatus, txn.Status)
	suite.Require().Len(txn.Payments, 1)
	suite.Equal(domain.Paid, txn.Payments[0].Status)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_PendingInstallmentsMoveNoBalance() {
	ctx := context.Background()
	req := expenseRequest()
	req.Split = true
	three, one, two := 3, 1, 2
	req.Payments = []dto.PaymentRequest{
		{Amount: dec("333.34"), Date: "2024-05-01", Status: domain.Pending, InstallmentNumber: &one, TotalInstallments: &three},
		{Amount: dec("333.33"), Date: "2024-06-01", Status: domain.Pending, InstallmentNumber: &two, TotalInstallments: &three},
		{Amount: dec("333.33"), Date: "2024-07-01", Status: domain.Pending, InstallmentNumber: &three, TotalInstallments: &three},
	}
	suite.transactionRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), deltasEqual(map[string]string{})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, companyID, req, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Pending, txn.Status)
	suite.Len(txn.Payments, 3)
	for _, p := range txn.Payments {
		suite.NotEmpty(p.PaymentID)
	}
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnbalancedIsRejected() {
	req := expenseRequest()
	req.Split = true
	req.Payments = []dto.PaymentRequest{
		{Amount: dec("600.00"), Date: "2024-05-01", Status: domain.Paid},
		{Amount: dec("300.00"), Date: "2024-06-01", Status: domain.Pending},
	}

	txn, err := suite.service.CreateTransaction(context.Background(), companyID, req, userID)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, apperrors.ErrUnbalanced)
	suite.Contains(err.Error(), "100.00")
	suite.transactionRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ValidationErrors() {
	tests := []struct {
		name   string
		modify func(*dto.TransactionRequest)
	}{
		{"unknown category", func(r *dto.TransactionRequest) { r.CategoryID = "cat-nope" }},
		{"inactive category", func(r *dto.TransactionRequest) { r.CategoryID = "cat-old" }},
		{"kind mismatch", func(r *dto.TransactionRequest) { r.CategoryID = "cat-sales" }},
		{"unknown account", func(r *dto.TransactionRequest) { r.AccountID = "acc-missing" }},
		{"bad date", func(r *dto.TransactionRequest) { r.Date = "01/05/2024" }},
		{"split without payments", func(r *dto.TransactionRequest) { r.Split = true }},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := expenseRequest()
			tt.modify(&req)
			_, err := suite.service.CreateTransaction(context.Background(), companyID, req, userID)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.transactionRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func storedHalfPaid() *domain.Transaction {
	return &domain.Transaction{
		TransactionID: "txn-1", CompanyID: companyID, Kind: domain.Expense, AccountID: "acc-1", Amount: dec("1000"),
		Payments: []domain.Payment{
			{PaymentID: "p1", Amount: dec("400"), Status: domain.Paid},
			{PaymentID: "p2", Amount: dec("600"), Status: domain.Pending},
		},
		AuditFields: domain.AuditFields{CreatedAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC), CreatedBy: "creator"},
	}
}

func allPaidRequest() dto.TransactionRequest {
	req := expenseRequest()
	req.Split = true
	req.Payments = []dto.PaymentRequest{
		{PaymentID: "p1", Amount: dec("400"), Date: "2024-05-01", Status: domain.Paid},
		{PaymentID: "p2", Amount: dec("600"), Date: "2024-06-01", Status: domain.Paid},
	}
	return req
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_AppliesDifference() {
	ctx := context.Background()
	old := storedHalfPaid()
	suite.transactionRepo.On("FindTransactionByID", ctx, companyID, "txn-1").Return(old, nil)
	suite.transactionRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.TransactionID == "txn-1" && t.Status == domain.Paid
	})).Return(*old, nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, companyID, "txn-1", allPaidRequest(), userID)

	suite.Require().NoError(err)
	suite.Equal("creator", txn.CreatedBy)
	suite.Equal(old.CreatedAt, txn.CreatedAt)
	suite.Equal(userID, txn.LastUpdatedBy)
	suite.Require().Len(suite.transactionRepo.AppliedDeltas, 1)
	suite.True(suite.transactionRepo.AppliedDeltas["acc-1"].Equal(dec("-600")))
	suite.transactionRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_DeltasFollowStoredState() {
	ctx := context.Background()
	// Read before the write lock: p2 still pending.
	suite.transactionRepo.On("FindTransactionByID", ctx, companyID, "txn-1").Return(storedHalfPaid(), nil)
	// Meanwhile another update already paid p2 and moved the balance.
	locked := *storedHalfPaid()
	locked.Payments = []domain.Payment{
		{PaymentID: "p1", Amount: dec("400"), Status: domain.Paid},
		{PaymentID: "p2", Amount: dec("600"), Status: domain.Paid},
	}
	suite.transactionRepo.On("UpdateTransaction", ctx, mock.Anything).Return(locked, nil).Once()

	_, err := suite.service.UpdateTransaction(ctx, companyID, "txn-1", allPaidRequest(), userID)

	suite.Require().NoError(err)
	suite.Empty(suite.transactionRepo.AppliedDeltas, "the 600 must not be applied a second time")
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_DeletedWhileLocking() {
	ctx := context.Background()
	suite.transactionRepo.On("FindTransactionByID", ctx, companyID, "txn-1").Return(storedHalfPaid(), nil)
	suite.transactionRepo.On("UpdateTransaction", ctx, mock.Anything).Return(domain.Transaction{}, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateTransaction(ctx, companyID, "txn-1", allPaidRequest(), userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(suite.transactionRepo.AppliedDeltas)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NotFound() {
	ctx := context.Background()
	suite.transactionRepo.On("FindTransactionByID", ctx, companyID, "missing").Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.UpdateTransaction(ctx, companyID, "missing", expenseRequest(), userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func TestCompanyAuthorizer(t *testing.T) {
	ctx := context.Background()
	repo := new(MockMembershipRepository)
	repo.On("FindUserRole", ctx, companyID, "admin").Return(domain.RoleAdmin, nil)
	repo.On("FindUserRole", ctx, companyID, "reader").Return(domain.RoleReadOnly, nil)
	repo.On("FindUserRole", ctx, companyID, "stranger").Return(domain.CompanyRole(""), apperrors.ErrNotFound)
	repo.On("FindUserRole", ctx, companyID, "broken").Return(domain.CompanyRole(""), assert.AnError)
	authorizer := services.NewCompanyAuthorizer(repo)

	assert.NoError(t, authorizer.AuthorizeUserAction(ctx, "admin", companyID, domain.RoleMember))
	assert.NoError(t, authorizer.AuthorizeUserAction(ctx, "reader", companyID, domain.RoleReadOnly))
	assert.ErrorIs(t, authorizer.AuthorizeUserAction(ctx, "reader", companyID, domain.RoleMember), apperrors.ErrForbidden)
	assert.ErrorIs(t, authorizer.AuthorizeUserAction(ctx, "stranger", companyID, domain.RoleReadOnly), apperrors.ErrNotFound)
	assert.ErrorIs(t, authorizer.AuthorizeUserAction(ctx, "broken", companyID, domain.RoleReadOnly), assert.AnError)
}
