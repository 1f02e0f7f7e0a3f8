package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/finops_core/internal/core/domain"
	portsrepo "github.com/SscSPs/finops_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockTransactionRepository is a mock type for the TransactionRepositoryFacade interface
type MockTransactionRepository struct {
	mock.Mock
	// AppliedDeltas records the deltas the last UpdateTransaction computed
	// from the stored state it was given.
	AppliedDeltas map[string]decimal.Decimal
}

func (m *MockTransactionRepository) FindTransactions(ctx context.Context, companyID string, dateRange *domain.DateRange) ([]domain.Transaction, error) {
	args := m.Called(ctx, companyID, dateRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, companyID string, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, companyID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, deltas map[string]decimal.Decimal) error {
	args := m.Called(ctx, txn, deltas)
	return args.Error(0)
}

// UpdateTransaction hands the stored transaction configured with Return to
// deltasFrom, the way the database repository does with the locked row.
func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, deltasFrom portsrepo.BalanceDeltaFunc) error {
	args := m.Called(ctx, txn)
	if err := args.Error(1); err != nil {
		return err
	}
	deltas, err := deltasFrom(args.Get(0).(domain.Transaction))
	if err != nil {
		return err
	}
	m.AppliedDeltas = deltas
	return nil
}

// MockCategoryRepository is a mock type for the CategoryRepositoryFacade interface
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, companyID string) ([]domain.Category, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

// MockCostCenterRepository is a mock type for the CostCenterRepositoryFacade interface
type MockCostCenterRepository struct {
	mock.Mock
}

func (m *MockCostCenterRepository) ListCostCenters(ctx context.Context, companyID string) ([]domain.CostCenter, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CostCenter), args.Error(1)
}

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) IncrementBalancesInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, deltas, userID, now)
	return args.Error(0)
}

// MockStatementRepository is a mock type for the StatementRepositoryFacade interface
type MockStatementRepository struct {
	mock.Mock
}

func (m *MockStatementRepository) ListTemplates(ctx context.Context, companyID string) ([]domain.StatementTemplate, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatementTemplate), args.Error(1)
}

func (m *MockStatementRepository) FindTemplateByID(ctx context.Context, companyID string, templateID string) (*domain.StatementTemplate, error) {
	args := m.Called(ctx, companyID, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatementTemplate), args.Error(1)
}

func (m *MockStatementRepository) ListLines(ctx context.Context, templateID string) ([]domain.StatementLine, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatementLine), args.Error(1)
}

// MockMembershipRepository is a mock type for the MembershipReader interface
type MockMembershipRepository struct {
	mock.Mock
}

func (m *MockMembershipRepository) FindUserRole(ctx context.Context, companyID string, userID string) (domain.CompanyRole, error) {
	args := m.Called(ctx, companyID, userID)
	return args.Get(0).(domain.CompanyRole), args.Error(1)
}

// MockCompanyAuthorizer is a mock type for the CompanyAuthorizerSvc interface
type MockCompanyAuthorizer struct {
	mock.Mock
}

func (m *MockCompanyAuthorizer) AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.CompanyRole) error {
	args := m.Called(ctx, userID, companyID, requiredRole)
	return args.Error(0)
}
