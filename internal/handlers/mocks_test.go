package handlers

import (
	"context"

	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/SscSPs/finops_core/internal/core/ledger"
	"github.com/SscSPs/finops_core/internal/core/period"
	portssvc "github.com/SscSPs/finops_core/internal/core/ports/services"
	"github.com/SscSPs/finops_core/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) ListTransactions(ctx context.Context, companyID string, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, companyID, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

func (m *MockLedgerService) Summarize(ctx context.Context, companyID string, userID string, cursor period.Cursor, dim ledger.Dimension) ([]ledger.DimensionTotal, error) {
	args := m.Called(ctx, companyID, userID, cursor, dim)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.DimensionTotal), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, companyID string, transactionID string, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, companyID, transactionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, companyID string, req dto.TransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, companyID string, transactionID string, req dto.TransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, companyID, transactionID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock StatementService ---
type MockStatementService struct {
	mock.Mock
}

func (m *MockStatementService) ListTemplates(ctx context.Context, companyID string, userID string) ([]domain.StatementTemplate, error) {
	args := m.Called(ctx, companyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatementTemplate), args.Error(1)
}

func (m *MockStatementService) GenerateStatement(ctx context.Context, companyID string, templateID string, cursor period.Cursor, percentBaseLineID string, userID string) (*domain.StatementReport, error) {
	args := m.Called(ctx, companyID, templateID, cursor, percentBaseLineID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatementReport), args.Error(1)
}

var _ portssvc.StatementSvcFacade = (*MockStatementService)(nil)
