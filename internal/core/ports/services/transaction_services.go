package services

import (
	"context"

	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/SscSPs/finops_core/internal/dto"
)

// TransactionReaderSvc defines read operations for a single transaction
type TransactionReaderSvc interface {
	GetTransaction(ctx context.Context, companyID string, transactionID string, userID string) (*domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transactions
type TransactionWriterSvc interface {
	// CreateTransaction persists a new transaction with its payments and
	// applies its effect to the account balance.
	CreateTransaction(ctx context.Context, companyID string, req dto.TransactionRequest, userID string) (*domain.Transaction, error)

	// UpdateTransaction replaces a transaction and its payments, moving
	// account balances by the difference between the new and old effect.
	UpdateTransaction(ctx context.Context, companyID string, transactionID string, req dto.TransactionRequest, userID string) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
