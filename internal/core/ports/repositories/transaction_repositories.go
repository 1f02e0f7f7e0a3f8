package repositories

import (
	"context"

	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for ledger transactions
type TransactionReader interface {
	// FindTransactions returns the transactions of a company with their
	// payments. A nil range returns all of them; otherwise only transactions
	// whose date falls on a day within the range.
	FindTransactions(ctx context.Context, companyID string, dateRange *domain.DateRange) ([]domain.Transaction, error)

	// FindTransactionByID retrieves one transaction with its payments.
	FindTransactionByID(ctx context.Context, companyID string, transactionID string) (*domain.Transaction, error)
}

// BalanceDeltaFunc computes the account balance deltas of an update from the
// stored state of the transaction.
type BalanceDeltaFunc func(current domain.Transaction) (map[string]decimal.Decimal, error)

// TransactionWriter defines write operations for ledger transactions. Both
// methods persist the transaction, replace its payments and apply the account
// balance deltas in a single database transaction.
type TransactionWriter interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction, balanceDeltas map[string]decimal.Decimal) error

	// UpdateTransaction locks the stored row and passes its current state to
	// deltasFrom, so concurrent updates never compute deltas from the same
	// previous state.
	UpdateTransaction(ctx context.Context, txn domain.Transaction, deltasFrom BalanceDeltaFunc) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
