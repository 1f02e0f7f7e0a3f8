package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts of a company, including inactive ones.
	ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error)
}

// AccountTransactionSupport defines operations that support account transactions
type AccountTransactionSupport interface {
	// IncrementBalancesInTx adds each delta to the stored balance of its account
	// within the given transaction. The increment is applied by the database so
	// concurrent writers never lose updates.
	IncrementBalancesInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountTransactionSupport
}
