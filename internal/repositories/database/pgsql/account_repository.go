package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/finops_core/internal/apperrors"
	"github.com/SscSPs/finops_core/internal/core/domain"
	portsrepo "github.com/SscSPs/finops_core/internal/core/ports/repositories"
	"github.com/SscSPs/finops_core/internal/models"
	"github.com/SscSPs/finops_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const accountColumns = `account_id, company_id, name, is_active, balance, created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// FindAccountByID retrieves an account of a company by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE company_id = $1 AND account_id = $2`

	rows, err := r.Pool.Query(ctx, query, companyID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query account %s: %w", accountID, err)
	}
	modelAcc, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	domainAcc := mapping.ToDomainAccount(modelAcc)
	return &domainAcc, nil
}

// ListAccounts returns every account of a company ordered by name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE company_id = $1 ORDER BY name, account_id`

	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for company %s: %w", companyID, err)
	}
	modelAccs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts for company %s: %w", companyID, err)
	}
	return mapping.ToDomainAccountSlice(modelAccs), nil
}

// IncrementBalancesInTx adds each delta to the persisted balance of its
// account inside the caller's transaction.
func (r *PgxAccountRepository) IncrementBalancesInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET balance = COALESCE(balance, 0) + $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`

	// Stable order keeps row locks acquired in the same sequence across writers.
	accountIDs := make([]string, 0, len(deltas))
	for accountID, delta := range deltas {
		if !delta.IsZero() {
			accountIDs = append(accountIDs, accountID)
		}
	}
	if len(accountIDs) == 0 {
		return nil
	}
	sort.Strings(accountIDs)

	batch := &pgx.Batch{}
	for _, accountID := range accountIDs {
		batch.Queue(query, accountID, deltas[accountID], now, userID)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for _, accountID := range accountIDs {
		ct, err := br.Exec()
		switch {
		case batchErr != nil:
		case err != nil:
			batchErr = fmt.Errorf("failed to update balance for account %s: %w", accountID, err)
		case ct.RowsAffected() == 0:
			batchErr = fmt.Errorf("%w: account %s not found during balance update", apperrors.ErrNotFound, accountID)
		}
	}

	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close balance update batch: %w", err)
	}
	return batchErr
}
