package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/finops_core/internal/apperrors"
	"github.com/SscSPs/finops_core/internal/core/domain"
	portsrepo "github.com/SscSPs/finops_core/internal/core/ports/repositories"
	"github.com/SscSPs/finops_core/internal/models"
	"github.com/SscSPs/finops_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Nullable references are read back as empty strings.
const transactionColumns = `transaction_id, company_id, transaction_date, description, amount, kind,
	category_id, category_name, COALESCE(account_id, '') AS account_id, COALESCE(cost_center_id, '') AS cost_center_id,
	status, created_at, created_by, last_updated_at, last_updated_by`

const paymentColumns = `payment_id, transaction_id, position, method, amount, payment_date, status, installment_number, total_installments`

type PgxTransactionRepository struct {
	BaseRepository
	accounts portsrepo.AccountTransactionSupport
}

// newPgxTransactionRepository creates a transaction repository. Balance
// deltas are applied through accounts within the same database transaction.
func newPgxTransactionRepository(pool *pgxpool.Pool, accounts portsrepo.AccountTransactionSupport) *PgxTransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accounts:       accounts,
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// FindTransactions returns the transactions of a company, with payments, whose
// date falls in the inclusive range. A nil range returns everything.
func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, companyID string, dateRange *domain.DateRange) ([]domain.Transaction, error) {
	var (
		query strings.Builder
		args  = []any{companyID}
	)
	query.WriteString(`SELECT ` + transactionColumns + ` FROM transactions WHERE company_id = $1`)
	if dateRange != nil {
		query.WriteString(` AND transaction_date BETWEEN $2::date AND $3::date`)
		args = append(args, dateRange.Start, dateRange.End)
	}
	query.WriteString(` ORDER BY transaction_date DESC, transaction_id`)

	rows, err := r.Pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for company %s: %w", companyID, err)
	}
	txns, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions for company %s: %w", companyID, err)
	}
	if len(txns) == 0 {
		return []domain.Transaction{}, nil
	}

	ids := make([]string, len(txns))
	for i, t := range txns {
		ids[i] = t.TransactionID
	}
	payments, err := findPayments(ctx, r.Pool, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Transaction, len(txns))
	for i, t := range txns {
		out[i] = mapping.ToDomainTransaction(t, payments[t.TransactionID])
	}
	return out, nil
}

// FindTransactionByID retrieves one transaction of a company with its payments.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, companyID string, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE company_id = $1 AND transaction_id = $2`

	rows, err := r.Pool.Query(ctx, query, companyID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction %s: %w", transactionID, err)
	}
	txn, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	payments, err := findPayments(ctx, r.Pool, []string{transactionID})
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainTransaction(txn, payments[transactionID])
	return &d, nil
}

// querier is satisfied by both the pool and an open pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// lockTransaction reads a transaction with its payments inside tx, holding a
// row lock on it until tx ends.
func lockTransaction(ctx context.Context, tx pgx.Tx, companyID, transactionID string) (domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE company_id = $1 AND transaction_id = $2 FOR UPDATE`

	rows, err := tx.Query(ctx, query, companyID, transactionID)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("failed to lock transaction %s: %w", transactionID, err)
	}
	txn, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Transaction{}, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return domain.Transaction{}, fmt.Errorf("failed to lock transaction %s: %w", transactionID, err)
	}
	payments, err := findPayments(ctx, tx, []string{transactionID})
	if err != nil {
		return domain.Transaction{}, err
	}
	return mapping.ToDomainTransaction(txn, payments[transactionID]), nil
}

func findPayments(ctx context.Context, q querier, transactionIDs []string) (map[string][]models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE transaction_id = ANY($1) ORDER BY transaction_id, position`

	rows, err := q.Query(ctx, query, transactionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	payments, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Payment])
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments: %w", err)
	}

	byTxn := make(map[string][]models.Payment, len(transactionIDs))
	for _, p := range payments {
		byTxn[p.TransactionID] = append(byTxn[p.TransactionID], p)
	}
	return byTxn, nil
}

// SaveTransaction inserts a transaction and its payments and applies the
// balance deltas atomically.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceDeltas map[string]decimal.Decimal) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (transaction_id, company_id, transaction_date, description, amount, kind,
			category_id, category_name, account_id, cost_center_id, status,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), NULLIF($10, ''), $11, $12, $13, $14, $15);
	`

	return r.withTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query,
			m.TransactionID, m.CompanyID, m.TransactionDate, m.Description, m.Amount, m.Kind,
			m.CategoryID, m.CategoryName, m.AccountID, m.CostCenterID, m.Status,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return translateWriteError(err, m.TransactionID)
		}
		if err := r.insertPayments(ctx, tx, mapping.ToModelPayments(txn.TransactionID, txn.Payments)); err != nil {
			return err
		}
		return r.accounts.IncrementBalancesInTx(ctx, tx, balanceDeltas, m.LastUpdatedBy, m.LastUpdatedAt)
	})
}

// UpdateTransaction overwrites a transaction, replaces its payments and
// applies the balance deltas atomically. The deltas are computed from the
// stored row while it is locked.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, deltasFrom portsrepo.BalanceDeltaFunc) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET transaction_date = $3, description = $4, amount = $5, kind = $6, category_id = $7, category_name = $8,
			account_id = NULLIF($9, ''), cost_center_id = NULLIF($10, ''), status = $11,
			last_updated_at = $12, last_updated_by = $13
		WHERE company_id = $1 AND transaction_id = $2;
	`

	return r.withTx(ctx, func(tx pgx.Tx) error {
		current, err := lockTransaction(ctx, tx, m.CompanyID, m.TransactionID)
		if err != nil {
			return err
		}
		balanceDeltas, err := deltasFrom(current)
		if err != nil {
			return err
		}

		ct, err := tx.Exec(ctx, query,
			m.CompanyID, m.TransactionID, m.TransactionDate, m.Description, m.Amount, m.Kind,
			m.CategoryID, m.CategoryName, m.AccountID, m.CostCenterID, m.Status,
			m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return translateWriteError(err, m.TransactionID)
		}
		if ct.RowsAffected() == 0 {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, m.TransactionID)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM payments WHERE transaction_id = $1`, m.TransactionID); err != nil {
			return fmt.Errorf("failed to clear payments of transaction %s: %w", m.TransactionID, err)
		}
		if err := r.insertPayments(ctx, tx, mapping.ToModelPayments(txn.TransactionID, txn.Payments)); err != nil {
			return err
		}
		return r.accounts.IncrementBalancesInTx(ctx, tx, balanceDeltas, m.LastUpdatedBy, m.LastUpdatedAt)
	})
}

func (r *PgxTransactionRepository) insertPayments(ctx context.Context, tx pgx.Tx, payments []models.Payment) error {
	if len(payments) == 0 {
		return nil
	}
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	batch := &pgx.Batch{}
	for _, p := range payments {
		batch.Queue(query, p.PaymentID, p.TransactionID, p.Position, p.Method, p.Amount, p.PaymentDate, p.Status, p.InstallmentNumber, p.TotalInstallments)
	}
	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for _, p := range payments {
		if _, err := br.Exec(); err != nil && batchErr == nil {
			batchErr = translateWriteError(err, p.PaymentID)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close payment batch: %w", err)
	}
	return batchErr
}

// withTx runs fn in a database transaction, committing on success.
func (r *PgxTransactionRepository) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := fn(tx); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func translateWriteError(err error, id string) error {
	switch pgErrorCode(err) {
	case pgUniqueViolation:
		return fmt.Errorf("%w: record with ID %s already exists", apperrors.ErrDuplicate, id)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: record %s references a missing account or cost center", apperrors.ErrValidation, id)
	case pgCheckViolation:
		return fmt.Errorf("%w: record %s violates a constraint: %v", apperrors.ErrValidation, id, err)
	}
	return fmt.Errorf("failed to write record %s: %w", id, err)
}
