package pgsql

import (
	portsrepo "github.com/SscSPs/finops_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool, accountRepo)

	return portsrepo.RepositoryProvider{
		AccountRepo:     accountRepo,
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		CostCenterRepo:  newPgxCostCenterRepository(dbPool),
		TransactionRepo: transactionRepo,
		StatementRepo:   newPgxStatementRepository(dbPool),
		MembershipRepo:  newPgxMembershipRepository(dbPool),
	}
}
