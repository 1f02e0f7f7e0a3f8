package services

import (
	portsrepo "github.com/SscSPs/finops_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finops_core/internal/core/ports/services"
	"github.com/SscSPs/finops_core/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Membership checks are optional; without a membership store the JWT
	// company claim is the only tenant check.
	var authorizer portssvc.CompanyAuthorizerSvc
	if repos.MembershipRepo != nil {
		authorizer = NewCompanyAuthorizer(repos.MembershipRepo)
		container.Company = authorizer
	}

	container.Statement = NewStatementService(
		repos.StatementRepo,
		repos.CategoryRepo,
		repos.AccountRepo,
		repos.TransactionRepo,
		WithStatementCompanyAuthorizer(authorizer),
		WithTemplateCache(cfg.TemplateCacheSize, cfg.TemplateCacheTTL),
	)
	container.Ledger = NewLedgerService(
		repos.TransactionRepo,
		repos.AccountRepo,
		repos.CategoryRepo,
		repos.CostCenterRepo,
		WithLedgerCompanyAuthorizer(authorizer),
	)
	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		repos.CategoryRepo,
		repos.AccountRepo,
		WithTransactionCompanyAuthorizer(authorizer),
	)

	return container
}
