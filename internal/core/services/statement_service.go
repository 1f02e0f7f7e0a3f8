package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finops_core/internal/apperrors"
	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/SscSPs/finops_core/internal/core/ledger"
	"github.com/SscSPs/finops_core/internal/core/period"
	portsrepo "github.com/SscSPs/finops_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finops_core/internal/core/ports/services"
	"github.com/SscSPs/finops_core/internal/core/statement"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/errgroup"
)

// statementService implements the StatementSvcFacade interface
type statementService struct {
	BaseService
	statementRepo   portsrepo.StatementRepositoryFacade
	categoryRepo    portsrepo.CategoryRepositoryFacade
	accountRepo     portsrepo.AccountReader
	transactionRepo portsrepo.TransactionReader
	templates       *expirable.LRU[string, domain.StatementTemplate]
	now             func() time.Time
}

// StatementServiceOption is a functional option for configuring the statement service
type StatementServiceOption func(*statementService)

// WithStatementCompanyAuthorizer sets the company authorizer for the statement service.
func WithStatementCompanyAuthorizer(authorizer portssvc.CompanyAuthorizerSvc) StatementServiceOption {
	return func(s *statementService) {
		s.CompanyAuthorizer = authorizer
	}
}

// WithTemplateCache caches templates with their lines for ttl. A size of zero
// or less disables the cache.
func WithTemplateCache(size int, ttl time.Duration) StatementServiceOption {
	return func(s *statementService) {
		if size <= 0 {
			s.templates = nil
			return
		}
		s.templates = expirable.NewLRU[string, domain.StatementTemplate](size, nil, ttl)
	}
}

// WithStatementClock overrides the clock used to stamp generated reports.
func WithStatementClock(now func() time.Time) StatementServiceOption {
	return func(s *statementService) {
		s.now = now
	}
}

// NewStatementService creates a new statement service with the provided options
func NewStatementService(
	statementRepo portsrepo.StatementRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	transactionRepo portsrepo.TransactionReader,
	options ...StatementServiceOption,
) portssvc.StatementSvcFacade {
	svc := &statementService{
		statementRepo:   statementRepo,
		categoryRepo:    categoryRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.StatementSvcFacade = (*statementService)(nil)

// ListTemplates returns the statement templates of a company.
func (s *statementService) ListTemplates(ctx context.Context, companyID string, userID string) ([]domain.StatementTemplate, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to list statement templates",
			slog.String("user_id", userID),
			slog.String("company_id", companyID))
		return nil, err
	}

	templates, err := s.statementRepo.ListTemplates(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list statement templates", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list statement templates: %w", err)
	}
	if templates == nil {
		return []domain.StatementTemplate{}, nil
	}
	return templates, nil
}

// GenerateStatement computes a statement for the period the cursor points at.
//
// Template, categories, accounts and the period's transactions are loaded
// concurrently. Transactions then go through the ledger filter (rows with bad
// data are skipped), the line aggregator and the evaluator. Template errors
// are returned as apperrors.ConfigError; data problems only show up in the
// report diagnostics.
func (s *statementService) GenerateStatement(ctx context.Context, companyID string, templateID string, cursor period.Cursor, percentBaseLineID string, userID string) (*domain.StatementReport, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to generate statement",
			slog.String("user_id", userID),
			slog.String("company_id", companyID))
		return nil, err
	}

	dateRange, err := cursor.Range()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	var (
		tmpl       domain.StatementTemplate
		categories []domain.Category
		accounts   []domain.Account
		txns       []domain.Transaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tmpl, err = s.loadTemplate(gctx, companyID, templateID)
		return err
	})
	g.Go(func() error {
		var err error
		if categories, err = s.categoryRepo.ListCategories(gctx, companyID); err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if accounts, err = s.accountRepo.ListAccounts(gctx, companyID); err != nil {
			return fmt.Errorf("failed to list accounts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if txns, err = s.transactionRepo.FindTransactions(gctx, companyID, &dateRange); err != nil {
			return fmt.Errorf("failed to find transactions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load statement inputs",
				slog.String("company_id", companyID),
				slog.String("template_id", templateID))
		}
		return nil, err
	}

	filtered := ledger.Filter(txns, dateRange, ledger.Predicates{})
	catalog := statement.NewCatalog(categories, accounts)

	agg, err := statement.Aggregate(filtered.Transactions, tmpl, catalog)
	if err != nil {
		s.LogError(ctx, err, "Statement template mappings are invalid", slog.String("template_id", templateID))
		return nil, err
	}
	lines, err := statement.Evaluate(agg.Values, tmpl)
	if err != nil {
		s.LogError(ctx, err, "Statement template formulas are invalid", slog.String("template_id", templateID))
		return nil, err
	}
	lines = statement.ApplyPercentOf(lines, percentBaseLineID)

	diag := agg.Diagnostics
	diag.Skipped = len(filtered.Skipped)
	if diag.Skipped > 0 || diag.Unresolved > 0 || diag.Unmatched > 0 {
		s.LogWarn(ctx, "Transactions left out of statement",
			slog.String("template_id", templateID),
			slog.Int("considered", diag.Considered),
			slog.Int("skipped", diag.Skipped),
			slog.Int("unresolved", diag.Unresolved),
			slog.Int("unmatched", diag.Unmatched))
	}

	s.LogInfo(ctx, "Statement generated successfully",
		slog.String("company_id", companyID),
		slog.String("template_id", templateID),
		slog.String("granularity", string(cursor.Granularity)),
		slog.Time("start", dateRange.Start),
		slog.Int("line_count", len(lines)))

	return &domain.StatementReport{
		TemplateID:  tmpl.TemplateID,
		Name:        tmpl.Name,
		Range:       dateRange,
		Label:       cursor.Label(),
		Lines:       lines,
		Diagnostics: diag,
		GeneratedAt: s.now(),
	}, nil
}

// loadTemplate returns a template with its lines, using the cache when enabled.
func (s *statementService) loadTemplate(ctx context.Context, companyID, templateID string) (domain.StatementTemplate, error) {
	key := companyID + "/" + templateID
	if s.templates != nil {
		if tmpl, ok := s.templates.Get(key); ok {
			s.LogDebug(ctx, "Statement template served from cache", slog.String("template_id", templateID))
			return tmpl, nil
		}
	}

	header, err := s.statementRepo.FindTemplateByID(ctx, companyID, templateID)
	if err != nil {
		return domain.StatementTemplate{}, fmt.Errorf("failed to find statement template %s: %w", templateID, err)
	}
	lines, err := s.statementRepo.ListLines(ctx, templateID)
	if err != nil {
		return domain.StatementTemplate{}, fmt.Errorf("failed to list lines of statement template %s: %w", templateID, err)
	}
	tmpl := *header
	tmpl.Lines = lines

	if s.templates != nil {
		s.templates.Add(key, tmpl)
	}
	return tmpl, nil
}
