package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/finops_core/internal/apperrors"
	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/SscSPs/finops_core/internal/core/ledger"
	"github.com/SscSPs/finops_core/internal/core/period"
	portsrepo "github.com/SscSPs/finops_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finops_core/internal/core/ports/services"
	"github.com/SscSPs/finops_core/internal/dto"
	"github.com/SscSPs/finops_core/internal/utils/pagination"
)

// LedgerService lists and summarizes the transactions of a period.
type LedgerService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	accountRepo     portsrepo.AccountReader
	categoryRepo    portsrepo.CategoryRepositoryFacade
	costCenterRepo  portsrepo.CostCenterRepositoryFacade
	now             func() time.Time
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*LedgerService)

// WithLedgerCompanyAuthorizer sets the company authorizer for the ledger service.
func WithLedgerCompanyAuthorizer(authorizer portssvc.CompanyAuthorizerSvc) LedgerServiceOption {
	return func(s *LedgerService) {
		s.CompanyAuthorizer = authorizer
	}
}

// WithLedgerClock overrides the clock that supplies the default period anchor.
func WithLedgerClock(now func() time.Time) LedgerServiceOption {
	return func(s *LedgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(
	transactionRepo portsrepo.TransactionReader,
	accountRepo portsrepo.AccountReader,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	costCenterRepo portsrepo.CostCenterRepositoryFacade,
	options ...LedgerServiceOption,
) *LedgerService {
	svc := &LedgerService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		costCenterRepo:  costCenterRepo,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

// ListTransactions returns one page of the period's transactions matching the
// query, newest first with the transaction id as tie-breaker.
func (s *LedgerService) ListTransactions(ctx context.Context, companyID string, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to list transactions",
			slog.String("user_id", userID),
			slog.String("company_id", companyID))
		return nil, err
	}

	cursor, err := params.Cursor(s.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	periodResp, err := dto.ToPeriodResponse(cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	dateRange := domain.DateRange{Start: periodResp.Start, End: periodResp.End}

	txns, err := s.transactionRepo.FindTransactions(ctx, companyID, &dateRange)
	if err != nil {
		s.LogError(ctx, err, "Failed to find transactions", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to find transactions: %w", err)
	}

	res := ledger.Filter(txns, dateRange, params.Predicates())
	if len(res.Skipped) > 0 {
		s.LogWarn(ctx, "Transactions with invalid data skipped",
			slog.String("company_id", companyID),
			slog.Int("skipped", len(res.Skipped)))
	}

	rows := res.Transactions
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.After(rows[j].Date)
		}
		return rows[i].TransactionID < rows[j].TransactionID
	})

	if params.NextToken != nil && *params.NextToken != "" {
		keyDate, keyID, err := pagination.DecodeToken(*params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		start := sort.Search(len(rows), func(i int) bool {
			return pagination.After(rows[i].Date, rows[i].TransactionID, keyDate, keyID)
		})
		rows = rows[start:]
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	var nextToken *string
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		token := pagination.EncodeToken(last.Date, last.TransactionID)
		nextToken = &token
	}

	s.LogDebug(ctx, "Transactions listed",
		slog.String("company_id", companyID),
		slog.String("period", periodResp.Label),
		slog.Int("count", len(rows)))

	return &dto.ListTransactionsResponse{
		Period:       periodResp,
		Transactions: dto.ToTransactionResponses(rows),
		Skipped:      res.Skipped,
		NextToken:    nextToken,
	}, nil
}

// Summarize returns totals per dimension value, named after the account,
// cost center or category they belong to.
func (s *LedgerService) Summarize(ctx context.Context, companyID string, userID string, cursor period.Cursor, dim ledger.Dimension) ([]ledger.DimensionTotal, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to summarize transactions",
			slog.String("user_id", userID),
			slog.String("company_id", companyID))
		return nil, err
	}

	dateRange, err := cursor.Range()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	txns, err := s.transactionRepo.FindTransactions(ctx, companyID, &dateRange)
	if err != nil {
		s.LogError(ctx, err, "Failed to find transactions", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to find transactions: %w", err)
	}
	res := ledger.Filter(txns, dateRange, ledger.Predicates{})

	names, err := s.dimensionNames(ctx, companyID, dim, res.Transactions)
	if err != nil {
		s.LogError(ctx, err, "Failed to load dimension names", slog.String("dimension", string(dim)))
		return nil, err
	}

	totals := ledger.Summarize(res.Transactions, dim)
	for i := range totals {
		totals[i].Name = names[totals[i].Key]
	}
	return totals, nil
}

func (s *LedgerService) dimensionNames(ctx context.Context, companyID string, dim ledger.Dimension, txns []domain.Transaction) (map[string]string, error) {
	names := make(map[string]string)
	switch dim {
	case ledger.ByAccount:
		accounts, err := s.accountRepo.ListAccounts(ctx, companyID)
		if err != nil {
			return nil, fmt.Errorf("failed to list accounts: %w", err)
		}
		for _, a := range accounts {
			names[a.AccountID] = a.Name
		}
	case ledger.ByCostCenter:
		centers, err := s.costCenterRepo.ListCostCenters(ctx, companyID)
		if err != nil {
			return nil, fmt.Errorf("failed to list cost centers: %w", err)
		}
		for _, c := range centers {
			names[c.CostCenterID] = c.Name
		}
	case ledger.ByCategory:
		// Names recorded on transactions cover categories that were since deleted.
		for _, t := range txns {
			if t.CategoryName != "" {
				names[t.CategoryID] = t.CategoryName
			}
		}
		categories, err := s.categoryRepo.ListCategories(ctx, companyID)
		if err != nil {
			return nil, fmt.Errorf("failed to list categories: %w", err)
		}
		for _, c := range categories {
			names[c.CategoryID] = c.Name
		}
	default:
		return nil, fmt.Errorf("%w: unknown dimension %q", apperrors.ErrValidation, dim)
	}
	return names, nil
}
