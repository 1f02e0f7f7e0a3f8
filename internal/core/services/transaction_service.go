package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finops_core/internal/apperrors"
	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/SscSPs/finops_core/internal/core/payment"
	portsrepo "github.com/SscSPs/finops_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finops_core/internal/core/ports/services"
	"github.com/SscSPs/finops_core/internal/dto"
	"github.com/SscSPs/finops_core/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionService creates and updates transactions together with their
// payments and the account balance they move.
type TransactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	categoryRepo    portsrepo.CategoryRepositoryFacade
	accountRepo     portsrepo.AccountReader
	now             func() time.Time
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*TransactionService)

// WithTransactionCompanyAuthorizer sets the company authorizer for the transaction service.
func WithTransactionCompanyAuthorizer(authorizer portssvc.CompanyAuthorizerSvc) TransactionServiceOption {
	return func(s *TransactionService) {
		s.CompanyAuthorizer = authorizer
	}
}

// WithTransactionClock overrides the clock used for audit fields.
func WithTransactionClock(now func() time.Time) TransactionServiceOption {
	return func(s *TransactionService) {
		s.now = now
	}
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	options ...TransactionServiceOption,
) *TransactionService {
	svc := &TransactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		accountRepo:     accountRepo,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

// GetTransaction retrieves one transaction with its payments.
func (s *TransactionService) GetTransaction(ctx context.Context, companyID string, transactionID string, userID string) (*domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	txn, err := s.transactionRepo.FindTransactionByID(ctx, companyID, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

// CreateTransaction validates the payment plan of req and persists the new
// transaction. Nothing is written when the payments do not add up to the
// amount.
func (s *TransactionService) CreateTransaction(ctx context.Context, companyID string, req dto.TransactionRequest, userID string) (*domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		s.LogError(ctx, err, "User not authorized to create transaction",
			slog.String("user_id", userID),
			slog.String("company_id", companyID))
		return nil, err
	}

	txn, err := s.buildTransaction(ctx, companyID, uuid.NewString(), req)
	if err != nil {
		return nil, err
	}
	now := s.now()
	txn.CreatedAt, txn.CreatedBy = now, userID
	txn.LastUpdatedAt, txn.LastUpdatedBy = now, userID

	deltas, err := accounting.AccountDeltas(nil, txn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err := s.transactionRepo.SaveTransaction(ctx, *txn, deltas); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created successfully",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("status", string(txn.Status)),
		slog.Int("payment_count", len(txn.Payments)))
	return txn, nil
}

// UpdateTransaction replaces an existing transaction. Account balances move
// by the difference between the new and the previous effect of the
// transaction, so marking one installment as paid moves only that amount.
func (s *TransactionService) UpdateTransaction(ctx context.Context, companyID string, transactionID string, req dto.TransactionRequest, userID string) (*domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		s.LogError(ctx, err, "User not authorized to update transaction",
			slog.String("user_id", userID),
			slog.String("company_id", companyID))
		return nil, err
	}

	old, err := s.transactionRepo.FindTransactionByID(ctx, companyID, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction for update", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	txn, err := s.buildTransaction(ctx, companyID, transactionID, req)
	if err != nil {
		return nil, err
	}
	txn.CreatedAt, txn.CreatedBy = old.CreatedAt, old.CreatedBy
	txn.LastUpdatedAt, txn.LastUpdatedBy = s.now(), userID

	// Deltas come from the row as stored when the update locks it, not from
	// the copy read above, which a concurrent update may already have replaced.
	var deltas map[string]decimal.Decimal
	err = s.transactionRepo.UpdateTransaction(ctx, *txn, func(current domain.Transaction) (map[string]decimal.Decimal, error) {
		d, err := accounting.AccountDeltas(&current, txn)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		deltas = d
		return d, nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction updated successfully",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("status", string(txn.Status)),
		slog.Int("account_count", len(deltas)))
	return txn, nil
}

// buildTransaction turns the form state into a validated transaction with a
// derived status.
func (s *TransactionService) buildTransaction(ctx context.Context, companyID, transactionID string, req dto.TransactionRequest) (*domain.Transaction, error) {
	date, err := req.ParsedDate()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	amount := req.Amount.Round(2)

	category, err := s.lookupCategory(ctx, companyID, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if category.Kind != req.Kind {
		return nil, fmt.Errorf("%w: category %s is for %s transactions", apperrors.ErrValidation, category.Name, category.Kind)
	}
	if req.AccountID != "" {
		if _, err := s.accountRepo.FindAccountByID(ctx, companyID, req.AccountID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown account %s", apperrors.ErrValidation, req.AccountID)
			}
			return nil, fmt.Errorf("failed to find account: %w", err)
		}
	}

	editor := payment.NewEditor(amount, date, req.Method, req.PaymentStatus)

	var payments []domain.Payment
	if req.Split {
		if payments, err = dto.ToPayments(req.Payments); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	} else {
		payments = editor.Single()
	}
	for i := range payments {
		if payments[i].PaymentID == "" {
			payments[i].PaymentID = uuid.NewString()
		}
		payments[i].TransactionID = transactionID
	}

	if balance := payment.Validate(payments, amount); !balance.Balanced {
		s.LogWarn(ctx, "Rejected unbalanced payments",
			slog.String("transaction_id", transactionID),
			slog.String("reason", balance.Reason))
		return nil, fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, apperrors.ErrUnbalanced, balance.Reason)
	}

	txn := &domain.Transaction{
		TransactionID: transactionID,
		CompanyID:     companyID,
		Date:          date,
		Description:   req.Description,
		Amount:        amount,
		Kind:          req.Kind,
		CategoryID:    category.CategoryID,
		CategoryName:  category.Name,
		AccountID:     req.AccountID,
		CostCenterID:  req.CostCenterID,
		Status:        payment.DeriveStatus(payments),
		Payments:      payments,
	}
	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return txn, nil
}

func (s *TransactionService) lookupCategory(ctx context.Context, companyID, categoryID string) (*domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	for i := range categories {
		if categories[i].CategoryID != categoryID {
			continue
		}
		if !categories[i].IsActive {
			return nil, fmt.Errorf("%w: category %s is inactive", apperrors.ErrValidation, categories[i].Name)
		}
		return &categories[i], nil
	}
	return nil, fmt.Errorf("%w: unknown category %s", apperrors.ErrValidation, categoryID)
}
