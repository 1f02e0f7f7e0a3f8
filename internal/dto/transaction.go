package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/SscSPs/finops_core/internal/core/ledger"
	"github.com/shopspring/decimal"
)

// PaymentRequest is one payment row as submitted by the transaction form.
type PaymentRequest struct {
	PaymentID         string               `json:"paymentID"`
	Method            string               `json:"method"`
	Amount            decimal.Decimal      `json:"amount" binding:"money"`
	Date              string               `json:"date" binding:"required,datetime=2006-01-02"`
	Status            domain.PaymentStatus `json:"status" binding:"required,oneof=PAID PENDING"`
	InstallmentNumber *int                 `json:"installmentNumber" binding:"omitempty,min=1"`
	TotalInstallments *int                 `json:"totalInstallments" binding:"omitempty,min=1"`
}

// ToDomain converts the row into a domain.Payment.
func (p PaymentRequest) ToDomain() (domain.Payment, error) {
	date, err := time.Parse(DateLayout, p.Date)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("invalid payment date %q: %w", p.Date, err)
	}
	return domain.Payment{
		PaymentID:         p.PaymentID,
		Method:            p.Method,
		Amount:            p.Amount.Round(2),
		Date:              date,
		Status:            p.Status,
		InstallmentNumber: p.InstallmentNumber,
		TotalInstallments: p.TotalInstallments,
	}, nil
}

// ToPayments converts a list of payment rows.
func ToPayments(rows []PaymentRequest) ([]domain.Payment, error) {
	out := make([]domain.Payment, 0, len(rows))
	for i, r := range rows {
		p, err := r.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("payment %d: %w", i+1, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// TransactionRequest carries the full state of the transaction form, used
// both to create and to replace a transaction. When Split is false the
// transaction is settled by a single payment built from Method and
// PaymentStatus; otherwise Payments must add up to Amount.
type TransactionRequest struct {
	Date          string                 `json:"date" binding:"required,datetime=2006-01-02"`
	Description   string                 `json:"description" binding:"max=500"`
	Amount        decimal.Decimal        `json:"amount" binding:"required,money"`
	Kind          domain.TransactionKind `json:"kind" binding:"required,oneof=INCOME EXPENSE"`
	CategoryID    string                 `json:"categoryID" binding:"required"`
	AccountID     string                 `json:"accountID"`
	CostCenterID  string                 `json:"costCenterID"`
	Method        string                 `json:"method"`
	PaymentStatus domain.PaymentStatus   `json:"paymentStatus" binding:"omitempty,oneof=PAID PENDING"`
	Split         bool                   `json:"split"`
	Payments      []PaymentRequest       `json:"payments" binding:"omitempty,dive"`
}

// ParsedDate returns Date as a calendar day in UTC.
func (r TransactionRequest) ParsedDate() (time.Time, error) {
	d, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", r.Date, err)
	}
	return d, nil
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID         string               `json:"paymentID"`
	Method            string               `json:"method"`
	Amount            decimal.Decimal      `json:"amount"`
	Date              string               `json:"date"`
	Status            domain.PaymentStatus `json:"status"`
	InstallmentNumber *int                 `json:"installmentNumber,omitempty"`
	TotalInstallments *int                 `json:"totalInstallments,omitempty"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	Date          string                 `json:"date"`
	Description   string                 `json:"description"`
	Amount        decimal.Decimal        `json:"amount"`
	Kind          domain.TransactionKind `json:"kind"`
	CategoryID    string                 `json:"categoryID"`
	CategoryName  string                 `json:"categoryName"`
	AccountID     string                 `json:"accountID,omitempty"`
	CostCenterID  string                 `json:"costCenterID,omitempty"`
	Status        domain.PaymentStatus   `json:"status"`
	Payments      []PaymentResponse      `json:"payments"`
	CreatedAt     time.Time              `json:"createdAt"`
	CreatedBy     string                 `json:"createdBy"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
	LastUpdatedBy string                 `json:"lastUpdatedBy"`
}

// ToPaymentResponses converts domain payments to their response form.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = PaymentResponse{
			PaymentID:         p.PaymentID,
			Method:            p.Method,
			Amount:            p.Amount,
			Date:              p.Date.Format(DateLayout),
			Status:            p.Status,
			InstallmentNumber: p.InstallmentNumber,
			TotalInstallments: p.TotalInstallments,
		}
	}
	return res
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Date:          txn.Date.Format(DateLayout),
		Description:   txn.Description,
		Amount:        txn.Amount,
		Kind:          txn.Kind,
		CategoryID:    txn.CategoryID,
		CategoryName:  txn.CategoryName,
		AccountID:     txn.AccountID,
		CostCenterID:  txn.CostCenterID,
		Status:        txn.Status,
		Payments:      ToPaymentResponses(txn.Payments),
		CreatedAt:     txn.CreatedAt,
		CreatedBy:     txn.CreatedBy,
		LastUpdatedAt: txn.LastUpdatedAt,
		LastUpdatedBy: txn.LastUpdatedBy,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// ListTransactionsParams defines query parameters for listing the ledger.
type ListTransactionsParams struct {
	PeriodQuery
	Query        string  `form:"q"`
	Kind         string  `form:"kind" binding:"omitempty,oneof=INCOME EXPENSE"`
	Status       string  `form:"status" binding:"omitempty,oneof=PAID PENDING PARTIAL"`
	AccountID    string  `form:"accountID"`
	CostCenterID string  `form:"costCenterID"`
	Limit        int     `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken    *string `form:"nextToken"`
}

// Predicates converts the filter part of the query for the ledger filter.
func (p ListTransactionsParams) Predicates() ledger.Predicates {
	return ledger.Predicates{
		Text:         p.Query,
		Kind:         domain.TransactionKind(p.Kind),
		Status:       domain.PaymentStatus(p.Status),
		AccountID:    p.AccountID,
		CostCenterID: p.CostCenterID,
	}
}

// ListTransactionsResponse wraps one page of the ledger.
type ListTransactionsResponse struct {
	Period       PeriodResponse        `json:"period"`
	Transactions []TransactionResponse `json:"transactions"`
	Skipped      []ledger.SkippedRow   `json:"skipped,omitempty"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// SummaryParams defines query parameters for dimension totals.
type SummaryParams struct {
	PeriodQuery
	Dimension string `form:"dimension,default=CATEGORY" binding:"oneof=ACCOUNT COST_CENTER CATEGORY"`
}

// SummaryResponse holds income/expense totals per dimension value.
type SummaryResponse struct {
	Period    PeriodResponse          `json:"period"`
	Dimension ledger.Dimension        `json:"dimension"`
	Totals    []ledger.DimensionTotal `json:"totals"`
}
