package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the settlement state of a payment, or the derived state of a transaction.
type PaymentStatus string

const (
	Paid    PaymentStatus = "PAID"
	Pending PaymentStatus = "PENDING"
	Partial PaymentStatus = "PARTIAL" // Only ever derived for a Transaction
)

// Payment is one settlement backing a Transaction. Owned by exactly one transaction.
type Payment struct {
	PaymentID         string          `json:"paymentID"`
	TransactionID     string          `json:"transactionID"`
	Method            string          `json:"method"`
	Amount            decimal.Decimal `json:"amount"` // 2dp
	Date              time.Time       `json:"date"`
	Status            PaymentStatus   `json:"status"` // PAID or PENDING
	InstallmentNumber *int            `json:"installmentNumber,omitempty"`
	TotalInstallments *int            `json:"totalInstallments,omitempty"`
}

// IsInstallment reports whether the payment carries an installment stamp.
func (p Payment) IsInstallment() bool {
	return p.InstallmentNumber != nil && p.TotalInstallments != nil
}

// Validate checks the rules a single payment must satisfy.
func (p Payment) Validate() error {
	if p.Amount.IsNegative() {
		return errors.New("payment amount must not be negative")
	}
	if p.Status != Paid && p.Status != Pending {
		return errors.New("payment status must be PAID or PENDING")
	}
	if (p.InstallmentNumber == nil) != (p.TotalInstallments == nil) {
		return errors.New("installment number and total installments must be set together")
	}
	if p.IsInstallment() {
		if *p.InstallmentNumber < 1 || *p.InstallmentNumber > *p.TotalInstallments {
			return errors.New("installment number must be between 1 and total installments")
		}
	}
	return nil
}

// Transaction is a ledger entry of a company. Status is derived from Payments.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	CompanyID     string          `json:"companyID"`
	Date          time.Time       `json:"date"` // Calendar day; time of day is ignored
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"` // Non-negative, 2dp
	Kind          TransactionKind `json:"kind"`
	CategoryID    string          `json:"categoryID"`
	CategoryName  string          `json:"categoryName"` // Name as recorded; used when the id no longer resolves
	AccountID     string          `json:"accountID,omitempty"`
	CostCenterID  string          `json:"costCenterID,omitempty"`
	Status        PaymentStatus   `json:"status"`
	Payments      []Payment       `json:"payments"`
	AuditFields
}

// Validate checks the structural rules of a transaction that do not
// depend on payment balancing (see package payment for that).
func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return errors.New("transaction date is required")
	}
	if t.Amount.IsNegative() {
		return errors.New("transaction amount must not be negative")
	}
	if !t.Kind.IsValid() {
		return errors.New("transaction kind must be INCOME or EXPENSE")
	}
	for _, p := range t.Payments {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}
