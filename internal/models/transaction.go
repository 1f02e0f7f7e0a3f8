package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table. AccountID and CostCenterID
// are nullable in the database and read back as empty strings.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	CompanyID       string          `db:"company_id"`
	TransactionDate time.Time       `db:"transaction_date"` // DATE column
	Description     string          `db:"description"`
	Amount          decimal.Decimal `db:"amount"`
	Kind            string          `db:"kind"`
	CategoryID      string          `db:"category_id"`
	CategoryName    string          `db:"category_name"`
	AccountID       string          `db:"account_id"`
	CostCenterID    string          `db:"cost_center_id"`
	Status          string          `db:"status"`
	AuditFields
}

// Payment is a row of the payments table, ordered within its transaction by Position.
type Payment struct {
	PaymentID         string          `db:"payment_id"`
	TransactionID     string          `db:"transaction_id"`
	Position          int             `db:"position"`
	Method            string          `db:"method"`
	Amount            decimal.Decimal `db:"amount"`
	PaymentDate       time.Time       `db:"payment_date"` // DATE column
	Status            string          `db:"status"`
	InstallmentNumber *int            `db:"installment_number"`
	TotalInstallments *int            `db:"total_installments"`
}
