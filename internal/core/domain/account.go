package domain

import (
	"github.com/shopspring/decimal"
)

// Account is a bank/cash account used as an optional grouping key on transactions.
// The only field this service mutates is Balance.
type Account struct {
	AccountID string          `json:"accountID"`
	CompanyID string          `json:"companyID"`
	Name      string          `json:"name"`
	IsActive  bool            `json:"isActive"`
	Balance   decimal.Decimal `json:"balance"` // Persisted running balance
	AuditFields
}

// CostCenter is a reporting dimension. Read-only here.
type CostCenter struct {
	CostCenterID string `json:"costCenterID"`
	CompanyID    string `json:"companyID"`
	Name         string `json:"name"`
	IsActive     bool   `json:"isActive"`
}
