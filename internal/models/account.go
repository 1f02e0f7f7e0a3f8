package models

import (
	"github.com/shopspring/decimal"
)

// Account represents a bank or cash account of a company.
type Account struct {
	AccountID   string          `db:"account_id"`
	CompanyID   string          `db:"company_id"`
	Name        string          `db:"name"`
	IsActive    bool            `db:"is_active"`
	AuditFields                 // Embed common audit fields
	Balance     decimal.Decimal `db:"balance"` // Persisted running balance
}

// CostCenter represents a reporting dimension.
type CostCenter struct {
	CostCenterID string `db:"cost_center_id"`
	CompanyID    string `db:"company_id"`
	Name         string `db:"name"`
	IsActive     bool   `db:"is_active"`
}

// Category represents a transaction category.
type Category struct {
	CategoryID string `db:"category_id"`
	CompanyID  string `db:"company_id"`
	Name       string `db:"name"`
	Kind       string `db:"kind"` // INCOME or EXPENSE
	IsActive   bool   `db:"is_active"`
}

// CompanyMember links a user to a company with a role.
type CompanyMember struct {
	CompanyID string `db:"company_id"`
	UserID    string `db:"user_id"`
	Role      string `db:"role"`
}
