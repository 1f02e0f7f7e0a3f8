package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineType classifies a statement line.
type LineType string

const (
	LineRevenue   LineType = "REVENUE"
	LineDeduction LineType = "DEDUCTION"
	LineCost      LineType = "COST"
	LineExpense   LineType = "EXPENSE"
	LineTax       LineType = "TAX"
	LineSubtotal  LineType = "SUBTOTAL"
	LineResult    LineType = "RESULT"
)

// IsLeaf reports whether the line takes its value from mapped transactions.
func (t LineType) IsLeaf() bool {
	switch t {
	case LineRevenue, LineDeduction, LineCost, LineExpense, LineTax:
		return true
	}
	return false
}

// IsComputed reports whether the line takes its value from a formula.
func (t LineType) IsComputed() bool {
	return t == LineSubtotal || t == LineResult
}

// MappingTarget is the dimension a line mapping points at.
type MappingTarget string

const (
	TargetCategory MappingTarget = "CATEGORY"
	TargetAccount  MappingTarget = "ACCOUNT"
)

// LineMapping ties a leaf line to a category or account.
type LineMapping struct {
	TargetKind MappingTarget `json:"targetKind"`
	TargetID   string        `json:"targetID"`
}

// StatementLine is one row of a statement template. Authored elsewhere, read-only here.
type StatementLine struct {
	LineID     string        `json:"lineID"`
	TemplateID string        `json:"templateID"`
	Name       string        `json:"name"`
	Type       LineType      `json:"type"`
	Position   int           `json:"position"`
	Mappings   []LineMapping `json:"mappings,omitempty"`
	Formula    string        `json:"formula,omitempty"` // e.g. "{revenue} - {deductions}"; SUBTOTAL/RESULT only
}

// StatementTemplate is an ordered list of lines.
type StatementTemplate struct {
	TemplateID string          `json:"templateID"`
	CompanyID  string          `json:"companyID"`
	Name       string          `json:"name"`
	Lines      []StatementLine `json:"lines"`
}

// ComputedLine is an evaluated statement line. Percent is nil when it cannot be computed.
type ComputedLine struct {
	LineID  string           `json:"lineID"`
	Name    string           `json:"name"`
	Type    LineType         `json:"type"`
	Value   decimal.Decimal  `json:"value"`
	Percent *decimal.Decimal `json:"percent,omitempty"`
}

// StatementDiagnostics counts rows that did not contribute to a statement.
type StatementDiagnostics struct {
	Considered    int      `json:"considered"`
	Skipped       int      `json:"skipped"`    // Rejected by the ledger filter (bad data)
	Unresolved    int      `json:"unresolved"` // Category could not be resolved by id or name
	Unmatched     int      `json:"unmatched"`  // Resolved but no line maps it
	UnresolvedIDs []string `json:"unresolvedIDs,omitempty"`
}

// StatementReport is a fully computed statement for one period.
type StatementReport struct {
	TemplateID  string               `json:"templateID"`
	Name        string               `json:"name"`
	Range       DateRange            `json:"range"`
	Label       string               `json:"label"`
	Lines       []ComputedLine       `json:"lines"`
	Diagnostics StatementDiagnostics `json:"diagnostics"`
	GeneratedAt time.Time            `json:"generatedAt"`
}
