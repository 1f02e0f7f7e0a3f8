// Package ledger selects the transactions of a period and summarizes them by dimension.
package ledger

import (
	"strings"

	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/SscSPs/finops_core/internal/core/period"
)

// Predicates narrows a filter beyond the date range. Zero values match everything.
type Predicates struct {
	Text         string                 // Case-insensitive substring of description or category name
	Kind         domain.TransactionKind // INCOME or EXPENSE
	Status       domain.PaymentStatus   // PAID, PENDING or PARTIAL
	AccountID    string
	CostCenterID string
}

// SkippedRow is a transaction rejected at the filter boundary because its data is unusable.
type SkippedRow struct {
	TransactionID string `json:"transactionID"`
	Reason        string `json:"reason"`
}

// Result is the outcome of Filter.
type Result struct {
	Transactions []domain.Transaction
	Skipped      []SkippedRow
}

// Filter returns the transactions dated inside r (calendar-day, inclusive on
// both ends) that satisfy every predicate. Rows with invalid data are left out
// and reported in Result.Skipped so one bad row cannot spoil a whole period.
// The input slice is never modified.
func Filter(txns []domain.Transaction, r domain.DateRange, p Predicates) Result {
	res := Result{Transactions: make([]domain.Transaction, 0, len(txns))}
	text := strings.ToLower(strings.TrimSpace(p.Text))

	for _, t := range txns {
		if reason := rejectReason(t); reason != "" {
			res.Skipped = append(res.Skipped, SkippedRow{TransactionID: t.TransactionID, Reason: reason})
			continue
		}
		if !period.Contains(r, t.Date) {
			continue
		}
		if p.Kind != "" && t.Kind != p.Kind {
			continue
		}
		if p.Status != "" && t.Status != p.Status {
			continue
		}
		if p.AccountID != "" && t.AccountID != p.AccountID {
			continue
		}
		if p.CostCenterID != "" && t.CostCenterID != p.CostCenterID {
			continue
		}
		if text != "" &&
			!strings.Contains(strings.ToLower(t.Description), text) &&
			!strings.Contains(strings.ToLower(t.CategoryName), text) {
			continue
		}
		res.Transactions = append(res.Transactions, t)
	}
	return res
}

func rejectReason(t domain.Transaction) string {
	switch {
	case t.Date.IsZero():
		return "missing or invalid date"
	case t.Amount.IsNegative():
		return "negative amount"
	case !t.Kind.IsValid():
		return "unknown kind " + string(t.Kind)
	}
	return ""
}
