package ledger

import (
	"sort"

	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Dimension is a grouping key for Summarize.
type Dimension string

const (
	ByAccount    Dimension = "ACCOUNT"
	ByCostCenter Dimension = "COST_CENTER"
	ByCategory   Dimension = "CATEGORY"
)

// DimensionTotal holds income and expense totals for one dimension key.
// Key is empty for transactions without a value for the dimension.
type DimensionTotal struct {
	Key     string          `json:"key"`
	Name    string          `json:"name"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
	Count   int             `json:"count"`
}

// Summarize groups transactions by the given dimension. Output is sorted by key.
func Summarize(txns []domain.Transaction, dim Dimension) []DimensionTotal {
	byKey := make(map[string]*DimensionTotal)
	for _, t := range txns {
		key := keyOf(t, dim)
		tot, ok := byKey[key]
		if !ok {
			tot = &DimensionTotal{Key: key, Income: decimal.Zero, Expense: decimal.Zero}
			byKey[key] = tot
		}
		switch t.Kind {
		case domain.Income:
			tot.Income = tot.Income.Add(t.Amount)
		case domain.Expense:
			tot.Expense = tot.Expense.Add(t.Amount)
		}
		tot.Count++
	}

	out := make([]DimensionTotal, 0, len(byKey))
	for _, tot := range byKey {
		tot.Net = tot.Income.Sub(tot.Expense)
		out = append(out, *tot)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func keyOf(t domain.Transaction, dim Dimension) string {
	switch dim {
	case ByAccount:
		return t.AccountID
	case ByCostCenter:
		return t.CostCenterID
	case ByCategory:
		return t.CategoryID
	}
	return ""
}
