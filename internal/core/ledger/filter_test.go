package ledger_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/SscSPs/finops_core/internal/core/ledger"
	"github.com/SscSPs/finops_core/internal/core/period"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(id string, day time.Time, amount string, kind domain.TransactionKind) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Date:          day,
		Amount:        decimal.RequireFromString(amount),
		Kind:          kind,
		Status:        domain.Paid,
	}
}

func ids(txns []domain.Transaction) []string {
	out := make([]string, 0, len(txns))
	for _, t := range txns {
		out = append(out, t.TransactionID)
	}
	return out
}

func februaryRange(t *testing.T) domain.DateRange {
	r, err := period.Resolve(time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), domain.Month)
	require.NoError(t, err)
	return r
}

func TestFilter_IncludesLastDayOfMonth(t *testing.T) {
	r := februaryRange(t)
	txns := []domain.Transaction{
		txn("first", time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), "1", domain.Income),
		txn("last", time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), "1", domain.Income),
		txn("last-late", time.Date(2024, time.February, 29, 23, 59, 59, 500, time.UTC), "1", domain.Income),
		txn("before", time.Date(2024, time.January, 31, 23, 59, 59, 0, time.UTC), "1", domain.Income),
		txn("after", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), "1", domain.Income),
	}

	res := ledger.Filter(txns, r, ledger.Predicates{})

	assert.Equal(t, []string{"first", "last", "last-late"}, ids(res.Transactions))
	assert.Empty(t, res.Skipped)
}

func TestFilter_CalendarDayIgnoresLocation(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	r, err := period.Resolve(time.Date(2024, time.February, 10, 0, 0, 0, 0, saoPaulo), domain.Month)
	require.NoError(t, err)

	// A DATE column scanned as UTC midnight must not shift to the previous day.
	res := ledger.Filter([]domain.Transaction{
		txn("utc-first", time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), "1", domain.Income),
	}, r, ledger.Predicates{})

	assert.Equal(t, []string{"utc-first"}, ids(res.Transactions))
}

func TestFilter_Predicates(t *testing.T) {
	r := februaryRange(t)
	day := time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)

	a := txn("a", day, "10", domain.Income)
	a.Description = "Invoice ACME"
	a.CategoryName = "Sales"
	a.AccountID = "acc-1"

	b := txn("b", day, "20", domain.Expense)
	b.Description = "Office rent"
	b.CategoryName = "Rent"
	b.Status = domain.Pending
	b.CostCenterID = "cc-1"

	c := txn("c", day, "30", domain.Expense)
	c.Description = "Groceries"
	c.CategoryName = "Sales tax"
	c.Status = domain.Partial

	all := []domain.Transaction{a, b, c}

	tests := []struct {
		name string
		p    ledger.Predicates
		want []string
	}{
		{"no predicates", ledger.Predicates{}, []string{"a", "b", "c"}},
		{"text on description", ledger.Predicates{Text: "acme"}, []string{"a"}},
		{"text on category", ledger.Predicates{Text: " SALES "}, []string{"a", "c"}},
		{"kind", ledger.Predicates{Kind: domain.Expense}, []string{"b", "c"}},
		{"status", ledger.Predicates{Status: domain.Partial}, []string{"c"}},
		{"account", ledger.Predicates{AccountID: "acc-1"}, []string{"a"}},
		{"cost center", ledger.Predicates{CostCenterID: "cc-1"}, []string{"b"}},
		{"combined", ledger.Predicates{Kind: domain.Expense, Text: "rent"}, []string{"b"}},
		{"nothing", ledger.Predicates{Text: "zzz"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ledger.Filter(all, r, tt.p)
			assert.Equal(t, tt.want, ids(res.Transactions))
		})
	}
}

func TestFilter_SkipsBadRowsAndReportsThem(t *testing.T) {
	r := februaryRange(t)
	day := time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)

	good := txn("good", day, "10", domain.Income)
	noDate := txn("no-date", time.Time{}, "10", domain.Income)
	negative := txn("negative", day, "-5", domain.Expense)
	badKind := txn("bad-kind", day, "5", "TRANSFER")

	res := ledger.Filter([]domain.Transaction{good, noDate, negative, badKind}, r, ledger.Predicates{})

	assert.Equal(t, []string{"good"}, ids(res.Transactions))
	require.Len(t, res.Skipped, 3)
	assert.Equal(t, "no-date", res.Skipped[0].TransactionID)
	assert.Equal(t, "negative amount", res.Skipped[1].Reason)
	assert.Contains(t, res.Skipped[2].Reason, "TRANSFER")
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	r := februaryRange(t)
	in := []domain.Transaction{
		txn("out", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), "1", domain.Income),
		txn("in", time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC), "1", domain.Income),
	}
	snapshot := append([]domain.Transaction(nil), in...)

	res := ledger.Filter(in, r, ledger.Predicates{})

	assert.Equal(t, snapshot, in)
	require.Len(t, res.Transactions, 1)
	res.Transactions[0].Description = "changed"
	assert.Empty(t, in[1].Description)
}

func TestSummarize(t *testing.T) {
	day := time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)
	a := txn("a", day, "100.10", domain.Income)
	a.CostCenterID = "cc-1"
	b := txn("b", day, "40.05", domain.Expense)
	b.CostCenterID = "cc-1"
	c := txn("c", day, "7", domain.Expense)

	totals := ledger.Summarize([]domain.Transaction{a, b, c}, ledger.ByCostCenter)

	require.Len(t, totals, 2)
	assert.Equal(t, "", totals[0].Key)
	assert.True(t, totals[0].Expense.Equal(decimal.RequireFromString("7")))
	assert.True(t, totals[0].Net.Equal(decimal.RequireFromString("-7")))
	assert.Equal(t, "cc-1", totals[1].Key)
	assert.True(t, totals[1].Net.Equal(decimal.RequireFromString("60.05")))
	assert.Equal(t, 2, totals[1].Count)
}
