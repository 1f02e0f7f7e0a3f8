package statement

import (
	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PercentOf returns value / base * 100 rounded to two decimals. ok is false
// when base is zero and the percentage is not defined.
func PercentOf(value, base decimal.Decimal) (pct decimal.Decimal, ok bool) {
	if base.IsZero() {
		return decimal.Zero, false
	}
	return value.Div(base).Mul(hundred).Round(2), true
}

// ApplyPercentOf returns a copy of lines with Percent set relative to the line
// baseLineID. An empty baseLineID selects the first REVENUE line. Lines keep a
// nil Percent when no base line exists or its value is zero.
func ApplyPercentOf(lines []domain.ComputedLine, baseLineID string) []domain.ComputedLine {
	out := make([]domain.ComputedLine, len(lines))
	copy(out, lines)

	var base *domain.ComputedLine
	for i := range out {
		if (baseLineID != "" && out[i].LineID == baseLineID) ||
			(baseLineID == "" && out[i].Type == domain.LineRevenue) {
			base = &out[i]
			break
		}
	}
	if base == nil {
		return out
	}

	baseValue := base.Value
	for i := range out {
		out[i].Percent = nil
		if pct, ok := PercentOf(out[i].Value, baseValue); ok {
			out[i].Percent = &pct
		}
	}
	return out
}
