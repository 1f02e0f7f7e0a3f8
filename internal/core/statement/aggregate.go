package statement

import (
	"github.com/SscSPs/finops_core/internal/apperrors"
	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Aggregation holds leaf line totals plus counts of transactions that did not land anywhere.
type Aggregation struct {
	Values      map[string]decimal.Decimal
	Diagnostics domain.StatementDiagnostics
}

type leafBucket struct {
	lineID     string
	categories map[string]struct{}
	accounts   map[string]struct{}
}

func (b leafBucket) matches(categoryID string, resolved bool, accountID string) bool {
	if resolved {
		if _, ok := b.categories[categoryID]; ok {
			return true
		}
	}
	if accountID != "" {
		if _, ok := b.accounts[accountID]; ok {
			return true
		}
	}
	return false
}

// Aggregate sums transaction amounts into the leaf lines of tmpl.
//
// A transaction is added to every leaf line with at least one mapping matching
// its category or its account. Lines are independent buckets, so a category
// mapped by two lines counts in both. Transactions whose category cannot be
// resolved, or that match no line, are left out and counted in Diagnostics.
//
// A mapping pointing at a category or account missing from the catalog is a
// template error and fails the whole aggregation.
func Aggregate(txns []domain.Transaction, tmpl domain.StatementTemplate, cat *Catalog) (Aggregation, error) {
	buckets, err := buildBuckets(tmpl, cat)
	if err != nil {
		return Aggregation{}, err
	}

	agg := Aggregation{Values: make(map[string]decimal.Decimal, len(buckets))}
	for _, b := range buckets {
		agg.Values[b.lineID] = decimal.Zero
	}

	for _, t := range txns {
		agg.Diagnostics.Considered++
		categoryID, resolved := cat.ResolveCategory(t)

		matched := false
		for _, b := range buckets {
			if b.matches(categoryID, resolved, t.AccountID) {
				agg.Values[b.lineID] = agg.Values[b.lineID].Add(t.Amount)
				matched = true
			}
		}
		if matched {
			continue
		}
		if !resolved {
			agg.Diagnostics.Unresolved++
			agg.Diagnostics.UnresolvedIDs = append(agg.Diagnostics.UnresolvedIDs, t.TransactionID)
		} else {
			agg.Diagnostics.Unmatched++
		}
	}
	return agg, nil
}

func buildBuckets(tmpl domain.StatementTemplate, cat *Catalog) ([]leafBucket, error) {
	buckets := make([]leafBucket, 0, len(tmpl.Lines))
	for _, line := range tmpl.Lines {
		if !line.Type.IsLeaf() {
			if len(line.Mappings) > 0 {
				return nil, apperrors.NewConfigError(line.LineID, "%s lines cannot carry mappings", line.Type)
			}
			continue
		}
		b := leafBucket{
			lineID:     line.LineID,
			categories: make(map[string]struct{}),
			accounts:   make(map[string]struct{}),
		}
		for _, m := range line.Mappings {
			switch m.TargetKind {
			case domain.TargetCategory:
				if !cat.HasCategory(m.TargetID) {
					return nil, apperrors.NewConfigError(line.LineID, "mapping references unknown category %q", m.TargetID)
				}
				b.categories[m.TargetID] = struct{}{}
			case domain.TargetAccount:
				if !cat.HasAccount(m.TargetID) {
					return nil, apperrors.NewConfigError(line.LineID, "mapping references unknown account %q", m.TargetID)
				}
				b.accounts[m.TargetID] = struct{}{}
			default:
				return nil, apperrors.NewConfigError(line.LineID, "unknown mapping target kind %q", m.TargetKind)
			}
		}
		buckets = append(buckets, b)
	}
	return buckets, nil
}
