package accounting

import (
	"fmt"

	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the balance sign of a transaction kind to an amount.
// INCOME raises an account balance, EXPENSE lowers it.
func SignedAmount(kind domain.TransactionKind, amount decimal.Decimal) (decimal.Decimal, error) {
	switch kind {
	case domain.Income:
		return amount, nil
	case domain.Expense:
		return amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction kind '%s'", kind)
	}
}

// BalanceDelta is the effect a transaction has on its account balance: the
// signed sum of its PAID payments. Pending installments do not move money yet.
func BalanceDelta(kind domain.TransactionKind, payments []domain.Payment) (decimal.Decimal, error) {
	paid := decimal.Zero
	for _, p := range payments {
		if p.Status == domain.Paid {
			paid = paid.Add(p.Amount)
		}
	}
	return SignedAmount(kind, paid)
}

// AccountDeltas computes how switching a transaction from old to updated moves
// account balances, keyed by account id. A nil old means a new transaction.
// Accounts whose delta nets to zero are left out.
func AccountDeltas(old, updated *domain.Transaction) (map[string]decimal.Decimal, error) {
	deltas := make(map[string]decimal.Decimal)

	if old != nil && old.AccountID != "" {
		d, err := BalanceDelta(old.Kind, old.Payments)
		if err != nil {
			return nil, fmt.Errorf("error calculating previous balance effect for transaction %s: %w", old.TransactionID, err)
		}
		deltas[old.AccountID] = deltas[old.AccountID].Sub(d)
	}
	if updated != nil && updated.AccountID != "" {
		d, err := BalanceDelta(updated.Kind, updated.Payments)
		if err != nil {
			return nil, fmt.Errorf("error calculating balance effect for transaction %s: %w", updated.TransactionID, err)
		}
		deltas[updated.AccountID] = deltas[updated.AccountID].Add(d)
	}

	for id, d := range deltas {
		if d.IsZero() {
			delete(deltas, id)
		}
	}
	return deltas, nil
}
