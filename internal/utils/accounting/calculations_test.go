package accounting

import (
	"testing"

	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestBalanceDelta(t *testing.T) {
	payments := []domain.Payment{
		{Amount: d("40.00"), Status: domain.Paid},
		{Amount: d("60.00"), Status: domain.Pending},
		{Amount: d("10.50"), Status: domain.Paid},
	}

	income, err := BalanceDelta(domain.Income, payments)
	require.NoError(t, err)
	assert.True(t, income.Equal(d("50.50")))

	expense, err := BalanceDelta(domain.Expense, payments)
	require.NoError(t, err)
	assert.True(t, expense.Equal(d("-50.50")))

	_, err = BalanceDelta(domain.TransactionKind("TRANSFER"), payments)
	assert.Error(t, err)
}

func TestAccountDeltas(t *testing.T) {
	old := &domain.Transaction{
		TransactionID: "t1", AccountID: "acc-a", Kind: domain.Expense,
		Payments: []domain.Payment{{Amount: d("30"), Status: domain.Paid}},
	}

	t.Run("new transaction", func(t *testing.T) {
		deltas, err := AccountDeltas(nil, old)
		require.NoError(t, err)
		assert.True(t, deltas["acc-a"].Equal(d("-30")))
	})

	t.Run("payment becomes paid", func(t *testing.T) {
		updated := *old
		updated.Payments = []domain.Payment{
			{Amount: d("30"), Status: domain.Paid},
			{Amount: d("20"), Status: domain.Paid},
		}
		deltas, err := AccountDeltas(old, &updated)
		require.NoError(t, err)
		require.Len(t, deltas, 1)
		assert.True(t, deltas["acc-a"].Equal(d("-20")))
	})

	t.Run("account moved", func(t *testing.T) {
		updated := *old
		updated.AccountID = "acc-b"
		deltas, err := AccountDeltas(old, &updated)
		require.NoError(t, err)
		assert.True(t, deltas["acc-a"].Equal(d("30")))
		assert.True(t, deltas["acc-b"].Equal(d("-30")))
	})

	t.Run("unchanged nets out", func(t *testing.T) {
		deltas, err := AccountDeltas(old, old)
		require.NoError(t, err)
		assert.Empty(t, deltas)
	})
}
