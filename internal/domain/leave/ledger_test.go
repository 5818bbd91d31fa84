package leave

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerReserveAndRestore(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.addEmployee("emp-1", Balance{Paid: 15})
	ledger := NewLedger(store)

	require.NoError(t, ledger.Reserve(ctx, "emp-1", CategoryPaid, 5))
	remaining, err := ledger.Remaining(ctx, "emp-1", CategoryPaid)
	require.NoError(t, err)
	assert.Equal(t, 10, remaining)

	require.NoError(t, ledger.Restore(ctx, "emp-1", CategoryPaid, 5))
	remaining, err = ledger.Remaining(ctx, "emp-1", CategoryPaid)
	require.NoError(t, err)
	assert.Equal(t, 15, remaining)
}

func TestLedgerReserveInsufficient(t *testing.T) {
	store := newFakeStore()
	store.addEmployee("emp-1", Balance{Sick: 1})
	ledger := NewLedger(store)

	err := ledger.Reserve(context.Background(), "emp-1", CategorySick, 2)
	var insufficient InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 1, insufficient.Available)
	assert.Equal(t, 2, insufficient.Requested)
}

func TestLedgerReserveNonPositiveDays(t *testing.T) {
	store := newFakeStore()
	store.addEmployee("emp-1", Balance{Sick: 5})
	ledger := NewLedger(store)

	require.ErrorIs(t, ledger.Reserve(context.Background(), "emp-1", CategorySick, 0), ErrNonPositiveDays)
	require.ErrorIs(t, ledger.Reserve(context.Background(), "emp-1", CategorySick, -3), ErrNonPositiveDays)
}

func TestLedgerUnknownCategoryDistinctFromZero(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.addEmployee("emp-1", Balance{})
	ledger := NewLedger(store)

	// Zero remaining is a valid answer.
	remaining, err := ledger.Remaining(ctx, "emp-1", CategoryMaternity)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)

	// An unknown tag is not.
	_, err = ledger.Remaining(ctx, "emp-1", Category("vacation"))
	var unknown UnknownCategoryError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "vacation", unknown.Category)
}

func TestLedgerAdjust(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.addEmployee("emp-1", Balance{Casual: 4})
	ledger := NewLedger(store)

	require.NoError(t, ledger.Adjust(ctx, "emp-1", "casual", 3))
	remaining, err := ledger.Remaining(ctx, "emp-1", CategoryCasual)
	require.NoError(t, err)
	assert.Equal(t, 7, remaining)

	require.NoError(t, ledger.Adjust(ctx, "emp-1", "casual", -2))
	remaining, err = ledger.Remaining(ctx, "emp-1", CategoryCasual)
	require.NoError(t, err)
	assert.Equal(t, 5, remaining)

	// A debit can never push the balance negative.
	err = ledger.Adjust(ctx, "emp-1", "casual", -9)
	var insufficient InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)

	require.ErrorIs(t, ledger.Adjust(ctx, "emp-1", "casual", 0), ErrNonPositiveDays)
}
