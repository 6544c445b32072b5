package ledger

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/model"
)

func newLedgerWithCategory(t *testing.T) (*Ledger, model.Category) {
	t.Helper()
	l := New()
	c, err := l.AddCategory("Food")
	require.NoError(t, err)
	return l, c
}

func TestAddTransaction(t *testing.T) {
	l, food := newLedgerWithCategory(t)

	tests := []struct {
		wantErr error
		name    string
		date    string
		amount  string
		catID   int32
		typ     model.TxnType
	}{
		{name: "valid expense", date: "2024-03-15", typ: model.TypeExpense, amount: "42.50", catID: food.ID},
		{name: "valid income", date: "2024-03-16", typ: model.TypeIncome, amount: "0.01", catID: food.ID},
		{name: "bad date format", date: "15-03-2024", typ: model.TypeExpense, amount: "10", catID: food.ID, wantErr: ErrInvalidDate},
		{name: "bad month", date: "2024-13-01", typ: model.TypeExpense, amount: "10", catID: food.ID, wantErr: ErrInvalidDate},
		{name: "zero amount", date: "2024-03-15", typ: model.TypeExpense, amount: "0", catID: food.ID, wantErr: ErrNonPositiveAmount},
		{name: "negative amount", date: "2024-03-15", typ: model.TypeExpense, amount: "-5", catID: food.ID, wantErr: ErrNonPositiveAmount},
		{name: "unknown category", date: "2024-03-15", typ: model.TypeExpense, amount: "10", catID: 99, wantErr: common.ErrNotFound},
		{name: "bad type", date: "2024-03-15", typ: model.TxnType(7), amount: "10", catID: food.ID, wantErr: ErrInvalidType},
		{name: "coefficient wider than int64", date: "2024-03-15", typ: model.TypeExpense, amount: "1234567890123456789.123456", catID: food.ID, wantErr: ErrAmountPrecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(mustList(t, l))
			tx, err := l.AddTransaction(tt.date, tt.typ, decimal.RequireFromString(tt.amount), tt.catID, "note")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Len(t, mustList(t, l), before, "failed add must not change state")
				return
			}
			require.NoError(t, err)
			assert.Positive(t, tx.ID)
		})
	}
}

func TestAddTransactionRoundTrip(t *testing.T) {
	l, food := newLedgerWithCategory(t)

	want := map[int32]string{}
	dates := []string{"2024-01-05", "2024-02-10", "2024-03-15", "2023-12-31"}
	for _, d := range dates {
		tx, err := l.AddTransaction(d, model.TypeExpense, decimal.NewFromInt(10), food.ID, "n")
		require.NoError(t, err)
		want[tx.ID] = d
	}

	// Listed with no bounds, the set equals the added set.
	got := mustList(t, l)
	require.Len(t, got, len(want))
	for _, tx := range got {
		assert.Equal(t, want[tx.ID], tx.Date)
	}
}

func TestTransactionsDateRange(t *testing.T) {
	l, food := newLedgerWithCategory(t)
	for _, d := range []string{"2024-01-05", "2024-02-10", "2024-03-15"} {
		_, err := l.AddTransaction(d, model.TypeExpense, decimal.NewFromInt(10), food.ID, "")
		require.NoError(t, err)
	}

	got, err := l.Transactions("2024-02-01", "2024-03-01")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-02-10", got[0].Date)

	// Bounds are inclusive.
	got, err = l.Transactions("2024-02-10", "2024-03-15")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// Invalid bounds are rejected.
	_, err = l.Transactions("2024-2-1", "")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestEditTransaction(t *testing.T) {
	l, food := newLedgerWithCategory(t)
	travel, err := l.AddCategory("Travel")
	require.NoError(t, err)

	tx, err := l.AddTransaction("2024-03-15", model.TypeExpense, decimal.RequireFromString("42.50"), food.ID, "lunch")
	require.NoError(t, err)

	// Unsupplied fields keep their values.
	newNote := "team lunch"
	require.NoError(t, l.EditTransaction(tx.ID, TransactionPatch{Note: &newNote}))
	got, ok := l.TransactionByID(tx.ID)
	require.True(t, ok)
	assert.Equal(t, "team lunch", got.Note)
	assert.Equal(t, "2024-03-15", got.Date)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("42.50")))

	// Full patch.
	newDate := "2024-04-01"
	newType := model.TypeIncome
	newAmount := decimal.RequireFromString("100.00")
	require.NoError(t, l.EditTransaction(tx.ID, TransactionPatch{
		Date:       &newDate,
		Type:       &newType,
		Amount:     &newAmount,
		CategoryID: &travel.ID,
	}))
	got, _ = l.TransactionByID(tx.ID)
	assert.Equal(t, "2024-04-01", got.Date)
	assert.Equal(t, model.TypeIncome, got.Type)
	assert.Equal(t, travel.ID, got.CategoryID)

	// A supplied-but-invalid field rejects the whole edit.
	badDate := "2024-4-1"
	require.ErrorIs(t, l.EditTransaction(tx.ID, TransactionPatch{Date: &badDate, Note: &newNote}), ErrInvalidDate)
	got, _ = l.TransactionByID(tx.ID)
	assert.Equal(t, "2024-04-01", got.Date, "failed edit must not change state")

	badAmount := decimal.Zero
	require.ErrorIs(t, l.EditTransaction(tx.ID, TransactionPatch{Amount: &badAmount}), ErrNonPositiveAmount)

	badCat := int32(99)
	require.ErrorIs(t, l.EditTransaction(tx.ID, TransactionPatch{CategoryID: &badCat}), common.ErrNotFound)

	tooPrecise := decimal.RequireFromString("1234567890123456789.123456")
	require.ErrorIs(t, l.EditTransaction(tx.ID, TransactionPatch{Amount: &tooPrecise}), ErrAmountPrecision)

	require.ErrorIs(t, l.EditTransaction(12345, TransactionPatch{}), common.ErrNotFound)
}

func TestEditTransactionTruncatesNote(t *testing.T) {
	l, food := newLedgerWithCategory(t)
	tx, err := l.AddTransaction("2024-03-15", model.TypeExpense, decimal.NewFromInt(1), food.ID, "")
	require.NoError(t, err)

	long := strings.Repeat("n", model.MaxNote+50)
	require.NoError(t, l.EditTransaction(tx.ID, TransactionPatch{Note: &long}))
	got, _ := l.TransactionByID(tx.ID)
	assert.Len(t, got.Note, model.MaxNote)
}

func TestRemoveTransaction(t *testing.T) {
	l, food := newLedgerWithCategory(t)

	var ids []int32
	for i := 0; i < 3; i++ {
		tx, err := l.AddTransaction("2024-03-15", model.TypeExpense, decimal.NewFromInt(10), food.ID, "")
		require.NoError(t, err)
		ids = append(ids, tx.ID)
	}

	// Deleting the first reorders via swap-with-last; identity survives,
	// order is not guaranteed.
	require.NoError(t, l.RemoveTransaction(ids[0]))
	remaining := mustList(t, l)
	require.Len(t, remaining, 2)
	seen := map[int32]bool{}
	for _, tx := range remaining {
		seen[tx.ID] = true
	}
	assert.False(t, seen[ids[0]])
	assert.True(t, seen[ids[1]])
	assert.True(t, seen[ids[2]])

	assert.ErrorIs(t, l.RemoveTransaction(ids[0]), common.ErrNotFound)
}

func TestIDsNotReusedAfterDelete(t *testing.T) {
	l, food := newLedgerWithCategory(t)

	tx1, err := l.AddTransaction("2024-03-15", model.TypeExpense, decimal.NewFromInt(10), food.ID, "")
	require.NoError(t, err)
	require.NoError(t, l.RemoveTransaction(tx1.ID))

	tx2, err := l.AddTransaction("2024-03-16", model.TypeExpense, decimal.NewFromInt(10), food.ID, "")
	require.NoError(t, err)
	assert.Greater(t, tx2.ID, tx1.ID, "deleted ids must never be reused")
}

func mustList(t *testing.T, l *Ledger) []model.Transaction {
	t.Helper()
	txns, err := l.Transactions("", "")
	require.NoError(t, err)
	return txns
}
