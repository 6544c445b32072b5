package csvio

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
)

func TestExportFormat(t *testing.T) {
	l := ledger.New()
	food, err := l.AddCategory("Food")
	require.NoError(t, err)

	_, err = l.AddTransaction("2024-03-15", model.TypeExpense, decimal.RequireFromString("42.5"), food.ID, "lunch")
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, Export(l, &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, "1,2024-03-15,0,42.50,Food,lunch", lines[1])
}

func TestExportEmptyLedger(t *testing.T) {
	l := ledger.New()
	var buf strings.Builder
	require.NoError(t, Export(l, &buf))
	assert.Equal(t, Header+"\n", buf.String())
}

func TestExportResolvesCategoryNames(t *testing.T) {
	tests := []struct {
		name     string
		txnType  model.TxnType
		amount   string
		category string
		note     string
		want     string
	}{
		{
			name:     "income with empty note",
			txnType:  model.TypeIncome,
			amount:   "1500.759",
			category: "Salary",
			want:     "1,2024-01-31,1,1500.76,Salary,",
		},
		{
			name:     "note with commas passes through",
			txnType:  model.TypeExpense,
			amount:   "9.99",
			category: "Food",
			note:     "bread, milk, eggs",
			want:     "1,2024-01-31,0,9.99,Food,bread, milk, eggs",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ledger.New()
			c, err := l.AddCategory(tt.category)
			require.NoError(t, err)
			_, err = l.AddTransaction("2024-01-31", tt.txnType, decimal.RequireFromString(tt.amount), c.ID, tt.note)
			require.NoError(t, err)

			var buf strings.Builder
			require.NoError(t, Export(l, &buf))
			lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
			require.Len(t, lines, 2)
			assert.Equal(t, tt.want, lines[1])
		})
	}
}

func TestExportUnknownCategory(t *testing.T) {
	// A transaction whose category was deleted out from under it still
	// exports, with the placeholder name.
	l := ledger.Hydrate(nil, []model.Transaction{{
		ID:         7,
		Date:       "2024-02-01",
		Amount:     decimal.NewFromInt(5),
		CategoryID: 99,
		Type:       model.TypeExpense,
		Note:       "orphan",
	}}, nil)

	var buf strings.Builder
	require.NoError(t, Export(l, &buf))
	assert.Contains(t, buf.String(), "7,2024-02-01,0,5.00,"+model.UnknownCategoryName+",orphan")
}
