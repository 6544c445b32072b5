// Package testutil provides shared helpers for tests.
package testutil

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
)

// Txn describes one transaction to seed.
type Txn struct {
	Date     string
	Category string
	Note     string
	Amount   string
	Type     model.TxnType
}

// SeedLedger builds a ledger containing the given transactions, creating
// each named category on first use. It fails the test on any error, so
// fixtures stay valid by construction.
func SeedLedger(t *testing.T, txns ...Txn) *ledger.Ledger {
	t.Helper()

	l := ledger.New()
	categories := make(map[string]int32)
	for _, tx := range txns {
		id, ok := categories[tx.Category]
		if !ok {
			c, err := l.AddCategory(tx.Category)
			if err != nil {
				t.Fatalf("failed to seed category %q: %v", tx.Category, err)
			}
			id = c.ID
			categories[tx.Category] = id
		}

		amount, err := decimal.NewFromString(tx.Amount)
		if err != nil {
			t.Fatalf("bad fixture amount %q: %v", tx.Amount, err)
		}
		if _, err := l.AddTransaction(tx.Date, tx.Type, amount, id, tx.Note); err != nil {
			t.Fatalf("failed to seed transaction %+v: %v", tx, err)
		}
	}
	return l
}

// Amount parses a fixture amount, failing the test on bad input.
func Amount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad fixture amount %q: %v", s, err)
	}
	return d
}
