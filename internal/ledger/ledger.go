// Package ledger implements the in-memory record store: the category,
// transaction, and budget collections plus the CRUD and integrity rules
// the command layer and the reporting engine build on.
package ledger

import (
	"github.com/Veraticus/tally/internal/model"
)

// Ledger owns the three record collections for one process lifetime.
// It is not safe for concurrent use; every command runs load → mutate → save
// on its own instance.
type Ledger struct {
	categories        []model.Category
	transactions      []model.Transaction
	budgets           []model.BudgetEntry
	nextCategoryID    int32
	nextTransactionID int32
}

// New creates an empty ledger with both id sequences starting at 1.
func New() *Ledger {
	return &Ledger{
		nextCategoryID:    1,
		nextTransactionID: 1,
	}
}

// Hydrate builds a ledger from previously persisted records. The id counters
// are reseeded to one past the highest id seen, so records created after a
// load can never collide with loaded ones.
func Hydrate(categories []model.Category, transactions []model.Transaction, budgets []model.BudgetEntry) *Ledger {
	l := New()
	l.categories = append(l.categories, categories...)
	l.transactions = append(l.transactions, transactions...)
	l.budgets = append(l.budgets, budgets...)

	for _, c := range l.categories {
		if c.ID >= l.nextCategoryID {
			l.nextCategoryID = c.ID + 1
		}
	}
	for _, t := range l.transactions {
		if t.ID >= l.nextTransactionID {
			l.nextTransactionID = t.ID + 1
		}
	}
	return l
}

// truncate cuts s to at most n bytes so it survives the fixed-width record
// layout. Byte truncation matches the on-disk field size exactly.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// swapDelete removes index i from a slice in O(1) by moving the last element
// into its place. Ordering among the remaining elements is not preserved;
// callers must not rely on post-delete order.
func swapDelete[T any](s []T, i int) []T {
	s[i] = s[len(s)-1]
	return s[:len(s)-1]
}
