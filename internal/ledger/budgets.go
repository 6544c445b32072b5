package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/model"
)

// SetBudget creates or updates the budget for (category, year, month).
// Setting an existing triple overwrites its amount in place, so at most one
// entry per triple ever exists.
func (l *Ledger) SetBudget(categoryID int32, year, month int32, amount decimal.Decimal) error {
	if _, ok := l.CategoryByID(categoryID); !ok {
		return fmt.Errorf("category %d: %w", categoryID, common.ErrNotFound)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("month %d: %w", month, ErrInvalidMonth)
	}
	if amount.IsNegative() {
		return fmt.Errorf("amount %s: %w", amount, ErrNegativeAmount)
	}
	if !storableAmount(amount) {
		return fmt.Errorf("amount %s: %w", amount, ErrAmountPrecision)
	}

	for i, b := range l.budgets {
		if b.CategoryID == categoryID && b.Year == year && b.Month == month {
			l.budgets[i].Amount = amount
			return nil
		}
	}
	l.budgets = append(l.budgets, model.BudgetEntry{
		CategoryID: categoryID,
		Year:       year,
		Month:      month,
		Amount:     amount,
	})
	return nil
}

// Budgets returns all budget entries in storage order.
func (l *Ledger) Budgets() []model.BudgetEntry {
	out := make([]model.BudgetEntry, len(l.budgets))
	copy(out, l.budgets)
	return out
}

// BudgetAmount returns the planned amount for (category, year, month), if set.
func (l *Ledger) BudgetAmount(categoryID int32, year, month int32) (decimal.Decimal, bool) {
	for _, b := range l.budgets {
		if b.CategoryID == categoryID && b.Year == year && b.Month == month {
			return b.Amount, true
		}
	}
	return decimal.Decimal{}, false
}
