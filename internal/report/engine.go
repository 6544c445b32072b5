// Package report implements the query and aggregation engine: monthly and
// per-category summaries and budget-vs-actual reporting over the ledger.
package report

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
)

// ErrNoBudgets indicates a budget report was requested for a month with no
// budget entries. Callers get this instead of an ambiguous empty list.
var ErrNoBudgets = errors.New("no budgets set for this month")

// Engine computes reports over a ledger. It only reads; constructing one per
// report is cheap.
type Engine struct {
	ledger *ledger.Ledger
}

// NewEngine creates a reporting engine over the given ledger.
func NewEngine(l *ledger.Ledger) *Engine {
	return &Engine{ledger: l}
}

// MonthInterval returns the half-open interval [first day of month, first day
// of next month) as a pair of fixed-width date strings. December wraps into
// January of the following year.
func MonthInterval(year, month int32) (start, end string) {
	start = fmt.Sprintf("%04d-%02d-01", year, month)
	nextYear, nextMonth := year, month+1
	if month == 12 {
		nextYear, nextMonth = year+1, 1
	}
	end = fmt.Sprintf("%04d-%02d-01", nextYear, nextMonth)
	return start, end
}

// MonthlyCategoryNet returns the net spend for one category and month:
// expenses add, income subtracts. Income reducing the total is what makes
// the figure comparable against a budget; this is not raw cash flow.
func (e *Engine) MonthlyCategoryNet(categoryID int32, year, month int32) decimal.Decimal {
	start, end := MonthInterval(year, month)

	total := decimal.Zero
	for _, t := range e.allTransactions() {
		if t.CategoryID != categoryID {
			continue
		}
		if t.Date < start || t.Date >= end {
			continue
		}
		if t.Type == model.TypeExpense {
			total = total.Add(t.Amount)
		} else {
			total = total.Sub(t.Amount)
		}
	}
	return total
}

// Summary holds the combined totals for one month across all categories.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Net          decimal.Decimal // income minus expense
}

// MonthlySummary sums income and expense independently over every
// transaction in the month, regardless of category.
func (e *Engine) MonthlySummary(year, month int32) Summary {
	start, end := MonthInterval(year, month)

	var s Summary
	s.TotalIncome = decimal.Zero
	s.TotalExpense = decimal.Zero
	for _, t := range e.allTransactions() {
		if t.Date < start || t.Date >= end {
			continue
		}
		if t.Type == model.TypeIncome {
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		} else {
			s.TotalExpense = s.TotalExpense.Add(t.Amount)
		}
	}
	s.Net = s.TotalIncome.Sub(s.TotalExpense)
	return s
}

// CategoryTotal pairs a category with its net spend for one month.
type CategoryTotal struct {
	Category model.Category
	Net      decimal.Decimal
}

// CategorySummary returns the net spend of every known category for the
// month, in category storage order. Categories with no activity appear
// with a zero total.
func (e *Engine) CategorySummary(year, month int32) []CategoryTotal {
	categories := e.ledger.Categories()
	out := make([]CategoryTotal, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryTotal{
			Category: c,
			Net:      e.MonthlyCategoryNet(c.ID, year, month),
		})
	}
	return out
}

// BudgetLine is one row of a budget report: planned vs. actual for one
// category in the reported month.
type BudgetLine struct {
	CategoryName string
	Budgeted     decimal.Decimal
	Used         decimal.Decimal
	Remaining    decimal.Decimal
}

// BudgetReport compares every budget entry for the month against actual net
// spend. Returns ErrNoBudgets when the month has no entries at all.
func (e *Engine) BudgetReport(year, month int32) ([]BudgetLine, error) {
	var lines []BudgetLine
	for _, b := range e.ledger.Budgets() {
		if b.Year != year || b.Month != month {
			continue
		}
		used := e.MonthlyCategoryNet(b.CategoryID, year, month)
		lines = append(lines, BudgetLine{
			CategoryName: e.ledger.CategoryName(b.CategoryID),
			Budgeted:     b.Amount,
			Used:         used,
			Remaining:    b.Amount.Sub(used),
		})
	}
	if len(lines) == 0 {
		return nil, ErrNoBudgets
	}
	return lines, nil
}

func (e *Engine) allTransactions() []model.Transaction {
	// Empty bounds cannot fail validation.
	txns, _ := e.ledger.Transactions("", "")
	return txns
}
