package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/tally/internal/model"
)

// SearchFilter describes a conjunctive transaction search. Zero values mean
// "no constraint": empty strings for dates and substrings, zero decimals for
// the amount bounds. An amount of exactly zero cannot exist in the store, so
// the zero sentinel loses nothing.
type SearchFilter struct {
	StartDate string
	EndDate   string
	Category  string // case-insensitive substring of the resolved name
	Note      string // case-insensitive substring
	MinAmount decimal.Decimal
	MaxAmount decimal.Decimal
}

// Search returns all transactions matching every set filter, in storage
// order. Category substrings match against the resolved category name, so a
// transaction with a dangling category id matches "UNKNOWN".
func (l *Ledger) Search(f SearchFilter) ([]model.Transaction, error) {
	if f.StartDate != "" && !ValidDate(f.StartDate) {
		return nil, fmt.Errorf("start date %q: %w", f.StartDate, ErrInvalidDate)
	}
	if f.EndDate != "" && !ValidDate(f.EndDate) {
		return nil, fmt.Errorf("end date %q: %w", f.EndDate, ErrInvalidDate)
	}

	category := strings.ToLower(f.Category)
	note := strings.ToLower(f.Note)

	var out []model.Transaction
	for _, t := range l.transactions {
		if f.StartDate != "" && t.Date < f.StartDate {
			continue
		}
		if f.EndDate != "" && t.Date > f.EndDate {
			continue
		}
		if f.MinAmount.IsPositive() && t.Amount.LessThan(f.MinAmount) {
			continue
		}
		if f.MaxAmount.IsPositive() && t.Amount.GreaterThan(f.MaxAmount) {
			continue
		}
		if category != "" && !strings.Contains(strings.ToLower(l.CategoryName(t.CategoryID)), category) {
			continue
		}
		if note != "" && !strings.Contains(strings.ToLower(t.Note), note) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
