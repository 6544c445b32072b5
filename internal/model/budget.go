package model

import "github.com/shopspring/decimal"

// BudgetEntry represents a planned spending ceiling for one category in one
// calendar month. At most one entry exists per (category, year, month).
type BudgetEntry struct {
	Amount     decimal.Decimal // non-negative
	CategoryID int32
	Year       int32
	Month      int32 // 1..12
}
