package model

import "github.com/shopspring/decimal"

// DateFormat is the fixed-width date layout used everywhere. Zero padding is
// load-bearing: it makes lexicographic comparison equal chronological
// comparison, which the query engine and the codec both rely on.
const DateFormat = "2006-01-02"

// MaxNote is the longest transaction note, in bytes, that survives the
// fixed-width record layout.
const MaxNote = 255

// TxnType indicates whether a transaction is an expense or income.
type TxnType int32

const (
	// TypeExpense represents money going out.
	TypeExpense TxnType = 0
	// TypeIncome represents money coming in.
	TypeIncome TxnType = 1
)

// Valid reports whether t is one of the two known transaction types.
func (t TxnType) Valid() bool {
	return t == TypeExpense || t == TypeIncome
}

// String returns the short display form used in listings.
func (t TxnType) String() string {
	if t == TypeIncome {
		return "IN"
	}
	return "EX"
}

// Transaction represents a single dated ledger entry.
type Transaction struct {
	Date       string // "YYYY-MM-DD"
	Note       string
	Amount     decimal.Decimal // strictly positive
	ID         int32
	CategoryID int32
	Type       TxnType
}
