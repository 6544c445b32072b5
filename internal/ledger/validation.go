package ledger

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Validation errors.
var (
	ErrEmptyName         = errors.New("name cannot be empty")
	ErrInvalidDate       = errors.New("date must be YYYY-MM-DD with month 1-12 and day 1-31")
	ErrInvalidType       = errors.New("type must be expense or income")
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrNegativeAmount    = errors.New("amount cannot be negative")
	ErrAmountPrecision   = errors.New("amount exceeds storable precision")
	ErrInvalidMonth      = errors.New("month must be between 1 and 12")
)

// storableAmount reports whether d survives persistence unchanged. The record
// layout stores the coefficient as a single int64; anything wider would be
// silently mangled, so it is rejected up front.
func storableAmount(d decimal.Decimal) bool {
	return d.Coefficient().IsInt64()
}

// ValidDate reports whether s is a fixed-width zero-padded "YYYY-MM-DD" date
// with month 1-12 and day 1-31. There is deliberately no calendar-correctness
// check beyond that: "2024-02-31" is accepted. The fixed width is what makes
// lexicographic comparison equal chronological comparison.
func ValidDate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for _, i := range []int{0, 1, 2, 3, 5, 6, 8, 9} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	month := int(s[5]-'0')*10 + int(s[6]-'0')
	day := int(s[8]-'0')*10 + int(s[9]-'0')
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}
	return true
}

// CompareDates orders two fixed-width dates. Plain string comparison is
// correct because the format is zero-padded.
func CompareDates(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
