// Package model defines the domain types shared across the application.
package model

// MaxCategoryName is the longest category name, in bytes, that survives the
// fixed-width record layout. Longer names are truncated on write paths.
const MaxCategoryName = 63

// Category represents a named grouping for transactions (e.g., "Food", "Rent").
type Category struct {
	Name string
	ID   int32
}

// UnknownCategoryName is rendered whenever a transaction references a
// category id that no longer resolves. A load after a partial save can
// legally produce such transactions; they are displayed, never dropped.
const UnknownCategoryName = "UNKNOWN"
