package ledger

import "testing"

func TestValidDate(t *testing.T) {
	tests := []struct {
		name string
		date string
		want bool
	}{
		{name: "valid date", date: "2024-03-15", want: true},
		{name: "leap day", date: "2024-02-29", want: true},
		{name: "non-leap february 31 accepted", date: "2023-02-31", want: true},
		{name: "december 31", date: "2024-12-31", want: true},
		{name: "month zero", date: "2024-00-15", want: false},
		{name: "month thirteen", date: "2024-13-01", want: false},
		{name: "day zero", date: "2024-03-00", want: false},
		{name: "day thirty-two", date: "2024-03-32", want: false},
		{name: "not zero padded", date: "2024-3-15", want: false},
		{name: "too long", date: "2024-03-150", want: false},
		{name: "wrong separators", date: "2024/03/15", want: false},
		{name: "letters", date: "2024-MA-15", want: false},
		{name: "empty", date: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidDate(tt.date); got != tt.want {
				t.Errorf("ValidDate(%q) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestCompareDates(t *testing.T) {
	// Lexicographic order is chronological order for this format.
	if CompareDates("2024-02-29", "2024-03-01") >= 0 {
		t.Error("2024-02-29 should sort before 2024-03-01")
	}
	if CompareDates("2024-03-01", "2024-12-31") >= 0 {
		t.Error("2024-03-01 should sort before 2024-12-31")
	}
	if CompareDates("2024-12-31", "2025-01-01") >= 0 {
		t.Error("2024-12-31 should sort before 2025-01-01")
	}
	if CompareDates("2024-06-15", "2024-06-15") != 0 {
		t.Error("equal dates should compare equal")
	}
}
