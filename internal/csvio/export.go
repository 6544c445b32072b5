// Package csvio converts the transaction ledger to and from its delimited
// text format. Parsing is deliberately comma-only with no quote handling;
// the trailing note field is the only one that may legally contain commas.
package csvio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/tally/internal/ledger"
)

// Header is the mandatory first line of the CSV format.
const Header = "id,date,type,amount,category,note"

// Export writes all transactions to w with category ids resolved to names.
// Type is numeric (0=expense, 1=income) and amounts are formatted to two
// decimals.
func Export(l *ledger.Ledger, w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	txns, _ := l.Transactions("", "")
	for _, t := range txns {
		_, err := fmt.Fprintf(bw, "%d,%s,%d,%s,%s,%s\n",
			t.ID,
			t.Date,
			int32(t.Type),
			t.Amount.StringFixed(2),
			l.CategoryName(t.CategoryID),
			t.Note)
		if err != nil {
			return fmt.Errorf("failed to write transaction %d: %w", t.ID, err)
		}
	}
	return bw.Flush()
}

// ExportFile exports to the named file, creating or truncating it.
func ExportFile(l *ledger.Ledger, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open export file: %w", err)
	}
	if err := Export(l, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
