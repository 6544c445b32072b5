package csvio

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
)

// ImportResult summarizes one import run.
type ImportResult struct {
	CreatedCategories []string
	Imported          int
	Skipped           int
}

// Import reads transactions from r, skipping the header line. Each line is
// split on commas into exactly five fields, date,type,amount,category,note;
// everything after the fourth comma is the note, so notes may contain
// commas. Lines that fail validation are skipped and reported, never fatal.
// Categories are matched case-insensitively by exact name and auto-created
// when missing. Imported transactions always get fresh ids; ids present in
// the file are never trusted.
func Import(l *ledger.Ledger, r io.Reader) (ImportResult, error) {
	var res ImportResult

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		if lineno == 1 {
			continue // header
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		if err := importLine(l, line, &res); err != nil {
			slog.Warn("skipping CSV line", "line", lineno, "error", err)
			res.Skipped++
		}
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("failed to read CSV: %w", err)
	}
	return res, nil
}

func importLine(l *ledger.Ledger, line string, res *ImportResult) error {
	// Exported lines carry a leading id field; imports may or may not. Try
	// the five-field shape first and fall back to dropping a numeric id.
	fields := strings.SplitN(line, ",", 5)
	if len(fields) < 5 {
		return fmt.Errorf("expected 5 fields, got %d", len(fields))
	}
	if !ledger.ValidDate(fields[0]) {
		// Probably "id,date,type,amount,category,note"; shift one field.
		if _, err := strconv.Atoi(fields[0]); err == nil {
			fields = strings.SplitN(line, ",", 6)[1:]
			if len(fields) < 5 {
				return fmt.Errorf("expected 5 fields after id, got %d", len(fields))
			}
		}
	}

	date := fields[0]
	if !ledger.ValidDate(date) {
		return fmt.Errorf("invalid date %q", date)
	}

	typ := model.TypeExpense
	if n, err := strconv.Atoi(strings.TrimSpace(fields[1])); err == nil && n == 1 {
		typ = model.TypeIncome
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(fields[2]))
	if err != nil {
		return fmt.Errorf("invalid amount %q", fields[2])
	}

	name := fields[3]
	category, ok := l.CategoryByName(name)
	if !ok {
		category, err = l.AddCategory(name)
		if err != nil {
			return fmt.Errorf("failed to create category %q: %w", name, err)
		}
		res.CreatedCategories = append(res.CreatedCategories, category.Name)
		slog.Info("created category from CSV", "name", category.Name, "id", category.ID)
	}

	if _, err := l.AddTransaction(date, typ, amount, category.ID, fields[4]); err != nil {
		return err
	}
	res.Imported++
	return nil
}

// ImportFile imports from the named file.
func ImportFile(l *ledger.Ledger, path string) (ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()
	return Import(l, f)
}
