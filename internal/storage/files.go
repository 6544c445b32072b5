package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
)

// Data file names, one per record collection.
const (
	CategoriesFile   = "categories.dat"
	TransactionsFile = "transactions.dat"
	BudgetsFile      = "budgets.dat"
)

// FileStore reads and writes the three data files in one directory.
// A non-zero key enables the XOR byte-transform, applied uniformly and
// symmetrically to all three files.
type FileStore struct {
	dir string
	key byte
}

// NewFileStore creates a file store rooted at dir. Key 0 disables the
// byte-transform.
func NewFileStore(dir string, key byte) *FileStore {
	return &FileStore{dir: dir, key: key}
}

// Load hydrates a ledger from the data files. A missing or unreadable file
// leaves the corresponding collection empty; load is never fatal. A
// transaction whose category id no longer resolves is kept as-is and
// rendered as UNKNOWN downstream.
func (s *FileStore) Load() *ledger.Ledger {
	var categories []model.Category
	if data, ok := s.readFile(CategoriesFile); ok {
		var err error
		if categories, err = DecodeCategories(data); err != nil {
			slog.Warn("failed to decode categories, starting empty", "error", err)
			categories = nil
		}
	}

	var transactions []model.Transaction
	if data, ok := s.readFile(TransactionsFile); ok {
		var err error
		if transactions, err = DecodeTransactions(data); err != nil {
			slog.Warn("failed to decode transactions, starting empty", "error", err)
			transactions = nil
		}
	}

	var budgets []model.BudgetEntry
	if data, ok := s.readFile(BudgetsFile); ok {
		var err error
		if budgets, err = DecodeBudgets(data); err != nil {
			slog.Warn("failed to decode budgets, starting empty", "error", err)
			budgets = nil
		}
	}

	return ledger.Hydrate(categories, transactions, budgets)
}

// Save writes all three collections. Each file is written to a temp file and
// renamed into place, so a crash mid-write never leaves a torn file behind.
// The three files are still three separate writes, not one transaction; the
// load path tolerates the resulting inconsistencies. A failed save leaves
// in-memory state unaffected.
func (s *FileStore) Save(l *ledger.Ledger) error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	var errs []error
	if data, err := EncodeCategories(l.Categories()); err != nil {
		errs = append(errs, err)
	} else if err := s.writeFile(CategoriesFile, data); err != nil {
		errs = append(errs, err)
	}

	txns, _ := l.Transactions("", "")
	if data, err := EncodeTransactions(txns); err != nil {
		errs = append(errs, err)
	} else if err := s.writeFile(TransactionsFile, data); err != nil {
		errs = append(errs, err)
	}

	if data, err := EncodeBudgets(l.Budgets()); err != nil {
		errs = append(errs, err)
	} else if err := s.writeFile(BudgetsFile, data); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (s *FileStore) readFile(name string) ([]byte, bool) {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to read data file", "file", path, "error", err)
		}
		return nil, false
	}
	Obfuscate(data, s.key)
	return data, true
}

func (s *FileStore) writeFile(name string, data []byte) error {
	Obfuscate(data, s.key)

	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}

	slog.Debug("saved data file", "file", path, "bytes", len(data))
	return nil
}
