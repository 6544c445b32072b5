package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/config"
	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/storage"
)

// openStore builds the file store from configuration. The obfuscation key
// must be exactly one byte when the transform is enabled; a disabled
// transform is a zero key, which reads plain files untouched.
func openStore() (*storage.FileStore, error) {
	dir := config.DataDir(viper.GetString("data.dir"))

	var key byte
	if viper.GetBool("obfuscation.enabled") {
		k := viper.GetString("obfuscation.key")
		if k == "" {
			return nil, common.NewUserError("obfuscation is enabled but obfuscation.key is not set", common.ErrMissingConfig)
		}
		if len(k) != 1 || k[0] == 0 {
			return nil, common.NewUserError("obfuscation.key must be a single non-zero byte", common.ErrInvalidConfig)
		}
		key = k[0]
	}

	return storage.NewFileStore(dir, key), nil
}

// loadLedger opens the store and hydrates the ledger from disk.
func loadLedger() (*ledger.Ledger, *storage.FileStore, error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	return store.Load(), store, nil
}

// saveLedger persists the ledger. A failed save is a warning, not a command
// failure: in-memory state was already mutated and the next run retries.
func saveLedger(store *storage.FileStore, l *ledger.Ledger) {
	if err := store.Save(l); err != nil {
		common.LogWarn("failed to save ledger", common.Fields{"error": err.Error()})
	}
}

// parseAmount parses a decimal amount from flag input.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// parseTxnType accepts the numeric and the spelled-out forms.
func parseTxnType(s string) (model.TxnType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "expense", "ex":
		return model.TypeExpense, nil
	case "1", "income", "in":
		return model.TypeIncome, nil
	default:
		return 0, fmt.Errorf("invalid type %q (want expense or income)", s)
	}
}

// resolveCategory accepts either a numeric category id or a category name.
func resolveCategory(l *ledger.Ledger, s string) (model.Category, error) {
	if id, err := strconv.ParseInt(s, 10, 32); err == nil {
		if c, ok := l.CategoryByID(int32(id)); ok {
			return c, nil
		}
		return model.Category{}, fmt.Errorf("category %d: %w", id, common.ErrNotFound)
	}
	if c, ok := l.CategoryByName(s); ok {
		return c, nil
	}
	return model.Category{}, fmt.Errorf("category %q: %w", s, common.ErrNotFound)
}

// parseID parses a record id argument.
func parseID(s string) (int32, error) {
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return int32(id), nil
}

// validMonth checks a report month argument.
func validMonth(month int32) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month %d: %w", month, ledger.ErrInvalidMonth)
	}
	return nil
}
