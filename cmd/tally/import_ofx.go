package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
	"github.com/Veraticus/tally/internal/ofx"
)

func importOFXCmd() *cobra.Command {
	var categoryName string

	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import bank statement transactions from OFX or QFX (Quicken) files.
Debits become expenses and credits become income; every imported transaction
lands in the category named by --category, created if missing.

Examples:
  # Import a single statement
  tally import-ofx ~/Downloads/chase_jan_2024.qfx

  # Import several at once into a named category
  tally import-ofx --category "Checking" ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Expand globs and collect all files
			var allFiles []string
			for _, pattern := range args {
				matches, err := filepath.Glob(pattern)
				if err != nil {
					return fmt.Errorf("invalid pattern %s: %w", pattern, err)
				}
				if len(matches) == 0 {
					if _, err := os.Stat(pattern); err == nil {
						allFiles = append(allFiles, pattern)
					} else {
						slog.Warn("no files found matching pattern", "pattern", pattern)
					}
				} else {
					allFiles = append(allFiles, matches...)
				}
			}
			if len(allFiles) == 0 {
				return fmt.Errorf("no files found to import")
			}

			l, store, err := loadLedger()
			if err != nil {
				return err
			}

			category, err := ensureCategory(l, categoryName)
			if err != nil {
				return err
			}

			parser := ofx.NewParser()
			imported, failed := 0, 0
			bar := newImportBar(int64(len(allFiles)), "Importing OFX files...", false)
			for _, filePath := range allFiles {
				n, err := importOFXFile(l, parser, filePath, category.ID)
				if err != nil {
					common.LogError(err, "failed to import OFX file", common.Fields{"file": filePath})
					failed++
				}
				imported += n
				_ = bar.Add(1)
			}
			_ = bar.Finish()

			saveLedger(store, l)
			msg := fmt.Sprintf("Imported %d transactions from %d files into %q",
				imported, len(allFiles)-failed, category.Name)
			fmt.Println(cli.FormatSuccess(msg))
			if failed > 0 {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("%d files failed to parse", failed)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryName, "category", "Imported", "category for imported transactions (created if missing)")

	return cmd
}

func ensureCategory(l *ledger.Ledger, name string) (model.Category, error) {
	if c, ok := l.CategoryByName(name); ok {
		return c, nil
	}
	return l.AddCategory(name)
}

func importOFXFile(l *ledger.Ledger, parser *ofx.Parser, path string, categoryID int32) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	entries, err := parser.ParseFile(f)
	if err != nil {
		return 0, err
	}

	imported := 0
	for _, e := range entries {
		if _, err := l.AddTransaction(e.Date, e.Type, e.Amount, categoryID, e.Note); err != nil {
			// Zero-amount statement lines exist; skip rather than abort.
			slog.Warn("skipping statement entry", "file", filepath.Base(path), "error", err)
			continue
		}
		imported++
	}
	return imported, nil
}
