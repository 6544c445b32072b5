package main

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/csvio"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <path.csv>",
		Short: "Import transactions from CSV",
		Long: `Import transactions from a CSV file. Missing categories are created
automatically; lines with invalid dates are skipped and reported. Imported
transactions always receive fresh ids.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			l, store, err := loadLedger()
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open import file: %w", err)
			}
			defer f.Close()

			info, err := f.Stat()
			if err != nil {
				return fmt.Errorf("failed to stat import file: %w", err)
			}
			bar := newImportBar(info.Size(), "Importing transactions...", true)

			res, err := csvio.Import(l, io.TeeReader(f, bar))
			_ = bar.Finish()
			if err != nil {
				return err
			}

			common.LogInfo("CSV import complete", common.Fields{
				"file":       args[0],
				"imported":   res.Imported,
				"skipped":    res.Skipped,
				"categories": len(res.CreatedCategories),
			})

			saveLedger(store, l)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d transactions (%d skipped, %d categories created)",
				res.Imported, res.Skipped, len(res.CreatedCategories))))
			return nil
		},
	}
}

func newImportBar(size int64, description string, showBytes bool) *progressbar.ProgressBar {
	return progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(showBytes),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]"+description+"[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}
