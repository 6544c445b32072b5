package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/csvio"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <path.csv>",
		Short: "Export transactions to CSV",
		Long: `Write all transactions to a CSV file with category ids resolved to
names. The header line is always emitted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			l, _, err := loadLedger()
			if err != nil {
				return err
			}

			if err := csvio.ExportFile(l, args[0]); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported to %s", args[0])))
			return nil
		},
	}
}
