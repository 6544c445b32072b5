package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Veraticus/tally/internal/cli"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage monthly category budgets",
		Long:  `Set and list planned spending ceilings per category and calendar month.`,
	}

	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(listBudgetsCmd())

	return cmd
}

func setBudgetCmd() *cobra.Command {
	var (
		category string
		year     int32
		month    int32
		amount   string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set a budget",
		Long: `Set the budget for one category and month. Setting an existing
(category, year, month) again overwrites its amount.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			l, store, err := loadLedger()
			if err != nil {
				return err
			}

			cat, err := resolveCategory(l, category)
			if err != nil {
				return err
			}
			amt, err := parseAmount(amount)
			if err != nil {
				return err
			}

			if err := l.SetBudget(cat.ID, year, month, amt); err != nil {
				return err
			}

			saveLedger(store, l)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budget for %q set to %s for %04d-%02d",
				cat.Name, amt.StringFixed(2), year, month)))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "category id or name")
	cmd.Flags().Int32Var(&year, "year", 0, "budget year (e.g., 2025)")
	cmd.Flags().Int32Var(&month, "month", 0, "budget month (1-12)")
	cmd.Flags().StringVar(&amount, "amount", "", "budget amount (non-negative)")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("month")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all budgets",
		RunE: func(_ *cobra.Command, _ []string) error {
			l, _, err := loadLedger()
			if err != nil {
				return err
			}

			budgets := l.Budgets()
			if len(budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets set."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Month"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Amount"))
			for _, b := range budgets {
				fmt.Fprintf(w, "%04d-%02d\t%s\t%s\n",
					b.Year, b.Month, l.CategoryName(b.CategoryID), b.Amount.StringFixed(2))
			}
			return nil
		},
	}
}
