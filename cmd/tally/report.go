package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/report"
)

func reportCmd() *cobra.Command {
	var year, month int32

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Monthly reports",
		Long: `Produce the monthly summary, per-category net spend, and
budget-vs-actual report for one month. With no subcommand all three run,
like a monthly statement.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			engine, err := reportEngine(year, month)
			if err != nil {
				return err
			}

			printMonthlySummary(engine, year, month)
			fmt.Println()
			printCategorySummary(engine, year, month)
			fmt.Println()
			printBudgetReport(engine, year, month)
			return nil
		},
	}

	now := time.Now()
	cmd.PersistentFlags().Int32Var(&year, "year", int32(now.Year()), "report year")
	cmd.PersistentFlags().Int32Var(&month, "month", int32(now.Month()), "report month (1-12)")

	cmd.AddCommand(&cobra.Command{
		Use:   "month",
		Short: "Income, expense, and net for the month",
		RunE: func(_ *cobra.Command, _ []string) error {
			engine, err := reportEngine(year, month)
			if err != nil {
				return err
			}
			printMonthlySummary(engine, year, month)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "categories",
		Short: "Net spend per category for the month",
		RunE: func(_ *cobra.Command, _ []string) error {
			engine, err := reportEngine(year, month)
			if err != nil {
				return err
			}
			printCategorySummary(engine, year, month)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "budgets",
		Short: "Budget vs. actual for the month",
		RunE: func(_ *cobra.Command, _ []string) error {
			engine, err := reportEngine(year, month)
			if err != nil {
				return err
			}
			printBudgetReport(engine, year, month)
			return nil
		},
	})

	return cmd
}

func reportEngine(year, month int32) (*report.Engine, error) {
	if err := validMonth(month); err != nil {
		return nil, err
	}
	l, _, err := loadLedger()
	if err != nil {
		return nil, err
	}
	return report.NewEngine(l), nil
}

func printMonthlySummary(engine *report.Engine, year, month int32) {
	s := engine.MonthlySummary(year, month)

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Monthly Summary %04d-%02d", year, month)))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintf(w, "Total Income:\t%s\n", s.TotalIncome.StringFixed(2))
	fmt.Fprintf(w, "Total Expense:\t%s\n", s.TotalExpense.StringFixed(2))
	fmt.Fprintf(w, "Net Savings:\t%s\n", s.Net.StringFixed(2))
}

func printCategorySummary(engine *report.Engine, year, month int32) {
	totals := engine.CategorySummary(year, month)

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Category Summary %04d-%02d", year, month)))
	if len(totals) == 0 {
		fmt.Println(cli.InfoStyle.Render("No categories."))
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()
	for _, ct := range totals {
		fmt.Fprintf(w, "%s\t%s\n", ct.Category.Name, ct.Net.StringFixed(2))
	}
}

func printBudgetReport(engine *report.Engine, year, month int32) {
	lines, err := engine.BudgetReport(year, month)
	if errors.Is(err, report.ErrNoBudgets) {
		fmt.Println(cli.FormatTitle(fmt.Sprintf("Budget Report %04d-%02d", year, month)))
		fmt.Println(cli.InfoStyle.Render("No budgets set for this month."))
		return
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Budget Report %04d-%02d", year, month)))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		cli.HeaderStyle.Render("Category"),
		cli.HeaderStyle.Render("Budget"),
		cli.HeaderStyle.Render("Used"),
		cli.HeaderStyle.Render("Remaining"))
	for _, line := range lines {
		remaining := line.Remaining.StringFixed(2)
		if line.Remaining.IsNegative() {
			remaining = cli.ErrorStyle.Render(remaining)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			line.CategoryName,
			line.Budgeted.StringFixed(2),
			line.Used.StringFixed(2),
			remaining)
	}
}
