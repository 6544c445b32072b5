package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
		Long:  `Add, list, edit, delete, and search the dated transactions in the ledger.`,
	}

	cmd.AddCommand(addTxCmd())
	cmd.AddCommand(listTxCmd())
	cmd.AddCommand(editTxCmd())
	cmd.AddCommand(deleteTxCmd())
	cmd.AddCommand(searchTxCmd())

	return cmd
}

func addTxCmd() *cobra.Command {
	var (
		date     string
		txnType  string
		amount   string
		category string
		note     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction",
		Long:  `Record a new transaction. The date defaults to today when omitted.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			l, store, err := loadLedger()
			if err != nil {
				return err
			}

			if date == "" {
				date = time.Now().Format(model.DateFormat)
			}
			typ, err := parseTxnType(txnType)
			if err != nil {
				return err
			}
			amt, err := parseAmount(amount)
			if err != nil {
				return err
			}
			cat, err := resolveCategory(l, category)
			if err != nil {
				return err
			}

			t, err := l.AddTransaction(date, typ, amt, cat.ID, note)
			if err != nil {
				return err
			}

			saveLedger(store, l)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Transaction added (id=%d)", t.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&txnType, "type", "expense", "transaction type (expense, income)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (must be greater than zero)")
	cmd.Flags().StringVar(&category, "category", "", "category id or name")
	cmd.Flags().StringVar(&note, "note", "", "optional note")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func listTxCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long:  `List transactions in storage order, optionally bounded by an inclusive date range.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			l, _, err := loadLedger()
			if err != nil {
				return err
			}

			txns, err := l.Transactions(from, to)
			if err != nil {
				return err
			}
			printTransactions(l, txns)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "earliest date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "latest date (YYYY-MM-DD)")

	return cmd
}

func editTxCmd() *cobra.Command {
	var (
		date     string
		txnType  string
		amount   string
		category string
		note     string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Long: `Replace individual fields of a transaction. Only the flags you pass
change; every supplied value must pass the same validation as add.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			l, store, err := loadLedger()
			if err != nil {
				return err
			}

			var patch ledger.TransactionPatch
			if cmd.Flags().Changed("date") {
				patch.Date = &date
			}
			if cmd.Flags().Changed("type") {
				typ, err := parseTxnType(txnType)
				if err != nil {
					return err
				}
				patch.Type = &typ
			}
			if cmd.Flags().Changed("amount") {
				amt, err := parseAmount(amount)
				if err != nil {
					return err
				}
				patch.Amount = &amt
			}
			if cmd.Flags().Changed("category") {
				cat, err := resolveCategory(l, category)
				if err != nil {
					return err
				}
				patch.CategoryID = &cat.ID
			}
			if cmd.Flags().Changed("note") {
				patch.Note = &note
			}

			if err := l.EditTransaction(id, patch); err != nil {
				return err
			}

			saveLedger(store, l)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Transaction %d updated", id)))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "new date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&txnType, "type", "", "new type (expense, income)")
	cmd.Flags().StringVar(&amount, "amount", "", "new amount")
	cmd.Flags().StringVar(&category, "category", "", "new category id or name")
	cmd.Flags().StringVar(&note, "note", "", "new note")

	return cmd
}

func deleteTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			l, store, err := loadLedger()
			if err != nil {
				return err
			}

			if err := l.RemoveTransaction(id); err != nil {
				return err
			}

			saveLedger(store, l)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Transaction %d deleted", id)))
			return nil
		},
	}
}

func searchTxCmd() *cobra.Command {
	var (
		from, to  string
		category  string
		note      string
		minAmount string
		maxAmount string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search transactions",
		Long: `Search transactions with conjunctive filters. Substring matches are
case-insensitive; omitted amount bounds are unbounded.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			l, _, err := loadLedger()
			if err != nil {
				return err
			}

			filter := ledger.SearchFilter{
				StartDate: from,
				EndDate:   to,
				Category:  category,
				Note:      note,
			}
			if minAmount != "" {
				if filter.MinAmount, err = parseAmount(minAmount); err != nil {
					return err
				}
			}
			if maxAmount != "" {
				if filter.MaxAmount, err = parseAmount(maxAmount); err != nil {
					return err
				}
			}

			txns, err := l.Search(filter)
			if err != nil {
				return err
			}
			printTransactions(l, txns)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "earliest date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "latest date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&category, "category", "", "category name substring")
	cmd.Flags().StringVar(&note, "note", "", "note substring")
	cmd.Flags().StringVar(&minAmount, "min", "", "minimum amount")
	cmd.Flags().StringVar(&maxAmount, "max", "", "maximum amount")

	return cmd
}

func printTransactions(l *ledger.Ledger, txns []model.Transaction) {
	if len(txns) == 0 {
		fmt.Println(cli.InfoStyle.Render("No transactions found."))
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		cli.HeaderStyle.Render("ID"),
		cli.HeaderStyle.Render("Date"),
		cli.HeaderStyle.Render("Type"),
		cli.HeaderStyle.Render("Amount"),
		cli.HeaderStyle.Render("Category"),
		cli.HeaderStyle.Render("Note"))

	for _, t := range txns {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			t.ID,
			t.Date,
			t.Type,
			t.Amount.StringFixed(2),
			l.CategoryName(t.CategoryID),
			cli.SubtleStyle.Render(t.Note))
	}
}
