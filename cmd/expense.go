package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"spendwise/internal/cli"
	"spendwise/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagCategory   string
	flagDate       string
	flagByCategory bool
	flagYes        bool
)

var addCmd = &cobra.Command{
	Use:   "add <amount> [description]",
	Short: "Record an expense",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses, newest first",
	RunE:  runList,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all expenses",
	RunE:  runClear,
}

func init() {
	addCmd.Flags().StringVarP(&flagCategory, "category", "c", "", "Expense category")
	addCmd.Flags().StringVar(&flagDate, "date", "", "Expense date as YYYY-MM-DD (defaults to today)")
	listCmd.Flags().BoolVar(&flagByCategory, "by-category", false, "Show a per-category breakdown")
	clearCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(clearCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[0])
	}
	if amount < 0 {
		return fmt.Errorf("amount must be non-negative")
	}

	date := time.Now()
	if flagDate != "" {
		date, err = time.Parse("2006-01-02", flagDate)
		if err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", flagDate)
		}
	}

	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	saved, err := st.AppendExpense(model.Expense{
		Amount:      amount,
		Date:        date,
		Description: strings.Join(args[1:], " "),
		Category:    flagCategory,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Added expense #%d: %s on %s\n",
		saved.ID,
		cli.FormatMoney(cfg.General.Currency, saved.Amount),
		cli.FormatDate(saved.Date),
	)
	return nil
}

func runList(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	expenses, err := st.ListExpenses()
	if err != nil {
		return err
	}
	if len(expenses) == 0 {
		fmt.Println("  No expenses recorded.")
		return nil
	}

	cur := cfg.General.Currency

	if flagByCategory {
		printCategoryBreakdown(expenses, cur)
		return nil
	}

	rows := make([][]string, 0, len(expenses))
	var total float64
	for _, e := range expenses {
		desc := e.Description
		if desc == "" {
			desc = "-"
		}
		rows = append(rows, []string{
			cli.FormatDate(e.Date), desc, e.Category, cli.FormatMoney(cur, e.Amount),
		})
		total += e.Amount
	}

	fmt.Println(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Expenses (%d, total %s)", len(expenses), cli.FormatMoney(cur, total)),
		Headers: []string{"Date", "Description", "Category", "Amount"},
		Rows:    rows,
	}))
	return nil
}

func printCategoryBreakdown(expenses []model.Expense, currency string) {
	totals := make(map[string]float64)
	for _, e := range expenses {
		totals[e.Category] += e.Amount
	}

	type catTotal struct {
		name  string
		total float64
	}
	cats := make([]catTotal, 0, len(totals))
	var max float64
	for name, total := range totals {
		cats = append(cats, catTotal{name, total})
		if total > max {
			max = total
		}
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].total > cats[j].total })

	fmt.Println()
	for _, c := range cats {
		fmt.Printf("  %-16s %12s  %s\n",
			c.name,
			cli.FormatMoney(currency, c.total),
			cli.RenderHorizontalBar(c.total, max, 30),
		)
	}
	fmt.Println()
}

func runClear(_ *cobra.Command, _ []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if !flagYes {
		fmt.Print("  Delete ALL expenses? [y/N] ")
		var answer string
		_, _ = fmt.Scanln(&answer)
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			fmt.Println("  Aborted.")
			return nil
		}
	}

	if err := st.ClearExpenses(); err != nil {
		return err
	}
	fmt.Println("  All expenses deleted.")
	return nil
}
