package cmd

import (
	"fmt"
	"os"
	"time"

	"spendwise/internal/budget"
	"spendwise/internal/cli"
	"spendwise/internal/config"
	"spendwise/internal/store"

	"github.com/spf13/cobra"
)

var flagDBPath string

var rootCmd = &cobra.Command{
	Use:   "spendwise",
	Short: "Personal budgeting with a conversational assistant",
	Long:  "Track income, budget, and expenses, and ask a hosted assistant for budget plans and spending analysis.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDBPath, "db", "d", "", "Database path (defaults to the config dir)")
}

// openStore is the shared data path used by all commands: load config, then
// open the database at the configured or overridden location.
func openStore() (*store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}

	dbPath := config.DBPath(cfg)
	if flagDBPath != "" {
		dbPath = flagDBPath
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, cfg, err
	}
	return st, cfg, nil
}

func runSummary(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	b, err := st.GetBudget()
	if err != nil {
		return err
	}
	if b == nil {
		fmt.Println()
		fmt.Println("  No budget set up yet. Run `spendwise setup` to get started.")
		fmt.Println()
		return nil
	}

	expenses, err := st.ListExpenses()
	if err != nil {
		return err
	}

	cur := cfg.General.Currency
	summary := budget.Summarize(*b, expenses, time.Now())

	fmt.Println(cli.RenderTitle("spendwise"))
	fmt.Println(cli.RenderTable(cli.Table{
		Headers: []string{"", ""},
		Rows: [][]string{
			{"Monthly income", cli.FormatMoney(cur, b.MonthlyIncome)},
			{fmt.Sprintf("%s budget", cli.FormatPeriodLabel(b.Period.String())), cli.FormatMoney(cur, b.ActiveFigure())},
			{"Total spent", cli.FormatMoney(cur, summary.TotalSpent)},
			{"Remaining", cli.FormatMoney(cur, summary.Remaining)},
			{fmt.Sprintf("Daily allowance (%d days left)", summary.DaysLeft), cli.FormatMoney(cur, summary.DailyAllowance)},
		},
	}))

	return nil
}
