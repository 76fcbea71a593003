package cmd

import (
	"fmt"

	"spendwise/internal/cli"
	"spendwise/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagIncome float64
	flagAmount float64
	flagPeriod string
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show the current budget settings",
	RunE:  runSummary,
}

var budgetSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save income and budget settings",
	Long:  "Saves the budget record, fully replacing the previous one. The inactive period's figure is zeroed.",
	RunE:  runBudgetSet,
}

func init() {
	budgetSetCmd.Flags().Float64VarP(&flagIncome, "income", "i", 0, "Monthly income")
	budgetSetCmd.Flags().Float64VarP(&flagAmount, "amount", "a", 0, "Budget amount for the selected period")
	budgetSetCmd.Flags().StringVarP(&flagPeriod, "period", "p", "monthly", "Budget period: monthly or weekly")
	_ = budgetSetCmd.MarkFlagRequired("income")
	_ = budgetSetCmd.MarkFlagRequired("amount")

	budgetCmd.AddCommand(budgetSetCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetSet(_ *cobra.Command, _ []string) error {
	if flagIncome < 0 || flagAmount < 0 {
		return fmt.Errorf("income and amount must be non-negative")
	}
	if flagPeriod != "monthly" && flagPeriod != "weekly" {
		return fmt.Errorf("period must be monthly or weekly, got %q", flagPeriod)
	}

	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	b := model.Budget{
		MonthlyIncome: flagIncome,
		Period:        model.ParsePeriod(flagPeriod),
	}
	if b.Period == model.Monthly {
		b.MonthlyBudget = flagAmount
	} else {
		b.WeeklyBudget = flagAmount
	}

	if err := st.PutBudget(b); err != nil {
		return err
	}

	fmt.Printf("  Saved: income %s, %s budget %s\n",
		cli.FormatMoney(cfg.General.Currency, b.MonthlyIncome),
		b.Period,
		cli.FormatMoney(cfg.General.Currency, b.ActiveFigure()),
	)
	return nil
}
