package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"spendwise/internal/cli"
	"spendwise/internal/config"
	"spendwise/internal/model"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to spendwise!")
	fmt.Println()

	// 1. Monthly income
	fmt.Println("  1. Monthly income")
	income := promptFloat(reader, 0)
	fmt.Println()

	// 2. Budget period
	fmt.Println("  2. Budget period")
	fmt.Println("     (1) Monthly [default]")
	fmt.Println("     (2) Weekly")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	period := model.Monthly
	if strings.TrimSpace(choice) == "2" {
		period = model.Weekly
	}
	fmt.Println()

	// 3. Budget amount
	fmt.Printf("  3. %s budget amount\n", cli.FormatPeriodLabel(period.String()))
	amount := promptFloat(reader, 0)
	fmt.Println()

	// 4. Assistant API key
	fmt.Println("  4. Google AI Studio API key")
	fmt.Println("     Needed for the conversational assistant. GEMINI_API_KEY also works.")
	existing := config.GetAPIKey(cfg)
	if existing != "" {
		fmt.Printf("     Current: %s\n", maskAPIKey(existing))
	}
	fmt.Print("     > ")
	apiKey, _ := reader.ReadString('\n')
	apiKey = strings.TrimSpace(apiKey)
	if apiKey != "" {
		cfg.Assistant.APIKey = apiKey
	}
	fmt.Println()

	// 5. Currency symbol
	fmt.Printf("  5. Currency symbol [%s]\n", cfg.General.Currency)
	fmt.Print("     > ")
	currency, _ := reader.ReadString('\n')
	currency = strings.TrimSpace(currency)
	if currency != "" {
		cfg.General.Currency = currency
	}

	// Save config, then the budget record
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	b := model.Budget{MonthlyIncome: income, Period: period}
	if period == model.Monthly {
		b.MonthlyBudget = amount
	} else {
		b.WeeklyBudget = amount
	}
	if err := st.PutBudget(b); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `spendwise tui` for the dashboard, or `spendwise ask` for advice.")
	fmt.Println()

	return nil
}

func promptFloat(reader *bufio.Reader, fallback float64) float64 {
	fmt.Print("     > ")
	line, _ := reader.ReadString('\n')
	v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func maskAPIKey(key string) string {
	if len(key) > 16 {
		return key[:8] + "..." + key[len(key)-4:]
	}
	if len(key) > 4 {
		return key[:4] + "..."
	}
	return "****"
}
