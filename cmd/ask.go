package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"spendwise/internal/assistant"
	"spendwise/internal/chat"
	"spendwise/internal/config"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [message]",
	Short: "Ask the assistant for budget advice",
	Long:  "Sends one message to the assistant. Without arguments, asks it to analyze your spending.",
	RunE:  runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(_ *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		text = "Analyze my spending"
	}

	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	var income float64
	b, err := st.GetBudget()
	if err != nil {
		return err
	}
	if b != nil {
		income = b.MonthlyIncome
	}

	expenses, err := st.ListExpenses()
	if err != nil {
		return err
	}

	session := chat.New()
	req := session.Begin(text, income, expenses, cfg.General.Currency)
	if req == nil {
		// Local short-circuit: precondition failure or dropped input
		printLastTurn(session)
		return nil
	}

	client := assistant.NewClient(cfg.Assistant, config.GetAPIKey(cfg))
	if client == nil {
		session.Resolve("No API key configured. Run `spendwise setup` or set GEMINI_API_KEY.")
		printLastTurn(session)
		return nil
	}

	timeout := time.Duration(cfg.Assistant.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	session.Resolve(client.Reply(ctx, req.Persona, req.Payload))
	printLastTurn(session)
	return nil
}

func printLastTurn(s *chat.Session) {
	turns := s.Turns()
	if len(turns) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(turns[len(turns)-1].Text)
	fmt.Println()
}
