package tui

import (
	"errors"
	"strconv"
	"strings"

	"spendwise/internal/assistant"
	"spendwise/internal/config"
	"spendwise/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// setupValues backs the first-run wizard; huh binds the fields by pointer.
type setupValues struct {
	income string
	period string
	amount string
	apiKey string
}

func validateAmount(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return errors.New("enter a non-negative number")
	}
	return nil
}

func newSetupForm(vals *setupValues) *huh.Form {
	vals.period = model.Monthly.String()

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Monthly income").
				Description("Your take-home income per month.").
				Placeholder("50000").
				Validate(validateAmount).
				Value(&vals.income),

			huh.NewSelect[string]().
				Title("Budget period").
				Options(
					huh.NewOption("Monthly", model.Monthly.String()),
					huh.NewOption("Weekly", model.Weekly.String()),
				).
				Value(&vals.period),

			huh.NewInput().
				Title("Budget amount").
				Description("How much you want to spend per period.").
				Placeholder("20000").
				Validate(validateAmount).
				Value(&vals.amount),

			huh.NewInput().
				Title("Gemini API key").
				Description("Optional. Leave empty to run without the assistant.").
				EchoMode(huh.EchoModePassword).
				Value(&vals.apiKey),
		),
	)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateAborted:
		return a, tea.Quit

	case huh.StateCompleted:
		income, _ := strconv.ParseFloat(strings.TrimSpace(a.setupVals.income), 64)
		amount, _ := strconv.ParseFloat(strings.TrimSpace(a.setupVals.amount), 64)
		period := model.ParsePeriod(a.setupVals.period)

		b := model.Budget{MonthlyIncome: income, Period: period}
		if period == model.Monthly {
			b.MonthlyBudget = amount
		} else {
			b.WeeklyBudget = amount
		}

		a.budget = b
		if err := a.store.PutBudget(b); err != nil {
			a.status = "warning: budget not saved: " + err.Error()
		}

		if key := strings.TrimSpace(a.setupVals.apiKey); key != "" {
			a.cfg.Assistant.APIKey = key
			if err := config.Save(a.cfg); err != nil {
				a.status = "warning: config not saved: " + err.Error()
			}
			a.client = assistant.NewClient(a.cfg.Assistant, config.GetAPIKey(a.cfg))
		}

		a.needSetup = false
		a.setupForm = nil
		a.recompute()
		return a, nil
	}

	return a, cmd
}
