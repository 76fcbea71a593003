package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"spendwise/internal/cli"
	"spendwise/internal/model"
	"spendwise/internal/tui/components"
	"spendwise/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// budgetMode is the interaction mode of the budget tab.
type budgetMode int

const (
	budgetViewing budgetMode = iota
	budgetAdding              // add-expense form
	budgetEditing             // budget settings form
	budgetConfirmClear
)

type budgetTabState struct {
	mode  budgetMode
	focus int

	// Add-expense form
	amountIn textinput.Model
	descIn   textinput.Model
	catIn    textinput.Model

	// Budget settings form
	incomeIn   textinput.Model
	budgetIn   textinput.Model
	editPeriod model.Period
}

func newBudgetTabState() budgetTabState {
	newInput := func(placeholder string, width int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 64
		ti.Width = width
		return ti
	}

	return budgetTabState{
		amountIn: newInput("0.00", 12),
		descIn:   newInput("description", 28),
		catIn:    newInput(model.DefaultCategory, 18),
		incomeIn: newInput("monthly income", 14),
		budgetIn: newInput("budget amount", 14),
	}
}

func (a App) updateBudgetTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch a.budgetTab.mode {
	case budgetViewing:
		if a.switchTab(key) {
			return a, nil
		}
		switch key {
		case "q":
			return a, tea.Quit
		case "a":
			a.budgetTab.mode = budgetAdding
			a.budgetTab.focus = 0
			a.budgetTab.amountIn.Reset()
			a.budgetTab.descIn.Reset()
			a.budgetTab.catIn.Reset()
			a.budgetTab.amountIn.Focus()
			return a, textinput.Blink
		case "e":
			a.budgetTab.mode = budgetEditing
			a.budgetTab.focus = 0
			a.budgetTab.editPeriod = a.budget.Period
			a.budgetTab.incomeIn.SetValue(strconv.FormatFloat(a.budget.MonthlyIncome, 'f', -1, 64))
			a.budgetTab.budgetIn.SetValue(strconv.FormatFloat(a.budget.ActiveFigure(), 'f', -1, 64))
			a.budgetTab.incomeIn.Focus()
			return a, textinput.Blink
		case "C":
			a.budgetTab.mode = budgetConfirmClear
			a.status = "delete ALL expenses? press y to confirm, any other key to cancel"
			return a, nil
		}
		return a, nil

	case budgetConfirmClear:
		a.budgetTab.mode = budgetViewing
		a.status = ""
		if key == "y" {
			if err := a.store.ClearExpenses(); err != nil {
				a.status = "warning: clear failed: " + err.Error()
				return a, nil
			}
			a.expenses = nil
			a.recompute()
		}
		return a, nil

	case budgetAdding:
		return a.updateAddForm(msg)

	case budgetEditing:
		return a.updateEditForm(msg)
	}

	return a, nil
}

func (a App) updateAddForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := &a.budgetTab

	switch msg.String() {
	case "esc":
		st.mode = budgetViewing
		a.blurBudgetInputs()
		return a, nil

	case "tab", "shift+tab", "down", "up":
		delta := 1
		if msg.String() == "shift+tab" || msg.String() == "up" {
			delta = 2 // +2 mod 3 is -1
		}
		st.focus = (st.focus + delta) % 3
		a.blurBudgetInputs()
		switch st.focus {
		case 0:
			st.amountIn.Focus()
		case 1:
			st.descIn.Focus()
		case 2:
			st.catIn.Focus()
		}
		return a, textinput.Blink

	case "enter":
		amount, err := strconv.ParseFloat(strings.TrimSpace(st.amountIn.Value()), 64)
		if err != nil || amount < 0 {
			a.status = "enter a valid non-negative amount"
			return a, nil
		}

		e := model.Expense{
			Amount:      amount,
			Date:        time.Now(),
			Description: strings.TrimSpace(st.descIn.Value()),
			Category:    strings.TrimSpace(st.catIn.Value()),
		}
		if e.Category == "" {
			e.Category = model.DefaultCategory
		}

		// Optimistic in-memory update for immediate display; the durable
		// write happens in the background (expense holds id 0 until then)
		a.expenses = append([]model.Expense{e}, a.expenses...)
		a.recompute()

		st.mode = budgetViewing
		a.blurBudgetInputs()
		a.status = ""
		return a, saveExpenseCmd(a.store, e)
	}

	var cmd tea.Cmd
	switch st.focus {
	case 0:
		st.amountIn, cmd = st.amountIn.Update(msg)
	case 1:
		st.descIn, cmd = st.descIn.Update(msg)
	case 2:
		st.catIn, cmd = st.catIn.Update(msg)
	}
	return a, cmd
}

func (a App) updateEditForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := &a.budgetTab

	switch msg.String() {
	case "esc":
		st.mode = budgetViewing
		a.blurBudgetInputs()
		return a, nil

	case "tab", "shift+tab", "down", "up":
		st.focus = (st.focus + 1) % 3
		a.blurBudgetInputs()
		switch st.focus {
		case 0:
			st.incomeIn.Focus()
		case 1:
			st.budgetIn.Focus()
		}
		return a, textinput.Blink

	case " ", "left", "right":
		// Period toggle when focus is on the period selector
		if st.focus == 2 {
			if st.editPeriod == model.Monthly {
				st.editPeriod = model.Weekly
			} else {
				st.editPeriod = model.Monthly
			}
			return a, nil
		}

	case "enter":
		income, err := strconv.ParseFloat(strings.TrimSpace(st.incomeIn.Value()), 64)
		if err != nil || income < 0 {
			a.status = "enter a valid non-negative income"
			return a, nil
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(st.budgetIn.Value()), 64)
		if err != nil || amount < 0 {
			a.status = "enter a valid non-negative budget amount"
			return a, nil
		}

		// Replace-on-write: the inactive period's figure is zeroed
		b := model.Budget{MonthlyIncome: income, Period: st.editPeriod}
		if st.editPeriod == model.Monthly {
			b.MonthlyBudget = amount
		} else {
			b.WeeklyBudget = amount
		}

		a.budget = b
		a.recompute()
		st.mode = budgetViewing
		a.blurBudgetInputs()
		a.status = ""
		return a, saveBudgetCmd(a.store, b)
	}

	var cmd tea.Cmd
	switch st.focus {
	case 0:
		st.incomeIn, cmd = st.incomeIn.Update(msg)
	case 1:
		st.budgetIn, cmd = st.budgetIn.Update(msg)
	}
	return a, cmd
}

func (a *App) blurBudgetInputs() {
	a.budgetTab.amountIn.Blur()
	a.budgetTab.descIn.Blur()
	a.budgetTab.catIn.Blur()
	a.budgetTab.incomeIn.Blur()
	a.budgetTab.budgetIn.Blur()
}

func (a App) renderBudgetTab(width, height int) string {
	cur := a.cfg.General.Currency

	cards := components.MetricCardRow([]struct{ Label, Value, Hint string }{
		{"Income", cli.FormatMoney(cur, a.budget.MonthlyIncome), "per month"},
		{"Spent", cli.FormatMoney(cur, a.summary.TotalSpent), "all time"},
		{"Remaining", cli.FormatMoney(cur, a.summary.Remaining), cli.FormatPeriodLabel(a.budget.Period.String()) + " budget"},
		{"Daily allowance", cli.FormatMoney(cur, a.summary.DailyAllowance), fmt.Sprintf("%d days left", a.summary.DaysLeft)},
	}, width)

	var form string
	switch a.budgetTab.mode {
	case budgetAdding:
		form = a.renderAddForm(width)
	case budgetEditing:
		form = a.renderEditForm(width)
	}

	listHeight := height - lipgloss.Height(cards) - lipgloss.Height(form)
	list := a.renderExpenseList(width, listHeight)

	if form != "" {
		return lipgloss.JoinVertical(lipgloss.Left, cards, form, list)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards, list)
}

func (a App) renderAddForm(width int) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Active.TextMuted)

	body := labelStyle.Render("Amount ") + a.budgetTab.amountIn.View() + "\n" +
		labelStyle.Render("What   ") + a.budgetTab.descIn.View() + "\n" +
		labelStyle.Render("Cat    ") + a.budgetTab.catIn.View() + "\n" +
		lipgloss.NewStyle().Foreground(theme.Active.TextDim).
			Render("tab next field · enter save · esc cancel")

	return components.ContentCard("Add expense", body, width)
}

func (a App) renderEditForm(width int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	periodLabel := cli.FormatPeriodLabel(a.budgetTab.editPeriod.String())
	periodView := labelStyle.Render(periodLabel)
	if a.budgetTab.focus == 2 {
		periodView = lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true).
			Render("< " + periodLabel + " >")
	}

	body := labelStyle.Render("Income ") + a.budgetTab.incomeIn.View() + "\n" +
		labelStyle.Render("Budget ") + a.budgetTab.budgetIn.View() + "\n" +
		labelStyle.Render("Period ") + periodView + "\n" +
		lipgloss.NewStyle().Foreground(t.TextDim).
			Render("tab next field · space toggle period · enter save · esc cancel")

	return components.ContentCard("Budget settings", body, width)
}

func (a App) renderExpenseList(width, height int) string {
	t := theme.Active
	cur := a.cfg.General.Currency

	if len(a.expenses) == 0 {
		return components.ContentCard("Expenses",
			lipgloss.NewStyle().Foreground(t.TextDim).Render("No expenses yet. Press a to add one."),
			width)
	}

	inner := components.CardInnerWidth(width)
	maxRows := height - 3 // card border + title
	if maxRows < 1 {
		maxRows = 1
	}

	dateStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	amtStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	catStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	shown := 0
	for _, e := range a.expenses {
		if shown >= maxRows {
			break
		}
		desc := e.Description
		if desc == "" {
			desc = "-"
		}
		amt := cli.FormatMoney(cur, e.Amount)

		left := fmt.Sprintf("%s  %s", dateStyle.Render(cli.FormatDate(e.Date)), desc)
		right := fmt.Sprintf("%s  %s", catStyle.Render(e.Category), amtStyle.Render(amt))

		gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
		if gap < 1 {
			gap = 1
		}
		b.WriteString(left + strings.Repeat(" ", gap) + right)
		b.WriteString("\n")
		shown++
	}
	if len(a.expenses) > shown {
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).
			Render(fmt.Sprintf("… and %d more (spendwise list)", len(a.expenses)-shown)))
	}

	return components.ContentCard(fmt.Sprintf("Expenses (%d)", len(a.expenses)),
		strings.TrimRight(b.String(), "\n"), width)
}
