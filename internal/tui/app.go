// Package tui provides the interactive Bubble Tea dashboard for spendwise.
package tui

import (
	"context"
	"strings"
	"time"

	"spendwise/internal/assistant"
	"spendwise/internal/budget"
	"spendwise/internal/chat"
	"spendwise/internal/config"
	"spendwise/internal/model"
	"spendwise/internal/store"
	"spendwise/internal/tui/components"
	"spendwise/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// replyMsg carries the assistant's final reply (or error message) for the
// in-flight request.
type replyMsg struct {
	Text string
}

// expenseSavedMsg reports the outcome of an asynchronous expense write.
type expenseSavedMsg struct {
	Expense model.Expense
	Err     error
}

// budgetSavedMsg reports the outcome of an asynchronous budget write.
type budgetSavedMsg struct {
	Err error
}

const (
	tabBudget = iota
	tabAssistant
)

const minTerminalWidth = 60

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	cfg    config.Config
	client *assistant.Client

	// Record state: mutated in memory first, persisted fire-and-forget
	budget   model.Budget
	expenses []model.Expense
	summary  model.Summary

	session *chat.Session

	// UI state
	width     int
	height    int
	activeTab int
	status    string

	budgetTab budgetTabState
	chatTab   chatTabState
	spinner   spinner.Model

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

// NewApp creates the TUI app model. Records are loaded synchronously: the
// data set is a single budget row plus the expense list.
func NewApp(st *store.Store, cfg config.Config) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	a := App{
		store:     st,
		cfg:       cfg,
		client:    assistant.NewClient(cfg.Assistant, config.GetAPIKey(cfg)),
		session:   chat.New(),
		spinner:   sp,
		budgetTab: newBudgetTabState(),
		chatTab:   newChatTabState(),
	}

	if b, err := st.GetBudget(); err == nil && b != nil {
		a.budget = *b
	} else {
		a.needSetup = true
	}
	if expenses, err := st.ListExpenses(); err == nil {
		a.expenses = expenses
	}
	a.recompute()

	if a.needSetup {
		a.setupForm = newSetupForm(&a.setupVals)
	}

	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.spinner.Tick}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

func (a *App) recompute() {
	a.summary = budget.Summarize(a.budget, a.expenses, time.Now())
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		switch a.activeTab {
		case tabBudget:
			return a.updateBudgetTab(msg)
		case tabAssistant:
			return a.updateChatTab(msg)
		}
		return a, nil

	case replyMsg:
		a.session.Resolve(msg.Text)
		return a, nil

	case expenseSavedMsg:
		if msg.Err != nil {
			// Best-effort persistence: the in-memory view keeps the entry,
			// the write failure is surfaced in the status line
			a.status = "warning: expense not saved: " + msg.Err.Error()
			return a, nil
		}
		// Replace the optimistic entry with the stored one (assigned id)
		for i := range a.expenses {
			if a.expenses[i].ID == 0 {
				a.expenses[i] = msg.Expense
				break
			}
		}
		return a, nil

	case budgetSavedMsg:
		if msg.Err != nil {
			a.status = "warning: budget not saved: " + msg.Err.Error()
		}
		return a, nil

	case spinner.TickMsg:
		if a.session.Awaiting() {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

// switchTab handles the keys shared by every tab; reports whether it consumed
// the key.
func (a *App) switchTab(key string) bool {
	switch key {
	case "1":
		a.activeTab = tabBudget
	case "2":
		a.activeTab = tabAssistant
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	default:
		return false
	}
	a.status = ""
	return true
}

// saveBudgetCmd persists the budget record off the UI path.
func saveBudgetCmd(st *store.Store, b model.Budget) tea.Cmd {
	return func() tea.Msg {
		return budgetSavedMsg{Err: st.PutBudget(b)}
	}
}

// saveExpenseCmd persists a new expense off the UI path.
func saveExpenseCmd(st *store.Store, e model.Expense) tea.Cmd {
	return func() tea.Msg {
		saved, err := st.AppendExpense(e)
		return expenseSavedMsg{Expense: saved, Err: err}
	}
}

// askCmd executes the single outbound assistant call in the background.
// The reply is always a displayable string; failures were already folded
// into it by the gateway.
func askCmd(client *assistant.Client, req *chat.Request, timeoutSecs int) tea.Cmd {
	return func() tea.Msg {
		timeout := time.Duration(timeoutSecs) * time.Second
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return replyMsg{Text: client.Reply(ctx, req.Persona, req.Payload)}
	}
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	header := components.RenderTabBar(a.activeTab, a.width)
	statusBar := a.renderStatusBar()

	contentH := a.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < 5 {
		contentH = 5
	}

	var content string
	switch a.activeTab {
	case tabBudget:
		content = a.renderBudgetTab(a.width, contentH)
	case tabAssistant:
		content = a.renderChatTab(a.width, contentH)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (a App) viewTooNarrow() string {
	return lipgloss.NewStyle().
		Foreground(theme.Active.TextMuted).
		Render("\n  Terminal too narrow. spendwise needs at least 60 columns.\n")
}

func (a App) renderStatusBar() string {
	t := theme.Active

	hintStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	warnStyle := lipgloss.NewStyle().
		Foreground(t.Orange).
		Background(t.Surface)

	var line string
	if a.status != "" {
		line = warnStyle.Render(" " + a.status)
	} else {
		switch a.activeTab {
		case tabBudget:
			line = hintStyle.Render(" 1/2 tabs · a add expense · e edit budget · C clear expenses · q quit")
		case tabAssistant:
			line = hintStyle.Render(" esc back · enter send · ctrl+p budget plan · ctrl+a analyze spending")
		}
	}

	fill := lipgloss.NewStyle().Background(t.Surface).Width(a.width)
	return fill.Render(line)
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
