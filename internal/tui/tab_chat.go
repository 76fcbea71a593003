package tui

import (
	"strings"

	"spendwise/internal/model"
	"spendwise/internal/tui/components"
	"spendwise/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const noAPIKeyReply = "No API key configured. Run `spendwise setup` or set GEMINI_API_KEY."

type chatTabState struct {
	input textinput.Model
}

func newChatTabState() chatTabState {
	ti := textinput.New()
	ti.Placeholder = "Ask for a budget plan or expense analysis…"
	ti.CharLimit = 500
	ti.Focus()
	return chatTabState{input: ti}
}

func (a App) updateChatTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.activeTab = tabBudget
		a.status = ""
		return a, nil

	case "ctrl+p":
		return a.sendChat("Give me a budget plan")

	case "ctrl+a":
		return a.sendChat("Analyze my spending")

	case "enter":
		text := a.chatTab.input.Value()
		a.chatTab.input.Reset()
		return a.sendChat(text)
	}

	var cmd tea.Cmd
	a.chatTab.input, cmd = a.chatTab.input.Update(msg)
	return a, cmd
}

// sendChat runs a user message through the conversation state machine.
// Blank input and sends while a request is in flight come back as a nil
// request and are dropped.
func (a App) sendChat(text string) (tea.Model, tea.Cmd) {
	req := a.session.Begin(text, a.budget.MonthlyIncome, a.expenses, a.cfg.General.Currency)
	if req == nil {
		return a, nil
	}
	if a.client == nil {
		a.session.Resolve(noAPIKeyReply)
		return a, nil
	}
	return a, tea.Batch(askCmd(a.client, req, a.cfg.Assistant.TimeoutSecs), a.spinner.Tick)
}

func (a App) renderChatTab(width, height int) string {
	inputLine := a.renderChatInput(width)
	transcriptH := height - lipgloss.Height(inputLine)
	transcript := a.renderTranscript(width, transcriptH)
	return lipgloss.JoinVertical(lipgloss.Left, transcript, inputLine)
}

func (a App) renderChatInput(width int) string {
	t := theme.Active
	prompt := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true).Render("> ")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Width(width - 2).
		Render(prompt + a.chatTab.input.View())
}

// renderTranscript renders the newest turns that fit the available height,
// oldest first.
func (a App) renderTranscript(width, height int) string {
	t := theme.Active
	inner := components.CardInnerWidth(width)

	userLabel := lipgloss.NewStyle().Foreground(t.Green).Bold(true).Render("you")
	botLabel := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render("spendwise")
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Width(inner)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Width(inner)

	var blocks []string
	for _, turn := range a.session.Turns() {
		label := botLabel
		style := textStyle
		if turn.Speaker == model.SpeakerUser {
			label = userLabel
		}
		text := turn.Text
		if turn.Pending {
			style = dimStyle
			text = a.spinner.View() + " " + text
		}
		blocks = append(blocks, label+"\n"+style.Render(text))
	}

	body := strings.Join(blocks, "\n\n")

	// Keep the tail of the conversation in view
	maxLines := height - 3 // card border + title
	if maxLines < 1 {
		maxLines = 1
	}
	lines := strings.Split(body, "\n")
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
		body = strings.Join(lines, "\n")
	}

	return components.ContentCard("Assistant", body, width)
}
