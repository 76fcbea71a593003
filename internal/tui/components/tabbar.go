// Package components provides reusable TUI widgets for the spendwise dashboard.
package components

import (
	"fmt"

	"spendwise/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tabs lists the dashboard tabs in display order.
var Tabs = []string{"Budget", "Assistant"}

// RenderTabBar renders the top tab bar padded to the full width.
func RenderTabBar(activeTab, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.SurfaceHover).
		Bold(true).
		Padding(0, 2)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Padding(0, 2)

	sepStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var rendered []string
	for i, tab := range Tabs {
		label := fmt.Sprintf("%d %s", i+1, tab)
		if i == activeTab {
			rendered = append(rendered, activeStyle.Render(label))
		} else {
			rendered = append(rendered, inactiveStyle.Render(label))
		}
		if i < len(Tabs)-1 {
			rendered = append(rendered, sepStyle.Render("│"))
		}
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	fillStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(width)
	return fillStyle.Render(bar)
}
