package components

import (
	"strings"
	"testing"

	"spendwise/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, tc := range []struct {
		total, n int
	}{
		{100, 4},
		{101, 4},
		{103, 4},
		{7, 3},
		{60, 1},
	} {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
	}
}

func TestLayoutRowZeroCards(t *testing.T) {
	if got := LayoutRow(80, 0); got != nil {
		t.Fatalf("expected nil for n=0, got %v", got)
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")

	row := MetricCardRow([]struct{ Label, Value, Hint string }{
		{"Income", "₹50,000.00", "per month"},
		{"Spent", "₹12,345.00", "all time"},
		{"Remaining", "₹7,655.00", "monthly budget"},
	}, 90)

	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 90 {
			t.Errorf("line %d width = %d, want 90", i, w)
		}
	}
}

func TestContentCardShowsTitle(t *testing.T) {
	theme.SetActive("flexoki-dark")

	card := ContentCard("Expenses", "nothing here", 40)
	if !strings.Contains(card, "Expenses") {
		t.Error("card missing title")
	}
	if !strings.Contains(card, "nothing here") {
		t.Error("card missing body")
	}
}

func TestTabBarContainsAllTabs(t *testing.T) {
	theme.SetActive("flexoki-dark")

	bar := RenderTabBar(0, 80)
	for _, name := range Tabs {
		if !strings.Contains(bar, name) {
			t.Errorf("tab bar missing %q", name)
		}
	}
	if w := lipgloss.Width(strings.Split(bar, "\n")[0]); w != 80 {
		t.Errorf("tab bar width = %d, want 80", w)
	}
}
