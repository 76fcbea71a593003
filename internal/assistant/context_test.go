package assistant

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"spendwise/internal/model"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestBuildFinancialContext_Layout(t *testing.T) {
	expenses := []model.Expense{
		{Amount: 120, Date: day(t, "2025-05-01"), Description: "groceries"},
		{Amount: 80.5, Date: day(t, "2025-05-03"), Description: "fuel"},
	}

	got := BuildFinancialContext(40000, expenses, "give me a budget plan", "₹")

	lines := strings.Split(got, "\n")
	if lines[0] != "Monthly Income: ₹40000.00" {
		t.Fatalf("income line = %q", lines[0])
	}
	if lines[1] != "Recent Expenses:" {
		t.Fatalf("expenses header = %q", lines[1])
	}
	// Newest first regardless of input order
	if lines[2] != "- 2025-05-03: fuel (₹80.50)" {
		t.Fatalf("first expense line = %q", lines[2])
	}
	if lines[3] != "- 2025-05-01: groceries (₹120.00)" {
		t.Fatalf("second expense line = %q", lines[3])
	}
	if lines[4] != "User Request: give me a budget plan" {
		t.Fatalf("request line = %q", lines[4])
	}
}

func TestBuildFinancialContext_CapsAtTwenty(t *testing.T) {
	var expenses []model.Expense
	for i := 0; i < 30; i++ {
		expenses = append(expenses, model.Expense{
			Amount:      float64(i + 1),
			Date:        day(t, "2025-01-01").AddDate(0, 0, i),
			Description: fmt.Sprintf("item-%d", i),
		})
	}

	got := BuildFinancialContext(1000, expenses, "analyze", "$")

	if n := strings.Count(got, "- 2025-"); n != MaxContextExpenses {
		t.Fatalf("bullet count = %d, want %d", n, MaxContextExpenses)
	}
	// The 10 oldest entries are dropped
	if strings.Contains(got, "item-0 ") || strings.Contains(got, "item-9 ") {
		t.Fatal("oldest expenses should be excluded from the context")
	}
	if !strings.Contains(got, "item-29") {
		t.Fatal("newest expense missing from context")
	}
}

func TestBuildFinancialContext_NoExpenses(t *testing.T) {
	got := BuildFinancialContext(5000, nil, "plan", "₹")
	if !strings.HasPrefix(got, "Monthly Income: ₹5000.00\nRecent Expenses:\n") {
		t.Fatalf("unexpected layout: %q", got)
	}
	if !strings.HasSuffix(got, "User Request: plan") {
		t.Fatalf("request line missing: %q", got)
	}
}
