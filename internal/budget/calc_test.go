package budget

import (
	"math"
	"testing"
	"time"

	"spendwise/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func expensesOf(amounts ...float64) []model.Expense {
	out := make([]model.Expense, len(amounts))
	for i, a := range amounts {
		out[i] = model.Expense{Amount: a}
	}
	return out
}

func TestTotalSpent_SumsAllHistory(t *testing.T) {
	got := TotalSpent(expensesOf(100, 250.5, 0, 49.5))
	if math.Abs(got-400) > 1e-9 {
		t.Fatalf("TotalSpent = %.2f, want 400.00", got)
	}
	if TotalSpent(nil) != 0 {
		t.Fatal("TotalSpent(nil) != 0")
	}
}

func TestRemaining_ClampsAtZero(t *testing.T) {
	b := model.Budget{MonthlyIncome: 50000, Period: model.Monthly, MonthlyBudget: 20000}

	if got := Remaining(b, expensesOf(23000)); got != 0 {
		t.Fatalf("overspent Remaining = %.2f, want 0 (clamped)", got)
	}
	if got := Remaining(b, expensesOf(5000)); math.Abs(got-15000) > 1e-9 {
		t.Fatalf("Remaining = %.2f, want 15000", got)
	}
}

func TestRemaining_UsesActivePeriodFigure(t *testing.T) {
	b := model.Budget{Period: model.Weekly, WeeklyBudget: 700, MonthlyBudget: 3000}
	if got := Remaining(b, expensesOf(100)); math.Abs(got-600) > 1e-9 {
		t.Fatalf("weekly Remaining = %.2f, want 600", got)
	}

	b.Period = model.Monthly
	if got := Remaining(b, expensesOf(100)); math.Abs(got-2900) > 1e-9 {
		t.Fatalf("monthly Remaining = %.2f, want 2900", got)
	}
}

func TestDaysLeft_Monthly(t *testing.T) {
	cases := []struct {
		day  string
		want int
	}{
		{"2025-03-01", 31},
		{"2025-03-31", 1}, // last day of period still has 1 day left
		{"2025-02-14", 15},
		{"2024-02-29", 1}, // leap-year February
	}
	for _, tc := range cases {
		if got := DaysLeft(model.Monthly, mustDate(t, tc.day)); got != tc.want {
			t.Fatalf("DaysLeft(Monthly, %s) = %d, want %d", tc.day, got, tc.want)
		}
	}
}

func TestDaysLeft_Weekly(t *testing.T) {
	cases := []struct {
		day  string // weekday noted for readability
		want int
	}{
		{"2025-06-02", 7}, // Monday
		{"2025-06-05", 4}, // Thursday
		{"2025-06-08", 1}, // Sunday, ISO day 7
	}
	for _, tc := range cases {
		if got := DaysLeft(model.Weekly, mustDate(t, tc.day)); got != tc.want {
			t.Fatalf("DaysLeft(Weekly, %s) = %d, want %d", tc.day, got, tc.want)
		}
	}
}

func TestDailyAllowance_NonNegative(t *testing.T) {
	b := model.Budget{Period: model.Monthly, MonthlyBudget: 310}
	today := mustDate(t, "2025-01-01") // 31 days in period

	got := DailyAllowance(b, nil, today)
	if math.Abs(got-10) > 1e-9 {
		t.Fatalf("DailyAllowance = %.4f, want 10", got)
	}

	// Overspent: remaining clamps to 0, allowance follows
	if got := DailyAllowance(b, expensesOf(1000), today); got != 0 {
		t.Fatalf("overspent DailyAllowance = %.4f, want 0", got)
	}
}

func TestSummarize_Idempotent(t *testing.T) {
	b := model.Budget{MonthlyIncome: 40000, Period: model.Monthly, MonthlyBudget: 12000}
	exp := expensesOf(1500, 300)
	today := mustDate(t, "2025-07-10")

	first := Summarize(b, exp, today)
	second := Summarize(b, exp, today)
	if first != second {
		t.Fatalf("Summarize not deterministic: %+v vs %+v", first, second)
	}
	if first.DaysLeft != 22 {
		t.Fatalf("DaysLeft = %d, want 22", first.DaysLeft)
	}
	if math.Abs(first.Remaining-10200) > 1e-9 {
		t.Fatalf("Remaining = %.2f, want 10200", first.Remaining)
	}
}
