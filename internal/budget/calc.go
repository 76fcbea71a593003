// Package budget computes derived figures from the budget record and expense list.
// All functions are pure and deterministic given (budget, expenses, today).
package budget

import (
	"time"

	"spendwise/internal/model"
)

// TotalSpent sums every recorded expense. There is deliberately no period
// filter: the reference behavior sums lifetime spend against the period-scoped
// budget figure (see DESIGN.md, open questions).
func TotalSpent(expenses []model.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// Remaining returns the active budget figure minus total spend, clamped at zero.
func Remaining(b model.Budget, expenses []model.Expense) float64 {
	r := b.ActiveFigure() - TotalSpent(expenses)
	if r < 0 {
		return 0
	}
	return r
}

// DaysLeft returns the number of days remaining in the current period,
// including today. Never less than 1, so it is safe as a divisor.
func DaysLeft(p model.Period, today time.Time) int {
	var daysInPeriod, dayOfPeriod int
	if p == model.Monthly {
		daysInPeriod = daysInMonth(today)
		dayOfPeriod = today.Day()
	} else {
		daysInPeriod = 7
		dayOfPeriod = isoWeekday(today)
	}

	left := daysInPeriod - dayOfPeriod + 1
	if left < 1 {
		left = 1
	}
	return left
}

// DailyAllowance returns the suggested spend per remaining day of the period.
// Non-negative by construction.
func DailyAllowance(b model.Budget, expenses []model.Expense, today time.Time) float64 {
	return Remaining(b, expenses) / float64(DaysLeft(b.Period, today))
}

// Summarize bundles the derived figures for display.
func Summarize(b model.Budget, expenses []model.Expense, today time.Time) model.Summary {
	return model.Summary{
		TotalSpent:     TotalSpent(expenses),
		Remaining:      Remaining(b, expenses),
		DailyAllowance: DailyAllowance(b, expenses, today),
		DaysLeft:       DaysLeft(b.Period, today),
	}
}

// daysInMonth returns the calendar length of t's month.
func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// isoWeekday maps Go's Sunday-based weekday to ISO 1-7 (Monday=1).
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
