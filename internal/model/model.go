// Package model defines domain types for spendwise records and conversation state.
package model

import "time"

// Period selects which of the two budget figures is active.
type Period int

const (
	Weekly Period = iota
	Monthly
)

// String implements fmt.Stringer.
func (p Period) String() string {
	if p == Monthly {
		return "monthly"
	}
	return "weekly"
}

// ParsePeriod maps a config/flag string to a Period. Defaults to Monthly.
func ParsePeriod(s string) Period {
	if s == "weekly" {
		return Weekly
	}
	return Monthly
}

// Budget is the singleton budget record. Exactly one instance exists per
// installation; saving fully replaces the previous one.
type Budget struct {
	MonthlyIncome float64
	Period        Period
	WeeklyBudget  float64
	MonthlyBudget float64
}

// ActiveFigure returns the budget amount for the selected period.
func (b Budget) ActiveFigure() float64 {
	if b.Period == Monthly {
		return b.MonthlyBudget
	}
	return b.WeeklyBudget
}

// DefaultCategory is assigned to expenses recorded without a category.
const DefaultCategory = "Uncategorized"

// Expense is a single spend record. Append-only: never edited after creation.
type Expense struct {
	ID          int64
	Amount      float64
	Date        time.Time // day granularity, no time component
	Description string
	Category    string
}

// Speaker identifies who produced a conversation turn.
type Speaker int

const (
	SpeakerUser Speaker = iota
	SpeakerAssistant
)

// Turn is one entry in the in-memory conversation transcript.
// Pending marks the transient placeholder for an in-flight assistant request;
// such a turn is replaced in place and never persisted.
type Turn struct {
	Text    string
	Speaker Speaker
	Pending bool
}

// Summary holds the derived figures shown by the presentation layer.
type Summary struct {
	TotalSpent     float64
	Remaining      float64
	DailyAllowance float64
	DaysLeft       int
}
