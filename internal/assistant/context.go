package assistant

import (
	"fmt"
	"sort"
	"strings"

	"spendwise/internal/model"
)

// MaxContextExpenses caps how many recent expenses are included in the prompt.
const MaxContextExpenses = 20

// IncomeUnsetMessage is returned locally when no monthly income has been set.
// The remote endpoint must not be called in that case.
const IncomeUnsetMessage = "Please set your monthly income first in the budget setup."

// BuildFinancialContext renders the textual payload for a financial-analysis
// request: income line, recent expenses newest first, then the raw request.
func BuildFinancialContext(income float64, expenses []model.Expense, request, currency string) string {
	sorted := make([]model.Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if len(sorted) > MaxContextExpenses {
		sorted = sorted[:MaxContextExpenses]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Monthly Income: %s%.2f\n", currency, income)
	b.WriteString("Recent Expenses:\n")
	for _, e := range sorted {
		fmt.Fprintf(&b, "- %s: %s (%s%.2f)\n", e.Date.Format("2006-01-02"), e.Description, currency, e.Amount)
	}
	fmt.Fprintf(&b, "User Request: %s", request)
	return b.String()
}
