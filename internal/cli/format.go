// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatMoney renders an amount with its currency symbol.
// e.g., 1234.5 -> "₹1,234.50"
func FormatMoney(currency string, amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	whole := int64(amount)
	frac := int(amount*100+0.5) % 100

	s := fmt.Sprintf("%s%s.%02d", currency, FormatNumber(whole), frac)
	if neg {
		return "-" + s
	}
	return s
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatDate renders a day-granularity date for display.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatPeriodLabel renders a human label for a budget period string.
func FormatPeriodLabel(period string) string {
	if period == "" {
		return "Monthly"
	}
	return strings.ToUpper(period[:1]) + period[1:]
}
