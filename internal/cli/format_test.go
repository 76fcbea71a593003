package cli

import (
	"testing"
	"time"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "₹0.00"},
		{249.5, "₹249.50"},
		{1234.5, "₹1,234.50"},
		{1000000, "₹1,000,000.00"},
		{-42.25, "-₹42.25"},
	}
	for _, tc := range cases {
		if got := FormatMoney("₹", tc.amount); got != tc.want {
			t.Fatalf("FormatMoney(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.n); got != tc.want {
			t.Fatalf("FormatNumber(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, 6, 14, 15, 4, 5, 0, time.UTC)
	if got := FormatDate(d); got != "2025-06-14" {
		t.Fatalf("FormatDate = %q", got)
	}
}

func TestFormatPeriodLabel(t *testing.T) {
	if got := FormatPeriodLabel("weekly"); got != "Weekly" {
		t.Fatalf("FormatPeriodLabel(weekly) = %q", got)
	}
	if got := FormatPeriodLabel(""); got != "Monthly" {
		t.Fatalf("FormatPeriodLabel(empty) = %q", got)
	}
}
