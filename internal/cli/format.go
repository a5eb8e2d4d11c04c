// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatMoney formats an amount with thousands separators and two decimals.
// e.g., ("₹", 35166.354) -> "₹35,166.35"
func FormatMoney(symbol string, v float64) string {
	if v < 0 {
		return "-" + FormatMoney(symbol, -v)
	}
	if v >= math.MaxInt64 {
		// FormatFloat goes through int64; cents are below float precision here
		return symbol + humanize.Commaf(math.Round(v)) + ".00"
	}
	return symbol + humanize.FormatFloat("#,###.##", v)
}

// FormatWhole formats an amount with thousands separators and no decimals.
// e.g., ("₹", 500000) -> "₹500,000"
func FormatWhole(symbol string, v float64) string {
	if v < 0 {
		return "-" + FormatWhole(symbol, -v)
	}
	return symbol + humanize.Commaf(math.Round(v))
}

// FormatRate formats an annual percentage rate, dropping trailing zeros.
// e.g., 10 -> "10%", 8.65 -> "8.65%"
func FormatRate(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatTenure formats a month count with a years hint.
// e.g., 12 -> "12 months (1y)", 30 -> "30 months (2y 6m)", 1 -> "1 month"
func FormatTenure(months int) string {
	unit := "months"
	if months == 1 {
		unit = "month"
	}
	s := fmt.Sprintf("%d %s", months, unit)
	if months < 12 {
		return s
	}

	years, rest := months/12, months%12
	if rest == 0 {
		return fmt.Sprintf("%s (%dy)", s, years)
	}
	return fmt.Sprintf("%s (%dy %dm)", s, years, rest)
}

// ParseAmount parses user-typed amounts, accepting separators and a currency prefix.
// e.g., "₹1,250,000" -> 1250000
func ParseAmount(symbol, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if symbol != "" {
		s = strings.TrimPrefix(s, symbol)
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return v, nil
}
