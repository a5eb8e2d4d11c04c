package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/loanemi/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for total := 10; total < 200; total += 7 {
		for n := 1; n <= 6; n++ {
			widths := LayoutRow(total, n)
			sum := 0
			for _, w := range widths {
				sum += w
			}
			if sum != total {
				t.Fatalf("LayoutRow(%d, %d) sums to %d", total, n, sum)
			}
		}
	}
	if LayoutRow(50, 0) != nil {
		t.Fatal("LayoutRow with n=0 should be nil")
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")

	metrics := []Metric{
		{Label: "Monthly EMI", Value: "₹35,166.35"},
		{Label: "Total Interest", Value: "₹21,996.26"},
		{Label: "Total Payment", Value: "₹421,996.26"},
		{Label: "Loan Amount", Value: "₹400,000", Note: "stale", Warn: true},
	}
	row := MetricCardRow(metrics, 100)

	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 100 {
			t.Errorf("line %d width = %d, want 100", i, w)
		}
	}
	if !strings.Contains(row, "stale") {
		t.Error("warning note missing from card row")
	}
}

func TestCardRowMatchesTallestCard(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "A", 30, false)
	tallCard := ContentCard("Tall", "A\nB\nC\nD\nE\nF", 20, true)

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")

	tallLines := len(strings.Split(tallCard, "\n"))
	if len(lines) != tallLines {
		t.Errorf("Joined should have %d lines (tallest), got %d", tallLines, len(lines))
	}
}

func TestContentCardFocusBorder(t *testing.T) {
	theme.SetActive("flexoki-dark")

	plain := ContentCard("Rate", "10%", 20, false)
	focused := ContentCard("Rate", "10%", 20, true)
	if plain == focused {
		t.Fatal("focused card should render a different border color")
	}
	if lipgloss.Width(plain) != lipgloss.Width(focused) {
		t.Fatal("focus must not change card width")
	}
}
