package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsMultiByteCells(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Monthly EMI", "₹35,166.35"},
			{"---"},
			{"Total Payment", "₹421,996.26"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)

	want := lipgloss.Width(lines[0])
	for i, line := range lines {
		assert.Equal(t, want, lipgloss.Width(line), "line %d: %q", i, line)
	}
	assert.Contains(t, out, "₹421,996.26")
}

func TestRenderTable_Title(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Loan Summary",
		Headers: []string{"Item", "Value"},
		Rows:    [][]string{{"Tenure", "12 months (1y)"}},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "Loan Summary")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Equal(t, "", RenderTable(Table{}))
}

func TestRenderSplitBar(t *testing.T) {
	out := RenderSplitBar("₹", 400000, 21996.26, 40)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, 42, lipgloss.Width(lines[0]))
	assert.Equal(t, 40, strings.Count(lines[0], "█"))
	assert.Contains(t, lines[1], "Principal ₹400,000.00 (94.8%)")
	assert.Contains(t, lines[1], "Interest ₹21,996.26 (5.2%)")
}

func TestRenderSplitBar_ZeroTotal(t *testing.T) {
	out := RenderSplitBar("₹", 0, 0, 12)
	assert.NotContains(t, out, "█")
	assert.Equal(t, 12, strings.Count(out, "░"))
}
