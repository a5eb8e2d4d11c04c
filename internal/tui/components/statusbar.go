package components

import (
	"github.com/theirongolddev/loanemi/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with key hints on the left
// and a message (validation error or notice) on the right.
func RenderStatusBar(width int, message string, isError bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	msgStyle := lipgloss.NewStyle().Foreground(t.Green)
	if isError {
		msgStyle = lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	}

	left := " [↑↓]field  [←→]adjust  [enter]edit  [c]ommit  [r]eset  [?]help  [q]uit"
	right := ""
	if message != "" {
		right = msgStyle.Render(message) + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
