package components

import (
	"fmt"

	"github.com/theirongolddev/loanemi/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// SplitBar renders principalShare (0-1) as a principal-colored fill over an
// interest-colored track, followed by a legend.
func SplitBar(principalShare float64, principalLabel, interestLabel string, width int) string {
	t := theme.Active

	if principalShare < 0 {
		principalShare = 0
	}
	if principalShare > 1 {
		principalShare = 1
	}
	if width < 10 {
		width = 10
	}

	bar := progress.New(
		progress.WithSolidFill(string(t.Blue)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.Empty = bar.Full
	bar.EmptyColor = string(t.Red)

	principalStyle := lipgloss.NewStyle().Foreground(t.Blue).Bold(true)
	interestStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	legend := principalStyle.Render("■ ") +
		labelStyle.Render(fmt.Sprintf("Principal %s  %.1f%%", principalLabel, principalShare*100)) +
		"    " +
		interestStyle.Render("■ ") +
		labelStyle.Render(fmt.Sprintf("Interest %s  %.1f%%", interestLabel, (1-principalShare)*100))

	return bar.ViewAs(principalShare) + "\n" + legend
}
