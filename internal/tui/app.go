// Package tui provides the interactive Bubble Tea calculator for loanemi.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/loanemi/internal/cli"
	"github.com/theirongolddev/loanemi/internal/loan"
	"github.com/theirongolddev/loanemi/internal/tui/components"
	"github.com/theirongolddev/loanemi/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// App is the root Bubble Tea model.
//
// inputs always passes loan.Inputs.Validate; edits that would break that are
// rejected and the previous state is kept. The loan amount may still be stale
// until the next commit.
type App struct {
	inputs   loan.Inputs
	defaults loan.Inputs
	result   loan.Result
	symbol   string

	// UI state
	width    int
	height   int
	focus    field
	showHelp bool

	// Inline editing of the focused field
	editing bool
	input   textinput.Model

	// Status line
	message string
	isError bool
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
)

// NewApp creates a calculator starting from defaults, which should already be
// committed. symbol is the currency prefix used for display.
func NewApp(defaults loan.Inputs, symbol string) App {
	a := App{
		inputs:   defaults,
		defaults: defaults,
		symbol:   symbol,
	}
	if err := defaults.Validate(); err != nil {
		a.inputs = loan.DefaultInputs()
		a.defaults = a.inputs
		a.setError(err)
	}
	a.recompute()
	return a
}

// Inputs returns the current inputs.
func (a App) Inputs() loan.Inputs {
	return a.inputs
}

// Result returns the result for the current inputs.
func (a App) Result() loan.Result {
	return a.result
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

func (a *App) recompute() {
	res, err := loan.Calculate(a.inputs)
	if err != nil {
		// unreachable while inputs stay valid; keep the last result
		a.setError(err)
		return
	}
	a.result = res
}

// apply replaces inputs with candidate if it is valid, otherwise keeps the
// prior state and reports the error.
func (a *App) apply(candidate loan.Inputs, err error) bool {
	if err == nil {
		err = candidate.Validate()
	}
	if err == nil {
		_, err = loan.Calculate(candidate)
	}
	if err != nil {
		a.setError(err)
		return false
	}
	a.inputs = candidate
	a.clearMessage()
	a.recompute()
	return true
}

// commit runs the loan amount sync transition.
func (a *App) commit() {
	if !a.inputs.Stale() {
		return
	}
	committed, err := a.inputs.Commit()
	if a.apply(committed, err) {
		a.setNotice("loan amount updated to " + cli.FormatWhole(a.symbol, a.inputs.LoanAmount))
	}
}

// moveFocus changes the focused field. Leaving home value or down payment is
// the blur that commits the loan amount.
func (a *App) moveFocus(delta int) {
	if fields[a.focus].syncs {
		a.commit()
	}
	a.focus = field((int(a.focus) + delta + int(fieldCount)) % int(fieldCount))
}

func (a *App) nudge(delta int) {
	f := fields[a.focus]
	next := f.control.Nudge(f.get(a.inputs), delta)
	a.apply(f.set(a.inputs, next))
}

func (a *App) setError(err error) {
	a.message = err.Error()
	if f := loan.FieldOf(err); f != "" {
		var ie *loan.InputError
		if errors.As(err, &ie) {
			a.message = fmt.Sprintf("%s %s", f, ie.Reason)
		}
	}
	a.isError = true
}

func (a *App) setNotice(msg string) {
	a.message = msg
	a.isError = false
}

func (a *App) clearMessage() {
	a.message = ""
	a.isError = false
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if a.editing {
			return a.updateEditing(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "down", "j", "tab":
			a.moveFocus(1)
		case "up", "k", "shift+tab":
			a.moveFocus(-1)
		case "right", "l", "+":
			a.nudge(1)
		case "left", "h", "-":
			a.nudge(-1)
		case "pgup":
			a.nudge(10)
		case "pgdown":
			a.nudge(-10)
		case "c":
			if a.inputs.Stale() {
				a.commit()
			} else {
				a.setNotice("loan amount already matches home value minus down payment")
			}
		case "r":
			a.inputs = a.defaults
			a.recompute()
			a.setNotice("reset to defaults")
		case "enter":
			return a.startEditing()
		}
		return a, nil
	}

	if a.editing {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) startEditing() (tea.Model, tea.Cmd) {
	ti := textinput.New()
	ti.CharLimit = 24
	ti.Width = 18
	ti.Prompt = "› "
	ti.Placeholder = a.focus.rawValue(a.inputs)
	ti.SetValue(a.focus.rawValue(a.inputs))
	ti.CursorEnd()
	ti.Focus()

	a.editing = true
	a.input = ti
	a.clearMessage()
	return a, textinput.Blink
}

func (a App) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.editing = false
		return a, nil
	case "enter":
		a.editing = false
		v, err := cli.ParseAmount(a.symbol, a.input.Value())
		if err != nil {
			a.setError(fmt.Errorf("%s: %w", strings.ToLower(fields[a.focus].label), err))
			return a, nil
		}
		a.apply(fields[a.focus].set(a.inputs, v))
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	return fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  loanemi needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
}

func (a App) viewMain() string {
	t := theme.Active
	cw := a.contentWidth()

	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(logoStyle.Render("◈ loanemi"))
	b.WriteString(subtitleStyle.Render(" · Loan EMI Calculator"))
	b.WriteString("\n")

	// Inputs: two cards per row
	halves := components.LayoutRow(cw, 2)
	var cards []string
	for f := field(0); f < fieldCount; f++ {
		w := halves[int(f)%2]
		body := valueStyle.Render(f.display(a.inputs, a.symbol))
		if a.editing && f == a.focus {
			body = a.input.View()
		}
		body += "\n" + hintStyle.Render(f.rangeHint(a.symbol))
		cards = append(cards, components.ContentCard(fields[f].label, body, w, f == a.focus))
	}
	b.WriteString(components.CardRow(cards[:2]))
	b.WriteString("\n")
	b.WriteString(components.CardRow(cards[2:]))
	b.WriteString("\n")

	// Results
	loanNote := ""
	if a.inputs.Stale() {
		loanNote = "stale: press c to sync"
	}
	metrics := []components.Metric{
		{Label: "Monthly EMI", Value: cli.FormatMoney(a.symbol, a.result.EMI)},
		{Label: "Total Interest", Value: cli.FormatMoney(a.symbol, a.result.TotalInterest)},
		{Label: "Total Payment", Value: cli.FormatMoney(a.symbol, a.result.TotalPayment)},
		{Label: "Loan Amount", Value: cli.FormatWhole(a.symbol, a.inputs.LoanAmount), Note: loanNote, Warn: loanNote != ""},
	}
	if cw < 100 {
		b.WriteString(components.MetricCardRow(metrics[:2], cw))
		b.WriteString("\n")
		b.WriteString(components.MetricCardRow(metrics[2:], cw))
	} else {
		b.WriteString(components.MetricCardRow(metrics, cw))
	}
	b.WriteString("\n")

	// Principal vs interest
	split := components.SplitBar(
		a.result.PrincipalShare(),
		cli.FormatMoney(a.symbol, a.inputs.LoanAmount),
		cli.FormatMoney(a.symbol, max(a.result.TotalInterest, 0)),
		components.CardInnerWidth(cw),
	)
	b.WriteString(components.ContentCard("Loan Distribution", split, cw, false))
	b.WriteString("\n")

	b.WriteString(components.RenderStatusBar(cw, a.message, a.isError))
	return b.String()
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	bindings := []struct{ key, desc string }{
		{"↑/↓ tab", "move between fields"},
		{"←/→ h/l", "adjust by one step"},
		{"pgup/pgdn", "adjust by ten steps"},
		{"enter", "type a value (esc cancels)"},
		{"c", "sync loan amount to home value − down payment"},
		{"r", "reset to defaults"},
		{"?", "toggle help"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keys"))
	b.WriteString("\n\n")
	for _, kb := range bindings {
		b.WriteString(keyStyle.Render(fmt.Sprintf("%-10s", kb.key)))
		b.WriteString(" ")
		b.WriteString(descStyle.Render(kb.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(descStyle.Render("Leaving the home value or down payment field also syncs the loan amount."))

	return lipgloss.Place(a.width, max(a.height, 1), lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()))
}
