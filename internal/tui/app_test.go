package tui

import (
	"strings"
	"testing"

	"github.com/theirongolddev/loanemi/internal/loan"

	tea "github.com/charmbracelet/bubbletea"
)

func press(t *testing.T, a App, keys ...tea.KeyMsg) App {
	t.Helper()
	for _, k := range keys {
		m, _ := a.Update(k)
		next, ok := m.(App)
		if !ok {
			t.Fatalf("Update returned %T, want App", m)
		}
		a = next
	}
	return a
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func newTestApp() App {
	return NewApp(loan.DefaultInputs(), "₹")
}

func TestNewAppComputesDefaults(t *testing.T) {
	a := newTestApp()
	if got := a.Result().EMI; got < 35166.35 || got > 35166.36 {
		t.Fatalf("default EMI = %.4f, want ≈35166.35", got)
	}
	if a.Inputs().Stale() {
		t.Fatal("defaults should start committed")
	}
}

func TestNewAppFallsBackOnInvalidDefaults(t *testing.T) {
	bad := loan.DefaultInputs().WithTenure(0)
	a := NewApp(bad, "₹")
	if a.Inputs() != loan.DefaultInputs() {
		t.Fatalf("inputs = %+v, want built-in defaults", a.Inputs())
	}
	if !a.isError || !strings.Contains(a.message, "tenure") {
		t.Fatalf("expected tenure validation message, got %q", a.message)
	}
}

func TestNudgeHomeValueLeavesLoanAmountUntilBlur(t *testing.T) {
	a := newTestApp()

	a = press(t, a, keyRight, keyRight)
	if a.Inputs().HomeValue != 600000 {
		t.Fatalf("HomeValue = %.0f, want 600000", a.Inputs().HomeValue)
	}
	if a.Inputs().LoanAmount != 400000 {
		t.Fatalf("LoanAmount = %.0f before blur, want 400000", a.Inputs().LoanAmount)
	}
	if !a.Inputs().Stale() {
		t.Fatal("inputs should be stale before blur")
	}
	staleEMI := a.Result().EMI

	// leaving the field commits
	a = press(t, a, keyDown)
	if a.focus != fieldDown {
		t.Fatalf("focus = %d, want fieldDown", a.focus)
	}
	if a.Inputs().LoanAmount != 500000 {
		t.Fatalf("LoanAmount = %.0f after blur, want 500000", a.Inputs().LoanAmount)
	}
	if a.Result().EMI <= staleEMI {
		t.Fatal("EMI should grow with the committed loan amount")
	}
}

func TestLeavingRateDoesNotCommit(t *testing.T) {
	a := newTestApp()
	a = press(t, a, keyRight) // home -> 550000, stale
	a.focus = fieldRate
	a = press(t, a, keyDown)
	if a.Inputs().LoanAmount != 400000 {
		t.Fatalf("LoanAmount = %.0f, want 400000 (rate blur must not commit)", a.Inputs().LoanAmount)
	}

	a = press(t, a, runes("c"))
	if a.Inputs().LoanAmount != 450000 {
		t.Fatalf("LoanAmount = %.0f after explicit commit, want 450000", a.Inputs().LoanAmount)
	}
}

func TestDownPaymentAboveHomeValueIsRejected(t *testing.T) {
	a := NewApp(loan.Inputs{
		HomeValue:         100000,
		DownPayment:       100000,
		LoanAmount:        0,
		AnnualRatePercent: 10,
		TenureMonths:      12,
	}, "₹")
	a = press(t, a, keyDown, keyRight)

	if a.Inputs().DownPayment != 100000 {
		t.Fatalf("DownPayment = %.0f, want prior value 100000", a.Inputs().DownPayment)
	}
	if !a.isError || !strings.Contains(a.message, "down payment exceeds home value") {
		t.Fatalf("message = %q", a.message)
	}
}

func TestEditRateByTyping(t *testing.T) {
	a := newTestApp()
	a = press(t, a, keyDown, keyDown) // rate
	if a.focus != fieldRate {
		t.Fatalf("focus = %d, want fieldRate", a.focus)
	}

	a = press(t, a, keyEnter)
	if !a.editing {
		t.Fatal("enter should start editing")
	}
	a.input.SetValue("0")
	a = press(t, a, keyEnter)

	if a.editing {
		t.Fatal("enter should finish editing")
	}
	if a.Result().EMI != 400000.0/12 {
		t.Fatalf("zero-rate EMI = %v, want %v", a.Result().EMI, 400000.0/12)
	}
	if a.Result().TotalInterest != 0 {
		t.Fatalf("zero-rate interest = %v, want 0", a.Result().TotalInterest)
	}
}

func TestEditRejectsBadText(t *testing.T) {
	a := newTestApp()
	a.focus = fieldTenure

	a = press(t, a, keyEnter)
	a.input.SetValue("12.5")
	a = press(t, a, keyEnter)
	if a.Inputs().TenureMonths != 12 {
		t.Fatalf("TenureMonths = %d, want 12", a.Inputs().TenureMonths)
	}
	if !strings.Contains(a.message, "whole number") {
		t.Fatalf("message = %q", a.message)
	}

	a = press(t, a, keyEnter)
	a.input.SetValue("soon")
	a = press(t, a, keyEnter)
	if !a.isError || !strings.Contains(a.message, "not a number") {
		t.Fatalf("message = %q", a.message)
	}

	a = press(t, a, keyEnter)
	a.input.SetValue("0")
	a = press(t, a, keyEnter)
	if a.Inputs().TenureMonths != 12 {
		t.Fatalf("zero tenure accepted: %d", a.Inputs().TenureMonths)
	}
}

func TestEditEscapeCancels(t *testing.T) {
	a := newTestApp()
	a = press(t, a, keyEnter)
	a.input.SetValue("900000")
	a = press(t, a, keyEsc)
	if a.editing || a.Inputs().HomeValue != 500000 {
		t.Fatalf("esc should cancel: editing=%v home=%.0f", a.editing, a.Inputs().HomeValue)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	a := newTestApp()
	a = press(t, a, keyRight, keyDown, keyDown, keyRight, keyRight)
	if a.Inputs() == loan.DefaultInputs() {
		t.Fatal("test setup: inputs should differ from defaults")
	}
	a = press(t, a, runes("r"))
	if a.Inputs() != loan.DefaultInputs() {
		t.Fatalf("inputs = %+v after reset", a.Inputs())
	}
}

func TestFocusWraps(t *testing.T) {
	a := newTestApp()
	a = press(t, a, keyUp)
	if a.focus != fieldTenure {
		t.Fatalf("focus = %d, want fieldTenure", a.focus)
	}
	a = press(t, a, keyDown)
	if a.focus != fieldHome {
		t.Fatalf("focus = %d, want fieldHome", a.focus)
	}
}

func TestTenureNudgeClampsToRange(t *testing.T) {
	a := newTestApp()
	a.focus = fieldTenure
	for i := 0; i < 20; i++ {
		a = press(t, a, keyLeft)
	}
	if a.Inputs().TenureMonths != 6 {
		t.Fatalf("TenureMonths = %d, want 6", a.Inputs().TenureMonths)
	}
}

func TestViewRendersResults(t *testing.T) {
	a := newTestApp()
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	a = m.(App)

	view := a.View()
	for _, want := range []string{"Monthly EMI", "₹35,166.35", "₹21,996.26", "₹421,996.26", "Loan Distribution"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	a = press(t, a, keyRight)
	if !strings.Contains(a.View(), "stale") {
		t.Error("stale loan amount should be flagged")
	}
}

func TestViewTooNarrowAndHelp(t *testing.T) {
	a := newTestApp()
	m, _ := a.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	a = m.(App)
	if !strings.Contains(a.View(), "too narrow") {
		t.Fatal("expected narrow-terminal message")
	}

	m, _ = a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	a = m.(App)
	a = press(t, a, runes("?"))
	if !strings.Contains(a.View(), "toggle help") {
		t.Fatal("help overlay not shown")
	}
	a = press(t, a, runes("x"))
	if a.showHelp {
		t.Fatal("any key should dismiss help")
	}
}

func TestNudgeBelowRangeKeepsTypedValue(t *testing.T) {
	a := newTestApp()
	a.focus = fieldRate
	a = press(t, a, keyEnter)
	a.input.SetValue("0")
	a = press(t, a, keyEnter)

	a = press(t, a, keyLeft)
	if got := a.Inputs().AnnualRatePercent; got != 0 {
		t.Fatalf("rate = %v after decrease from 0, want 0", got)
	}
	if a.Result().TotalInterest != 0 {
		t.Fatalf("interest = %v, want 0", a.Result().TotalInterest)
	}

	a = press(t, a, keyRight)
	if got := a.Inputs().AnnualRatePercent; got != 1 {
		t.Fatalf("rate = %v after increase from 0, want 1", got)
	}
}

func TestNudgeAboveRangeKeepsTypedValue(t *testing.T) {
	a := newTestApp()
	a = press(t, a, keyEnter)
	a.input.SetValue("10000000")
	a = press(t, a, keyEnter)

	a = press(t, a, keyRight)
	if got := a.Inputs().HomeValue; got != 10_000_000 {
		t.Fatalf("home = %.0f after increase, want 10000000", got)
	}
	a = press(t, a, keyLeft)
	if got := a.Inputs().HomeValue; got != 5_000_000 {
		t.Fatalf("home = %.0f after decrease, want 5000000", got)
	}
}
