package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/loanemi/internal/tui"
	"github.com/theirongolddev/loanemi/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var flagLogFile string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive calculator",
	RunE:  runTUI,
}

func init() {
	addInputFlags(tuiCmd.Flags())
	tuiCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while the TUI runs")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	theme.SetActive(cfg.Appearance.Theme)

	in, err := sessionInputs(cmd, cfg)
	if err != nil {
		return err
	}

	// The TUI owns the terminal; logs go to a file or nowhere.
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		discardLogs()
	}

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(in, cfg.Display.CurrencySymbol)
	p := tea.NewProgram(app, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if a, ok := final.(tui.App); ok {
		log.WithFields(log.Fields{
			"emi":    a.Result().EMI,
			"tenure": a.Inputs().TenureMonths,
		}).Debug("tui exited")
	}
	return nil
}
