package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/theirongolddev/loanemi/internal/cli"
	"github.com/theirongolddev/loanemi/internal/config"
	"github.com/theirongolddev/loanemi/internal/loan"
	"github.com/theirongolddev/loanemi/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set default inputs, currency symbol and theme",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// setupValues holds the form's string-bound fields.
type setupValues struct {
	home, down, rate, tenure string
	symbol                   string
	theme                    string
}

func newSetupValues(cfg config.Config) setupValues {
	d := cfg.Defaults
	return setupValues{
		home:   strconv.FormatFloat(d.HomeValue, 'f', -1, 64),
		down:   strconv.FormatFloat(d.DownPayment, 'f', -1, 64),
		rate:   strconv.FormatFloat(d.AnnualRatePercent, 'f', -1, 64),
		tenure: strconv.Itoa(d.TenureMonths),
		symbol: cfg.Display.CurrencySymbol,
		theme:  cfg.Appearance.Theme,
	}
}

// apply parses the form values into cfg, rejecting inputs the calculator
// would reject.
func (v setupValues) apply(cfg config.Config) (config.Config, error) {
	home, err := cli.ParseAmount(v.symbol, v.home)
	if err != nil {
		return cfg, fmt.Errorf("home value: %w", err)
	}
	down, err := cli.ParseAmount(v.symbol, v.down)
	if err != nil {
		return cfg, fmt.Errorf("down payment: %w", err)
	}
	rate, err := cli.ParseAmount("", v.rate)
	if err != nil {
		return cfg, fmt.Errorf("interest rate: %w", err)
	}
	tenure, err := strconv.Atoi(v.tenure)
	if err != nil {
		return cfg, fmt.Errorf("tenure: not a whole number: %q", v.tenure)
	}

	in, err := loan.Inputs{
		HomeValue:         home,
		DownPayment:       down,
		AnnualRatePercent: rate,
		TenureMonths:      tenure,
	}.Commit()
	if err != nil {
		return cfg, err
	}
	if err := in.Validate(); err != nil {
		return cfg, err
	}

	cfg.SetDefaults(in)
	cfg.Display.CurrencySymbol = v.symbol
	cfg.Appearance.Theme = theme.ByName(v.theme).Name
	return cfg, nil
}

func newSetupForm(v *setupValues) *huh.Form {
	validateNumber := func(s string) error {
		_, err := cli.ParseAmount(v.symbol, s)
		return err
	}

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Home value").Value(&v.home).Validate(validateNumber),
			huh.NewInput().Title("Down payment").Value(&v.down).Validate(validateNumber),
			huh.NewInput().Title("Annual interest rate (%)").Value(&v.rate).Validate(validateNumber),
			huh.NewInput().Title("Tenure (months)").Value(&v.tenure).Validate(func(s string) error {
				if _, err := strconv.Atoi(s); err != nil {
					return errors.New("enter a whole number of months")
				}
				return nil
			}),
		).Title("Default loan").Description("Every session starts from these inputs."),
		huh.NewGroup(
			huh.NewInput().Title("Currency symbol").Value(&v.symbol).CharLimit(4),
			huh.NewSelect[string]().Title("Color theme").Options(themeOpts...).Value(&v.theme),
		).Title("Display"),
	)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	vals := newSetupValues(cfg)

	if err := newSetupForm(&vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			printf(cmd, "  Setup cancelled, nothing saved.\n")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	cfg, err := vals.apply(cfg)
	if err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	printf(cmd, "\n  Saved to %s\n", config.Path())
	printf(cmd, "  Run `loanemi setup` anytime to reconfigure.\n\n")
	return nil
}
