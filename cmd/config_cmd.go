package cmd

import (
	"github.com/theirongolddev/loanemi/internal/cli"
	"github.com/theirongolddev/loanemi/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	printf(cmd, "  Config file: %s\n", config.Path())
	if config.Exists() {
		printf(cmd, "  Status: loaded\n")
	} else {
		printf(cmd, "  Status: using defaults (no config file)\n")
	}
	printf(cmd, "\n")

	sym := cfg.Display.CurrencySymbol
	printf(cmd, "  [Defaults]\n")
	printf(cmd, "    Home value:    %s\n", cli.FormatWhole(sym, cfg.Defaults.HomeValue))
	printf(cmd, "    Down payment:  %s\n", cli.FormatWhole(sym, cfg.Defaults.DownPayment))
	printf(cmd, "    Interest rate: %s\n", cli.FormatRate(cfg.Defaults.AnnualRatePercent))
	printf(cmd, "    Tenure:        %s\n", cli.FormatTenure(cfg.Defaults.TenureMonths))
	if _, err := cfg.Inputs(); err != nil {
		printf(cmd, "    %s\n", cli.RenderWarning("invalid, built-in defaults will be used: "+err.Error()))
	}
	printf(cmd, "\n")

	printf(cmd, "  [Display]\n")
	printf(cmd, "    Currency symbol: %q\n", sym)
	printf(cmd, "\n")

	printf(cmd, "  [Appearance]\n")
	printf(cmd, "    Theme: %s\n", cfg.Appearance.Theme)
	printf(cmd, "\n")

	printf(cmd, "  Run `loanemi setup` to reconfigure.\n")
	return nil
}
