// Package cmd implements the loanemi CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/loanemi/internal/config"
	"github.com/theirongolddev/loanemi/internal/loan"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	flagVerbose    bool
	flagConfigPath string

	// Loan inputs shared by calc and tui. Unset flags fall back to config defaults.
	flagHome   float64
	flagDown   float64
	flagLoan   float64
	flagRate   float64
	flagTenure int
)

var rootCmd = &cobra.Command{
	Use:   "loanemi",
	Short: "Loan EMI calculator",
	Long: "Compute the equated monthly installment, total interest and total payment\n" +
		"for a home loan, from the command line or an interactive dashboard.",
	SilenceUsage:      true,
	PersistentPreRunE: prepare,
	RunE:              runCalc,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging on stderr")
	pf.StringVar(&flagConfigPath, "config", "", "Config file path (default "+config.Path()+")")

	addInputFlags(rootCmd.Flags())
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "Print inputs and result as JSON")
}

// addInputFlags registers the loan input flags on commands that compute.
func addInputFlags(fs *pflag.FlagSet) {
	fs.Float64Var(&flagHome, "home", loan.DefaultHomeValue, "Home value")
	fs.Float64Var(&flagDown, "down", loan.DefaultDownPayment, "Down payment")
	fs.Float64Var(&flagLoan, "loan", 0, "Loan amount (default: home value minus down payment)")
	fs.Float64VarP(&flagRate, "rate", "r", loan.DefaultAnnualRatePercent, "Annual interest rate in percent")
	fs.IntVarP(&flagTenure, "tenure", "t", loan.DefaultTenureMonths, "Tenure in months")
}

// prepare configures logging and the config path before any command runs.
func prepare(cmd *cobra.Command, _ []string) error {
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetLevel(log.WarnLevel)
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
	}

	config.SetPath(flagConfigPath)
	log.WithField("path", config.Path()).Debug("config location")
	return nil
}

// loadConfig loads config, falling back to defaults with a warning so that a
// broken config file never blocks a calculation.
func loadConfig() config.Config {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		log.WithError(err).Warn("using default configuration")
	}
	return cfg
}

// sessionInputs builds the starting inputs from config defaults and any flags
// set on cmd. Without --loan the loan amount is committed from home and down
// payment; with it, the given amount is kept even if it disagrees.
func sessionInputs(cmd *cobra.Command, cfg config.Config) (loan.Inputs, error) {
	in, err := cfg.Inputs()
	if err != nil {
		log.WithError(err).Warn("ignoring invalid defaults in config")
	}

	flags := cmd.Flags()
	if flags.Changed("home") {
		in = in.WithHomeValue(flagHome)
	}
	if flags.Changed("down") {
		in = in.WithDownPayment(flagDown)
	}
	if flags.Changed("rate") {
		in = in.WithAnnualRate(flagRate)
	}
	if flags.Changed("tenure") {
		in = in.WithTenure(flagTenure)
	}

	if flags.Changed("loan") {
		in.LoanAmount = flagLoan
	} else if in, err = in.Commit(); err != nil {
		return in, err
	}

	if err := in.Validate(); err != nil {
		return in, err
	}

	log.WithFields(log.Fields{
		"home":   in.HomeValue,
		"down":   in.DownPayment,
		"loan":   in.LoanAmount,
		"rate":   in.AnnualRatePercent,
		"tenure": in.TenureMonths,
	}).Debug("session inputs")
	return in, nil
}

// discardLogs silences logging, used while a full-screen UI owns the terminal.
func discardLogs() {
	log.SetOutput(io.Discard)
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
