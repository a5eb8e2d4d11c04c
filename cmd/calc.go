package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/theirongolddev/loanemi/internal/cli"
	"github.com/theirongolddev/loanemi/internal/loan"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var flagJSON bool

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute EMI and totals for one set of inputs",
	Example: "  loanemi calc --home 750000 --down 150000 --rate 8.5 --tenure 240\n" +
		"  loanemi calc --loan 400000 --rate 0 --tenure 10 --json",
	RunE: runCalc,
}

func init() {
	addInputFlags(calcCmd.Flags())
	calcCmd.Flags().BoolVar(&flagJSON, "json", false, "Print inputs and result as JSON")
	rootCmd.AddCommand(calcCmd)
}

type calcOutput struct {
	Inputs         loan.Inputs `json:"inputs"`
	Result         loan.Result `json:"result"`
	LoanAmountSync bool        `json:"loan_amount_in_sync"`
}

func runCalc(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()

	in, err := sessionInputs(cmd, cfg)
	if err != nil {
		return err
	}

	res, err := loan.Calculate(in)
	if err != nil {
		return err
	}

	if in.Stale() {
		log.WithFields(log.Fields{
			"loan":    in.LoanAmount,
			"derived": in.HomeValue - in.DownPayment,
		}).Warn("loan amount differs from home value minus down payment")
	}

	if flagJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(calcOutput{Inputs: in, Result: res, LoanAmountSync: !in.Stale()}); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		return nil
	}

	sym := cfg.Display.CurrencySymbol
	rows := [][]string{
		{"Home Value", cli.FormatWhole(sym, in.HomeValue)},
		{"Down Payment", cli.FormatWhole(sym, in.DownPayment)},
		{"Loan Amount", cli.FormatWhole(sym, in.LoanAmount)},
		{"Interest Rate", cli.FormatRate(in.AnnualRatePercent) + " p.a."},
		{"Tenure", cli.FormatTenure(in.TenureMonths)},
		{"---"},
		{"Monthly EMI", cli.FormatMoney(sym, res.EMI)},
		{"Total Interest", cli.FormatMoney(sym, res.TotalInterest)},
		{"Total Payment", cli.FormatMoney(sym, res.TotalPayment)},
	}

	printf(cmd, "\n%s\n\n", cli.RenderTitle("LOAN EMI CALCULATOR"))
	printf(cmd, "%s", cli.RenderTable(cli.Table{
		Title:   "Loan Summary",
		Headers: []string{"Item", "Value"},
		Rows:    rows,
	}))
	printf(cmd, "\n%s\n", cli.RenderSplitBar(sym, in.LoanAmount, res.TotalInterest, 50))
	if in.Stale() {
		printf(cmd, "\n%s\n", cli.RenderWarning(fmt.Sprintf(
			"Loan amount %s differs from home value minus down payment (%s).",
			cli.FormatWhole(sym, in.LoanAmount),
			cli.FormatWhole(sym, in.HomeValue-in.DownPayment),
		)))
	}
	printf(cmd, "\n")
	return nil
}
