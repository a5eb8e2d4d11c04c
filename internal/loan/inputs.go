package loan

import "math"

// Inputs is one state of the calculator form. Methods return modified copies.
//
// LoanAmount is stored rather than derived: edits to HomeValue or
// DownPayment leave it untouched until Commit runs.
type Inputs struct {
	HomeValue         float64 `json:"home_value"`
	DownPayment       float64 `json:"down_payment"`
	LoanAmount        float64 `json:"loan_amount"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TenureMonths      int     `json:"tenure_months"`
}

// Built-in session defaults.
const (
	DefaultHomeValue         = 500_000.0
	DefaultDownPayment       = 100_000.0
	DefaultAnnualRatePercent = 10.0
	DefaultTenureMonths      = 12
)

// DefaultInputs returns the committed built-in defaults.
func DefaultInputs() Inputs {
	return Inputs{
		HomeValue:         DefaultHomeValue,
		DownPayment:       DefaultDownPayment,
		LoanAmount:        DefaultHomeValue - DefaultDownPayment,
		AnnualRatePercent: DefaultAnnualRatePercent,
		TenureMonths:      DefaultTenureMonths,
	}
}

// Commit reconciles LoanAmount with HomeValue - DownPayment.
// On error the receiver is unchanged and still usable.
func (in Inputs) Commit() (Inputs, error) {
	amount, err := DeriveLoanAmount(in.HomeValue, in.DownPayment)
	if err != nil {
		return in, err
	}
	in.LoanAmount = amount
	return in, nil
}

// Stale reports whether LoanAmount disagrees with HomeValue - DownPayment.
func (in Inputs) Stale() bool {
	return math.Abs(in.LoanAmount-(in.HomeValue-in.DownPayment)) > 1e-6
}

// Validate checks every field and the home value / down payment relation.
// It reports the first offending field.
func (in Inputs) Validate() error {
	if err := checkAmount(FieldHomeValue, in.HomeValue); err != nil {
		return err
	}
	if in.HomeValue == 0 {
		return invalid(FieldHomeValue, in.HomeValue, "must be positive")
	}
	if _, err := DeriveLoanAmount(in.HomeValue, in.DownPayment); err != nil {
		return err
	}
	if err := checkAmount(FieldLoanAmount, in.LoanAmount); err != nil {
		return err
	}
	if err := checkAmount(FieldAnnualRate, in.AnnualRatePercent); err != nil {
		return err
	}
	if in.TenureMonths < 1 {
		return invalid(FieldTenureMonths, float64(in.TenureMonths), "must be at least 1 month")
	}
	return nil
}

// Calculate computes the result for the stored loan amount.
func Calculate(in Inputs) (Result, error) {
	return ComputeEMI(in.LoanAmount, in.AnnualRatePercent, in.TenureMonths)
}

// WithHomeValue returns a copy with HomeValue set. LoanAmount is not synced.
func (in Inputs) WithHomeValue(v float64) Inputs {
	in.HomeValue = v
	return in
}

// WithDownPayment returns a copy with DownPayment set. LoanAmount is not synced.
func (in Inputs) WithDownPayment(v float64) Inputs {
	in.DownPayment = v
	return in
}

// WithAnnualRate returns a copy with AnnualRatePercent set.
func (in Inputs) WithAnnualRate(v float64) Inputs {
	in.AnnualRatePercent = v
	return in
}

// WithTenure returns a copy with TenureMonths set.
func (in Inputs) WithTenure(months int) Inputs {
	in.TenureMonths = months
	return in
}
