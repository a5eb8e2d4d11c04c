// Package loan implements the EMI calculation for an amortizing loan.
package loan

import "math"

// Result holds the values derived from a loan amount, rate and tenure.
type Result struct {
	MonthlyRate   float64 `json:"monthly_rate"`
	EMI           float64 `json:"emi"`
	TotalPayment  float64 `json:"total_payment"`
	TotalInterest float64 `json:"total_interest"`
}

// ComputeEMI returns the equated monthly installment that fully amortizes
// loanAmount over tenureMonths at annualRatePercent, plus the totals.
// A zero rate falls back to straight-line division.
func ComputeEMI(loanAmount, annualRatePercent float64, tenureMonths int) (Result, error) {
	if err := checkAmount(FieldLoanAmount, loanAmount); err != nil {
		return Result{}, err
	}
	if err := checkAmount(FieldAnnualRate, annualRatePercent); err != nil {
		return Result{}, err
	}
	if tenureMonths < 1 {
		return Result{}, invalid(FieldTenureMonths, float64(tenureMonths), "must be at least 1 month")
	}

	n := float64(tenureMonths)
	monthlyRate := annualRatePercent / 12 / 100

	var emi float64
	if monthlyRate == 0 {
		emi = loanAmount / n
	} else {
		// L*r/(1-(1+r)^-n) is L*r*(1+r)^n/((1+r)^n-1) without the overflow
		// when (1+r)^n is huge. expm1/log1p keep 1-(1+r)^-n accurate when r
		// is too small for 1+r to be represented.
		emi = loanAmount * monthlyRate / -math.Expm1(-n*math.Log1p(monthlyRate))
	}

	totalPayment := emi * n
	totalInterest := totalPayment - loanAmount
	if totalInterest < 0 {
		// rounding at near-zero rates; interest is never negative
		totalPayment, totalInterest = loanAmount, 0
	}
	res := Result{
		MonthlyRate:   monthlyRate,
		EMI:           emi,
		TotalPayment:  totalPayment,
		TotalInterest: totalInterest,
	}
	if !finite(res.EMI) || !finite(res.TotalPayment) || !finite(res.TotalInterest) {
		return Result{}, invalid(FieldLoanAmount, loanAmount, "is too large to amortize")
	}
	return res, nil
}

// DeriveLoanAmount returns homeValue minus downPayment.
func DeriveLoanAmount(homeValue, downPayment float64) (float64, error) {
	if err := checkAmount(FieldHomeValue, homeValue); err != nil {
		return 0, err
	}
	if err := checkAmount(FieldDownPayment, downPayment); err != nil {
		return 0, err
	}
	if downPayment > homeValue {
		return 0, invalid(FieldDownPayment, downPayment, "exceeds home value")
	}
	return homeValue - downPayment, nil
}

// PrincipalShare is the principal's fraction of principal plus interest,
// in [0,1]. It is 0 when both are zero.
func (r Result) PrincipalShare() float64 {
	principal := r.TotalPayment - r.TotalInterest
	interest := math.Max(r.TotalInterest, 0)
	total := principal + interest
	if total <= 0 {
		return 0
	}
	return principal / total
}

func checkAmount(field string, v float64) error {
	if !finite(v) {
		return invalid(field, v, "must be a finite number")
	}
	if v < 0 {
		return invalid(field, v, "must not be negative")
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
