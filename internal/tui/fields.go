package tui

import (
	"math"
	"strconv"

	"github.com/theirongolddev/loanemi/internal/cli"
	"github.com/theirongolddev/loanemi/internal/loan"
)

// field identifies one adjustable input. The loan amount is not a field: it
// is only ever written by the commit transition.
type field int

const (
	fieldHome field = iota
	fieldDown
	fieldRate
	fieldTenure
	fieldCount // sentinel
)

type fieldSpec struct {
	label   string
	control loan.Control
	get     func(loan.Inputs) float64
	set     func(loan.Inputs, float64) (loan.Inputs, error)
	// syncs marks fields whose blur commits the loan amount.
	syncs bool
}

var fields = [fieldCount]fieldSpec{
	fieldHome: {
		label:   "Home Value",
		control: loan.Controls.HomeValue,
		get:     func(in loan.Inputs) float64 { return in.HomeValue },
		set: func(in loan.Inputs, v float64) (loan.Inputs, error) {
			return in.WithHomeValue(v), nil
		},
		syncs: true,
	},
	fieldDown: {
		label:   "Down Payment",
		control: loan.Controls.DownPayment,
		get:     func(in loan.Inputs) float64 { return in.DownPayment },
		set: func(in loan.Inputs, v float64) (loan.Inputs, error) {
			return in.WithDownPayment(v), nil
		},
		syncs: true,
	},
	fieldRate: {
		label:   "Annual Interest Rate",
		control: loan.Controls.AnnualRate,
		get:     func(in loan.Inputs) float64 { return in.AnnualRatePercent },
		set: func(in loan.Inputs, v float64) (loan.Inputs, error) {
			return in.WithAnnualRate(v), nil
		},
	},
	fieldTenure: {
		label:   "Tenure",
		control: loan.Controls.Tenure,
		get:     func(in loan.Inputs) float64 { return float64(in.TenureMonths) },
		set: func(in loan.Inputs, v float64) (loan.Inputs, error) {
			if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
				return in, &loan.InputError{
					Field:  loan.FieldTenureMonths,
					Value:  v,
					Reason: "must be a whole number of months",
				}
			}
			return in.WithTenure(int(v)), nil
		},
	},
}

// display formats the field's value for its card.
func (f field) display(in loan.Inputs, symbol string) string {
	v := fields[f].get(in)
	switch f {
	case fieldRate:
		return cli.FormatRate(v)
	case fieldTenure:
		return cli.FormatTenure(int(v))
	default:
		return cli.FormatWhole(symbol, v)
	}
}

// rangeHint describes the stepping range shown under the value.
func (f field) rangeHint(symbol string) string {
	c := fields[f].control
	switch f {
	case fieldRate:
		return cli.FormatRate(c.Min) + " – " + cli.FormatRate(c.Max) + ", step " + cli.FormatRate(c.Step)
	case fieldTenure:
		return strconv.Itoa(int(c.Min)) + " – " + strconv.Itoa(int(c.Max)) + " months"
	default:
		return cli.FormatWhole(symbol, c.Min) + " – " + cli.FormatWhole(symbol, c.Max) +
			", step " + cli.FormatWhole(symbol, c.Step)
	}
}

// rawValue is the editable text pre-filled when editing starts.
func (f field) rawValue(in loan.Inputs) string {
	return strconv.FormatFloat(fields[f].get(in), 'f', -1, 64)
}
