package loan

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the only error kind the calculator returns.
var ErrInvalidInput = errors.New("invalid input")

// Field names reported in InputError.
const (
	FieldHomeValue    = "home value"
	FieldDownPayment  = "down payment"
	FieldLoanAmount   = "loan amount"
	FieldAnnualRate   = "annual rate"
	FieldTenureMonths = "tenure"
)

// InputError describes a rejected input. It matches ErrInvalidInput under errors.Is.
type InputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s %s (got %g)", ErrInvalidInput, e.Field, e.Reason, e.Value)
}

// Is reports whether target is ErrInvalidInput.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field string, value float64, reason string) error {
	return &InputError{Field: field, Value: value, Reason: reason}
}

// FieldOf returns the offending field name of an InputError, or "".
func FieldOf(err error) string {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Field
	}
	return ""
}
