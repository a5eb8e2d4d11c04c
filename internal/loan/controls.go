package loan

import "math"

// Control is the range and step of one adjustable input.
type Control struct {
	Min, Max, Step float64
}

// Clamp limits v to the control's range.
func (c Control) Clamp(v float64) float64 {
	return math.Min(math.Max(v, c.Min), c.Max)
}

// Nudge moves v by delta steps, snapping to the step grid and clamping.
// The result never moves against delta: a value outside the range that the
// step would push further out is returned unchanged.
func (c Control) Nudge(v float64, delta int) float64 {
	switch {
	case delta == 0:
		return v
	case delta < 0 && v <= c.Min, delta > 0 && v >= c.Max:
		return v
	}

	steps := math.Round((v - c.Min) / c.Step)
	next := c.Min + (steps+float64(delta))*c.Step
	// strip float drift from fractional steps like 0.1
	next = math.Round(next*1e6) / 1e6
	next = c.Clamp(next)

	if (delta > 0 && next < v) || (delta < 0 && next > v) {
		return v
	}
	return next
}

// Controls holds the stepping ranges for each adjustable input.
var Controls = struct {
	HomeValue, DownPayment, AnnualRate, Tenure Control
}{
	HomeValue:   Control{Min: 100_000, Max: 5_000_000, Step: 50_000},
	DownPayment: Control{Min: 10_000, Max: 5_000_000, Step: 10_000},
	AnnualRate:  Control{Min: 1, Max: 20, Step: 0.1},
	Tenure:      Control{Min: 6, Max: 360, Step: 1},
}
