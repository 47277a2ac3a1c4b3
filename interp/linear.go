package interp

import (
	"fmt"

	"github.com/arloliu/growthcast/format"
	"github.com/arloliu/growthcast/series"
)

// Linear is piecewise-linear interpolation with end-segment extrapolation.
type Linear struct {
	Locale format.Locale
}

// Method returns format.MethodLinear.
func (Linear) Method() format.Method { return format.MethodLinear }

// Predict evaluates the piecewise-linear interpolant at every target.
//
// A target equal to an observed x returns the observed y exactly. Linear
// does not reject non-finite results; clamping handles them downstream.
func (Linear) Predict(s series.Series, targets []float64) ([]float64, error) {
	if err := requireLen(s, series.MinLen); err != nil {
		return nil, err
	}

	out := make([]float64, len(targets))
	for k, t := range targets {
		out[k] = linearAt(s, s.Search(t), t)
	}

	return out, nil
}

// Explain evaluates at t and names the segment and substituted formula.
func (l Linear) Explain(s series.Series, t float64) (float64, []string, error) {
	if err := requireLen(s, series.MinLen); err != nil {
		return 0, nil, err
	}

	i := s.Search(t)
	x0, y0 := s.X(i), s.Y(i)
	x1, y1 := s.X(i+1), s.Y(i+1)
	result := linearAt(s, i, t)

	p := phrasesFor(l.Locale)
	steps := []string{
		fmt.Sprintf(p.linearFind, num(t)),
		fmt.Sprintf(p.linearPoint1, num(x0), num(y0)),
		fmt.Sprintf(p.linearPoint2, num(x1), num(y1)),
		p.linearApply,
		"y = y₀ + ((x - x₀) × (y₁ - y₀)) / (x₁ - x₀)",
		fmt.Sprintf("y = %s + ((%s - %s) × (%s - %s)) / (%s - %s)",
			num(y0), num(t), num(x0), num(y1), num(y0), num(x1), num(x0)),
		fmt.Sprintf("y = %s + ((%s) × (%s)) / (%s)",
			num(y0), num(t-x0), num(y1-y0), num(x1-x0)),
		"y = " + num(result),
	}

	return result, steps, nil
}

// linearAt evaluates segment i (samples i and i+1) at t.
func linearAt(s series.Series, i int, t float64) float64 {
	x0, y0 := s.X(i), s.Y(i)
	x1, y1 := s.X(i+1), s.Y(i+1)
	switch t {
	case x0:
		return y0
	case x1:
		return y1
	}

	return y0 + (t-x0)*(y1-y0)/(x1-x0)
}
