package interp

import (
	"fmt"
	"math"

	"github.com/arloliu/growthcast/errs"
	"github.com/arloliu/growthcast/format"
	"github.com/arloliu/growthcast/series"
)

// Interpolator is the contract shared by the four methods.
//
// Implementations never mutate their inputs, return exactly len(targets)
// values in target order, and report numerical failure as an error instead
// of panicking. They do not apply fallbacks themselves; see Engine.
type Interpolator interface {
	// Method identifies the implementation.
	Method() format.Method
	// Predict evaluates the interpolant at every target.
	Predict(s series.Series, targets []float64) ([]float64, error)
	// Explain evaluates the interpolant at one target and returns a step trace.
	Explain(s series.Series, t float64) (float64, []string, error)
}

var (
	_ Interpolator = Linear{}
	_ Interpolator = Polynomial{}
	_ Interpolator = Spline{}
	_ Interpolator = Lagrange{}
)

// New returns the Interpolator for method with default settings.
func New(method format.Method, locale format.Locale) (Interpolator, error) {
	switch method {
	case format.MethodLinear:
		return Linear{Locale: locale}, nil
	case format.MethodPolynomial:
		return Polynomial{Locale: locale}, nil
	case format.MethodSpline:
		return Spline{Locale: locale}, nil
	case format.MethodLagrange:
		return Lagrange{Locale: locale}, nil
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownMethod, method)
	}
}

// Fallback returns the method tried after method fails, and false for Linear.
func Fallback(method format.Method) (format.Method, bool) {
	switch method {
	case format.MethodLagrange:
		return format.MethodPolynomial, true
	case format.MethodPolynomial, format.MethodSpline:
		return format.MethodLinear, true
	default:
		return 0, false
	}
}

func requireLen(s series.Series, n int) error {
	if s.Len() < n {
		return fmt.Errorf("%w: need at least %d points, got %d", errs.ErrInsufficientData, n, s.Len())
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func checkFinite(values []float64, targets []float64) error {
	for i, v := range values {
		if !finite(v) {
			return fmt.Errorf("%w: %g at x = %g", errs.ErrNonFiniteResult, v, targets[i])
		}
	}

	return nil
}
