package forecast

import (
	"math"

	"github.com/arloliu/growthcast/errs"
	"github.com/arloliu/growthcast/format"
	"github.com/arloliu/growthcast/series"
)

// ParseMethod parses a request method name into a format.Method.
func ParseMethod(name string) (format.Method, error) {
	if name == "" {
		return 0, errs.NewValidationError("method", errs.ErrUnknownMethod, "missing 'method' in request")
	}
	m, err := format.ParseMethod(name)
	if err != nil {
		return 0, errs.NewValidationError("method", errs.ErrUnknownMethod, "%v", err)
	}

	return m, nil
}

// ValidatePoints checks the forecast-shape contract: at least two points,
// years increasing by exactly one, and finite user counts above zero.
func ValidatePoints(data []Point) error {
	if len(data) < series.MinLen {
		return errs.NewValidationError("data", errs.ErrInsufficientData,
			"at least %d data points are required for interpolation", series.MinLen)
	}
	for i := 1; i < len(data); i++ {
		if data[i].Year != data[i-1].Year+1 {
			return errs.NewValidationError("data", errs.ErrNonConsecutiveYears,
				"year %d follows %d", data[i].Year, data[i-1].Year)
		}
	}
	for _, p := range data {
		if p.Users <= 0 || math.IsNaN(p.Users) || math.IsInf(p.Users, 0) {
			return errs.NewValidationError("data", errs.ErrNonPositiveValue,
				"users for %d is %g", p.Year, p.Users)
		}
	}

	return nil
}

func (f *Forecaster) resolveSteps(steps int) (int, error) {
	if steps == 0 {
		return 1, nil
	}
	if steps < 0 || steps > f.cfg.MaxSteps {
		return 0, errs.NewValidationError("steps", errs.ErrInvalidSteps,
			"steps must be between 1 and %d, got %d", f.cfg.MaxSteps, steps)
	}

	return steps, nil
}

// toSeries converts validated points into a Series.
func toSeries(data []Point) (series.Series, error) {
	xs := make([]float64, len(data))
	ys := make([]float64, len(data))
	for i, p := range data {
		xs[i] = float64(p.Year)
		ys[i] = p.Users
	}

	return series.New(xs, ys)
}
