// Package growthcast forecasts short yearly series (user counts, revenue,
// adoption) with four classical interpolation methods: piecewise linear, a
// global polynomial, a not-a-knot cubic spline and the Lagrange polynomial.
//
// # Core Features
//
//   - One contract for all methods: predict at any set of x values, or explain a
//     single value step by step
//   - Automatic fallback on numerical failure (Lagrange → Polynomial → Linear,
//     Spline → Linear) with the executed method reported on every result
//   - Clamping of negative or non-finite predictions to the smallest observed value
//   - Growth statistics and 2 decimal place rounding at the response boundary
//
// # Basic Usage
//
// Evaluating a method directly:
//
//	out, _ := growthcast.Predict("spline", []float64{1, 2, 3, 4}, []float64{1, 4, 9, 16}, []float64{5})
//	fmt.Println(out.Values, out.Executed)
//
// Forecasting the next years of a yearly series:
//
//	resp, _ := growthcast.Forecast(forecast.Request{
//	    Method: "polynomial",
//	    Data:   []forecast.Point{{Year: 2020, Users: 10}, {Year: 2021, Users: 40}, {Year: 2022, Users: 90}},
//	    Steps:  2,
//	})
//
// # Package Structure
//
// The top-level functions use a shared Forecaster with default settings. For
// custom engine settings build one with NewForecaster, or use the forecast and
// interp packages directly.
package growthcast

import (
	"context"
	"sync"

	"github.com/arloliu/growthcast/forecast"
	"github.com/arloliu/growthcast/interp"
	"github.com/arloliu/growthcast/series"
)

var defaultForecaster = sync.OnceValues(func() (*forecast.Forecaster, error) {
	return forecast.New()
})

// NewForecaster creates a Forecaster whose engine uses the given options.
//
// Parameters:
//   - opts: Engine options (interp.WithLocale, interp.WithClamp, interp.WithMaxDegree, ...)
//
// Returns:
//   - *forecast.Forecaster: The configured forecaster
//   - error: Returns an error if any option is invalid
//
// Example:
//
//	f, err := growthcast.NewForecaster(interp.WithLocale(format.LocaleIndonesian))
func NewForecaster(opts ...interp.Option) (*forecast.Forecaster, error) {
	engine, err := interp.NewEngine(opts...)
	if err != nil {
		return nil, err
	}

	return forecast.New(forecast.WithEngine(engine))
}

// Predict evaluates method at every target over the samples (x[i], y[i]).
//
// The samples may be in any order but x values must be unique. Predictions
// are clamped to min(y).
//
// Parameters:
//   - method: "linear", "polynomial", "spline" or "lagrange" (case-insensitive)
//   - x, y: Observed samples, same length, at least two
//   - targets: x values to predict at
//
// Returns:
//   - *interp.Outcome: Values in target order plus the executed method
//   - error: *errs.ValidationError for bad input, *errs.InterpolationFailure
//     when the whole fallback chain fails
func Predict(method string, x, y, targets []float64) (*interp.Outcome, error) {
	m, err := forecast.ParseMethod(method)
	if err != nil {
		return nil, err
	}
	s, err := series.New(x, y)
	if err != nil {
		return nil, err
	}
	f, err := defaultForecaster()
	if err != nil {
		return nil, err
	}

	return f.Engine().Predict(m, s, targets)
}

// Forecast predicts req.Steps years past the last year of req.Data.
func Forecast(req forecast.Request) (*forecast.Response, error) {
	f, err := defaultForecaster()
	if err != nil {
		return nil, err
	}

	return f.Forecast(req)
}

// Explain interpolates a single value and returns its calculation steps.
func Explain(req forecast.ExplainRequest) (*forecast.ExplainResponse, error) {
	f, err := defaultForecaster()
	if err != nil {
		return nil, err
	}

	return f.Explain(req)
}

// Compare forecasts req.Data with every method concurrently.
func Compare(ctx context.Context, req forecast.CompareRequest) (*forecast.CompareResponse, error) {
	f, err := defaultForecaster()
	if err != nil {
		return nil, err
	}

	return f.Compare(ctx, req)
}
