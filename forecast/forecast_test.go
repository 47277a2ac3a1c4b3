package forecast

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/growthcast/errs"
	"github.com/arloliu/growthcast/format"
	"github.com/arloliu/growthcast/interp"
)

func newForecaster(t *testing.T, opts ...Option) *Forecaster {
	t.Helper()
	f, err := New(opts...)
	require.NoError(t, err)

	return f
}

func doublingHistory() []Point {
	return []Point{{2019, 10}, {2020, 20}, {2021, 40}, {2022, 80}}
}

func TestForecastLinear(t *testing.T) {
	f := newForecaster(t)

	resp, err := f.Forecast(Request{Method: "linear", Data: doublingHistory(), Steps: 2})
	require.NoError(t, err)
	require.Equal(t, []Point{{2023, 120}, {2024, 160}}, resp.Predictions)
	require.Equal(t, []float64{50, 33.33}, resp.Statistics.Rates)
	require.Equal(t, 41.67, resp.Statistics.Average)
	require.Equal(t, 100.0, resp.Statistics.Total)
	require.Equal(t, "linear", resp.Method)
	require.Equal(t, "linear", resp.ExecutedMethod)
	require.False(t, resp.Degraded)
	require.Equal(t, 4, resp.DataPoints)
	require.Equal(t, "2019 - 2022", resp.HistoricalRange)
	require.Equal(t, "Linear interpolation: y = m*x + b (from 2019 to 2022)", resp.Equation)
	require.Equal(t, Description(format.MethodLinear, format.LocaleEnglish), resp.Description)
	require.Nil(t, resp.Fit)
}

func TestForecastPolynomial(t *testing.T) {
	f := newForecaster(t)

	resp, err := f.Forecast(Request{Method: "Polynomial", Data: doublingHistory(), Steps: 2})
	require.NoError(t, err)
	require.Len(t, resp.Predictions, 2)
	require.InDelta(t, 150, resp.Predictions[0].Users, 1e-9)
	require.InDelta(t, 260, resp.Predictions[1].Users, 1e-9)
	require.Equal(t, "Polynomial degree 3: P(x) = a3*x^3 + ... + a1*x + a0", resp.Equation)
	require.NotNil(t, resp.Fit)
	require.Equal(t, 3, resp.Fit.Degree)
	require.Equal(t, 1.0, resp.Fit.RSquared)
}

func TestForecastDefaultSteps(t *testing.T) {
	f := newForecaster(t)

	resp, err := f.Forecast(Request{Method: "lagrange", Data: doublingHistory()})
	require.NoError(t, err)
	require.Len(t, resp.Predictions, 1)
	require.Equal(t, 2023, resp.Predictions[0].Year)
	require.Len(t, resp.Statistics.Rates, 1)
}

func TestForecastSplineTwoPointsDegrades(t *testing.T) {
	f := newForecaster(t)

	resp, err := f.Forecast(Request{Method: "spline", Data: []Point{{2021, 100}, {2022, 130}}, Steps: 1})
	require.NoError(t, err)
	require.Equal(t, "spline", resp.Method)
	require.Equal(t, "linear", resp.ExecutedMethod)
	require.True(t, resp.Degraded)
	require.Equal(t, []Point{{2023, 160}}, resp.Predictions)
	require.Contains(t, resp.Equation, "Linear interpolation")
}

func TestForecastClampsNegativePredictions(t *testing.T) {
	f := newForecaster(t)

	resp, err := f.Forecast(Request{Method: "linear", Data: []Point{{2020, 100}, {2021, 40}}, Steps: 2})
	require.NoError(t, err)
	// Raw values are -20 and -80; both are replaced by min(y) = 40.
	require.Equal(t, []Point{{2022, 40}, {2023, 40}}, resp.Predictions)
	require.Equal(t, []float64{0, 0}, resp.Statistics.Rates)
}

func TestForecastValidation(t *testing.T) {
	f := newForecaster(t, WithMaxSteps(5))

	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"missing method", Request{Data: doublingHistory()}, errs.ErrUnknownMethod},
		{"unknown method", Request{Method: "cubic", Data: doublingHistory()}, errs.ErrUnknownMethod},
		{"one point", Request{Method: "linear", Data: []Point{{2020, 1}}}, errs.ErrInsufficientData},
		{"gap in years", Request{Method: "linear", Data: []Point{{2019, 1}, {2021, 2}}}, errs.ErrNonConsecutiveYears},
		{"descending years", Request{Method: "linear", Data: []Point{{2021, 1}, {2020, 2}}}, errs.ErrNonConsecutiveYears},
		{"zero users", Request{Method: "linear", Data: []Point{{2019, 0}, {2020, 2}}}, errs.ErrNonPositiveValue},
		{"negative users", Request{Method: "linear", Data: []Point{{2019, 5}, {2020, -2}}}, errs.ErrNonPositiveValue},
		{"negative steps", Request{Method: "linear", Data: doublingHistory(), Steps: -1}, errs.ErrInvalidSteps},
		{"too many steps", Request{Method: "linear", Data: doublingHistory(), Steps: 6}, errs.ErrInvalidSteps},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.Forecast(tt.req)
			require.Error(t, err)
			require.True(t, errs.IsValidation(err), "got %T", err)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestForecastIndonesianDescription(t *testing.T) {
	engine, err := interp.NewEngine(interp.WithLocale(format.LocaleIndonesian))
	require.NoError(t, err)
	f := newForecaster(t, WithEngine(engine))

	resp, err := f.Forecast(Request{Method: "spline", Data: doublingHistory(), Steps: 1})
	require.NoError(t, err)
	require.Equal(t, "Interpolasi spline kubik menghasilkan kurva yang halus dengan konsistensi turunan, ideal untuk data dengan perubahan bertahap.", resp.Description)
	require.Equal(t, "Cubic Spline: S(x) = piecewise cubic functions connecting 4 points", resp.Equation)
}

func TestExplain(t *testing.T) {
	f := newForecaster(t)
	at := 4.0

	resp, err := f.Explain(ExplainRequest{Method: "polynomial", X: []float64{3, 1, 2}, Y: []float64{9, 1, 4}, XToPredict: &at})
	require.NoError(t, err)
	require.Equal(t, 16.0, resp.InterpolatedValue)
	require.Equal(t, InputData{X: []float64{1, 2, 3}, Y: []float64{1, 4, 9}, XToPredict: 4}, resp.InputData)
	require.Equal(t, "polynomial", resp.Method)
	require.Equal(t, "polynomial", resp.ExecutedMethod)
	require.Equal(t, "P(4) = 16", resp.CalculationSteps[len(resp.CalculationSteps)-1])
}

func TestExplainValidation(t *testing.T) {
	f := newForecaster(t)
	at := 1.0

	_, err := f.Explain(ExplainRequest{Method: "linear", X: []float64{1, 2}, Y: []float64{1, 2}})
	require.True(t, errs.IsValidation(err))

	_, err = f.Explain(ExplainRequest{Method: "linear", X: []float64{1, 2}, Y: []float64{1}, XToPredict: &at})
	require.ErrorIs(t, err, errs.ErrLengthMismatch)

	_, err = f.Explain(ExplainRequest{Method: "linear", X: []float64{1}, Y: []float64{1}, XToPredict: &at})
	require.ErrorIs(t, err, errs.ErrInsufficientData)

	_, err = f.Explain(ExplainRequest{Method: "newton", X: []float64{1, 2}, Y: []float64{1, 2}, XToPredict: &at})
	require.ErrorIs(t, err, errs.ErrUnknownMethod)
}

func TestCompare(t *testing.T) {
	f := newForecaster(t)

	resp, err := f.Compare(context.Background(), CompareRequest{Data: doublingHistory(), Steps: 2})
	require.NoError(t, err)
	require.Len(t, resp.Results, len(format.Methods))
	for _, name := range format.MethodNames() {
		r, ok := resp.Results[name]
		require.True(t, ok, name)
		require.Equal(t, name, r.Method)
		require.Len(t, r.Predictions, 2)
	}
	require.Equal(t, []Point{{2023, 120}, {2024, 160}}, resp.Results["linear"].Predictions)

	_, err = f.Compare(context.Background(), CompareRequest{Data: []Point{{2020, 1}}})
	require.ErrorIs(t, err, errs.ErrInsufficientData)
}

func TestCompareCancelled(t *testing.T) {
	f := newForecaster(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Compare(ctx, CompareRequest{Data: doublingHistory(), Steps: 1})
	require.ErrorIs(t, err, context.Canceled)
}

func TestCurve(t *testing.T) {
	f := newForecaster(t)

	resp, err := f.Curve(CurveRequest{Method: "linear", X: []float64{0, 10}, Y: []float64{0, 20}})
	require.NoError(t, err)
	require.Len(t, resp.Points, DefaultCurveIntervals+1)
	require.Equal(t, 0.0, resp.Points[0].X)
	require.Equal(t, 11.0, resp.Points[len(resp.Points)-1].X)
	require.InDelta(t, 22.0, resp.Points[len(resp.Points)-1].Y, 1e-9)
	for _, p := range resp.Points {
		require.InDelta(t, 2*p.X, p.Y, 1e-9)
	}

	resp, err = f.Curve(CurveRequest{Method: "spline", X: []float64{1, 2}, Y: []float64{1, 2}, Intervals: 4})
	require.NoError(t, err)
	require.Len(t, resp.Points, 5)
	require.Equal(t, "linear", resp.ExecutedMethod)

	_, err = f.Curve(CurveRequest{Method: "linear", X: []float64{0, 1}, Y: []float64{0, 1}, Intervals: -3})
	require.ErrorIs(t, err, errs.ErrInvalidSteps)
}

func TestCurveBounds(t *testing.T) {
	lo, hi := CurveBounds(2019, 2029)
	require.InDelta(t, 2018, lo, 1e-9)
	require.InDelta(t, 2030, hi, 1e-9)

	lo, _ = CurveBounds(0.5, 10.5)
	require.Equal(t, 0.0, lo)

	lo, hi = CurveBounds(-10, 10)
	require.InDelta(t, -12, lo, 1e-9)
	require.InDelta(t, 12, hi, 1e-9)
}

func TestNewOptions(t *testing.T) {
	_, err := New(WithEngine(nil))
	require.Error(t, err)

	_, err = New(WithMaxSteps(0))
	require.Error(t, err)

	f := newForecaster(t)
	require.Equal(t, DefaultMaxSteps, f.MaxSteps())
	require.NotNil(t, f.Engine())
}
