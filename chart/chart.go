// Package chart renders forecasts and sampled curves as standalone HTML line
// charts with go-echarts.
package chart

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/arloliu/growthcast/forecast"
	"github.com/arloliu/growthcast/format"
)

const (
	colorHistory = "#111827"
	widthPx      = 1200
	heightPx     = 600
)

var methodColors = map[string]string{
	"linear":     "#3b82f6",
	"polynomial": "#f59e0b",
	"spline":     "#10b981",
	"lagrange":   "#ef4444",
}

// RenderForecast writes a line chart of history followed by the predictions of
// every method in resp, one dashed series per method.
//
// Each method series starts at the last historical point so it continues the
// history line.
//
// Parameters:
//   - w: Destination of the HTML page
//   - title: Chart title
//   - history: Historical points in year order
//   - resp: Compare output; methods missing from it are skipped
//
// Returns:
//   - error: Empty history or a write error
func RenderForecast(w io.Writer, title string, history []forecast.Point, resp *forecast.CompareResponse) error {
	if len(history) == 0 {
		return errors.New("chart requires historical data")
	}

	years := make([]string, 0, len(history))
	for _, p := range history {
		years = append(years, strconv.Itoa(p.Year))
	}
	horizon := 0
	for _, r := range resp.Results {
		horizon = max(horizon, len(r.Predictions))
	}
	last := history[len(history)-1]
	for i := 1; i <= horizon; i++ {
		years = append(years, strconv.Itoa(last.Year+i))
	}

	line := newLine(title, fmt.Sprintf("%s - %d", years[0], last.Year+horizon), "category")
	line.SetXAxis(years)

	hist := make([]opts.LineData, len(years))
	for i := range hist {
		if i < len(history) {
			hist[i] = opts.LineData{Value: history[i].Users}
		} else {
			hist[i] = opts.LineData{Value: nil}
		}
	}
	line.AddSeries("history", hist, charts.WithLineStyleOpts(opts.LineStyle{Color: colorHistory, Width: 3}))

	for _, name := range format.MethodNames() {
		r, ok := resp.Results[name]
		if !ok {
			continue
		}
		data := make([]opts.LineData, len(years))
		for i := range data {
			data[i] = opts.LineData{Value: nil}
		}
		data[len(history)-1] = opts.LineData{Value: last.Users}
		for i, p := range r.Predictions {
			data[len(history)+i] = opts.LineData{Value: p.Users}
		}
		line.AddSeries(seriesName(name, r.ExecutedMethod), data,
			charts.WithLineStyleOpts(opts.LineStyle{Color: methodColors[name], Width: 2, Type: "dashed"}))
	}

	return line.Render(w)
}

// RenderCurve writes a smooth line chart of a sampled curve with the input
// points as a scatter overlay.
func RenderCurve(w io.Writer, title string, curve *forecast.CurveResponse, x, y []float64) error {
	if len(curve.Points) == 0 {
		return errors.New("chart requires curve points")
	}
	if len(x) != len(y) {
		return fmt.Errorf("chart input has %d x values but %d y values", len(x), len(y))
	}

	line := newLine(title, seriesName(curve.Method, curve.ExecutedMethod), "value")
	data := make([]opts.LineData, len(curve.Points))
	for i, p := range curve.Points {
		data[i] = opts.LineData{Value: []float64{p.X, p.Y}}
	}
	line.AddSeries(curve.ExecutedMethod, data,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(false)}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: methodColors[curve.ExecutedMethod], Width: 2}))

	scatter := charts.NewScatter()
	points := make([]opts.ScatterData, len(x))
	for i := range x {
		points[i] = opts.ScatterData{Value: []float64{x[i], y[i]}, SymbolSize: 10}
	}
	scatter.AddSeries("data", points, charts.WithItemStyleOpts(opts.ItemStyle{Color: colorHistory}))
	line.Overlap(scatter)

	return line.Render(w)
}

func newLine(title, subtitle, xAxisType string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Theme:     types.ThemeWesteros,
			Width:     fmt.Sprintf("%dpx", widthPx),
			Height:    fmt.Sprintf("%dpx", heightPx),
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "30"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Type: xAxisType}),
		charts.WithYAxisOpts(opts.YAxis{Scale: opts.Bool(true)}),
	)

	return line
}

func seriesName(requested, executed string) string {
	if executed == "" || executed == requested {
		return requested
	}

	return fmt.Sprintf("%s (%s)", requested, executed)
}
