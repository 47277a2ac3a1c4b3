package dataset

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/arloliu/growthcast/format"
	"github.com/arloliu/growthcast/forecast"
)

type exportLabels struct {
	method, input, result, steps string
	names                        map[format.Method]string
}

var exportText = map[format.Locale]exportLabels{
	format.LocaleEnglish: {
		method: "Interpolation method: ",
		input:  "Input data:",
		result: "Interpolation result:",
		steps:  "Calculation steps:",
		names: map[format.Method]string{
			format.MethodLinear:     "Linear",
			format.MethodPolynomial: "Polynomial",
			format.MethodSpline:     "Cubic Spline",
			format.MethodLagrange:   "Lagrange",
		},
	},
	format.LocaleIndonesian: {
		method: "Metode Interpolasi: ",
		input:  "Data Input:",
		result: "Hasil Interpolasi:",
		steps:  "Langkah-langkah Perhitungan:",
		names: map[format.Method]string{
			format.MethodLinear:     "Linear",
			format.MethodPolynomial: "Polinomial",
			format.MethodSpline:     "Spline Kubik",
			format.MethodLagrange:   "Lagrange",
		},
	},
}

// WriteExplanationCSV writes an explanation as a sectioned CSV report: the
// method, the input table, the result and one line per calculation step.
// Commas inside steps are replaced with semicolons.
func WriteExplanationCSV(w io.Writer, resp *forecast.ExplainResponse, locale format.Locale) error {
	labels, ok := exportText[locale]
	if !ok {
		labels = exportText[format.LocaleEnglish]
	}

	name := resp.Method
	if m, err := format.ParseMethod(resp.Method); err == nil {
		name = labels.names[m]
	}

	cw := csv.NewWriter(w)
	rows := [][]string{
		{labels.method + name},
		nil,
		{labels.input},
		{"X", "Y"},
	}
	for i := range resp.InputData.X {
		rows = append(rows, []string{formatFloat(resp.InputData.X[i]), formatFloat(resp.InputData.Y[i])})
	}
	rows = append(rows,
		nil,
		[]string{labels.result},
		[]string{"X", formatFloat(resp.InputData.XToPredict)},
		[]string{"Y", formatFloat(resp.InterpolatedValue)},
		nil,
		[]string{labels.steps},
	)
	for _, step := range resp.CalculationSteps {
		rows = append(rows, []string{strings.ReplaceAll(step, ",", ";")})
	}

	return writeAll(cw, rows)
}

// WritePointsCSV writes yearly points with a year,users header.
func WritePointsCSV(w io.Writer, points []forecast.Point) error {
	rows := make([][]string, 0, len(points)+1)
	rows = append(rows, []string{ColumnYear, ColumnUsers})
	for _, p := range points {
		rows = append(rows, []string{strconv.Itoa(p.Year), formatFloat(p.Users)})
	}

	return writeAll(csv.NewWriter(w), rows)
}

func writeAll(cw *csv.Writer, rows [][]string) error {
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
