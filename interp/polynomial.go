package interp

import (
	"fmt"
	"math"
	"strings"

	"github.com/arloliu/growthcast/errs"
	"github.com/arloliu/growthcast/format"
	"github.com/arloliu/growthcast/regression"
	"github.com/arloliu/growthcast/series"
)

// newtonTraceTerms bounds the divided-difference coefficients shown in a trace.
const newtonTraceTerms = 4

// Polynomial fits a single global polynomial.
//
// Predict fits degree min(n-1, MaxDegree) through regression.Fit; Explain
// evaluates the full degree n-1 Newton form. Both agree whenever n-1 ≤ MaxDegree.
type Polynomial struct {
	// MaxDegree caps the predict-path degree; zero means regression.DefaultMaxDegree.
	MaxDegree int
	Locale    format.Locale
}

// Method returns format.MethodPolynomial.
func (Polynomial) Method() format.Method { return format.MethodPolynomial }

// Fit returns the regression model used by Predict.
func (p Polynomial) Fit(s series.Series) (*regression.Model, error) {
	if err := requireLen(s, series.MinLen); err != nil {
		return nil, err
	}

	maxDegree := p.MaxDegree
	if maxDegree <= 0 {
		maxDegree = regression.DefaultMaxDegree
	}

	return regression.Fit(s.Xs(), s.Ys(), regression.WithMaxDegree(maxDegree))
}

// Predict evaluates the fitted polynomial at every target.
func (p Polynomial) Predict(s series.Series, targets []float64) ([]float64, error) {
	model, err := p.Fit(s)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(targets))
	for k, t := range targets {
		out[k] = model.Estimator.Estimate(t)
	}
	if err := checkFinite(out, targets); err != nil {
		return nil, err
	}

	return out, nil
}

// Explain builds the Newton divided-difference table and evaluates Newton's form at t.
func (p Polynomial) Explain(s series.Series, t float64) (float64, []string, error) {
	if err := requireLen(s, series.MinLen); err != nil {
		return 0, nil, err
	}

	n := s.Len()
	table := dividedDifferences(s)

	result := table[0][0]
	term := 1.0
	for k := 1; k < n; k++ {
		term *= t - s.X(k-1)
		result += table[0][k] * term
	}
	if !finite(result) {
		return 0, nil, fmt.Errorf("%w: newton form gave %g at x = %g", errs.ErrNonFiniteResult, result, t)
	}

	shown := min(n, newtonTraceTerms)
	ph := phrasesFor(p.Locale)
	steps := make([]string, 0, shown+6)
	steps = append(steps, ph.newtonTable, ph.newtonTableHead, "f[x0] = "+num(table[0][0]))
	for k := 1; k < shown; k++ {
		steps = append(steps, fmt.Sprintf("f[x0,...,x%d] = %s", k, num(table[0][k])))
	}

	var expr strings.Builder
	expr.WriteString("P(x) = " + num(table[0][0]))
	for k := 1; k < shown; k++ {
		c := table[0][k]
		if c >= 0 {
			expr.WriteString(" + " + num(c))
		} else {
			expr.WriteString(" - " + num(math.Abs(c)))
		}
		for j := range k {
			expr.WriteString("(x - " + num(s.X(j)) + ")")
		}
	}

	steps = append(steps,
		ph.newtonForm,
		expr.String(),
		fmt.Sprintf(ph.evaluateAt, num(t)),
		fmt.Sprintf("P(%s) = %s", num(t), num(result)),
	)

	return result, steps, nil
}

// dividedDifferences returns the n×n table with table[i][0] = y_i and
// table[i][j] = (table[i+1][j-1] - table[i][j-1]) / (x_{i+j} - x_i).
// Entries with i+j ≥ n are left at zero.
func dividedDifferences(s series.Series) [][]float64 {
	n := s.Len()
	table := make([][]float64, n)
	for i := range table {
		table[i] = make([]float64, n)
		table[i][0] = s.Y(i)
	}
	for j := 1; j < n; j++ {
		for i := 0; i < n-j; i++ {
			table[i][j] = (table[i+1][j-1] - table[i][j-1]) / (s.X(i+j) - s.X(i))
		}
	}

	return table
}
