package regression

import (
	"fmt"
	"math"
	"strings"

	"github.com/arloliu/growthcast/errs"
	"github.com/arloliu/growthcast/internal/linalg"
	"github.com/arloliu/growthcast/internal/options"
)

// Fit fits a polynomial of degree min(n-1, MaxDegree) to the points (xs[i], ys[i]).
//
// When the degree equals n-1 the polynomial interpolates every point and is
// obtained from the square Vandermonde system; otherwise the least-squares
// normal equations are solved. Both systems are built on the normalized
// variable described in the package documentation.
//
// Parameters:
//   - xs: Observed x values, distinct
//   - ys: Observed y values, same length as xs
//   - opts: Fit options (e.g. WithMaxDegree)
//
// Returns:
//   - *Model: Fitted model with quality metrics
//   - error: errs.ErrInsufficientData, errs.ErrLengthMismatch, errs.ErrSingularSystem
//     or errs.ErrNonFiniteResult on failure
func Fit(xs, ys []float64, opts ...FitOption) (*Model, error) {
	cfg := defaultFitConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	n := len(xs)
	if len(ys) != n {
		return nil, fmt.Errorf("%w: x has %d values but y has %d", errs.ErrLengthMismatch, n, len(ys))
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: polynomial fit needs at least 2 points, got %d", errs.ErrInsufficientData, n)
	}

	degree := min(n-1, cfg.MaxDegree)
	center, scale := normalization(xs)
	if scale == 0 {
		return nil, fmt.Errorf("%w: all x values are equal", errs.ErrSingularSystem)
	}

	us := make([]float64, n)
	for i, x := range xs {
		us[i] = (x - center) / scale
	}

	var (
		coeffs []float64
		err    error
	)
	exact := degree == n-1
	if exact {
		coeffs, err = linalg.Solve(vandermonde(us, degree), ys)
	} else {
		coeffs, err = solveNormalEquations(us, ys, degree)
	}
	if err != nil {
		return nil, fmt.Errorf("degree %d fit: %w", degree, err)
	}
	for i, c := range coeffs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("%w: coefficient c%d is %g", errs.ErrNonFiniteResult, i, c)
		}
	}

	estimator, err := NewPolynomialEstimator(center, scale, coeffs...)
	if err != nil {
		return nil, err
	}

	predicted := make([]float64, n)
	for i, x := range xs {
		predicted[i] = estimator.Estimate(x)
	}

	return &Model{
		Degree:       degree,
		Exact:        exact,
		Coefficients: estimator.Coefficients(),
		RSquared:     RSquared(ys, predicted),
		RMSE:         RMSE(ys, predicted),
		Formula:      formatFormula(coeffs, center, scale),
		Estimator:    estimator,
	}, nil
}

// normalization returns the mean of xs and half of their range.
func normalization(xs []float64) (center, scale float64) {
	lo, hi := xs[0], xs[0]
	sum := 0.0
	for _, x := range xs {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
		sum += x
	}

	return sum / float64(len(xs)), (hi - lo) / 2
}

// vandermonde returns the len(us)×(degree+1) matrix with rows [1, u, u², ...].
func vandermonde(us []float64, degree int) [][]float64 {
	m := make([][]float64, len(us))
	for i, u := range us {
		row := make([]float64, degree+1)
		p := 1.0
		for k := range row {
			row[k] = p
			p *= u
		}
		m[i] = row
	}

	return m
}

// solveNormalEquations solves (VᵀV)c = Vᵀy for the least-squares coefficients.
func solveNormalEquations(us, ys []float64, degree int) ([]float64, error) {
	v := vandermonde(us, degree)
	k := degree + 1

	ata := make([][]float64, k)
	aty := make([]float64, k)
	for r := range k {
		ata[r] = make([]float64, k)
		for c := range k {
			s := 0.0
			for i := range v {
				s += v[i][r] * v[i][c]
			}
			ata[r][c] = s
		}
		for i := range v {
			aty[r] += v[i][r] * ys[i]
		}
	}

	return linalg.Solve(ata, aty)
}

// RSquared calculates the coefficient of determination (R²).
//
// Formula: R² = 1 - (SS_res / SS_tot)
//   - SS_res: Sum of squares of residuals (observed - predicted)²
//   - SS_tot: Total sum of squares (observed - mean)²
//
// A constant observed series has SS_tot = 0; R² is then 1 for a perfect
// fit and 0 otherwise.
//
// Parameters:
//   - observed: Actual values
//   - predicted: Values predicted by the model, same length as observed
//
// Returns:
//   - float64: R² value (higher is better)
func RSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := 0.0
	for _, v := range observed {
		mean += v
	}
	mean /= float64(len(observed))

	ssTot := 0.0
	ssRes := 0.0
	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}

		return 0
	}

	return 1.0 - (ssRes / ssTot)
}

// RMSE calculates the root mean square error: √(Σ(observed - predicted)² / n).
func RMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	sumSq := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}

func formatFormula(coeffs []float64, center, scale float64) string {
	var sb strings.Builder
	sb.WriteString("y = ")
	fmt.Fprintf(&sb, "%.4g", coeffs[0])
	for k := 1; k < len(coeffs); k++ {
		c := coeffs[k]
		sign := "+"
		if c < 0 {
			sign = "-"
			c = -c
		}
		fmt.Fprintf(&sb, " %s %.4g*u", sign, c)
		if k > 1 {
			fmt.Fprintf(&sb, "^%d", k)
		}
	}
	fmt.Fprintf(&sb, ", u = (x - %g) / %g", center, scale)

	return sb.String()
}
