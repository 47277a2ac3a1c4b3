package regression

import "fmt"

// Model represents a fitted polynomial together with its quality metrics.
//
// Fields:
//   - Degree: Degree of the fitted polynomial
//   - Exact: True when the polynomial interpolates every observed point
//   - Coefficients: Ascending coefficients in powers of the normalized variable
//   - RSquared: Coefficient of determination (higher is better, 1 for exact fits)
//   - RMSE: Root mean square error (lower is better)
//   - Formula: Human-readable formula
//   - Estimator: Evaluator for the fitted polynomial
type Model struct {
	// Degree is the polynomial degree actually fitted.
	Degree int
	// Exact reports whether the fit passes through every observed point.
	Exact bool
	// Coefficients holds c0..cd for y = c0 + c1*u + ... + cd*u^d.
	Coefficients []float64
	// RSquared is the coefficient of determination on the observed points.
	RSquared float64
	// RMSE is the root mean square error on the observed points.
	RMSE float64
	// Formula is a human-readable representation of the model.
	Formula string
	// Estimator evaluates the model at arbitrary x.
	Estimator *PolynomialEstimator
}

// String returns a string representation of the model.
//
// Returns:
//   - string: Formatted model information
func (m *Model) String() string {
	return fmt.Sprintf("Model{Degree: %d, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.Degree, m.RSquared, m.RMSE, m.Formula)
}
