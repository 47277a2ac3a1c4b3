package regression

import (
	"fmt"
	"math"
)

// Estimator evaluates a fitted curve.
type Estimator interface {
	// Estimate returns the fitted value at x.
	Estimate(x float64) float64
	// Degree returns the polynomial degree.
	Degree() int
	// Coefficients returns the coefficients in ascending powers of the normalized variable.
	Coefficients() []float64
}

var _ Estimator = (*PolynomialEstimator)(nil)

// PolynomialEstimator evaluates y = c0 + c1*u + ... + cd*u^d with u = (x - center) / scale.
type PolynomialEstimator struct {
	center float64
	scale  float64
	coeffs []float64
}

// NewPolynomialEstimator creates a polynomial estimator.
//
// Parameters:
//   - center: Offset subtracted from x before scaling
//   - scale: Divisor applied after centering, must be finite and non-zero
//   - coeffs: Ascending coefficients in powers of u, at least one
//
// Returns:
//   - *PolynomialEstimator: The estimator; coeffs is copied
//   - error: Returns an error if scale or coeffs are invalid
func NewPolynomialEstimator(center, scale float64, coeffs ...float64) (*PolynomialEstimator, error) {
	if scale == 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("polynomial scale must be finite and non-zero, got %g", scale)
	}
	if math.IsNaN(center) || math.IsInf(center, 0) {
		return nil, fmt.Errorf("polynomial center must be finite, got %g", center)
	}
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("polynomial model expects at least 1 coefficient")
	}

	return &PolynomialEstimator{
		center: center,
		scale:  scale,
		coeffs: append([]float64(nil), coeffs...),
	}, nil
}

// Estimate evaluates the polynomial at x using Horner's scheme.
func (p *PolynomialEstimator) Estimate(x float64) float64 {
	u := p.Normalize(x)
	y := 0.0
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		y = y*u + p.coeffs[i]
	}

	return y
}

// Normalize maps x onto the estimator's internal variable u.
func (p *PolynomialEstimator) Normalize(x float64) float64 {
	return (x - p.center) / p.scale
}

// Degree returns the polynomial degree.
func (p *PolynomialEstimator) Degree() int {
	return len(p.coeffs) - 1
}

// Coefficients returns a copy of the ascending coefficients.
func (p *PolynomialEstimator) Coefficients() []float64 {
	return append([]float64(nil), p.coeffs...)
}

// Center returns the centering offset.
func (p *PolynomialEstimator) Center() float64 { return p.center }

// Scale returns the scaling divisor.
func (p *PolynomialEstimator) Scale() float64 { return p.scale }
