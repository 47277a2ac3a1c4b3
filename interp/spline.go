package interp

import (
	"fmt"

	"github.com/arloliu/growthcast/errs"
	"github.com/arloliu/growthcast/format"
	"github.com/arloliu/growthcast/internal/linalg"
	"github.com/arloliu/growthcast/series"
)

// SplineMinLen is the number of samples below which no cubic spline exists.
const SplineMinLen = 3

// Cubic is one spline piece: A(t-X0)³ + B(t-X0)² + C(t-X0) + D.
type Cubic struct {
	X0, A, B, C, D float64
}

// Eval evaluates the piece at t.
func (c Cubic) Eval(t float64) float64 {
	dx := t - c.X0
	return ((c.A*dx+c.B)*dx+c.C)*dx + c.D
}

// Spline is a not-a-knot cubic spline.
//
// With exactly three samples the not-a-knot conditions collapse to the
// parabola through them. Fewer than three samples are rejected with
// errs.ErrInsufficientData, which the Engine turns into a Linear fallback.
type Spline struct {
	Locale format.Locale
}

// Method returns format.MethodSpline.
func (Spline) Method() format.Method { return format.MethodSpline }

// Predict evaluates the spline at every target. Targets outside the observed
// range use the first or last piece.
func (Spline) Predict(s series.Series, targets []float64) ([]float64, error) {
	pieces, err := SplinePieces(s)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(targets))
	for k, t := range targets {
		out[k] = pieces[s.Search(t)].Eval(t)
	}
	if err := checkFinite(out, targets); err != nil {
		return nil, err
	}

	return out, nil
}

// Explain reports the containing interval and its four coefficients.
func (sp Spline) Explain(s series.Series, t float64) (float64, []string, error) {
	pieces, err := SplinePieces(s)
	if err != nil {
		return 0, nil, err
	}

	i := s.Search(t)
	piece := pieces[i]
	result := piece.Eval(t)
	if !finite(result) {
		return 0, nil, fmt.Errorf("%w: spline gave %g at x = %g", errs.ErrNonFiniteResult, result, t)
	}

	p := phrasesFor(sp.Locale)
	steps := []string{
		p.splineIntervals,
		fmt.Sprintf(p.splineInterval, num(t), num(s.X(i)), num(s.X(i+1))),
		p.splineCoeffs,
		fmt.Sprintf(p.splineA, num(piece.A)),
		fmt.Sprintf(p.splineB, num(piece.B)),
		fmt.Sprintf(p.splineC, num(piece.C)),
		fmt.Sprintf(p.splineD, num(piece.D)),
		fmt.Sprintf(p.evaluateAt, num(t)),
		fmt.Sprintf("S(%s) = %s", num(t), num(result)),
	}

	return result, steps, nil
}

// SplinePieces builds the n-1 not-a-knot cubic pieces for s.
//
// The knot slopes come from a tridiagonal system; piece i is then the cubic
// Hermite segment matching y and slope at both ends of [x_i, x_{i+1}], so the
// spline and its first two derivatives are continuous at interior knots.
//
// Returns:
//   - []Cubic: One piece per interval, pieces[i] starts at x_i
//   - error: errs.ErrInsufficientData for fewer than three samples, or a
//     solver error
func SplinePieces(s series.Series) ([]Cubic, error) {
	if err := requireLen(s, SplineMinLen); err != nil {
		return nil, err
	}

	n := s.Len()
	h := make([]float64, n-1)
	d := make([]float64, n-1)
	for i := range h {
		h[i] = s.X(i+1) - s.X(i)
		d[i] = (s.Y(i+1) - s.Y(i)) / h[i]
	}

	var slopes []float64
	if n == SplineMinLen {
		slopes = parabolaSlopes(s, h, d)
	} else {
		var err error
		slopes, err = notAKnotSlopes(h, d)
		if err != nil {
			return nil, fmt.Errorf("spline slopes: %w", err)
		}
	}

	pieces := make([]Cubic, n-1)
	for i := range pieces {
		t := (slopes[i] + slopes[i+1] - 2*d[i]) / h[i]
		pieces[i] = Cubic{
			X0: s.X(i),
			A:  t / h[i],
			B:  (d[i]-slopes[i])/h[i] - t,
			C:  slopes[i],
			D:  s.Y(i),
		}
	}

	return pieces, nil
}

// parabolaSlopes returns the derivative of the parabola through three samples at each knot.
func parabolaSlopes(s series.Series, h, d []float64) []float64 {
	c2 := (d[1] - d[0]) / (h[0] + h[1])
	x0, x1 := s.X(0), s.X(1)
	slopes := make([]float64, 3)
	for i := range slopes {
		slopes[i] = d[0] + c2*(2*s.X(i)-x0-x1)
	}

	return slopes
}

// notAKnotSlopes solves for the knot slopes with not-a-knot end conditions
// (equal third derivatives across the second and second-to-last knots).
func notAKnotSlopes(h, d []float64) ([]float64, error) {
	n := len(h) + 1
	sub := make([]float64, n-1)
	diag := make([]float64, n)
	super := make([]float64, n-1)
	rhs := make([]float64, n)

	w := h[0] + h[1]
	diag[0] = h[1]
	super[0] = w
	rhs[0] = ((h[0]+2*w)*h[1]*d[0] + h[0]*h[0]*d[1]) / w

	for i := 1; i < n-1; i++ {
		sub[i-1] = h[i]
		diag[i] = 2 * (h[i-1] + h[i])
		super[i] = h[i-1]
		rhs[i] = 3 * (h[i]*d[i-1] + h[i-1]*d[i])
	}

	last := n - 1
	w = h[last-2] + h[last-1]
	diag[last] = h[last-2]
	sub[last-1] = w
	rhs[last] = (h[last-1]*h[last-1]*d[last-2] + (2*w+h[last-1])*h[last-2]*d[last-1]) / w

	return linalg.SolveTridiagonal(sub, diag, super, rhs)
}
