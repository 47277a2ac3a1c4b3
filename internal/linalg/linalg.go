// Package linalg holds the small linear solvers used by the polynomial and spline fits.
//
// Systems here are tiny (at most a few hundred unknowns), so the solvers use
// plain indexed slices and never allocate beyond their working copies.
package linalg

import (
	"fmt"
	"math"

	"github.com/arloliu/growthcast/errs"
)

// pivotEpsilon is the relative magnitude below which a pivot counts as zero.
const pivotEpsilon = 1e-12

// Solve solves the dense system a·x = b by Gaussian elimination with partial pivoting.
//
// Neither a nor b is modified.
//
// Parameters:
//   - a: Square coefficient matrix, a[i] is row i
//   - b: Right-hand side
//
// Returns:
//   - []float64: Solution vector
//   - error: errs.ErrSingularSystem if a pivot vanishes, or a shape error
func Solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	if len(a) != n {
		return nil, fmt.Errorf("matrix has %d rows but rhs has %d entries", len(a), n)
	}

	// Augmented working copy [a | b].
	m := make([][]float64, n)
	scale := 0.0
	for i := range a {
		if len(a[i]) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d", i, len(a[i]), n)
		}
		m[i] = make([]float64, n+1)
		copy(m[i], a[i])
		m[i][n] = b[i]
		for _, v := range a[i] {
			scale = math.Max(scale, math.Abs(v))
		}
	}
	if scale == 0 {
		return nil, fmt.Errorf("%w: zero matrix", errs.ErrSingularSystem)
	}

	for col := range n {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(m[row][col]) > math.Abs(m[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(m[pivot][col]) <= pivotEpsilon*scale {
			return nil, fmt.Errorf("%w: pivot %d is %g", errs.ErrSingularSystem, col, m[pivot][col])
		}
		m[col], m[pivot] = m[pivot], m[col]

		for row := col + 1; row < n; row++ {
			f := m[row][col] / m[col][col]
			if f == 0 {
				continue
			}
			for k := col; k <= n; k++ {
				m[row][k] -= f * m[col][k]
			}
		}
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := m[i][n]
		for k := i + 1; k < n; k++ {
			sum -= m[i][k] * x[k]
		}
		x[i] = sum / m[i][i]
	}

	return x, nil
}

// SolveTridiagonal solves a tridiagonal system with partial pivoting.
//
// Row i reads sub[i-1]·x[i-1] + diag[i]·x[i] + super[i]·x[i+1] = rhs[i], so sub
// and super hold n-1 entries each. Pivoting follows LAPACK dgtsv, which keeps
// the solve stable when the diagonal is not dominant, as happens in the
// not-a-knot boundary rows of a cubic spline. None of the inputs are modified.
//
// Returns:
//   - []float64: Solution vector
//   - error: errs.ErrSingularSystem if a pivot vanishes, or a shape error
func SolveTridiagonal(sub, diag, super, rhs []float64) ([]float64, error) {
	n := len(diag)
	if len(rhs) != n {
		return nil, fmt.Errorf("diagonal has %d entries but rhs has %d", n, len(rhs))
	}
	if n == 0 {
		return nil, nil
	}
	if len(sub) != n-1 || len(super) != n-1 {
		return nil, fmt.Errorf("off-diagonals must have %d entries, got sub=%d super=%d", n-1, len(sub), len(super))
	}

	d := append([]float64(nil), diag...)
	b := append([]float64(nil), rhs...)
	dl := append([]float64(nil), sub...)
	du := append([]float64(nil), super...)
	// du2 is the second superdiagonal created by row interchanges.
	du2 := make([]float64, n)

	for i := 0; i < n-1; i++ {
		if math.Abs(d[i]) >= math.Abs(dl[i]) {
			if d[i] == 0 {
				return nil, fmt.Errorf("%w: pivot %d is zero", errs.ErrSingularSystem, i)
			}
			f := dl[i] / d[i]
			d[i+1] -= f * du[i]
			b[i+1] -= f * b[i]
			continue
		}

		// Interchange rows i and i+1.
		f := d[i] / dl[i]
		d[i] = dl[i]
		tmp := d[i+1]
		d[i+1] = du[i] - f*tmp
		if i < n-2 {
			du2[i] = du[i+1]
			du[i+1] = -f * du2[i]
		}
		du[i] = tmp
		b[i], b[i+1] = b[i+1], b[i]-f*b[i+1]
	}
	if d[n-1] == 0 {
		return nil, fmt.Errorf("%w: pivot %d is zero", errs.ErrSingularSystem, n-1)
	}

	b[n-1] /= d[n-1]
	if n > 1 {
		b[n-2] = (b[n-2] - du[n-2]*b[n-1]) / d[n-2]
	}
	for i := n - 3; i >= 0; i-- {
		b[i] = (b[i] - du[i]*b[i+1] - du2[i]*b[i+2]) / d[i]
	}

	return b, nil
}
