// Package series provides the immutable (x, y) sample sequences consumed by the interpolation engine.
//
// A Series is always sorted by ascending x, holds at least two samples, and
// carries strictly distinct, finite x values together with finite y values.
// Constructors copy their inputs, so callers may reuse or mutate their
// slices afterwards without affecting a Series.
package series

import (
	"fmt"
	"math"
	"sort"

	"github.com/arloliu/growthcast/errs"
)

// MinLen is the minimum number of samples required by any interpolation method.
const MinLen = 2

// Sample is one observed data point, e.g. (year, users).
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Series is an ordered sequence of samples with strictly increasing x.
//
// The zero value is an empty series and is rejected by every engine entry point.
type Series struct {
	xs []float64
	ys []float64
}

// New builds a Series from parallel x and y slices.
//
// The inputs are copied and sorted by x. New returns a *errs.ValidationError when
// the slices differ in length, hold fewer than MinLen points, contain NaN or
// infinite values, or repeat an x value.
//
// Parameters:
//   - xs: Observed x values (any order)
//   - ys: Observed y values, ys[i] belongs to xs[i]
//
// Returns:
//   - Series: Sorted copy of the samples
//   - error: Validation error if any
func New(xs, ys []float64) (Series, error) {
	if len(xs) != len(ys) {
		return Series{}, errs.NewValidationError("x", errs.ErrLengthMismatch,
			"x has %d values but y has %d", len(xs), len(ys))
	}

	samples := make([]Sample, len(xs))
	for i := range xs {
		samples[i] = Sample{X: xs[i], Y: ys[i]}
	}

	return build(samples)
}

// FromSamples builds a Series from samples in any order. The slice is copied.
func FromSamples(samples []Sample) (Series, error) {
	cp := make([]Sample, len(samples))
	copy(cp, samples)

	return build(cp)
}

// build takes ownership of samples.
func build(samples []Sample) (Series, error) {
	if len(samples) < MinLen {
		return Series{}, errs.NewValidationError("x", errs.ErrInsufficientData,
			"at least %d data points are required for interpolation, got %d", MinLen, len(samples))
	}

	for i, s := range samples {
		if !isFinite(s.X) {
			return Series{}, errs.NewValidationError("x", errs.ErrNonFinite, "x[%d] is %v", i, s.X)
		}
		if !isFinite(s.Y) {
			return Series{}, errs.NewValidationError("y", errs.ErrNonFinite, "y[%d] is %v", i, s.Y)
		}
	}

	sort.SliceStable(samples, func(i, j int) bool { return samples[i].X < samples[j].X })

	s := Series{
		xs: make([]float64, len(samples)),
		ys: make([]float64, len(samples)),
	}
	for i, smp := range samples {
		if i > 0 && smp.X == samples[i-1].X {
			return Series{}, errs.NewValidationError("x", errs.ErrDuplicateX,
				"x values must be unique, %v appears more than once", smp.X)
		}
		s.xs[i] = smp.X
		s.ys[i] = smp.Y
	}

	return s, nil
}

// Len returns the number of samples.
func (s Series) Len() int {
	return len(s.xs)
}

// X returns the i-th x value in ascending order.
func (s Series) X(i int) float64 {
	return s.xs[i]
}

// Y returns the y value paired with X(i).
func (s Series) Y(i int) float64 {
	return s.ys[i]
}

// At returns the i-th sample.
func (s Series) At(i int) Sample {
	return Sample{X: s.xs[i], Y: s.ys[i]}
}

// Xs returns a copy of the sorted x values.
func (s Series) Xs() []float64 {
	out := make([]float64, len(s.xs))
	copy(out, s.xs)

	return out
}

// Ys returns a copy of the y values in x order.
func (s Series) Ys() []float64 {
	out := make([]float64, len(s.ys))
	copy(out, s.ys)

	return out
}

// Samples returns a copy of the samples in x order.
func (s Series) Samples() []Sample {
	out := make([]Sample, len(s.xs))
	for i := range s.xs {
		out[i] = Sample{X: s.xs[i], Y: s.ys[i]}
	}

	return out
}

// MinX returns the smallest x value.
func (s Series) MinX() float64 {
	return s.xs[0]
}

// MaxX returns the largest x value.
func (s Series) MaxX() float64 {
	return s.xs[len(s.xs)-1]
}

// MinY returns the smallest observed y value.
func (s Series) MinY() float64 {
	minY := s.ys[0]
	for _, y := range s.ys[1:] {
		if y < minY {
			minY = y
		}
	}

	return minY
}

// Last returns the sample with the largest x.
func (s Series) Last() Sample {
	return s.At(len(s.xs) - 1)
}

// Search returns the index i of the interval [X(i), X(i+1)] that contains x.
//
// Values below the range map to interval 0 and values above it map to the
// last interval, Len()-2. The series must hold at least two samples.
func (s Series) Search(x float64) int {
	n := len(s.xs)
	if x <= s.xs[0] {
		return 0
	}
	if x >= s.xs[n-1] {
		return n - 2
	}

	// First index with xs[j] > x; the containing interval starts one before it.
	j := sort.Search(n, func(j int) bool { return s.xs[j] > x })

	return j - 1
}

// String returns a compact description such as "Series{n=4, x=[2019, 2022]}".
func (s Series) String() string {
	if len(s.xs) == 0 {
		return "Series{n=0}"
	}

	return fmt.Sprintf("Series{n=%d, x=[%g, %g]}", len(s.xs), s.MinX(), s.MaxX())
}

// Following returns the n targets last+1, last+2, ..., last+n.
func Following(last float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = last + float64(i+1)
	}

	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
