package interp

import (
	"fmt"
	"strings"

	"github.com/arloliu/growthcast/errs"
	"github.com/arloliu/growthcast/format"
	"github.com/arloliu/growthcast/series"
)

const (
	// DefaultBarycentricThreshold is the largest series evaluated in direct Lagrange form.
	DefaultBarycentricThreshold = 10

	// lagrangeTraceTerms bounds both the basis factors and the sum terms shown in a trace.
	lagrangeTraceTerms = 5
)

// Lagrange is the degree n-1 interpolating polynomial in Lagrange form.
type Lagrange struct {
	// BarycentricThreshold is the largest n evaluated directly; longer series
	// use the barycentric form. Zero means DefaultBarycentricThreshold.
	BarycentricThreshold int
	Locale               format.Locale
}

// Method returns format.MethodLagrange.
func (Lagrange) Method() format.Method { return format.MethodLagrange }

func (l Lagrange) threshold() int {
	if l.BarycentricThreshold <= 0 {
		return DefaultBarycentricThreshold
	}

	return l.BarycentricThreshold
}

// Predict evaluates the Lagrange polynomial at every target.
// Any NaN or infinite value fails the whole call.
func (l Lagrange) Predict(s series.Series, targets []float64) ([]float64, error) {
	if err := requireLen(s, series.MinLen); err != nil {
		return nil, err
	}

	out := make([]float64, len(targets))
	if s.Len() > l.threshold() {
		w := BarycentricWeights(s)
		for k, t := range targets {
			out[k] = barycentricAt(s, w, t)
		}
	} else {
		for k, t := range targets {
			out[k] = lagrangeAt(s, t)
		}
	}
	if err := checkFinite(out, targets); err != nil {
		return nil, err
	}

	return out, nil
}

// Explain evaluates at t and lists the basis values L_j(t).
//
// A basis line is emitted only when it has at most five factors, and the
// weighted sum shows at most five terms followed by "...".
func (l Lagrange) Explain(s series.Series, t float64) (float64, []string, error) {
	if err := requireLen(s, series.MinLen); err != nil {
		return 0, nil, err
	}

	n := s.Len()
	barycentric := n > l.threshold()
	var result float64
	if barycentric {
		result = barycentricAt(s, BarycentricWeights(s), t)
	} else {
		result = lagrangeAt(s, t)
	}
	if !finite(result) {
		return 0, nil, fmt.Errorf("%w: lagrange gave %g at x = %g", errs.ErrNonFiniteResult, result, t)
	}

	p := phrasesFor(l.Locale)
	ts := num(t)
	steps := []string{
		p.lagrangeApply,
		"P(x) = Σ y_j * L_j(x)",
		p.lagrangeWhere,
		fmt.Sprintf(p.lagrangeBasis, ts),
	}

	basis := make([]float64, n)
	for j := range n {
		basis[j] = basisAt(s, j, t)
		if n-1 > lagrangeTraceTerms {
			continue
		}
		factors := make([]string, 0, n-1)
		for i := range n {
			if i != j {
				factors = append(factors, fmt.Sprintf("(%s - %s) / (%s - %s)",
					ts, num(s.X(i)), num(s.X(j)), num(s.X(i))))
			}
		}
		steps = append(steps, fmt.Sprintf("L_%d(%s) = %s = %s", j, ts, strings.Join(factors, " × "), num(basis[j])))
	}

	steps = append(steps, p.lagrangeSum)
	terms := make([]string, 0, lagrangeTraceTerms+1)
	for j := range min(n, lagrangeTraceTerms) {
		terms = append(terms, num(s.Y(j))+" × "+num(basis[j]))
	}
	if n > lagrangeTraceTerms {
		terms = append(terms, "...")
	}
	steps = append(steps, fmt.Sprintf("P(%s) = %s", ts, strings.Join(terms, " + ")))
	if barycentric {
		steps = append(steps, fmt.Sprintf(p.lagrangeBarycentric, n))
	}
	steps = append(steps, fmt.Sprintf("P(%s) = %s", ts, num(result)))

	return result, steps, nil
}

// basisAt evaluates L_j(t) = Π_{i≠j} (t - x_i)/(x_j - x_i).
func basisAt(s series.Series, j int, t float64) float64 {
	xj := s.X(j)
	numer, denom := 1.0, 1.0
	for i := range s.Len() {
		if i == j {
			continue
		}
		numer *= t - s.X(i)
		denom *= xj - s.X(i)
	}

	return numer / denom
}

func lagrangeAt(s series.Series, t float64) float64 {
	sum := 0.0
	for j := range s.Len() {
		sum += s.Y(j) * basisAt(s, j, t)
	}

	return sum
}

// BarycentricWeights returns w_j = 1/Π_{i≠j} C(x_j - x_i) with C = 4/(max(x)-min(x)).
// The common factor C keeps the products away from overflow and cancels in
// the barycentric quotient.
func BarycentricWeights(s series.Series) []float64 {
	n := s.Len()
	c := 4 / (s.MaxX() - s.MinX())
	w := make([]float64, n)
	for j := range n {
		prod := 1.0
		for i := range n {
			if i != j {
				prod *= c * (s.X(j) - s.X(i))
			}
		}
		w[j] = 1 / prod
	}

	return w
}

// barycentricAt evaluates the second barycentric formula; targets that hit a
// node return its y exactly.
func barycentricAt(s series.Series, w []float64, t float64) float64 {
	numer, denom := 0.0, 0.0
	for j := range s.Len() {
		diff := t - s.X(j)
		if diff == 0 {
			return s.Y(j)
		}
		q := w[j] / diff
		numer += q * s.Y(j)
		denom += q
	}

	return numer / denom
}
