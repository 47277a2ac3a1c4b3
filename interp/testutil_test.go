package interp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/growthcast/format"
	"github.com/arloliu/growthcast/series"
)

func mustSeries(t *testing.T, xs, ys []float64) series.Series {
	t.Helper()
	s, err := series.New(xs, ys)
	require.NoError(t, err)

	return s
}

func mustEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := NewEngine(opts...)
	require.NoError(t, err)

	return e
}

// stub is an Interpolator with canned results.
type stub struct {
	method format.Method
	values []float64
	err    error
	calls  *int
}

func (s stub) Method() format.Method { return s.method }

func (s stub) Predict(_ series.Series, targets []float64) ([]float64, error) {
	if s.calls != nil {
		*s.calls++
	}
	if s.err != nil {
		return nil, s.err
	}
	out := make([]float64, len(targets))
	copy(out, s.values)

	return out, nil
}

func (s stub) Explain(_ series.Series, _ float64) (float64, []string, error) {
	if s.calls != nil {
		*s.calls++
	}
	if s.err != nil {
		return 0, nil, s.err
	}

	return s.values[0], []string{"stub " + s.method.String()}, nil
}
