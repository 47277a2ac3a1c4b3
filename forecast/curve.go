package forecast

import (
	"math"

	"github.com/arloliu/growthcast/errs"
	"github.com/arloliu/growthcast/series"
)

// curvePadding widens the sampled range by this fraction of the data range on each side.
const curvePadding = 0.1

// Curve samples the interpolant of one method at evenly spaced points.
//
// The sampled range is the data range padded by 10% on both sides; the left
// bound stays at or above zero when every x is non-negative. Samples use the
// explain-path evaluation, so the curve passes through the value Explain
// reports and is not clamped.
func (f *Forecaster) Curve(req CurveRequest) (*CurveResponse, error) {
	method, err := ParseMethod(req.Method)
	if err != nil {
		return nil, err
	}

	intervals := req.Intervals
	if intervals == 0 {
		intervals = DefaultCurveIntervals
	}
	if intervals < 1 || intervals > MaxCurveIntervals {
		return nil, errs.NewValidationError("points", errs.ErrInvalidSteps,
			"points must be between 1 and %d, got %d", MaxCurveIntervals, intervals)
	}

	s, err := series.New(req.X, req.Y)
	if err != nil {
		return nil, err
	}

	lo, hi := CurveBounds(s.MinX(), s.MaxX())
	step := (hi - lo) / float64(intervals)
	resp := &CurveResponse{
		Method: method.String(),
		Points: make([]series.Sample, 0, intervals+1),
	}
	for i := 0; i <= intervals; i++ {
		x := lo + float64(i)*step
		if i == intervals {
			x = hi
		}
		ex, err := f.cfg.Engine.Explain(method, s, x)
		if err != nil {
			return nil, err
		}
		if resp.ExecutedMethod == "" {
			resp.ExecutedMethod = ex.Executed.String()
		}
		resp.Points = append(resp.Points, series.Sample{X: x, Y: ex.Value})
	}

	return resp, nil
}

// CurveBounds returns the padded sampling range for data spanning [minX, maxX].
func CurveBounds(minX, maxX float64) (lo, hi float64) {
	pad := (maxX - minX) * curvePadding
	lo, hi = minX-pad, maxX+pad
	if minX >= 0 {
		lo = math.Max(lo, 0)
	}

	return lo, hi
}
