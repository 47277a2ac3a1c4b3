package forecast

import (
	"fmt"

	"github.com/arloliu/growthcast/errs"
	"github.com/arloliu/growthcast/format"
	"github.com/arloliu/growthcast/interp"
	"github.com/arloliu/growthcast/internal/options"
	"github.com/arloliu/growthcast/postprocess"
	"github.com/arloliu/growthcast/series"
)

// Forecaster serves forecast and explanation requests. It is safe for
// concurrent use.
type Forecaster struct {
	cfg Config
}

// New creates a Forecaster. Without WithEngine it uses interp.NewEngine defaults.
func New(opts ...Option) (*Forecaster, error) {
	cfg := Config{MaxSteps: DefaultMaxSteps}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.Engine == nil {
		e, err := interp.NewEngine()
		if err != nil {
			return nil, err
		}
		cfg.Engine = e
	}

	return &Forecaster{cfg: cfg}, nil
}

// Engine returns the underlying interpolation engine.
func (f *Forecaster) Engine() *interp.Engine {
	return f.cfg.Engine
}

// MaxSteps returns the largest accepted step count.
func (f *Forecaster) MaxSteps() int {
	return f.cfg.MaxSteps
}

// Forecast predicts the years following the historical data.
//
// Predictions, growth rates and their aggregates are rounded to two decimal
// places; growth statistics are derived from the unrounded predictions.
//
// Parameters:
//   - req: Method name, consecutive yearly points and step count
//
// Returns:
//   - *Response: Forecast for years last+1..last+steps
//   - error: *errs.ValidationError or *errs.InterpolationFailure
func (f *Forecaster) Forecast(req Request) (*Response, error) {
	method, err := ParseMethod(req.Method)
	if err != nil {
		return nil, err
	}
	steps, err := f.resolveSteps(req.Steps)
	if err != nil {
		return nil, err
	}
	if err := ValidatePoints(req.Data); err != nil {
		return nil, err
	}

	s, err := toSeries(req.Data)
	if err != nil {
		return nil, err
	}

	first, last := int(s.MinX()), int(s.MaxX())
	years := series.Following(s.MaxX(), steps)
	out, err := f.cfg.Engine.Predict(method, s, years)
	if err != nil {
		return nil, err
	}

	predictions := make([]Point, len(years))
	for i, v := range out.Values {
		predictions[i] = Point{Year: last + 1 + i, Users: postprocess.Round(v, postprocess.ResponsePlaces)}
	}

	resp := &Response{
		Description:     Description(out.Executed, f.cfg.Engine.Config().Locale),
		Predictions:     predictions,
		Statistics:      postprocess.Growth(out.Values, s.Last().Y).Rounded(postprocess.ResponsePlaces),
		Method:          method.String(),
		ExecutedMethod:  out.Executed.String(),
		Degraded:        out.Degraded(),
		DataPoints:      s.Len(),
		HistoricalRange: fmt.Sprintf("%d - %d", first, last),
	}

	degree := 0
	if out.Executed == format.MethodPolynomial {
		if model, err := f.cfg.Engine.Fit(s); err == nil {
			degree = model.Degree
			resp.Fit = &FitQuality{
				Degree:   model.Degree,
				RSquared: postprocess.Round(model.RSquared, 4),
				RMSE:     postprocess.Round(model.RMSE, 4),
				Formula:  model.Formula,
			}
		}
	}
	resp.Equation = Equation(out.Executed, first, last, s.Len(), degree)

	return resp, nil
}

// Explain evaluates one method at XToPredict and returns its derivation.
// The value is not clamped.
func (f *Forecaster) Explain(req ExplainRequest) (*ExplainResponse, error) {
	method, err := ParseMethod(req.Method)
	if err != nil {
		return nil, err
	}
	if req.XToPredict == nil {
		return nil, errs.NewValidationError("xToPredict", errs.ErrEmptyInput, "missing required field: xToPredict")
	}

	s, err := series.New(req.X, req.Y)
	if err != nil {
		return nil, err
	}

	ex, err := f.cfg.Engine.Explain(method, s, *req.XToPredict)
	if err != nil {
		return nil, err
	}

	return &ExplainResponse{
		InterpolatedValue: ex.Value,
		CalculationSteps:  ex.Steps,
		InputData: InputData{
			X:          s.Xs(),
			Y:          s.Ys(),
			XToPredict: *req.XToPredict,
		},
		Method:         method.String(),
		ExecutedMethod: ex.Executed.String(),
	}, nil
}
