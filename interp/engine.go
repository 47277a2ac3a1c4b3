package interp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/arloliu/growthcast/errs"
	"github.com/arloliu/growthcast/format"
	"github.com/arloliu/growthcast/internal/options"
	"github.com/arloliu/growthcast/postprocess"
	"github.com/arloliu/growthcast/regression"
	"github.com/arloliu/growthcast/series"
)

// Status tags how an Outcome was produced.
type Status uint8

const (
	// StatusOK means the requested method produced the values.
	StatusOK Status = iota + 1
	// StatusDegraded means a fallback method produced the values.
	StatusDegraded
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusDegraded:
		return "degraded"
	default:
		return "unknown"
	}
}

// Attempt records one failed method in a fallback chain.
type Attempt struct {
	Method format.Method
	Err    error
}

// Outcome is the result of Engine.Predict.
type Outcome struct {
	Requested format.Method
	Executed  format.Method
	// Values are the predictions after clamping (when enabled), in target order.
	Values []float64
	// Raw are the predictions exactly as the executed method produced them.
	Raw []float64
	// Clamped counts the elements of Raw replaced in Values.
	Clamped int
	// Attempts lists the methods that failed before Executed, in order.
	Attempts []Attempt
}

// Status reports whether the requested method or a fallback produced the values.
func (o *Outcome) Status() Status {
	return statusOf(o.Requested, o.Executed)
}

// Degraded reports whether a fallback method produced the values.
func (o *Outcome) Degraded() bool {
	return o.Executed != o.Requested
}

// Explanation is the result of Engine.Explain.
type Explanation struct {
	Requested format.Method
	Executed  format.Method
	// Value is the raw interpolated value; explanations are never clamped.
	Value    float64
	Steps    []string
	Attempts []Attempt
}

// Status reports whether the requested method or a fallback produced the value.
func (e *Explanation) Status() Status {
	return statusOf(e.Requested, e.Executed)
}

// Degraded reports whether a fallback method produced the value.
func (e *Explanation) Degraded() bool {
	return e.Executed != e.Requested
}

func statusOf(requested, executed format.Method) Status {
	if requested == executed {
		return StatusOK
	}

	return StatusDegraded
}

// Engine dispatches to the four methods and coordinates their fallback chain.
//
// An Engine is immutable after construction and safe for concurrent use.
type Engine struct {
	cfg     Config
	methods map[format.Method]Interpolator
}

// NewEngine creates an Engine.
//
// Parameters:
//   - opts: Engine options (WithLogger, WithLocale, WithClamp, ...)
//
// Returns:
//   - *Engine: The configured engine
//   - error: Returns an error if any option is invalid
func NewEngine(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Engine{
		cfg: cfg,
		methods: map[format.Method]Interpolator{
			format.MethodLinear:     Linear{Locale: cfg.Locale},
			format.MethodPolynomial: Polynomial{MaxDegree: cfg.MaxDegree, Locale: cfg.Locale},
			format.MethodSpline:     Spline{Locale: cfg.Locale},
			format.MethodLagrange:   Lagrange{BarycentricThreshold: cfg.BarycentricThreshold, Locale: cfg.Locale},
		},
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Interpolator returns the configured implementation of method.
func (e *Engine) Interpolator(method format.Method) (Interpolator, error) {
	impl, ok := e.methods[method]
	if !ok {
		return nil, errs.NewValidationError("method", errs.ErrUnknownMethod,
			"unknown method %q, allowed methods are: %v", method, format.MethodNames())
	}

	return impl, nil
}

// Fit returns the polynomial model the predict path would use for s.
func (e *Engine) Fit(s series.Series) (*regression.Model, error) {
	return Polynomial{MaxDegree: e.cfg.MaxDegree}.Fit(s)
}

// Predict evaluates method at every target, falling back on numerical failure.
//
// The values are clamped to min(y) when clamping is enabled (the default).
//
// Parameters:
//   - method: Requested method
//   - s: Historical series, at least two samples
//   - targets: Finite x values, any order
//
// Returns:
//   - *Outcome: Values in target order plus the method that produced them
//   - error: *errs.ValidationError for bad input, *errs.InterpolationFailure
//     when the whole fallback chain fails
func (e *Engine) Predict(method format.Method, s series.Series, targets []float64) (*Outcome, error) {
	if err := e.validate(method, s); err != nil {
		return nil, err
	}
	for i, t := range targets {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, errs.NewValidationError("targets", errs.ErrNonFinite, "target %d is %g", i, t)
		}
	}

	var raw []float64
	executed, attempts, err := e.run(method, s, func(impl Interpolator) error {
		var err error
		raw, err = impl.Predict(s, targets)

		return err
	})
	if err != nil {
		return nil, err
	}

	out := &Outcome{
		Requested: method,
		Executed:  executed,
		Values:    raw,
		Raw:       raw,
		Attempts:  attempts,
	}
	if e.cfg.Clamp {
		out.Clamped = postprocess.ClampCount(raw)
		if out.Clamped > 0 {
			out.Values = postprocess.Clamp(raw, s.MinY())
			e.cfg.Logger.Warn("predictions clamped",
				slog.String("method", executed.String()),
				slog.Int("clamped", out.Clamped),
				slog.Float64("floor", s.MinY()))
		}
	}

	e.cfg.Logger.Debug("interpolation complete",
		slog.String("requested", method.String()),
		slog.String("executed", executed.String()),
		slog.Int("points", s.Len()),
		slog.Int("targets", len(targets)))

	return out, nil
}

// Explain evaluates method at t with a step trace, falling back on numerical failure.
//
// Unlike Predict, the value is never clamped.
func (e *Engine) Explain(method format.Method, s series.Series, t float64) (*Explanation, error) {
	if err := e.validate(method, s); err != nil {
		return nil, err
	}
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return nil, errs.NewValidationError("xToPredict", errs.ErrNonFinite, "target is %g", t)
	}

	var (
		value float64
		steps []string
	)
	executed, attempts, err := e.run(method, s, func(impl Interpolator) error {
		var err error
		value, steps, err = impl.Explain(s, t)

		return err
	})
	if err != nil {
		return nil, err
	}

	return &Explanation{
		Requested: method,
		Executed:  executed,
		Value:     value,
		Steps:     steps,
		Attempts:  attempts,
	}, nil
}

func (e *Engine) validate(method format.Method, s series.Series) error {
	if _, err := e.Interpolator(method); err != nil {
		return err
	}
	if s.Len() < series.MinLen {
		return errs.NewValidationError("series", errs.ErrInsufficientData,
			"at least %d data points are required for interpolation, got %d", series.MinLen, s.Len())
	}

	return nil
}

// run calls fn with the requested method and then with each fallback until
// one succeeds.
func (e *Engine) run(method format.Method, s series.Series, fn func(Interpolator) error) (format.Method, []Attempt, error) {
	var attempts []Attempt
	current := method
	for {
		err := fn(e.methods[current])
		if err == nil {
			return current, attempts, nil
		}
		attempts = append(attempts, Attempt{Method: current, Err: err})

		next, ok := Fallback(current)
		if !ok {
			e.cfg.Logger.Error("interpolation failed",
				slog.String("requested", method.String()),
				slog.Int("points", s.Len()),
				slog.Any("error", err))

			return 0, attempts, errs.NewInterpolationFailure(method.String(), joinAttempts(attempts))
		}

		level := slog.LevelWarn
		if current == format.MethodSpline && errors.Is(err, errs.ErrInsufficientData) {
			// Short series are a documented policy, not a numerical failure.
			level = slog.LevelDebug
		}
		e.cfg.Logger.Log(context.Background(), level, "interpolation fallback",
			slog.String("from", current.String()),
			slog.String("to", next.String()),
			slog.Int("points", s.Len()),
			slog.Any("error", err))

		current = next
	}
}

func joinAttempts(attempts []Attempt) error {
	wrapped := make([]error, len(attempts))
	for i, a := range attempts {
		wrapped[i] = fmt.Errorf("%s: %w", a.Method, a.Err)
	}

	return errors.Join(wrapped...)
}
