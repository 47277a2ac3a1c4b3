// Package forecast implements the two request shapes served on top of the
// interpolation engine: a multi-step yearly forecast and a single-point
// explanation. It also provides method comparison and curve sampling.
//
// The package owns the upstream validation the engine relies on (known method
// name, consecutive years, positive values, bounded step counts) and the 2
// decimal place rounding applied at the response boundary. Internal
// computation always stays at full precision.
//
// Usage:
//
//	f, err := forecast.New()
//	if err != nil {
//	    return err
//	}
//	resp, err := f.Forecast(forecast.Request{
//	    Method: "linear",
//	    Data:   []forecast.Point{{Year: 2021, Users: 40}, {Year: 2022, Users: 80}},
//	    Steps:  2,
//	})
package forecast
