package forecast

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/growthcast/format"
)

// Compare forecasts the same history with every method concurrently.
//
// Validation failures are identical for all methods, so the first error wins
// and cancels the remaining work.
//
// Parameters:
//   - ctx: Cancels pending methods when done
//   - req: Historical points and step count
//
// Returns:
//   - *CompareResponse: One forecast per method name
//   - error: First error returned by any method, or ctx.Err()
func (f *Forecaster) Compare(ctx context.Context, req CompareRequest) (*CompareResponse, error) {
	results := make([]*Response, len(format.Methods))

	g, ctx := errgroup.WithContext(ctx)
	for i, m := range format.Methods {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			resp, err := f.Forecast(Request{Method: m.String(), Data: req.Data, Steps: req.Steps})
			if err != nil {
				return err
			}
			results[i] = resp

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &CompareResponse{Results: make(map[string]*Response, len(results))}
	for i, m := range format.Methods {
		out.Results[m.String()] = results[i]
	}

	return out, nil
}
