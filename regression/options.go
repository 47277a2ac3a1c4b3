package regression

import (
	"fmt"

	"github.com/arloliu/growthcast/internal/options"
)

// DefaultMaxDegree caps the fitted degree to limit oscillation on long series.
const DefaultMaxDegree = 3

// FitConfig holds configuration for a polynomial fit.
type FitConfig struct {
	MaxDegree int
}

func defaultFitConfig() FitConfig {
	return FitConfig{MaxDegree: DefaultMaxDegree}
}

// FitOption is a functional option for FitConfig.
type FitOption = options.Option[*FitConfig]

// WithMaxDegree sets the highest degree a fit may use. The degree actually
// fitted is min(n-1, d).
func WithMaxDegree(d int) FitOption {
	return options.New("WithMaxDegree", func(cfg *FitConfig) error {
		if d < 1 {
			return fmt.Errorf("max degree must be at least 1, got %d", d)
		}
		cfg.MaxDegree = d

		return nil
	})
}
