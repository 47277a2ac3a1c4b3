// Package postprocess applies the domain rules that follow every raw
// prediction: clamping to the observed floor and growth-rate statistics.
package postprocess

import (
	"math"

	"github.com/shopspring/decimal"
)

// ResponsePlaces is the number of decimal places reported at the response boundary.
const ResponsePlaces = 2

// Invalid reports whether v cannot be a value of the modeled quantity:
// negative, NaN or infinite.
func Invalid(v float64) bool {
	return v < 0 || math.IsNaN(v) || math.IsInf(v, 0)
}

// Clamp returns a copy of values in which every Invalid element is replaced
// by floor, typically the minimum observed historical value.
func Clamp(values []float64, floor float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if Invalid(v) {
			out[i] = floor
		} else {
			out[i] = v
		}
	}

	return out
}

// ClampCount returns how many elements of values Clamp would replace.
func ClampCount(values []float64) int {
	n := 0
	for _, v := range values {
		if Invalid(v) {
			n++
		}
	}

	return n
}

// GrowthStats summarizes the step-to-step growth of a prediction sequence.
// All fields are percentages.
type GrowthStats struct {
	// Rates[0] is relative to the last historical value, Rates[i] to prediction i-1.
	Rates []float64 `json:"growth_rates"`
	// Average is the arithmetic mean of Rates, 0 when empty.
	Average float64 `json:"average_growth_rate"`
	// Total is the growth of the final prediction over the last historical value.
	Total float64 `json:"total_growth"`
}

// Growth derives GrowthStats from predictions and the last historical value.
//
// A rate whose base is not positive is reported as 0, as is the total when
// lastHistorical is not positive. Values are kept at full precision; see Round.
//
// Parameters:
//   - predictions: Predicted values p_0..p_{k-1}
//   - lastHistorical: Last observed value before p_0
//
// Returns:
//   - GrowthStats: Per-step rates, their mean and the total growth
func Growth(predictions []float64, lastHistorical float64) GrowthStats {
	stats := GrowthStats{Rates: make([]float64, len(predictions))}
	if len(predictions) == 0 {
		return stats
	}

	base := lastHistorical
	sum := 0.0
	for i, p := range predictions {
		stats.Rates[i] = percentChange(base, p)
		sum += stats.Rates[i]
		base = p
	}
	stats.Average = sum / float64(len(predictions))
	stats.Total = percentChange(lastHistorical, predictions[len(predictions)-1])

	return stats
}

// Rounded returns a copy of g with every percentage rounded to places.
func (g GrowthStats) Rounded(places int32) GrowthStats {
	out := GrowthStats{
		Rates:   RoundAll(g.Rates, places),
		Average: Round(g.Average, places),
		Total:   Round(g.Total, places),
	}

	return out
}

func percentChange(from, to float64) float64 {
	if from <= 0 {
		return 0
	}

	return (to - from) / from * 100
}

// Round rounds v half away from zero to the given number of decimal places.
// Non-finite values are returned unchanged.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// RoundAll rounds every element of values into a new slice.
func RoundAll(values []float64, places int32) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = Round(v, places)
	}

	return out
}
