package dataset

import (
	"slices"

	"github.com/arloliu/growthcast/format"
)

// ExampleInput is a ready-made explanation input.
type ExampleInput struct {
	X          []float64 `json:"x"`
	Y          []float64 `json:"y"`
	XToPredict float64   `json:"xToPredict"`
}

var examples = map[format.Method]ExampleInput{
	// constant slope
	format.MethodLinear: {
		X: []float64{1, 2, 3, 4, 5}, Y: []float64{10, 20, 30, 40, 50}, XToPredict: 2.5,
	},
	// y = x²
	format.MethodPolynomial: {
		X: []float64{1, 2, 3, 4, 5}, Y: []float64{1, 4, 9, 16, 25}, XToPredict: 3.5,
	},
	format.MethodSpline: {
		X: []float64{1, 2, 3, 5, 7, 8, 10}, Y: []float64{3, 3.5, 5, 8, 6, 7, 10}, XToPredict: 6,
	},
	format.MethodLagrange: {
		X: []float64{0, 1, 2, 4, 7}, Y: []float64{1, 3, -2, 5, 9}, XToPredict: 3,
	},
}

// Example returns the example input for m. An unknown method gets the linear example.
func Example(m format.Method) ExampleInput {
	ex, ok := examples[m]
	if !ok {
		ex = examples[format.MethodLinear]
	}

	return ExampleInput{X: slices.Clone(ex.X), Y: slices.Clone(ex.Y), XToPredict: ex.XToPredict}
}
