package forecast

import (
	"github.com/arloliu/growthcast/postprocess"
	"github.com/arloliu/growthcast/series"
)

// Point is one yearly observation or prediction.
type Point struct {
	Year  int     `json:"year"`
	Users float64 `json:"users"`
}

// Request is the multi-step forecast input.
type Request struct {
	Method string  `json:"method" binding:"required"`
	Data   []Point `json:"data" binding:"required"`
	// Steps is the number of years to predict; zero means one.
	Steps int `json:"steps"`
}

// FitQuality describes how well the fitted polynomial matches the history.
type FitQuality struct {
	Degree   int     `json:"degree"`
	RSquared float64 `json:"r_squared"`
	RMSE     float64 `json:"rmse"`
	Formula  string  `json:"formula"`
}

// Response is the multi-step forecast output.
type Response struct {
	Equation        string                  `json:"equation"`
	Description     string                  `json:"description"`
	Predictions     []Point                 `json:"predictions"`
	Statistics      postprocess.GrowthStats `json:"statistics"`
	Method          string                  `json:"method"`
	ExecutedMethod  string                  `json:"executed_method"`
	Degraded        bool                    `json:"degraded"`
	DataPoints      int                     `json:"data_points"`
	HistoricalRange string                  `json:"historical_range"`
	Fit             *FitQuality             `json:"fit,omitempty"`
}

// ExplainRequest is the single-point explanation input.
type ExplainRequest struct {
	Method string    `json:"method" binding:"required"`
	X      []float64 `json:"x" binding:"required"`
	Y      []float64 `json:"y" binding:"required"`
	// XToPredict is required; a pointer distinguishes zero from absent.
	XToPredict *float64 `json:"xToPredict" binding:"required"`
}

// InputData echoes the sorted explanation input.
type InputData struct {
	X          []float64 `json:"x"`
	Y          []float64 `json:"y"`
	XToPredict float64   `json:"xToPredict"`
}

// ExplainResponse is the single-point explanation output.
type ExplainResponse struct {
	InterpolatedValue float64   `json:"interpolatedValue"`
	CalculationSteps  []string  `json:"calculationSteps"`
	InputData         InputData `json:"inputData"`
	Method            string    `json:"method"`
	ExecutedMethod    string    `json:"executedMethod"`
}

// CompareRequest asks for a forecast from every method.
type CompareRequest struct {
	Data  []Point `json:"data" binding:"required"`
	Steps int     `json:"steps"`
}

// CompareResponse maps each method name to its forecast.
type CompareResponse struct {
	Results map[string]*Response `json:"results"`
}

// CurveRequest asks for evenly spaced samples of an interpolant.
type CurveRequest struct {
	Method string    `json:"method" binding:"required"`
	X      []float64 `json:"x" binding:"required"`
	Y      []float64 `json:"y" binding:"required"`
	// Intervals is the number of sub-intervals; zero means DefaultCurveIntervals.
	Intervals int `json:"points"`
}

// CurveResponse holds the sampled curve.
type CurveResponse struct {
	Method         string          `json:"method"`
	ExecutedMethod string          `json:"executedMethod"`
	Points         []series.Sample `json:"points"`
}
