package growthcast_test

import (
	"fmt"

	"github.com/arloliu/growthcast"
	"github.com/arloliu/growthcast/forecast"
)

func ExamplePredict() {
	out, err := growthcast.Predict("linear", []float64{1, 2, 3}, []float64{2, 4, 6}, []float64{4, 5})
	if err != nil {
		panic(err)
	}
	fmt.Println(out.Values, out.Executed, out.Status())
	// Output: [8 10] linear ok
}

func ExampleForecast() {
	resp, err := growthcast.Forecast(forecast.Request{
		Method: "linear",
		Data:   []forecast.Point{{Year: 2020, Users: 10}, {Year: 2021, Users: 20}, {Year: 2022, Users: 30}},
		Steps:  2,
	})
	if err != nil {
		panic(err)
	}
	for _, p := range resp.Predictions {
		fmt.Println(p.Year, p.Users)
	}
	fmt.Println(resp.HistoricalRange)
	// Output:
	// 2023 40
	// 2024 50
	// 2020 - 2022
}

func ExampleExplain() {
	x := 4.0
	resp, err := growthcast.Explain(forecast.ExplainRequest{
		Method:     "polynomial",
		X:          []float64{1, 2, 3},
		Y:          []float64{1, 4, 9},
		XToPredict: &x,
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(resp.InterpolatedValue)
	fmt.Println(resp.CalculationSteps[len(resp.CalculationSteps)-1])
	// Output:
	// 16
	// P(4) = 16
}
