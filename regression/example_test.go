package regression_test

import (
	"fmt"
	"log"

	"github.com/arloliu/growthcast/regression"
)

// ExampleFit demonstrates an exact quadratic fit and extrapolation.
func ExampleFit() {
	model, err := regression.Fit([]float64{1, 2, 3}, []float64{1, 4, 9})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Degree: %d, exact: %v\n", model.Degree, model.Exact)
	fmt.Printf("Formula: %s\n", model.Formula)
	fmt.Printf("R²: %.4f\n", model.RSquared)
	fmt.Printf("Estimate at 4: %.4f\n", model.Estimator.Estimate(4))

	// Output:
	// Degree: 2, exact: true
	// Formula: y = 4 + 4*u + 1*u^2, u = (x - 2) / 1
	// R²: 1.0000
	// Estimate at 4: 16.0000
}

// ExampleFit_leastSquares demonstrates a capped-degree fit of noisy data.
func ExampleFit_leastSquares() {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{1, 3, 2, 5, 4}

	model, err := regression.Fit(xs, ys, regression.WithMaxDegree(1))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Degree: %d, exact: %v\n", model.Degree, model.Exact)
	fmt.Printf("R²: %.4f, RMSE: %.4f\n", model.RSquared, model.RMSE)
	fmt.Printf("Estimate at 5: %.2f\n", model.Estimator.Estimate(5))

	// Output:
	// Degree: 1, exact: false
	// R²: 0.6400, RMSE: 0.8485
	// Estimate at 5: 5.40
}

// ExampleNewPolynomialEstimator demonstrates evaluating known coefficients.
func ExampleNewPolynomialEstimator() {
	// y = 100 + 10*(x - 2020)
	estimator, err := regression.NewPolynomialEstimator(2020, 1, 100, 10)
	if err != nil {
		log.Fatal(err)
	}

	for _, year := range []float64{2021, 2022} {
		fmt.Printf("%.0f -> %.1f\n", year, estimator.Estimate(year))
	}
	fmt.Printf("Degree: %d\n", estimator.Degree())
	fmt.Printf("Coefficients: %v\n", estimator.Coefficients())

	// Output:
	// 2021 -> 110.0
	// 2022 -> 120.0
	// Degree: 1
	// Coefficients: [100 10]
}
