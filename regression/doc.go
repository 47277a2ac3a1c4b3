// Package regression fits low-degree polynomials to short historical series.
//
// It backs the predict path of the polynomial interpolation method: the fitted
// degree is min(n-1, MaxDegree), which is an exact interpolation when the
// series has at most MaxDegree+1 points and an ordinary least-squares fit
// otherwise. The default MaxDegree is 3.
//
// # Normalized Abscissa
//
// Series in this project are typically indexed by calendar year, so raw x
// values sit around 2000 and a cubic Vandermonde matrix built from them is
// hopelessly ill-conditioned. Every fit therefore works on the normalized
// variable
//
//	u = (x - center) / scale
//
// where center is the mean of the observed x and scale is half of their
// range, so the observed points map into [-1, 1]. Coefficients reported by a
// Model are in powers of u; the Formula string spells out the mapping.
//
// # Usage
//
//	model, err := regression.Fit(years, users)
//	if err != nil {
//	    return err
//	}
//	next := model.Estimator.Estimate(2024)
//	fmt.Printf("%s (R²=%.4f)\n", model.Formula, model.RSquared)
//
// # Fit Quality
//
// Each Model carries the coefficient of determination (R²) and the root mean
// square error (RMSE) of the fitted curve on the observed points. An exact fit
// has R² = 1 and RMSE = 0 up to rounding.
package regression
