package forecast

import (
	"fmt"

	"github.com/arloliu/growthcast/format"
)

// Equation returns the descriptive equation reported for a forecast.
//
// Parameters:
//   - m: Method that produced the forecast
//   - firstYear, lastYear: Bounds of the historical series
//   - points: Number of historical points
//   - degree: Fitted polynomial degree, used by MethodPolynomial only
func Equation(m format.Method, firstYear, lastYear, points, degree int) string {
	switch m {
	case format.MethodLinear:
		return fmt.Sprintf("Linear interpolation: y = m*x + b (from %d to %d)", firstYear, lastYear)
	case format.MethodPolynomial:
		return fmt.Sprintf("Polynomial degree %d: P(x) = a%d*x^%d + ... + a1*x + a0", degree, degree, degree)
	case format.MethodSpline:
		return fmt.Sprintf("Cubic Spline: S(x) = piecewise cubic functions connecting %d points", points)
	case format.MethodLagrange:
		return "Lagrange polynomial: L(x) = sum(y_i * product(x-x_j)/(x_i-x_j)) for all points"
	default:
		return ""
	}
}

var descriptions = map[format.Locale]map[format.Method]string{
	format.LocaleEnglish: {
		format.MethodLinear:     "Linear interpolation yields constant growth and suits stable trends.",
		format.MethodPolynomial: "Polynomial interpolation produces a more flexible curve, suited to growth that keeps accelerating or slowing down.",
		format.MethodSpline:     "Cubic spline interpolation produces a smooth curve with continuous derivatives, ideal for data that changes gradually.",
		format.MethodLagrange:   "Lagrange interpolation passes exactly through every data point and suits complex data with recurring patterns.",
	},
	format.LocaleIndonesian: {
		format.MethodLinear:     "Interpolasi linear menghasilkan prediksi dengan pertumbuhan konstan, optimal untuk tren yang stabil.",
		format.MethodPolynomial: "Interpolasi polinomial menghasilkan kurva yang lebih fleksibel, cocok untuk pertumbuhan yang meningkat atau menurun secara konsisten.",
		format.MethodSpline:     "Interpolasi spline kubik menghasilkan kurva yang halus dengan konsistensi turunan, ideal untuk data dengan perubahan bertahap.",
		format.MethodLagrange:   "Interpolasi Lagrange menghasilkan kurva yang melewati semua titik data dengan tepat, cocok untuk data kompleks dengan pola berulang.",
	},
}

// Description returns the narrative description of m in locale, falling back to English.
func Description(m format.Method, locale format.Locale) string {
	if byMethod, ok := descriptions[locale]; ok {
		return byMethod[m]
	}

	return descriptions[format.LocaleEnglish][m]
}
