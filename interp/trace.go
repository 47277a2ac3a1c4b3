package interp

import (
	"math"
	"strconv"

	"github.com/arloliu/growthcast/format"
)

// phrasebook holds the narrative lines of a step trace for one locale.
// Formulas and numbers are locale independent and are built by the methods.
type phrasebook struct {
	linearFind   string
	linearPoint1 string
	linearPoint2 string
	linearApply  string

	newtonTable     string
	newtonTableHead string
	newtonForm      string
	evaluateAt      string

	splineIntervals string
	splineInterval  string
	splineCoeffs    string
	splineA         string
	splineB         string
	splineC         string
	splineD         string

	lagrangeApply       string
	lagrangeWhere       string
	lagrangeBasis       string
	lagrangeSum         string
	lagrangeBarycentric string
}

var englishPhrases = &phrasebook{
	linearFind:   "Step 1: Identify the two data points nearest to x = %s",
	linearPoint1: "- Point 1: (%s, %s)",
	linearPoint2: "- Point 2: (%s, %s)",
	linearApply:  "Step 2: Apply the linear interpolation formula:",

	newtonTable:     "Step 1: Build the Newton divided-difference table for polynomial interpolation",
	newtonTableHead: "Divided-difference table (coefficient values):",
	newtonForm:      "Step 2: Newton polynomial:",
	evaluateAt:      "Step 3: Evaluate at x = %s:",

	splineIntervals: "Step 1: Split the data into intervals and build a cubic spline on each interval",
	splineInterval:  "The interval containing x = %s is [%s, %s]",
	splineCoeffs:    "Step 2: Spline coefficients for this interval:",
	splineA:         "a = %s (x^3 coefficient)",
	splineB:         "b = %s (x^2 coefficient)",
	splineC:         "c = %s (x coefficient)",
	splineD:         "d = %s (constant)",

	lagrangeApply:       "Step 1: Apply the Lagrange interpolation formula:",
	lagrangeWhere:       "where L_j(x) = Π (x - x_i) / (x_j - x_i) for all i ≠ j",
	lagrangeBasis:       "Step 2: Compute each Lagrange basis polynomial L_j(x) at x = %s:",
	lagrangeSum:         "Step 3: Multiply each basis polynomial by its y value and sum:",
	lagrangeBarycentric: "Evaluated in barycentric form over %d points",
}

// indonesianPhrases is the wording the Indonesian web frontend expects.
var indonesianPhrases = &phrasebook{
	linearFind:   "Langkah 1: Identifikasi dua titik data terdekat dengan x = %s",
	linearPoint1: "- Titik 1: (%s, %s)",
	linearPoint2: "- Titik 2: (%s, %s)",
	linearApply:  "Langkah 2: Terapkan rumus interpolasi linear:",

	newtonTable:     "Langkah 1: Membuat tabel perbedaan terbagi Newton untuk interpolasi polinomial",
	newtonTableHead: "Tabel perbedaan terbagi (nilai koefisien):",
	newtonForm:      "Langkah 2: Polinomial Newton:",
	evaluateAt:      "Langkah 3: Mengevaluasi pada x = %s:",

	splineIntervals: "Langkah 1: Membagi data menjadi interval dan membuat spline kubik untuk setiap interval",
	splineInterval:  "Interval yang mengandung x = %s adalah [%s, %s]",
	splineCoeffs:    "Langkah 2: Koefisien spline untuk interval ini:",
	splineA:         "a = %s (koefisien x^3)",
	splineB:         "b = %s (koefisien x^2)",
	splineC:         "c = %s (koefisien x)",
	splineD:         "d = %s (konstanta)",

	lagrangeApply:       "Langkah 1: Terapkan rumus interpolasi Lagrange:",
	lagrangeWhere:       "dimana L_j(x) = Π (x - x_i) / (x_j - x_i) untuk semua i ≠ j",
	lagrangeBasis:       "Langkah 2: Hitung setiap polinomial basis Lagrange L_j(x) untuk x = %s:",
	lagrangeSum:         "Langkah 3: Kalikan setiap polinomial basis dengan nilai y yang sesuai dan jumlahkan:",
	lagrangeBarycentric: "Dievaluasi dalam bentuk barisentrik untuk %d titik",
}

func phrasesFor(locale format.Locale) *phrasebook {
	if locale == format.LocaleIndonesian {
		return indonesianPhrases
	}

	return englishPhrases
}

// num formats a trace number: shortest round-trip decimal, exponent form
// only for very large or very small magnitudes.
func num(v float64) string {
	abs := math.Abs(v)
	if v != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
