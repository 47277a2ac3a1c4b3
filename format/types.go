package format

import (
	"fmt"
	"strings"
)

type (
	Method          uint8
	Locale          uint8
	CompressionType uint8
)

const (
	MethodLinear     Method = 0x1 // MethodLinear represents piecewise-linear interpolation.
	MethodPolynomial Method = 0x2 // MethodPolynomial represents a global polynomial fit.
	MethodSpline     Method = 0x3 // MethodSpline represents a not-a-knot cubic spline.
	MethodLagrange   Method = 0x4 // MethodLagrange represents the Lagrange interpolating polynomial.

	LocaleEnglish    Locale = 0x1 // LocaleEnglish renders step traces in English.
	LocaleIndonesian Locale = 0x2 // LocaleIndonesian renders step traces in Indonesian.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Methods lists every supported method in canonical order.
var Methods = []Method{MethodLinear, MethodPolynomial, MethodSpline, MethodLagrange}

// String returns the wire name of the method ("linear", "polynomial", "spline", "lagrange").
func (m Method) String() string {
	switch m {
	case MethodLinear:
		return "linear"
	case MethodPolynomial:
		return "polynomial"
	case MethodSpline:
		return "spline"
	case MethodLagrange:
		return "lagrange"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the four supported methods.
func (m Method) Valid() bool {
	return m >= MethodLinear && m <= MethodLagrange
}

// ParseMethod returns the Method for a wire name. Matching is case-insensitive
// and ignores surrounding whitespace.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear":
		return MethodLinear, nil
	case "polynomial":
		return MethodPolynomial, nil
	case "spline":
		return MethodSpline, nil
	case "lagrange":
		return MethodLagrange, nil
	default:
		return 0, fmt.Errorf("unknown method %q, allowed methods are: %s", name, strings.Join(MethodNames(), ", "))
	}
}

// MethodNames returns the wire names of all methods in canonical order.
func MethodNames() []string {
	names := make([]string, len(Methods))
	for i, m := range Methods {
		names[i] = m.String()
	}

	return names
}

func (l Locale) String() string {
	switch l {
	case LocaleEnglish:
		return "en"
	case LocaleIndonesian:
		return "id"
	default:
		return "unknown"
	}
}

// Valid reports whether l is a known locale.
func (l Locale) Valid() bool {
	return l == LocaleEnglish || l == LocaleIndonesian
}

// ParseLocale maps "en"/"english" and "id"/"indonesian" to a Locale.
// An empty name selects LocaleEnglish.
func ParseLocale(name string) (Locale, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "en", "english":
		return LocaleEnglish, nil
	case "id", "indonesian":
		return LocaleIndonesian, nil
	default:
		return 0, fmt.Errorf("unknown locale %q", name)
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a case-insensitive name ("none", "zstd", "s2", "lz4") to a CompressionType.
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}
