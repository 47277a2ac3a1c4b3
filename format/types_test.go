package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		name string
		want Method
	}{
		{"linear", MethodLinear},
		{"Polynomial", MethodPolynomial},
		{" spline ", MethodSpline},
		{"LAGRANGE", MethodLagrange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMethod(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.want, m)
			require.True(t, m.Valid())
		})
	}

	_, err := ParseMethod("cubic")
	require.Error(t, err)
	require.Contains(t, err.Error(), "linear, polynomial, spline, lagrange")
}

func TestMethodStringRoundTrip(t *testing.T) {
	for _, m := range Methods {
		parsed, err := ParseMethod(m.String())
		require.NoError(t, err)
		require.Equal(t, m, parsed)
	}

	require.Equal(t, "unknown", Method(0).String())
	require.False(t, Method(0).Valid())
	require.False(t, Method(9).Valid())
}

func TestParseLocale(t *testing.T) {
	l, err := ParseLocale("")
	require.NoError(t, err)
	require.Equal(t, LocaleEnglish, l)

	l, err = ParseLocale("id")
	require.NoError(t, err)
	require.Equal(t, LocaleIndonesian, l)
	require.Equal(t, "id", l.String())

	_, err = ParseLocale("fr")
	require.Error(t, err)

	require.True(t, LocaleEnglish.Valid())
	require.False(t, Locale(0).Valid())
}

func TestParseCompression(t *testing.T) {
	for _, c := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		parsed, err := ParseCompression(c.String())
		require.NoError(t, err)
		require.Equal(t, c, parsed)
	}

	_, err := ParseCompression("brotli")
	require.Error(t, err)
}
