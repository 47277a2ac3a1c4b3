package series

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/growthcast/errs"
)

func TestNewSortsAndCopies(t *testing.T) {
	xs := []float64{2021, 2019, 2020}
	ys := []float64{40, 10, 20}

	s, err := New(xs, ys)
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())
	require.Equal(t, []float64{2019, 2020, 2021}, s.Xs())
	require.Equal(t, []float64{10, 20, 40}, s.Ys())

	// Inputs are left untouched and later edits do not leak in.
	require.Equal(t, []float64{2021, 2019, 2020}, xs)
	xs[0] = 0
	require.Equal(t, 2021.0, s.MaxX())

	got := s.Xs()
	got[0] = -1
	require.Equal(t, 2019.0, s.X(0))
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		ys   []float64
		want error
	}{
		{"length mismatch", []float64{1, 2}, []float64{1}, errs.ErrLengthMismatch},
		{"single point", []float64{1}, []float64{1}, errs.ErrInsufficientData},
		{"empty", nil, nil, errs.ErrInsufficientData},
		{"duplicate x", []float64{1, 2, 1}, []float64{1, 2, 3}, errs.ErrDuplicateX},
		{"nan x", []float64{1, math.NaN()}, []float64{1, 2}, errs.ErrNonFinite},
		{"inf y", []float64{1, 2}, []float64{1, math.Inf(1)}, errs.ErrNonFinite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.xs, tt.ys)
			require.Error(t, err)
			require.ErrorIs(t, err, tt.want)
			require.True(t, errs.IsValidation(err))
		})
	}
}

func TestFromSamples(t *testing.T) {
	in := []Sample{{X: 3, Y: 9}, {X: 1, Y: 1}, {X: 2, Y: 4}}
	s, err := FromSamples(in)
	require.NoError(t, err)
	require.Equal(t, []Sample{{1, 1}, {2, 4}, {3, 9}}, s.Samples())
	require.Equal(t, Sample{X: 3, Y: 9}, in[0])
	require.Equal(t, Sample{X: 3, Y: 9}, s.Last())
}

func TestMinY(t *testing.T) {
	s, err := New([]float64{1, 2, 3, 4}, []float64{5, 2, 7, 3})
	require.NoError(t, err)
	require.Equal(t, 2.0, s.MinY())
}

func TestSearch(t *testing.T) {
	s, err := New([]float64{0, 1, 3, 6}, []float64{0, 0, 0, 0})
	require.NoError(t, err)

	tests := []struct {
		x    float64
		want int
	}{
		{-5, 0},
		{0, 0},
		{0.5, 0},
		{1, 1},
		{2.9, 1},
		{3, 2},
		{5, 2},
		{6, 2},
		{100, 2},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, s.Search(tt.x), "x=%v", tt.x)
	}
}

func TestFollowing(t *testing.T) {
	require.Equal(t, []float64{2023, 2024, 2025}, Following(2022, 3))
	require.Nil(t, Following(2022, 0))
}

func TestString(t *testing.T) {
	s, err := New([]float64{2019, 2022}, []float64{1, 2})
	require.NoError(t, err)
	require.Equal(t, "Series{n=2, x=[2019, 2022]}", s.String())
	require.Equal(t, "Series{n=0}", Series{}.String())
}
