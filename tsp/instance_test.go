package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourbnb/matrix"
	"github.com/katalvlaran/tourbnb/tsp"
)

func TestNewInstance_Rejects(t *testing.T) {
	inf := math.Inf(1)
	cases := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"too few cities", [][]float64{{0, 1}, {1, 0}}, tsp.ErrTooFewCities},
		{"ragged", [][]float64{{0, 1, 2}, {1, 0}, {2, 3, 0}}, tsp.ErrDimensionMismatch},
		{"non-zero diagonal", [][]float64{{1, 1, 2}, {1, 0, 3}, {2, 3, 0}}, tsp.ErrNonZeroDiagonal},
		{"negative", [][]float64{{0, -1, 2}, {-1, 0, 3}, {2, 3, 0}}, tsp.ErrNegativeWeight},
		{"infinite", [][]float64{{0, inf, 2}, {inf, 0, 3}, {2, 3, 0}}, tsp.ErrIncompleteGraph},
		{"nan", [][]float64{{0, math.NaN(), 2}, {1, 0, 3}, {2, 3, 0}}, tsp.ErrDimensionMismatch},
		{"asymmetric", [][]float64{{0, 1, 2}, {5, 0, 3}, {2, 3, 0}}, tsp.ErrAsymmetry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tsp.NewInstanceFromRows(tc.rows)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewInstance_NonSquare(t *testing.T) {
	d, err := matrix.NewDense(3, 4)
	require.NoError(t, err)
	_, err = tsp.NewInstance(d)
	require.ErrorIs(t, err, tsp.ErrNonSquare)

	_, err = tsp.NewInstance(nil)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}

func TestInstance_ReadOnlyCopy(t *testing.T) {
	inst := mustInstance(t, cities5)
	require.Equal(t, 5, inst.Size())
	require.Equal(t, 8.0, inst.Cost(2, 4))

	m := inst.Matrix()
	require.NoError(t, m.Set(2, 4, 100))
	require.Equal(t, 8.0, inst.Cost(2, 4), "Matrix returns a copy")
}
