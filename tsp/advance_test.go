package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourbnb/tsp"
)

func TestAdvance_RowMajorWalk(t *testing.T) {
	const n = 5
	var (
		c    = tsp.Coord{Row: 0, Col: 0}
		seen []tsp.Coord
		done bool
	)
	for {
		c, done = tsp.Advance(n, c)
		if done {
			break
		}
		seen = append(seen, c)
	}

	want := []tsp.Coord{
		co(0, 1), co(0, 2), co(0, 3), co(0, 4),
		co(1, 2), co(1, 3), co(1, 4),
		co(2, 3), co(2, 4),
		co(3, 4),
	}
	require.Equal(t, want, seen)
	require.Equal(t, tsp.Coord{Row: 3, Col: 4}, c, "terminal returns the last coordinate")
}

func TestAdvance_Edges(t *testing.T) {
	cases := []struct {
		name string
		n    int
		in   tsp.Coord
		out  tsp.Coord
		done bool
	}{
		{"root", 4, co(0, 0), co(0, 1), false},
		{"row end", 4, co(0, 3), co(1, 2), false},
		{"inside row", 4, co(1, 2), co(1, 3), false},
		{"terminal", 4, co(2, 3), co(2, 3), true},
		{"smallest", 3, co(1, 2), co(1, 2), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, done := tsp.Advance(tc.n, tc.in)
			require.Equal(t, tc.out, got)
			require.Equal(t, tc.done, done)
		})
	}
}

// co is shorthand for a keyed tsp.Coord.
func co(r, c int) tsp.Coord { return tsp.Coord{Row: r, Col: c} }

func TestCoordString(t *testing.T) {
	require.Equal(t, "[0, 3]", tsp.Coord{Row: 0, Col: 3}.String())
}
