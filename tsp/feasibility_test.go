package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourbnb/tsp"
)

// expandAll applies include decisions in order.
func expandAll(t *testing.T, inst *tsp.Instance, edges ...tsp.Coord) *tsp.Node {
	t.Helper()
	nd, err := tsp.NewRootNode(inst)
	require.NoError(t, err)
	for _, e := range edges {
		nd, err = tsp.Expand(inst, nd, e, true)
		require.NoError(t, err)
	}

	return nd
}

func TestCheckFeasibility_RootBothLegal(t *testing.T) {
	inst := mustInstance(t, cities5)
	root, err := tsp.NewRootNode(inst)
	require.NoError(t, err)

	f := tsp.CheckFeasibility(root, co(0, 1))
	require.True(t, f.CanInclude)
	require.True(t, f.CanExclude)
	require.False(t, f.Dead())
	require.Equal(t, co(0, 1), f.At)
}

func TestCheckFeasibility_DegreeFull(t *testing.T) {
	inst := mustInstance(t, cities5)
	nd := expandAll(t, inst, co(0, 1), co(0, 2))

	f := tsp.CheckFeasibility(nd, co(0, 3))
	require.False(t, f.CanInclude, "row 0 already has two edges")
	require.True(t, f.CanExclude)
}

func TestCheckFeasibility_ColumnDegreeFull(t *testing.T) {
	inst := mustInstance(t, cities5)
	nd := expandAll(t, inst, co(1, 3), co(2, 3))

	f := tsp.CheckFeasibility(nd, co(0, 3))
	require.False(t, f.CanInclude, "city 3 already has two edges")
}

func TestCheckFeasibility_NoPrematureCycle(t *testing.T) {
	inst := mustInstance(t, cities5)
	nd := expandAll(t, inst, co(0, 1), co(1, 2))
	require.Equal(t, []int{0, 1, 2}, nd.Chain(0))
	require.Equal(t, []int{2, 1, 0}, nd.Chain(1), "an interior city sits between its arms")

	f := tsp.CheckFeasibility(nd, co(0, 2))
	require.False(t, f.CanInclude, "0-1-2-0 would close a 3-cycle in a 5-city instance")
}

func TestCheckFeasibility_ClosingEdge(t *testing.T) {
	inst := mustInstance(t, cities5)
	nd := expandAll(t, inst, co(0, 1), co(1, 2), co(2, 3), co(3, 4))
	require.Equal(t, 4, nd.IncludedEdges())

	f := tsp.CheckFeasibility(nd, co(0, 4))
	require.True(t, f.CanInclude, "the Hamiltonian cycle may close")

	closed, err := tsp.Expand(inst, nd, co(0, 4), true)
	require.NoError(t, err)
	tour, err := closed.Tour()
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4, 0}, tour)
}

func TestCheckFeasibility_ExcludeStarves(t *testing.T) {
	inst := mustInstance(t, [][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	})
	root, err := tsp.NewRootNode(inst)
	require.NoError(t, err)

	for _, at := range []tsp.Coord{co(0, 1), co(0, 2), co(1, 2)} {
		f := tsp.CheckFeasibility(root, at)
		require.True(t, f.CanInclude, at.String())
		require.False(t, f.CanExclude, at.String())
	}
}

func TestCheckFeasibility_EveryTerminalIsATour(t *testing.T) {
	for name, rows := range map[string][][]float64{"5": cities5, "6": cities6} {
		t.Run(name, func(t *testing.T) {
			inst := mustInstance(t, rows)
			terms := walkTree(t, inst, nil)

			n := inst.Size()
			want := 1
			for k := 3; k < n; k++ {
				want *= k
			}
			// (n-1)!/2 distinct undirected Hamiltonian cycles
			require.Len(t, terms, want)

			seen := make(map[string]bool, len(terms))
			for _, nd := range terms {
				tour, err := nd.Tour()
				require.NoError(t, err)
				require.NoError(t, tsp.ValidateTour(tour, n, 0))
				_ = tsp.CanonicalizeOrientationInPlace(tour)
				key := tsp.FormatTour(tour, nil)
				require.False(t, seen[key], "duplicate tour %s", key)
				seen[key] = true

				cost, err := tsp.TourCost(inst, tour)
				require.NoError(t, err)
				require.InDelta(t, cost, nd.Bound(), epsCost, "terminal bound equals tour cost")
			}
		})
	}
}
