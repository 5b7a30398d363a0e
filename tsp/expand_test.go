package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourbnb/tsp"
)

func TestExpand_CopyOnBranch(t *testing.T) {
	inst := mustInstance(t, cities5)
	root, err := tsp.NewRootNode(inst)
	require.NoError(t, err)

	at := co(0, 1)
	inc, err := tsp.Expand(inst, root, at, true)
	require.NoError(t, err)
	exc, err := tsp.Expand(inst, root, at, false)
	require.NoError(t, err)

	require.Equal(t, tsp.Undecided, root.Decision(0, 1), "parent untouched")
	require.Equal(t, 0, root.IncludedCount(0))
	require.Equal(t, 4, root.RemainingCount(0))
	require.Equal(t, co(0, 0), root.Cursor())

	require.Equal(t, tsp.Included, inc.Decision(0, 1))
	require.Equal(t, tsp.Included, inc.Decision(1, 0), "decisions are symmetric")
	require.Equal(t, 1, inc.IncludedCount(0))
	require.Equal(t, 1, inc.IncludedCount(1))
	require.Equal(t, 3, inc.RemainingCount(0))

	require.Equal(t, tsp.Excluded, exc.Decision(0, 1))
	require.Equal(t, tsp.Excluded, exc.Decision(1, 0))
	require.Equal(t, 0, exc.IncludedCount(0))
	require.Equal(t, 3, exc.RemainingCount(1))

	for _, nd := range []*tsp.Node{inc, exc} {
		require.Equal(t, at, nd.Cursor())
		require.Equal(t, 1, nd.Depth())
		require.GreaterOrEqual(t, nd.Bound(), root.Bound())
	}

	// A grandchild of inc doesn't leak into exc.
	g, err := tsp.Expand(inst, inc, co(0, 2), true)
	require.NoError(t, err)
	require.Equal(t, tsp.Included, g.Decision(0, 2))
	require.Equal(t, tsp.Undecided, inc.Decision(0, 2))
	require.Equal(t, tsp.Undecided, exc.Decision(0, 2))
}

func TestDecisionString(t *testing.T) {
	require.Equal(t, "0", tsp.Undecided.String())
	require.Equal(t, "1", tsp.Included.String())
	require.Equal(t, "-1", tsp.Excluded.String())
}

func TestNodeTour_Incomplete(t *testing.T) {
	inst := mustInstance(t, cities5)
	root, err := tsp.NewRootNode(inst)
	require.NoError(t, err)

	_, err = root.Tour()
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}

func TestNodeChain_Isolated(t *testing.T) {
	inst := mustInstance(t, cities5)
	root, err := tsp.NewRootNode(inst)
	require.NoError(t, err)
	require.Equal(t, []int{3}, root.Chain(3))
}
