package tsp

// Feasibility is the immutable legality record for one decision coordinate.
// It is computed fresh per node and never stored on the node, so two workers
// branching the same parent can't observe each other's flags.
type Feasibility struct {
	At         Coord
	CanInclude bool
	CanExclude bool
}

// Dead reports whether neither branch is legal (the node has no completion).
func (f Feasibility) Dead() bool { return !f.CanInclude && !f.CanExclude }

// CheckFeasibility decides which of include/exclude is legal for edge at in nd.
//
// Include is legal iff both endpoints have fewer than two Included edges and
// the edge does not close a cycle early: at.Col must not already be on the
// chain of at.Row, unless n−1 edges are Included (then the edge closes the
// Hamiltonian cycle).
//
// Exclude is legal iff both endpoints keep enough Undecided edges to reach
// degree two: remaining[e] − 1 ≥ 2 − included[e] for e ∈ {Row, Col}.
//
// Checking both endpoints (not just the row) guarantees that every node ever
// built satisfies remaining[r] ≥ 2 − included[r], so EstimateBound can't fail
// and every fully decided node is a Hamiltonian cycle.
//
// Complexity: O(n²) (chain walk).
func CheckFeasibility(nd *Node, at Coord) Feasibility {
	var (
		r = at.Row
		c = at.Col
		f = Feasibility{At: at}
	)
	if nd.decisions[r*nd.n+c] != Undecided {
		return f
	}

	if nd.included[r] < 2 && nd.included[c] < 2 {
		f.CanInclude = true
		for _, v := range nd.Chain(r) {
			if v == c {
				// Same component: only the closing edge of the full tour is allowed.
				f.CanInclude = nd.includedEdges() == nd.n-1
				break
			}
		}
	}

	f.CanExclude = nd.remaining[r]-1 >= 2-nd.included[r] &&
		nd.remaining[c]-1 >= 2-nd.included[c]

	return f
}
