package tsp

import "fmt"

// Decision is the tri-state of one edge in a partial assignment.
type Decision uint8

const (
	// Undecided edges are still free; the bound may pick them.
	Undecided Decision = iota
	// Included edges are part of every completion of the node.
	Included
	// Excluded edges are part of no completion of the node.
	Excluded
)

// String renders the decision the way the trace table prints it.
func (d Decision) String() string {
	switch d {
	case Included:
		return "1"
	case Excluded:
		return "-1"
	default:
		return "0"
	}
}

// Coord addresses one edge (Row, Col) of the strict upper triangle, Row < Col.
type Coord struct {
	Row, Col int
}

// String implements fmt.Stringer, e.g. "[0, 3]".
func (c Coord) String() string { return fmt.Sprintf("[%d, %d]", c.Row, c.Col) }

// rootCursor is the cursor of a node with no decision taken yet.
var rootCursor = Coord{Row: 0, Col: 0}

// Node is one partial assignment of included/excluded edges.
//
// A Node is never mutated once built: Expand produces a fresh child with
// its own backing arrays, so a node may be read by the tracer, the frontier
// and a worker at the same time without locks.
//
// Invariants (kept by CheckFeasibility + Expand):
//   - decisions[r*n+c] == decisions[c*n+r];
//   - 0 ≤ included[r] ≤ 2;
//   - remaining[r] ≥ 2 − included[r] (the bound never fails).
type Node struct {
	n         int
	decisions []Decision // n×n, row-major, symmetric
	included  []int      // per-row count of Included edges
	remaining []int      // per-row count of Undecided edges (diagonal excluded)
	bound     float64
	cursor    Coord // last decided coordinate; rootCursor at the root
	depth     int   // number of decided coordinates
}

// NewRootNode builds the undecided root for inst and computes its bound.
//
// Complexity: O(n²).
func NewRootNode(inst *Instance) (*Node, error) {
	var (
		n  = inst.Size()
		nd = &Node{
			n:         n,
			decisions: make([]Decision, n*n),
			included:  make([]int, n),
			remaining: make([]int, n),
			cursor:    rootCursor,
		}
		r   int
		err error
	)
	for r = 0; r < n; r++ {
		nd.remaining[r] = n - 1
	}
	if nd.bound, err = EstimateBound(inst, nd); err != nil {
		return nil, err
	}

	return nd, nil
}

// Size returns the number of cities of the node's instance.
func (nd *Node) Size() int { return nd.n }

// Bound returns the node's admissible lower bound.
func (nd *Node) Bound() float64 { return nd.bound }

// Cursor returns the last decided coordinate.
func (nd *Node) Cursor() Coord { return nd.cursor }

// Depth returns how many coordinates have been decided.
func (nd *Node) Depth() int { return nd.depth }

// Decision returns the state of edge (r, c). Diagonal cells are Undecided.
func (nd *Node) Decision(r, c int) Decision { return nd.decisions[r*nd.n+c] }

// IncludedCount returns how many edges of row r are Included.
func (nd *Node) IncludedCount(r int) int { return nd.included[r] }

// RemainingCount returns how many edges of row r are still Undecided.
func (nd *Node) RemainingCount(r int) int { return nd.remaining[r] }

// includedEdges returns the number of Included edges in the whole assignment.
func (nd *Node) includedEdges() int {
	var sum, r int
	for r = 0; r < nd.n; r++ {
		sum += nd.included[r]
	}

	return sum / 2
}

// clone returns a deep copy sharing no backing storage with nd.
func (nd *Node) clone() *Node {
	cp := &Node{
		n:         nd.n,
		decisions: make([]Decision, len(nd.decisions)),
		included:  make([]int, nd.n),
		remaining: make([]int, nd.n),
		bound:     nd.bound,
		cursor:    nd.cursor,
		depth:     nd.depth,
	}
	copy(cp.decisions, nd.decisions)
	copy(cp.included, nd.included)
	copy(cp.remaining, nd.remaining)

	return cp
}

// neighbors appends the Included neighbours of v (ascending) to dst.
func (nd *Node) neighbors(dst []int, v int) []int {
	var c int
	for c = 0; c < nd.n; c++ {
		if c != v && nd.decisions[v*nd.n+c] == Included {
			dst = append(dst, c)
		}
	}

	return dst
}

// walk follows Included edges from start, leaving through first, and returns
// the visited cities in order (start excluded). closed reports whether the
// walk came back to start, i.e. start lies on a cycle.
func (nd *Node) walk(start, first int) (out []int, closed bool) {
	var (
		prev = start
		cur  = first
		nb   = make([]int, 0, 2)
		next int
	)
	out = make([]int, 0, nd.n)
	for {
		if cur == start {
			return out, true
		}
		out = append(out, cur)
		nb = nd.neighbors(nb[:0], cur)
		next = -1
		for _, v := range nb {
			if v != prev {
				next = v
				break
			}
		}
		if next < 0 {
			return out, false
		}
		prev, cur = cur, next
	}
}

// Chain returns the ordered list of cities connected to row through Included
// edges, row itself included. When row is a path endpoint (fewer than two
// included edges) the chain starts at row; otherwise row sits between its two
// arms. For a closed cycle the chain lists every city of the cycle once.
//
// The chain is derived from the decisions on demand, so it cannot go stale
// across copy-on-branch.
//
// Complexity: O(n²).
func (nd *Node) Chain(row int) []int {
	nb := nd.neighbors(make([]int, 0, 2), row)
	if len(nb) == 0 {
		return []int{row}
	}
	right, closed := nd.walk(row, nb[0])
	if len(nb) == 1 || closed {
		return append([]int{row}, right...)
	}

	left, _ := nd.walk(row, nb[1])
	out := make([]int, 0, len(left)+1+len(right))
	var i int
	for i = len(left) - 1; i >= 0; i-- {
		out = append(out, left[i])
	}
	out = append(out, row)

	return append(out, right...)
}

// Tour extracts the Hamiltonian cycle encoded by a fully decided node,
// starting and ending at city 0. It returns ErrDimensionMismatch when the
// Included edges do not form a single cycle through every city.
//
// Complexity: O(n²).
func (nd *Node) Tour() ([]int, error) {
	var r int
	for r = 0; r < nd.n; r++ {
		if nd.included[r] != 2 {
			return nil, ErrDimensionMismatch
		}
	}
	nb := nd.neighbors(make([]int, 0, 2), 0)
	cycle, closed := nd.walk(0, nb[0])
	if !closed || len(cycle) != nd.n-1 {
		return nil, ErrDimensionMismatch
	}

	tour := make([]int, 0, nd.n+1)
	tour = append(tour, 0)
	tour = append(tour, cycle...)
	tour = append(tour, 0)
	if err := ValidateTour(tour, nd.n, 0); err != nil {
		return nil, err
	}

	return tour, nil
}
