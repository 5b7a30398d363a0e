// Package tsp - lower bound for partial edge assignments.
//
// EstimateBound implements the per-row two-cheapest-edge relaxation:
//
//	For each city r, every tour uses exactly two edges at r. Edges already
//	Included at r are paid in full; the 2 − included[r] missing edges cost at
//	least as much as the cheapest Undecided edges of row r (Excluded edges are
//	never available). Summing over all rows counts each tour edge twice,
//	hence the final halving:
//
//	  LB = ½ · Σ_r ( Σ_{c: Included} d(r,c) + Σ_{k < 2−included[r]} k-th cheapest Undecided d(r,·) )
//
// The bound is admissible (LB ≤ cost of any completion of the node) and, for a
// fully decided node with two Included edges per row, equals the tour cost.
//
// Complexity: O(n²) per node, no allocations.
package tsp

import (
	"fmt"
	"math"
)

// BoundError reports a row whose degree deficit cannot be filled from its
// Undecided edges. It wraps ErrBoundComputation.
type BoundError struct {
	Row  int // offending row
	Need int // 2 − included[Row]
	Have int // Undecided edges available in Row
}

// Error implements error.
func (e *BoundError) Error() string {
	return fmt.Sprintf("%s: row %d needs %d undecided edges, has %d",
		ErrBoundComputation.Error(), e.Row, e.Need, e.Have)
}

// Unwrap lets errors.Is(err, ErrBoundComputation) match.
func (e *BoundError) Unwrap() error { return ErrBoundComputation }

// EstimateBound returns the lower bound of nd over inst (see file header).
// It is a pure function of nd's decisions: identical input yields an
// identical result. A *BoundError means an upstream feasibility bug.
func EstimateBound(inst *Instance, nd *Node) (float64, error) {
	var (
		n     = nd.n
		total float64
		r, c  int
		d     Decision
		need  int
		have  int
		// two cheapest Undecided costs of the row, ties kept by column order
		min1, min2 float64
	)
	for r = 0; r < n; r++ {
		min1, min2 = math.Inf(1), math.Inf(1)
		have = 0
		for c = 0; c < n; c++ {
			if c == r {
				continue
			}
			d = nd.decisions[r*n+c]
			switch d {
			case Included:
				total += inst.Cost(r, c)
			case Undecided:
				have++
				w := inst.Cost(r, c)
				if w < min1 {
					min1, min2 = w, min1
				} else if w < min2 {
					min2 = w
				}
			}
		}

		need = 2 - nd.included[r]
		if have < need {
			return 0, &BoundError{Row: r, Need: need, Have: have}
		}
		switch need {
		case 2:
			total += min1 + min2
		case 1:
			total += min1
		}
	}

	return total / 2, nil
}
