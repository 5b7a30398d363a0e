package tsp

// Expand builds the child of parent obtained by deciding edge at
// (include → Included, otherwise Excluded).
//
// Copy-on-branch: the child owns fresh copies of the decision table and the
// per-row counters, so the include- and exclude-children of one parent can be
// processed by different workers at the same time. The child's bound is
// recomputed and its cursor set to at.
//
// Callers must have checked legality with CheckFeasibility; an illegal
// decision surfaces as a *BoundError from the bound.
//
// Complexity: O(n²).
func Expand(inst *Instance, parent *Node, at Coord, include bool) (*Node, error) {
	var (
		child = parent.clone()
		n     = child.n
		d     = Excluded
		err   error
	)
	if include {
		d = Included
	}
	child.decisions[at.Row*n+at.Col] = d
	child.decisions[at.Col*n+at.Row] = d

	child.remaining[at.Row]--
	child.remaining[at.Col]--
	if include {
		child.included[at.Row]++
		child.included[at.Col]++
	}

	if child.bound, err = EstimateBound(inst, child); err != nil {
		return nil, err
	}
	child.cursor = at
	child.depth = parent.depth + 1

	return child, nil
}
