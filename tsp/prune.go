package tsp

// PruneReport describes one pruning pass.
type PruneReport struct {
	Threshold float64 // nodes with bound ≥ Threshold were discarded
	Removed   int     // how many queued nodes were discarded
	Exhausted bool    // the frontier was left empty
}

// Prune discards every frontier node that cannot beat an incumbent of the
// given cost: bound ≥ cost − eps. The threshold also becomes the frontier
// cutoff, so children pushed later with such a bound are refused as well.
//
// An exhausted frontier proves the incumbent optimal once the workers that
// still hold popped nodes are done; the Frontier itself signals shutdown at
// that point (see Frontier.Done), never earlier.
func Prune(f *Frontier, cost, eps float64) PruneReport {
	rep := PruneReport{Threshold: cost - eps}
	rep.Removed = f.PruneAtLeast(rep.Threshold)
	rep.Exhausted = f.Len() == 0

	return rep
}
