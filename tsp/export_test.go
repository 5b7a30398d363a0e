package tsp

// NodeWithBound returns a bare node carrying only a bound, for frontier tests.
func NodeWithBound(b float64) *Node { return &Node{bound: b} }

// IncludedEdges exposes the included edge count.
func (nd *Node) IncludedEdges() int { return nd.includedEdges() }
