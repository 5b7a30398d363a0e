package tsp

// Advance returns the coordinate that follows c in the row-major walk over the
// strict upper triangle of an n×n table, and whether c was already the last one.
//
//	(r, c) → (r, c+1)        while c < n−1
//	(r, n−1) → (r+1, r+2)    at the end of a row
//	(n−2, n−1)               terminal: every coordinate has been decided
//
// The root cursor (0,0) advances to (0,1). Terminal means "all coordinates
// exhausted", not "a Hamiltonian cycle was formed"; callers validate that.
//
// Complexity: O(1).
func Advance(n int, c Coord) (Coord, bool) {
	if c.Row == n-2 && c.Col == n-1 {
		return c, true
	}
	if c.Col >= n-1 {
		return Coord{Row: c.Row + 1, Col: c.Row + 2}, false
	}

	return Coord{Row: c.Row, Col: c.Col + 1}, false
}
