package tsp

import "math"

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost sums d(tour[i], tour[i+1]) along a closed tour of inst.
//
// Contract:
//   - tour is closed: len(tour) == n+1, tour[0] == tour[n].
//   - every index is in [0..n-1].
//
// Returns ErrDimensionMismatch on any shape violation.
//
// Complexity: O(n).
func TourCost(inst *Instance, tour []int) (float64, error) {
	if inst == nil || len(tour) != inst.n+1 || tour[0] != tour[inst.n] {
		return 0, ErrDimensionMismatch
	}

	var (
		sum  float64
		i    int
		u, v int
	)
	for i = 0; i < inst.n; i++ {
		u, v = tour[i], tour[i+1]
		if u < 0 || u >= inst.n || v < 0 || v >= inst.n {
			return 0, ErrDimensionMismatch
		}
		sum += inst.Cost(u, v)
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
