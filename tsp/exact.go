package tsp

import "math"

// MaxExactCities caps SolveExact; the DP table grows as n·2ⁿ.
const MaxExactCities = 16

// SolveExact solves inst exactly with the Held–Karp dynamic program and is
// used to cross-check Solve.
//
// dp[mask][j] is the cheapest path that starts at 0, visits exactly the
// cities of mask (bit 0 always set) and ends at j. The tour is closed by
// returning from the best j to 0.
//
// Time:   O(n² · 2ⁿ)
// Memory: O(n · 2ⁿ)
//
// Errors: ErrExactTooLarge for n > MaxExactCities.
func SolveExact(inst *Instance) (TSResult, error) {
	if inst == nil {
		return TSResult{}, ErrDimensionMismatch
	}
	var n = inst.n
	if n > MaxExactCities {
		return TSResult{}, ErrExactTooLarge
	}

	var (
		full   = 1 << n
		dp     = make([]float64, full*n)
		parent = make([]int, full*n)
		inf    = math.Inf(1)
		i      int
	)
	for i = range dp {
		dp[i] = inf
		parent[i] = -1
	}
	dp[1*n+0] = 0

	var (
		mask, prev, j, k int
		cand             float64
	)
	for mask = 1; mask < full; mask += 2 { // odd masks contain city 0
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 || math.IsInf(dp[prev*n+k], 1) {
					continue
				}
				cand = dp[prev*n+k] + inst.Cost(k, j)
				if cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = k
				}
			}
		}
	}

	var (
		all  = full - 1
		best = inf
		last = -1
	)
	for j = 1; j < n; j++ {
		cand = dp[all*n+j] + inst.Cost(j, 0)
		if cand < best {
			best, last = cand, j
		}
	}
	if last < 0 {
		return TSResult{}, ErrNoFeasibleRoute
	}

	tour := make([]int, n+1)
	mask, j = all, last
	for i = n - 1; i >= 1; i-- {
		tour[i] = j
		k = parent[mask*n+j]
		mask ^= 1 << j
		j = k
	}
	_ = CanonicalizeOrientationInPlace(tour)

	return TSResult{Tour: tour, Cost: round1e9(best)}, nil
}
