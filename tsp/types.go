package tsp

import (
	"errors"
	"runtime"

	"go.uber.org/zap"
)

// Sentinel errors. Callers match them with errors.Is; context is added with %w
// at package boundaries only.
var (
	// ErrNonSquare is returned when the distance matrix is not n×n.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrDimensionMismatch flags malformed shapes, NaN entries or broken tours.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrTooFewCities is returned for n < MinCities (no cycle of distinct cities).
	ErrTooFewCities = errors.New("tsp: at least 3 cities required")

	// ErrNonZeroDiagonal is returned when some d[i][i] ≠ 0.
	ErrNonZeroDiagonal = errors.New("tsp: diagonal must be zero")

	// ErrNegativeWeight is returned for a negative distance.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrIncompleteGraph is returned when an off-diagonal distance is ±Inf.
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrAsymmetry is returned when d[i][j] ≠ d[j][i].
	ErrAsymmetry = errors.New("tsp: distance matrix is not symmetric")

	// ErrStartOutOfRange is returned when a tour start vertex is not in [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrBoundComputation marks a row that lacks enough undecided edges to
	// complete its degree. It indicates a broken feasibility invariant and is
	// fatal for the search (see BoundError).
	ErrBoundComputation = errors.New("tsp: bound computation failed")

	// ErrNoFeasibleRoute is returned when the frontier drains before any
	// complete tour was recorded.
	ErrNoFeasibleRoute = errors.New("tsp: no feasible route")

	// ErrBadWorkers is returned for Options.Workers < 1.
	ErrBadWorkers = errors.New("tsp: worker count must be ≥ 1")

	// ErrBadEps is returned for a negative or NaN Options.Eps.
	ErrBadEps = errors.New("tsp: eps must be finite and ≥ 0")

	// ErrExactTooLarge is returned by SolveExact above MaxExactCities.
	ErrExactTooLarge = errors.New("tsp: instance too large for Held–Karp")
)

const (
	// MinCities is the smallest instance the search accepts.
	MinCities = 3

	// DefaultEps is the pruning tolerance: a node is dominated when
	// bound ≥ incumbent − Eps.
	DefaultEps = 1e-9
)

// TSResult holds the outcome of a TSP solver.
type TSResult struct {
	// Tour is the sequence of city indices, starting and ending at 0.
	// For n cities, len(Tour) == n+1 and Tour[0]==Tour[n]==0.
	Tour []int

	// Cost is the total distance of the cycle, rounded to 1e-9.
	Cost float64

	// Stats summarizes the Branch-and-Bound run (zero for SolveExact).
	Stats Stats
}

// Stats is a snapshot of search counters, collected lock-free by workers.
type Stats struct {
	Workers    int // size of the worker pool
	Popped     int // nodes taken from the frontier
	Pushed     int // children accepted by the frontier
	Rejected   int // children refused by the frontier (cutoff or shutdown)
	Dead       int // include/exclude branches found infeasible
	Terminal   int // fully decided nodes reached
	Invalid    int // terminal nodes that did not form a Hamiltonian cycle
	Incumbents int // strictly improving tours recorded
	Pruned     int // frontier entries discarded by Prune
}

// Options configures Solve.
//
//	Workers – size of the fixed worker pool (≥ 1).
//	Eps     – pruning tolerance (≥ 0); see DefaultEps.
//	Logger  – structured logger; nil means zap.NewNop().
//	Tracer  – optional per-node trace sink; nil disables tracing.
type Options struct {
	Workers int
	Eps     float64
	Logger  *zap.Logger
	Tracer  Tracer
}

// DefaultOptions returns Options with one worker per available CPU,
// DefaultEps, a no-op logger and no tracer.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Eps:     DefaultEps,
		Logger:  zap.NewNop(),
	}
}
