package tsp

import (
	"math"
	"sync"
)

// Incumbent holds the best complete tour found so far.
//
// Policy: a new tour replaces the current one only when its cost is strictly
// lower. Workers may complete tours in any order, so the first completion is
// not assumed optimal; the pool keeps comparing until the frontier drains.
type Incumbent struct {
	mu      sync.RWMutex
	tour    []int
	cost    float64
	updates int
}

// NewIncumbent returns an empty tracker (cost +Inf).
func NewIncumbent() *Incumbent {
	return &Incumbent{cost: math.Inf(1)}
}

// Offer records tour if cost is strictly lower than the current best.
// The tour is copied; the caller keeps ownership of its slice.
func (in *Incumbent) Offer(tour []int, cost float64) bool {
	in.mu.Lock()
	defer in.mu.Unlock()

	if !(cost < in.cost) {
		return false
	}
	in.tour = CopyTour(tour)
	in.cost = cost
	in.updates++

	return true
}

// Cost returns the incumbent cost, or (+Inf, false) when nothing is recorded.
func (in *Incumbent) Cost() (float64, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()

	return in.cost, in.tour != nil
}

// Best returns a copy of the incumbent tour and its cost.
func (in *Incumbent) Best() (tour []int, cost float64, ok bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()

	if in.tour == nil {
		return nil, math.Inf(1), false
	}

	return CopyTour(in.tour), in.cost, true
}

// Updates returns how many times the incumbent improved.
func (in *Incumbent) Updates() int {
	in.mu.RLock()
	defer in.mu.RUnlock()

	return in.updates
}
