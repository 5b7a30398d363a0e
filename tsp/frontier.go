// Package tsp - shared best-first frontier.
//
// Frontier is a min-heap of nodes ordered by (bound, insertion sequence)
// guarded by one sync.Mutex, with a sync.Cond for blocking consumption.
//
// Termination protocol:
//   - A worker that pops a node becomes "active" until it calls Done.
//   - When the heap is empty AND no worker is active, no node can ever be
//     pushed again: the frontier shuts itself down and wakes every waiter.
//   - Shutdown may also be requested explicitly (fatal error, cancellation).
//
// The shutdown flag is an atomic so workers can observe it before every pop
// without taking the lock.
package tsp

import (
	"container/heap"
	"math"
	"sync"
	"sync/atomic"
)

// frontierItem is one queued node plus its FIFO tie-breaker.
type frontierItem struct {
	node *Node
	seq  uint64
}

// nodeHeap implements heap.Interface ordered by ascending bound, then seq.
type nodeHeap []frontierItem

var _ heap.Interface = (*nodeHeap)(nil)

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].node.bound == h[j].node.bound {
		return h[i].seq < h[j].seq
	}

	return h[i].node.bound < h[j].node.bound
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(frontierItem)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = frontierItem{} // drop the node reference
	*h = old[:n-1]

	return it
}

// Frontier is the thread-safe priority queue shared by the worker pool.
// The zero value is not usable; call NewFrontier.
type Frontier struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  nodeHeap
	seq    uint64
	active int     // workers holding a popped node
	cutoff float64 // nodes with bound ≥ cutoff are refused

	shutdown atomic.Bool
}

// NewFrontier returns an empty, open frontier with no cutoff.
func NewFrontier() *Frontier {
	f := &Frontier{cutoff: math.Inf(1)}
	f.cond = sync.NewCond(&f.mu)

	return f
}

// Push inserts nd in O(log n) and wakes one blocked consumer.
// It returns false (and drops nd) when the frontier is shut down or nd is
// dominated by the current cutoff.
func (f *Frontier) Push(nd *Node) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.shutdown.Load() || nd.bound >= f.cutoff {
		return false
	}
	f.seq++
	heap.Push(&f.items, frontierItem{node: nd, seq: f.seq})
	f.cond.Signal()

	return true
}

// PopMin blocks until a node is available or the frontier shuts down.
// On success the caller is marked active and MUST call Done once it has
// pushed every child of the returned node. ok is false after shutdown.
func (f *Frontier) PopMin() (nd *Node, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for len(f.items) == 0 && !f.shutdown.Load() {
		if f.active == 0 {
			// Empty and nobody left to produce work: exhausted.
			f.closeLocked()
			break
		}
		f.cond.Wait()
	}
	if f.shutdown.Load() {
		return nil, false
	}

	it := heap.Pop(&f.items).(frontierItem)
	f.active++

	return it.node, true
}

// Done marks the end of processing for a node returned by PopMin.
func (f *Frontier) Done() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.active--
	if f.active == 0 && len(f.items) == 0 {
		f.closeLocked()
	}
}

// Shutdown stops the frontier: queued nodes are dropped, further pushes are
// refused and every blocked PopMin returns ok=false. Idempotent.
func (f *Frontier) Shutdown() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closeLocked()
}

func (f *Frontier) closeLocked() {
	f.shutdown.Store(true)
	f.items = nil
	f.cond.Broadcast()
}

// IsShutdown reports whether the frontier has been shut down.
func (f *Frontier) IsShutdown() bool { return f.shutdown.Load() }

// PruneAtLeast lowers the cutoff to c and removes every queued node with
// bound ≥ c. A heap only exposes its minimum in order, so the whole backing
// slice is scanned and the heap rebuilt. Returns the number of removed nodes.
//
// Complexity: O(F) for F queued nodes.
func (f *Frontier) PruneAtLeast(c float64) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	if c < f.cutoff {
		f.cutoff = c
	}
	var (
		kept    = f.items[:0]
		removed int
	)
	for _, it := range f.items {
		if it.node.bound >= f.cutoff {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	for i := len(kept); i < len(f.items); i++ {
		f.items[i] = frontierItem{}
	}
	f.items = kept
	heap.Init(&f.items)

	return removed
}

// Len returns the number of queued nodes.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.items)
}

// Bounds returns a snapshot of the queued bounds (heap order, not sorted).
func (f *Frontier) Bounds() []float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]float64, len(f.items))
	for i, it := range f.items {
		out[i] = it.node.bound
	}

	return out
}
