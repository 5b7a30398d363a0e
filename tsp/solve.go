// Package tsp - Solve: the concurrent best-first Branch-and-Bound entry point.
//
// Solve builds one searchContext (frontier, incumbent, counters) per call,
// seeds the frontier with the root node, runs a fixed pool of Options.Workers
// goroutines under an errgroup and collects the incumbent once the pool has
// joined. Nothing is global: two Solve calls never share state.
package tsp

import (
	"context"
	"errors"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// searchContext owns every piece of state shared by the workers of one run.
type searchContext struct {
	inst      *Instance
	frontier  *Frontier
	incumbent *Incumbent
	eps       float64
	log       *zap.Logger
	tracer    Tracer
	stats     counters
}

// counters are updated lock-free from every worker.
type counters struct {
	popped, pushed, rejected, dead atomic.Int64
	terminal, invalid, pruned      atomic.Int64
}

func newSearchContext(inst *Instance, opts Options) *searchContext {
	return &searchContext{
		inst:      inst,
		frontier:  NewFrontier(),
		incumbent: NewIncumbent(),
		eps:       opts.Eps,
		log:       opts.Logger,
		tracer:    opts.Tracer,
	}
}

func (sc *searchContext) trace(ev Event) {
	if sc.tracer != nil {
		sc.tracer.Trace(ev)
	}
}

func (sc *searchContext) snapshot(workers int) Stats {
	return Stats{
		Workers:    workers,
		Popped:     int(sc.stats.popped.Load()),
		Pushed:     int(sc.stats.pushed.Load()),
		Rejected:   int(sc.stats.rejected.Load()),
		Dead:       int(sc.stats.dead.Load()),
		Terminal:   int(sc.stats.terminal.Load()),
		Invalid:    int(sc.stats.invalid.Load()),
		Incumbents: sc.incumbent.Updates(),
		Pruned:     int(sc.stats.pruned.Load()),
	}
}

// Solve finds an optimal tour of inst.
//
// Contracts:
//   - inst comes from NewInstance (validated, symmetric, n ≥ MinCities).
//   - opts.Workers ≥ 1, opts.Eps ≥ 0.
//
// The run ends when the frontier is exhausted (optimality proven), when a
// worker hits a fatal error (returned as-is, e.g. a *BoundError), or when ctx
// is cancelled (ctx.Err() is returned). No goroutine outlives the call.
//
// Errors: ErrBadWorkers, ErrBadEps, ErrBoundComputation, ErrNoFeasibleRoute,
// context errors.
func Solve(ctx context.Context, inst *Instance, opts Options) (TSResult, error) {
	if inst == nil {
		return TSResult{}, ErrDimensionMismatch
	}
	if err := validateOptions(&opts); err != nil {
		return TSResult{}, err
	}

	root, err := NewRootNode(inst)
	if err != nil {
		return TSResult{}, err
	}
	sc := newSearchContext(inst, opts)
	sc.frontier.Push(root)
	sc.log.Debug("search started",
		zap.Int("cities", inst.Size()),
		zap.Int("workers", opts.Workers),
		zap.Float64("root_bound", root.bound))

	// The group context is cancelled by the caller or by the first failing
	// worker; either way the frontier stops handing out nodes.
	g, gctx := errgroup.WithContext(ctx)
	stop := context.AfterFunc(gctx, sc.frontier.Shutdown)
	defer stop()

	for id := 1; id <= opts.Workers; id++ {
		w := newDispatcher(id, sc)
		g.Go(w.run)
	}
	err = g.Wait()

	stats := sc.snapshot(opts.Workers)
	if err != nil {
		return TSResult{Stats: stats}, err
	}
	if cerr := ctx.Err(); cerr != nil {
		return TSResult{Stats: stats}, cerr
	}

	tour, cost, ok := sc.incumbent.Best()
	if !ok {
		return TSResult{Stats: stats}, ErrNoFeasibleRoute
	}
	_ = CanonicalizeOrientationInPlace(tour)
	res := TSResult{Tour: tour, Cost: round1e9(cost), Stats: stats}
	sc.log.Info("search finished",
		zap.Float64("cost", res.Cost),
		zap.Ints("tour", res.Tour),
		zap.Int("popped", stats.Popped),
		zap.Int("pruned", stats.Pruned))

	return res, nil
}

// IsFatal reports whether err aborted the search because of a broken
// invariant rather than bad input or cancellation.
func IsFatal(err error) bool {
	return errors.Is(err, ErrBoundComputation)
}
