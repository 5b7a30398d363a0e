package tsp

import (
	"go.uber.org/zap"
)

// workerState is the per-worker state machine:
//
//	WaitForWork → Popped → Advanced → {TerminalFound | Expanding} → WaitForWork
//
// and Exited once shutdown is observed.
type workerState int

const (
	stateWaitForWork workerState = iota
	statePopped
	stateAdvanced
	stateTerminalFound
	stateExpanding
	stateExited
)

var stateNames = [...]string{
	stateWaitForWork:   "wait-for-work",
	statePopped:        "popped",
	stateAdvanced:      "advanced",
	stateTerminalFound: "terminal-found",
	stateExpanding:     "expanding",
	stateExited:        "exited",
}

func (s workerState) String() string { return stateNames[s] }

// dispatcher is one worker of the pool. It holds no shared state of its own;
// everything shared lives in the searchContext.
type dispatcher struct {
	id    int
	sc    *searchContext
	log   *zap.Logger
	state workerState
}

func newDispatcher(id int, sc *searchContext) *dispatcher {
	return &dispatcher{id: id, sc: sc, log: sc.log.With(zap.Int("worker", id))}
}

// run consumes the frontier until shutdown. The frontier lock is only held
// inside Push/PopMin/Done/Prune; bounds and feasibility run unlocked.
func (d *dispatcher) run() error {
	d.log.Debug("worker started")
	defer func() {
		d.state = stateExited
		d.log.Debug("worker exited", zap.Stringer("state", d.state))
	}()

	var f = d.sc.frontier
	for {
		d.state = stateWaitForWork
		if f.IsShutdown() {
			return nil
		}
		nd, ok := f.PopMin()
		if !ok {
			return nil
		}
		d.state = statePopped

		err := d.step(nd)
		f.Done()
		if err != nil {
			d.log.Error("search aborted", zap.Error(err))
			f.Shutdown()
			return err
		}
	}
}

// step processes one popped node.
func (d *dispatcher) step(nd *Node) error {
	var sc = d.sc
	sc.stats.popped.Add(1)
	sc.trace(Event{Worker: d.id, Kind: EventPopped, Node: nd})

	at, terminal := Advance(sc.inst.Size(), nd.cursor)
	d.state = stateAdvanced
	if terminal {
		d.state = stateTerminalFound
		return d.complete(nd)
	}

	d.state = stateExpanding
	feas := CheckFeasibility(nd, at)
	if feas.Dead() {
		d.log.Debug("dead node", zap.Stringer("at", at), zap.Float64("bound", nd.bound))
	}
	if err := d.branch(nd, feas, true); err != nil {
		return err
	}

	return d.branch(nd, feas, false)
}

// branch builds and pushes one child, or records the branch as dead.
func (d *dispatcher) branch(nd *Node, feas Feasibility, include bool) error {
	var (
		sc    = d.sc
		legal = feas.CanExclude
		kind  = EventExcluded
		dead  = EventCannotExclude
	)
	if include {
		legal, kind, dead = feas.CanInclude, EventIncluded, EventCannotInclude
	}
	if !legal {
		sc.stats.dead.Add(1)
		sc.trace(Event{Worker: d.id, Kind: dead, Node: nd})
		return nil
	}

	child, err := Expand(sc.inst, nd, feas.At, include)
	if err != nil {
		return err
	}
	accepted := sc.frontier.Push(child)
	if accepted {
		sc.stats.pushed.Add(1)
	} else {
		sc.stats.rejected.Add(1)
	}
	sc.trace(Event{Worker: d.id, Kind: kind, Node: child, Accepted: accepted})

	return nil
}

// complete handles a fully decided node: validate, offer, prune.
func (d *dispatcher) complete(nd *Node) error {
	var sc = d.sc
	sc.stats.terminal.Add(1)

	tour, err := nd.Tour()
	if err != nil {
		// Unreachable while CheckFeasibility holds; dropped, not fatal.
		sc.stats.invalid.Add(1)
		d.log.Warn("terminal node is not a tour", zap.Error(err))
		sc.trace(Event{Worker: d.id, Kind: EventRoute, Node: nd})
		return nil
	}
	cost, err := TourCost(sc.inst, tour)
	if err != nil {
		return err
	}
	sc.trace(Event{Worker: d.id, Kind: EventRoute, Node: nd, Tour: tour, Cost: cost})

	if !sc.incumbent.Offer(tour, cost) {
		return nil
	}
	d.log.Debug("incumbent improved", zap.Float64("cost", cost), zap.Ints("tour", tour))
	sc.trace(Event{Worker: d.id, Kind: EventIncumbent, Node: nd, Tour: tour, Cost: cost})

	rep := Prune(sc.frontier, cost, sc.eps)
	sc.stats.pruned.Add(int64(rep.Removed))
	sc.trace(Event{Worker: d.id, Kind: EventPruned, Node: nd, Cost: cost, Removed: rep.Removed})
	if rep.Exhausted {
		d.log.Debug("frontier exhausted by pruning", zap.Float64("cost", cost))
	}

	return nil
}
