package tsp

// EventKind classifies trace events emitted by the workers.
type EventKind int

const (
	// EventPopped: a worker took Node from the frontier.
	EventPopped EventKind = iota
	// EventIncluded: the include-child Node was built and offered to the frontier.
	EventIncluded
	// EventExcluded: the exclude-child Node was built and offered to the frontier.
	EventExcluded
	// EventCannotInclude: including the edge at Node's next coordinate is illegal.
	EventCannotInclude
	// EventCannotExclude: excluding the edge at Node's next coordinate is illegal.
	EventCannotExclude
	// EventRoute: Node is fully decided; Tour/Cost hold the route (Tour nil if invalid).
	EventRoute
	// EventIncumbent: the route in Tour/Cost became the new incumbent.
	EventIncumbent
	// EventPruned: Removed frontier nodes had bound ≥ Cost.
	EventPruned
)

var eventNames = [...]string{
	EventPopped:        "popped",
	EventIncluded:      "include",
	EventExcluded:      "exclude",
	EventCannotInclude: "cannot-include",
	EventCannotExclude: "cannot-exclude",
	EventRoute:         "route",
	EventIncumbent:     "incumbent",
	EventPruned:        "pruned",
}

// String implements fmt.Stringer.
func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}

	return eventNames[k]
}

// Event is one trace record. Node is read-only and may be retained.
type Event struct {
	Worker   int
	Kind     EventKind
	Node     *Node
	Accepted bool // EventIncluded/EventExcluded: the frontier took the child
	Tour     []int
	Cost     float64
	Removed  int
}

// Tracer receives trace events. Implementations are called concurrently
// from several workers and must serialize their own output.
type Tracer interface {
	Trace(ev Event)
}

// TracerFunc adapts a plain function to Tracer.
type TracerFunc func(ev Event)

// Trace implements Tracer.
func (fn TracerFunc) Trace(ev Event) { fn(ev) }
