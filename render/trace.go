// Package render prints the search to a terminal: the optional per-node
// trace and the final report. Styling goes through a lipgloss renderer bound
// to the destination writer, so plain files and pipes get plain text.
package render

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/tourbnb/tsp"
)

// Tracer is a tsp.Tracer that prints every event to w. Workers call Trace
// concurrently; one mutex keeps the blocks of different workers apart.
type Tracer struct {
	mu     sync.Mutex
	w      io.Writer
	labels []string
	st     styles

	// Tables controls whether node decision tables are printed.
	Tables bool
}

var _ tsp.Tracer = (*Tracer)(nil)

type styles struct {
	worker lipgloss.Style
	title  lipgloss.Style
	muted  lipgloss.Style
	good   lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		worker: r.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		title:  r.NewStyle().Bold(true),
		muted:  r.NewStyle().Foreground(lipgloss.Color("8")),
		good:   r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		header: r.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Right),
		cell:   r.NewStyle().Padding(0, 1).Align(lipgloss.Right),
	}
}

// NewTracer returns a Tracer writing to w. labels name the cities in table
// headers and routes.
func NewTracer(w io.Writer, labels []string) *Tracer {
	return &Tracer{
		w:      w,
		labels: labels,
		st:     newStyles(lipgloss.NewRenderer(w)),
		Tables: true,
	}
}

// Trace implements tsp.Tracer.
func (t *Tracer) Trace(ev tsp.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintln(t.w, t.st.worker.Render("worker "+strconv.Itoa(ev.Worker)))
	switch ev.Kind {
	case tsp.EventPopped:
		t.line("Popped node %s", ev.Node.Cursor())
		t.node(ev.Node)
	case tsp.EventIncluded, tsp.EventExcluded:
		verb := "Include"
		if ev.Kind == tsp.EventExcluded {
			verb = "Exclude"
		}
		if !ev.Accepted {
			t.muted("%s node %s dropped, bound %s", verb, ev.Node.Cursor(), num(ev.Node.Bound()))
			break
		}
		t.line("%s node added %s", verb, ev.Node.Cursor())
		t.node(ev.Node)
	case tsp.EventCannotInclude:
		t.muted("Cannot further include. Terminating branch.")
	case tsp.EventCannotExclude:
		t.muted("Cannot further exclude. Terminating branch.")
	case tsp.EventRoute:
		if ev.Tour == nil {
			t.muted("Decisions do not form a route. Node dropped.")
			break
		}
		t.line("Route found: %s (%s)", tsp.FormatTour(ev.Tour, t.labels), num(ev.Cost))
	case tsp.EventIncumbent:
		fmt.Fprintln(t.w, t.st.good.Render("Best route obtained: "+num(ev.Cost)))
		t.line("%s", tsp.FormatTour(ev.Tour, t.labels))
	case tsp.EventPruned:
		t.muted("%d node(s) terminated. Lower bound ≥ route %s", ev.Removed, num(ev.Cost))
	}
	fmt.Fprintln(t.w)
}

func (t *Tracer) line(format string, args ...any) {
	fmt.Fprintf(t.w, format+"\n", args...)
}

func (t *Tracer) muted(format string, args ...any) {
	fmt.Fprintln(t.w, t.st.muted.Render(fmt.Sprintf(format, args...)))
}

// node prints the bound and, when enabled, the decision table of nd:
// one row per city, one column per city, then the included (#1) and
// undecided (~#1) counts.
func (t *Tracer) node(nd *tsp.Node) {
	fmt.Fprintln(t.w, t.st.title.Render("Lower bound: "+num(nd.Bound())))
	if !t.Tables {
		return
	}
	fmt.Fprintln(t.w, nodeTable(nd, t.labels, t.st))
}

// nodeTable renders the decision table of nd.
func nodeTable(nd *tsp.Node, labels []string, st styles) string {
	var (
		n       = nd.Size()
		headers = make([]string, 0, n+3)
		rows    = make([][]string, n)
		r, c    int
	)
	headers = append(headers, "")
	for c = 0; c < n; c++ {
		headers = append(headers, label(labels, c))
	}
	headers = append(headers, "#1", "~#1")

	for r = 0; r < n; r++ {
		row := make([]string, 0, n+3)
		row = append(row, label(labels, r))
		for c = 0; c < n; c++ {
			if r == c {
				row = append(row, "·")
				continue
			}
			row = append(row, nd.Decision(r, c).String())
		}
		row = append(row, strconv.Itoa(nd.IncludedCount(r)), strconv.Itoa(nd.RemainingCount(r)))
		rows[r] = row
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.muted).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return st.header
			}
			return st.cell
		}).
		Headers(headers...).
		Rows(rows...).
		Render()
}

func label(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}

	return strconv.Itoa(i)
}

// num formats a cost without trailing zeros.
func num(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
