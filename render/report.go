package render

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/tourbnb/tsp"
)

// Report is the final summary printed after a search.
type Report struct {
	Name    string
	Labels  []string
	Result  tsp.TSResult
	Elapsed time.Duration

	// Exact is the Held–Karp cost when a cross-check was requested.
	Exact *float64
}

// Write prints r to w: cost, route and search statistics.
func (r Report) Write(w io.Writer) error {
	var (
		st  = newStyles(lipgloss.NewRenderer(w))
		res = r.Result
	)
	if _, err := fmt.Fprintf(w, "%s %s\n%s %s\n",
		st.title.Render("Cost:"), num(res.Cost),
		st.title.Render("Route:"), st.good.Render(tsp.FormatTour(res.Tour, r.Labels)),
	); err != nil {
		return err
	}
	if r.Exact != nil {
		verdict := st.good.Render("ok")
		if *r.Exact != res.Cost {
			verdict = st.worker.Render("MISMATCH")
		}
		if _, err := fmt.Fprintf(w, "%s %s (%s)\n", st.title.Render("Held–Karp:"), num(*r.Exact), verdict); err != nil {
			return err
		}
	}

	s := res.Stats
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(st.muted).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.header
			}
			return st.cell
		}).
		Headers("instance", "workers", "popped", "pushed", "rejected", "dead", "routes", "improved", "pruned", "elapsed").
		Row(r.Name,
			strconv.Itoa(s.Workers), strconv.Itoa(s.Popped), strconv.Itoa(s.Pushed),
			strconv.Itoa(s.Rejected), strconv.Itoa(s.Dead), strconv.Itoa(s.Terminal),
			strconv.Itoa(s.Incumbents), strconv.Itoa(s.Pruned),
			r.Elapsed.Round(time.Microsecond).String())
	_, err := fmt.Fprintln(w, tbl.Render())

	return err
}

// Catalog prints one line per entry: city count, name, suggested workers.
func Catalog(w io.Writer, rows [][]string) error {
	st := newStyles(lipgloss.NewRenderer(w))
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.muted).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.header
			}
			return st.cell
		}).
		Headers("cities", "name", "workers", "verbose", "labels").
		Rows(rows...)
	_, err := fmt.Fprintln(w, tbl.Render())

	return err
}
