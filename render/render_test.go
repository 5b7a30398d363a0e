package render_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourbnb/render"
	"github.com/katalvlaran/tourbnb/tsp"
)

var cities5 = [][]float64{
	{0, 3, 4, 2, 7},
	{3, 0, 4, 6, 3},
	{4, 4, 0, 5, 8},
	{2, 6, 5, 0, 6},
	{7, 3, 8, 6, 0},
}

func solve(t *testing.T, tr tsp.Tracer, workers int) (*tsp.Instance, tsp.TSResult) {
	t.Helper()
	inst, err := tsp.NewInstanceFromRows(cities5)
	require.NoError(t, err)

	opts := tsp.DefaultOptions()
	opts.Workers = workers
	opts.Tracer = tr
	res, err := tsp.Solve(context.Background(), inst, opts)
	require.NoError(t, err)

	return inst, res
}

func TestTracer_PrintsNodeTables(t *testing.T) {
	var buf bytes.Buffer
	tr := render.NewTracer(&buf, tsp.CityLabels(5))
	_, res := solve(t, tr, 2)

	out := buf.String()
	require.Contains(t, out, "worker 1")
	require.Contains(t, out, "Popped node [0, 0]")
	require.Contains(t, out, "Lower bound: 17.5")
	require.Contains(t, out, "~#1")
	require.Contains(t, out, "Best route obtained: 19")
	require.Contains(t, out, "A → ")
	require.Equal(t, res.Stats.Popped, strings.Count(out, "Popped node"))
}

func TestTracer_WithoutTables(t *testing.T) {
	var buf bytes.Buffer
	tr := render.NewTracer(&buf, nil)
	tr.Tables = false
	solve(t, tr, 1)

	out := buf.String()
	require.NotContains(t, out, "~#1")
	require.Contains(t, out, "Lower bound:")
	require.Contains(t, out, "0 → ")
}

func TestReport(t *testing.T) {
	_, res := solve(t, nil, 2)
	exact := 19.0

	var buf bytes.Buffer
	require.NoError(t, render.Report{
		Name:    "classic-5",
		Labels:  tsp.CityLabels(5),
		Result:  res,
		Elapsed: 1500 * time.Microsecond,
		Exact:   &exact,
	}.Write(&buf))

	out := buf.String()
	require.Contains(t, out, "Cost: 19")
	require.Contains(t, out, "Route: A → C → B → E → D → A")
	require.Contains(t, out, "Held–Karp: 19 (ok)")
	require.Contains(t, out, "classic-5")
	require.Contains(t, out, "1.5ms")
}

func TestCatalogTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Catalog(&buf, [][]string{{"5", "classic-5", "2", "true", "A B C D E"}}))
	require.Contains(t, buf.String(), "classic-5")
	require.Contains(t, buf.String(), "cities")
}
