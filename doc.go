// Package tourbnb solves small symmetric Travelling Salesman instances with a
// concurrent best-first Branch-and-Bound search.
//
// The module is organized as:
//
//	matrix/      — dense row-major distance tables and shape/value validators
//	tsp/         — the search engine: nodes, lower bound, frontier, workers
//	catalog/     — the built-in YAML catalog of instances
//	prompt/      — line-oriented instance selection with re-prompting
//	render/      — node trace and final report for terminals
//	cmd/tourbnb/ — the command line front end
//
// Quick start:
//
//	inst, _ := tsp.NewInstanceFromRows(rows)
//	res, err := tsp.Solve(ctx, inst, tsp.DefaultOptions())
//
// res.Tour starts and ends at city 0; res.Cost is optimal.
package tourbnb
