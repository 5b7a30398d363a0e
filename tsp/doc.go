// Package tsp provides a concurrent, best-first Branch-and-Bound solver for
// the symmetric Travelling Salesman Problem on small, fixed instances.
//
// The search explores a binary tree of partial edge assignments. Each Node
// records, for every pair of cities, whether the edge is Included, Excluded
// or still Undecided; decisions are taken in row-major order over the strict
// upper triangle of the distance matrix.
//
// Building blocks (leaves first):
//
//   - Instance        — immutable, validated distance table (n ≥ 3).
//   - Node            — one partial assignment; never mutated after creation.
//   - EstimateBound   — per-row two-cheapest-edge relaxation (admissible).
//   - Advance         — next decision coordinate + terminal detection.
//   - CheckFeasibility — immutable include/exclude legality record.
//   - Expand          — copy-on-branch child construction.
//   - Frontier        — mutex + condition-variable priority queue with
//     blocking PopMin, cutoff pruning and quiescence-based termination.
//   - Incumbent       — best complete tour so far (replace on strictly lower cost).
//   - Prune           — drops dominated frontier entries once a tour is known.
//   - Solve           — runs a fixed pool of workers over a shared Frontier.
//
// Complexity:
//   - Worst case exponential in n (exact search); bounds keep it practical for n≲10.
//   - Per node: O(n²) copy + O(n²) bound; frontier operations O(log F).
//
// SolveExact (Held–Karp) is kept as an independent reference solver used to
// cross-check results.
package tsp
