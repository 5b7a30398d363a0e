// Package matrix provides the dense, row-major float64 matrix used to carry
// distance tables into the tour search.
//
// The package is deliberately small:
//
//   - Matrix — the read/write interface every solver accepts.
//   - Dense  — a contiguous row-major implementation with bounds-checked access.
//   - NewDenseFromRows — build a Dense from a [][]float64 literal (catalog, tests).
//   - Validators — square / zero-diagonal / symmetric / finite checks that
//     return plain sentinels, so callers can wrap them uniformly.
//
// All checks are deterministic and allocation-free. No function panics on user
// input; every failure is reported through a sentinel from errors.go and can be
// matched with errors.Is.
package matrix
