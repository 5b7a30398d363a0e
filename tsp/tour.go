// Package tsp - tour utilities.
//
// Helpers that operate purely on tour structure (index sequences), without
// depending on distances:
//   - ValidateTour: enforce Hamiltonian cycle invariants.
//   - CanonicalizeOrientationInPlace: canonical direction w.r.t. neighbours of start.
//   - CopyTour: independent copy of a tour slice.
//   - EqualToursModuloDirection: equality of two closed tours read either way.
//   - FormatTour: "A → D → … → A" rendering with city labels.
package tsp

import (
	"strconv"
	"strings"
)

// ValidateTour enforces Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0]==tour[n]==start,
//	each vertex v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	var (
		seen = make([]bool, n)
		i, v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// CanonicalizeOrientationInPlace fixes the direction of a closed tour: when
// tour[1] > tour[n-1] the interior [1..n-1] is reversed. Both readings of
// the same cycle end up identical.
//
// Complexity: O(n) time, O(1) space.
func CanonicalizeOrientationInPlace(tour []int) error {
	if len(tour) < 3 {
		return ErrDimensionMismatch
	}
	var n = len(tour) - 1
	if tour[0] != tour[n] {
		return ErrDimensionMismatch
	}
	if tour[1] > tour[n-1] {
		reverseArcInPlace(tour, 1, n-1)
	}

	return nil
}

// reverseArcInPlace reverses the inclusive segment tour[i..k].
func reverseArcInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

// CopyTour returns an independent copy of the input tour slice.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// EqualToursModuloDirection reports whether a and b describe the same closed
// cycle from the same start, read in either direction.
//
// Complexity: O(n).
func EqualToursModuloDirection(a, b []int) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}
	var (
		n       = len(a) - 1
		fwd, bw = true, true
		i       int
	)
	if a[0] != b[0] || a[n] != b[n] {
		return false
	}
	for i = 0; i <= n; i++ {
		if a[i] != b[i] {
			fwd = false
		}
		if a[i] != b[n-i] {
			bw = false
		}
	}

	return fwd || bw
}

// FormatTour renders a tour with the given labels, e.g. "A → D → B → A".
// Cities without a label are printed by index.
func FormatTour(tour []int, labels []string) string {
	var sb strings.Builder
	for i, v := range tour {
		if i > 0 {
			sb.WriteString(" → ")
		}
		if v >= 0 && v < len(labels) {
			sb.WriteString(labels[v])
		} else {
			sb.WriteString(strconv.Itoa(v))
		}
	}

	return sb.String()
}

// CityLabels returns the default labels A, B, C, … for n cities.
// Past Z the labels continue as A1, B1, ….
func CityLabels(n int) []string {
	out := make([]string, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = string(rune('A' + i%26))
		if i >= 26 {
			out[i] += strconv.Itoa(i / 26)
		}
	}

	return out
}
