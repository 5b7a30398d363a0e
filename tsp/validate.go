// Package tsp - validation utilities shared by the Branch-and-Bound and exact solvers.
//
// This file contains small, deterministic helpers that:
//  1. Validate Options (worker count, tolerance).
//  2. Validate distance matrices (shape, diagonal, negativity, ∞, symmetry).
//
// Design principles:
//   - Side-effect free; no logging, no panics on user input.
//   - Only sentinel errors from types.go.
//   - O(n²) worst-case where n is the matrix order.
package tsp

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/tourbnb/matrix"
)

// symTol is a structural tolerance for symmetry/diagonal checks.
// It is independent from Options.Eps (which governs pruning).
const symTol = 1e-12

// validateOptions checks Options and fills the nil logger.
//
// Complexity: O(1).
func validateOptions(opts *Options) error {
	if opts.Workers < 1 {
		return ErrBadWorkers
	}
	if math.IsNaN(opts.Eps) || math.IsInf(opts.Eps, 0) || opts.Eps < 0 {
		return ErrBadEps
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return nil
}

// validateDistMatrix performs full matrix validation:
//   - non-nil, square, n ≥ MinCities,
//   - diagonal ≈ 0 (|a_ii| ≤ symTol),
//   - no NaN, no ±Inf, no negative off-diagonal distances,
//   - |a_ij − a_ji| ≤ symTol.
//
// Returns n (matrix order) on success.
//
// Complexity: O(n²).
func validateDistMatrix(dist matrix.Matrix) (int, error) {
	// Stage 1: shape.
	if err := matrix.ValidateSquare(dist); err != nil {
		if errors.Is(err, matrix.ErrNonSquare) {
			return 0, ErrNonSquare
		}
		return 0, ErrDimensionMismatch
	}
	var n = dist.Rows()
	if n < MinCities {
		return 0, ErrTooFewCities
	}

	// Stage 2: per-entry values.
	var (
		i, j int
		aij  float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if aij, err = dist.At(i, j); err != nil {
				return 0, ErrDimensionMismatch
			}
			if math.IsNaN(aij) {
				return 0, ErrDimensionMismatch
			}
			if i == j {
				continue
			}
			if aij < 0 {
				return 0, ErrNegativeWeight
			}
			if math.IsInf(aij, 0) {
				return 0, ErrIncompleteGraph
			}
		}
	}

	// Stage 3: diagonal, then symmetry over the upper triangle.
	if err = matrix.ValidateZeroDiagonal(dist, symTol); err != nil {
		return 0, ErrNonZeroDiagonal
	}
	if err = matrix.ValidateSymmetric(dist, symTol); err != nil {
		return 0, ErrAsymmetry
	}

	return n, nil
}
