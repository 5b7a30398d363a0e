package tsp

import (
	"github.com/katalvlaran/tourbnb/matrix"
)

// Instance is the immutable {cityCount, distances} value shared read-only by
// every worker. It is validated once at construction; nothing mutates it after.
type Instance struct {
	n int
	w []float64 // dense row-major buffer: w[u*n+v]
}

// NewInstance validates dist (see validateDistMatrix) and prefetches it into
// a dense buffer so hot loops avoid interface calls and error returns.
//
// Complexity: O(n²).
func NewInstance(dist matrix.Matrix) (*Instance, error) {
	n, err := validateDistMatrix(dist)
	if err != nil {
		return nil, err
	}

	if d, ok := dist.(*matrix.Dense); ok {
		return &Instance{n: n, w: d.RowMajor()}, nil
	}

	inst := &Instance{n: n, w: make([]float64, n*n)}
	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x, _ = dist.At(i, j) // in range after validation
			inst.w[i*n+j] = x
		}
	}

	return inst, nil
}

// NewInstanceFromRows is a convenience wrapper over matrix.NewDenseFromRows + NewInstance.
func NewInstanceFromRows(rows [][]float64) (*Instance, error) {
	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, ErrDimensionMismatch
	}

	return NewInstance(d)
}

// Size returns the number of cities.
func (in *Instance) Size() int { return in.n }

// Cost returns d(u,v). Indices are not range-checked.
func (in *Instance) Cost(u, v int) float64 { return in.w[u*in.n+v] }

// Matrix returns an independent copy of the distance table.
func (in *Instance) Matrix() *matrix.Dense {
	m, _ := matrix.NewDense(in.n, in.n) // n ≥ MinCities
	var i, j int
	for i = 0; i < in.n; i++ {
		for j = 0; j < in.n; j++ {
			_ = m.Set(i, j, in.w[i*in.n+j])
		}
	}

	return m
}
