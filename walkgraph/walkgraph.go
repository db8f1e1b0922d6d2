package walkgraph

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Graph is the dense random-walk view of a weighted undirected graph.
// All derived matrices are computed once at construction and are
// immutable afterwards; accessors hand them out read-only.
type Graph struct {
	n     int
	deg   []float64
	trans *mat.Dense // row-stochastic P = D⁻¹·A
	lap   *mat.Dense // Laplacian L = D − A
}

// NewFromAdjacency ingests a weighted adjacency matrix and derives the
// degree vector, transition matrix and Laplacian.
//
// Validation (in order):
//  1. adj is square                      (ErrNonSquare)
//  2. n ≥ 2                              (ErrTooFewVertices)
//  3. every entry finite                 (ErrNonFinite)
//  4. every entry ≥ 0                    (ErrNegativeWeight)
//  5. |adj[i][j] − adj[j][i]| ≤ Epsilon  (ErrAsymmetry)
//  6. every row sum > 0                  (ErrIsolatedVertex)
//
// Complexity: O(n²) time and space.
func NewFromAdjacency(adj mat.Matrix, opts ...Option) (*Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r, c := adj.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: %d×%d", ErrNonSquare, r, c)
	}
	if r < 2 {
		return nil, fmt.Errorf("%w: n=%d", ErrTooFewVertices, r)
	}
	n := r

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w := adj.At(i, j)
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("%w: entry (%d,%d)", ErrNonFinite, i, j)
			}
			if w < 0 {
				return nil, fmt.Errorf("%w: entry (%d,%d)=%g", ErrNegativeWeight, i, j, w)
			}
			if j > i && math.Abs(w-adj.At(j, i)) > cfg.Epsilon {
				return nil, fmt.Errorf("%w: entries (%d,%d) and (%d,%d)", ErrAsymmetry, i, j, j, i)
			}
		}
	}

	deg := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += adj.At(i, j)
		}
		if sum <= 0 {
			return nil, fmt.Errorf("%w: vertex %d", ErrIsolatedVertex, i)
		}
		deg[i] = sum
	}

	trans := mat.NewDense(n, n, nil)
	lap := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w := adj.At(i, j)
			trans.Set(i, j, w/deg[i])
			if i == j {
				lap.Set(i, j, deg[i]-w)
			} else {
				lap.Set(i, j, -w)
			}
		}
	}

	return &Graph{n: n, deg: deg, trans: trans, lap: lap}, nil
}

// NumVertices returns the vertex count.
func (g *Graph) NumVertices() int { return g.n }

// DegreeVector returns a copy of the weighted degree vector; every
// entry is strictly positive.
func (g *Graph) DegreeVector() []float64 {
	out := make([]float64, g.n)
	copy(out, g.deg)
	return out
}

// TransitionMatrix returns the row-stochastic random-walk matrix,
// read-only.
func (g *Graph) TransitionMatrix() mat.Matrix { return g.trans }

// LaplacianMatrix returns the graph Laplacian, read-only. Consumers use
// it for validation only; the solver itself never touches it.
func (g *Graph) LaplacianMatrix() mat.Matrix { return g.lap }

// Path builds the unit-weight path graph 0–1–…–(n−1).
func Path(n int) (*Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: n=%d", ErrTooFewVertices, n)
	}
	adj := mat.NewDense(n, n, nil)
	for i := 0; i < n-1; i++ {
		adj.Set(i, i+1, 1)
		adj.Set(i+1, i, 1)
	}
	return NewFromAdjacency(adj)
}

// Cycle builds the unit-weight cycle graph on n ≥ 3 vertices.
func Cycle(n int) (*Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: cycle needs n>=3, n=%d", ErrTooFewVertices, n)
	}
	adj := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		adj.Set(i, j, 1)
		adj.Set(j, i, 1)
	}
	return NewFromAdjacency(adj)
}

// Complete builds the unit-weight complete graph on n vertices.
func Complete(n int) (*Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: n=%d", ErrTooFewVertices, n)
	}
	adj := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				adj.Set(i, j, 1)
			}
		}
	}
	return NewFromAdjacency(adj)
}
