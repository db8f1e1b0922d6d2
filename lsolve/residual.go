package lsolve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Residual returns the root-mean-square of L·x − b over all vertices,
// where L is g's Laplacian. Pure diagnostic: tests and verbose logging
// use it, the solver's control flow never does.
//
// Complexity: O(n²).
func Residual(g Graph, b, x []float64) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	n := g.NumVertices()
	if len(b) != n || len(x) != n {
		return 0, fmt.Errorf("%w: len(b)=%d len(x)=%d n=%d", ErrLengthMismatch, len(b), len(x), n)
	}

	l := g.LaplacianMatrix()
	if r, c := l.Dims(); r != n || c != n {
		return 0, fmt.Errorf("%w: L is %d×%d, n=%d", ErrLengthMismatch, r, c, n)
	}

	var lx mat.VecDense
	lx.MulVec(l, mat.NewVecDense(n, x))

	mse := 0.0
	for i := 0; i < n; i++ {
		se := lx.AtVec(i) - b[i]
		mse += se * se
	}
	return math.Sqrt(mse / float64(n)), nil
}
