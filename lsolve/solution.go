package lsolve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// CanonicalSolution maps an occupancy estimate to the canonical
// solution of the Laplacian system:
//
//	x[i] = (−b[n−1]/β) · (η[i]/d[i]),  then mean-centered
//
// so that the result is the unique solution orthogonal to the all-ones
// vector. Centering is required because the Laplacian is singular:
// L·x = b determines x only up to an additive constant.
//
// Validation: eta, deg and b must share one length n ≥ 1; beta must be
// positive and finite; deg strictly positive; b[n−1] non-zero.
func CanonicalSolution(eta []float64, beta float64, deg, b []float64) ([]float64, error) {
	n := len(eta)
	if n == 0 || len(deg) != n || len(b) != n {
		return nil, fmt.Errorf("%w: len(eta)=%d len(deg)=%d len(b)=%d",
			ErrLengthMismatch, n, len(deg), len(b))
	}
	if beta <= 0 || math.IsNaN(beta) || math.IsInf(beta, 0) {
		return nil, fmt.Errorf("%w: beta=%g", ErrBadBeta, beta)
	}
	for i, d := range deg {
		if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, fmt.Errorf("%w: d[%d]=%g", ErrBadDegree, i, d)
		}
	}
	if b[n-1] == 0 {
		return nil, ErrZeroReferenceDemand
	}

	return canonicalSolution(eta, beta, deg, b[n-1]), nil
}

// canonicalSolution is the unchecked core shared with Solve.
func canonicalSolution(eta []float64, beta float64, deg []float64, bRef float64) []float64 {
	n := len(eta)
	scale := -bRef / beta

	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = scale * eta[i] / deg[i]
	}

	mean := stat.Mean(x, nil)
	for i := range x {
		x[i] -= mean
	}
	return x
}

// canonicalSolutionZStar is the superseded reconstruction that adds an
// explicit z* correction weighted by d[i]/Σd instead of centering. On
// regular graphs it coincides with the centered form (d[i]/Σd = 1/n
// turns the correction into mean subtraction); on irregular graphs the
// two diverge and the centered form is the correct one. Kept unexported
// for the numerical comparison in tests.
func canonicalSolutionZStar(eta []float64, beta float64, deg []float64, bRef float64) []float64 {
	n := len(eta)
	scale := -bRef / beta

	zstar := 0.0
	for i := 0; i < n; i++ {
		zstar -= eta[i] / deg[i]
	}
	sumDeg := floats.Sum(deg)

	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = scale * (eta[i]/deg[i] + zstar*deg[i]/sumDeg)
	}
	return x
}
