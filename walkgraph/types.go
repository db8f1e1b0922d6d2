package walkgraph

import (
	"errors"
	"math"
)

// Sentinel errors for malformed adjacency input.
var (
	// ErrTooFewVertices indicates fewer than two vertices.
	ErrTooFewVertices = errors.New("walkgraph: need at least 2 vertices")

	// ErrNonSquare indicates a non-square adjacency matrix.
	ErrNonSquare = errors.New("walkgraph: adjacency matrix is not square")

	// ErrAsymmetry indicates the adjacency matrix is not symmetric
	// within the configured epsilon.
	ErrAsymmetry = errors.New("walkgraph: adjacency matrix is not symmetric within eps")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("walkgraph: negative edge weight")

	// ErrNonFinite indicates a NaN or ±Inf edge weight.
	ErrNonFinite = errors.New("walkgraph: non-finite edge weight")

	// ErrIsolatedVertex indicates a vertex with zero degree; the random
	// walk is undefined there and the graph cannot be connected.
	ErrIsolatedVertex = errors.New("walkgraph: isolated vertex")
)

// DefaultEpsilon is the symmetry tolerance for adjacency ingestion.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "walkgraph: WithEpsilon: eps must be finite, non-negative"

// Options configures adjacency ingestion.
type Options struct {
	// Epsilon is the symmetry tolerance. Default DefaultEpsilon.
	Epsilon float64
}

// Option is a functional option for NewFromAdjacency.
type Option func(*Options)

// WithEpsilon overrides the symmetry tolerance. Panics on a negative or
// non-finite value.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.Epsilon = eps }
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}
