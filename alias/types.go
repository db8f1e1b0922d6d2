package alias

import (
	"errors"
	"math"
)

// Sentinel errors returned by table construction. Callers match them
// with errors.Is; construction never panics on user input.
var (
	// ErrEmptyDistribution indicates a zero-length probability vector.
	ErrEmptyDistribution = errors.New("alias: empty distribution")

	// ErrNegativeWeight indicates a negative entry in the probability
	// vector.
	ErrNegativeWeight = errors.New("alias: negative probability")

	// ErrNotNormalized indicates the probability vector does not sum to
	// 1 within the configured epsilon. The input is never renormalized.
	ErrNotNormalized = errors.New("alias: probabilities do not sum to 1")

	// ErrNonFinite indicates a NaN or ±Inf entry.
	ErrNonFinite = errors.New("alias: non-finite probability")
)

// DefaultEpsilon is the normalization tolerance: construction accepts
// |sum(w) − 1| ≤ DefaultEpsilon.
const DefaultEpsilon = 1e-9

// panic message for option misuse (programmer error, not user input).
const panicEpsilonInvalid = "alias: WithEpsilon: eps must be finite, non-negative"

// Options configures table construction.
type Options struct {
	// Epsilon is the tolerance on |sum(w) − 1|. Default DefaultEpsilon.
	Epsilon float64
}

// Option is a functional option for New.
type Option func(*Options)

// WithEpsilon overrides the normalization tolerance. Panics on a
// negative or non-finite value: that is a programmer error, not data.
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
