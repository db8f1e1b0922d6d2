package lsolve

import (
	"errors"
	"math"

	"github.com/laplaq/laplaq/queuesim"
	"github.com/laplaq/laplaq/urand"
)

// Sentinel errors returned by the solver. Match with errors.Is; wrapped
// forms carry context (indices, values) but keep the sentinel.
var (
	// ErrNilGraph indicates a nil Graph collaborator.
	ErrNilGraph = errors.New("lsolve: graph is nil")

	// ErrTooFewVertices indicates a graph with fewer than two vertices.
	ErrTooFewVertices = errors.New("lsolve: need at least 2 vertices")

	// ErrDemandLength indicates len(b) does not match the vertex count.
	ErrDemandLength = errors.New("lsolve: demand vector length mismatch")

	// ErrBadDegree indicates a non-positive or non-finite degree entry.
	ErrBadDegree = errors.New("lsolve: degree entries must be positive and finite")

	// ErrNotStochastic indicates a transition-matrix row that does not
	// sum to 1 within the configured epsilon, or a dimension mismatch.
	ErrNotStochastic = errors.New("lsolve: transition matrix is not row-stochastic")

	// ErrZeroReferenceDemand indicates b[n−1] == 0; the injection
	// vector J = −b/b[n−1] is then undefined. Detected up front, never
	// silently corrected.
	ErrZeroReferenceDemand = errors.New("lsolve: reference demand b[n-1] is zero")

	// ErrLengthMismatch indicates inconsistent vector lengths passed to
	// CanonicalSolution or Residual.
	ErrLengthMismatch = errors.New("lsolve: vector length mismatch")

	// ErrBadBeta indicates a non-positive injection-rate scale.
	ErrBadBeta = errors.New("lsolve: beta must be positive and finite")

	// ErrNoStableRate indicates the halving search exhausted its budget
	// without finding a β that keeps every queue inside the stability
	// bound; this points at a malformed instance (disconnected graph,
	// inconsistent demand), not at bad luck.
	ErrNoStableRate = errors.New("lsolve: no stable injection rate found")
)

// Documented defaults: the single source of truth for the solver's
// configuration surface. Epoch-related defaults live in queuesim.
const (
	// DefaultE1 and DefaultE2 are the occupancy-bound tolerances: a
	// candidate β is accepted once max(η) ≤ 0.75·(1 − e1 − e2).
	DefaultE1 = 0.1
	DefaultE2 = 0.1

	// DefaultK controls the sample budget together with e2: a run must
	// simulate at least 4·ln n/(k²·e2²) steps before it may stop.
	DefaultK = 0.1

	// DefaultInitialBeta is the starting injection-rate scale; the
	// search halves it before the first simulation, so the first
	// candidate is DefaultInitialBeta/2.
	DefaultInitialBeta = 1.0

	// DefaultMaxHalvings bounds the halving search; β never increases,
	// so the search runs at most this many simulations.
	DefaultMaxHalvings = 64

	// DefaultEpsilon is the numeric tolerance for row-stochasticity and
	// alias-table normalization checks.
	DefaultEpsilon = 1e-9
)

// stabilityMargin keeps accepted occupancies a fixed safety factor
// below the theoretical boundary: accept iff max(η) ≤ 0.75·(1−e1−e2).
const stabilityMargin = 0.75

// Panic messages for option misuse (programmer errors; user-triggered
// conditions always surface as sentinel errors instead).
const (
	panicTolerancesInvalid  = "lsolve: WithTolerances: e1, e2, k must be positive, finite, and e1+e2 < 1"
	panicInitialBetaInvalid = "lsolve: WithInitialBeta: beta must be positive and finite"
	panicMaxHalvingsInvalid = "lsolve: WithMaxHalvings: budget must be positive"
	panicEpsilonInvalid     = "lsolve: WithEpsilon: eps must be finite, non-negative"
	panicSourceNil          = "lsolve: WithSource: source must be non-nil"
)

// Options configures a Solve call. Zero values are never used directly;
// DefaultOptions supplies the documented defaults and functional
// options override them.
type Options struct {
	// E1, E2, K are the tolerance constants (see the Default constants
	// for their roles).
	E1, E2, K float64

	// InitialBeta is the starting injection-rate scale (> the expected
	// critical rate). Default DefaultInitialBeta.
	InitialBeta float64

	// MaxHalvings bounds the β halving search. Default
	// DefaultMaxHalvings.
	MaxHalvings int

	// EpochLength, MaxEpochs and DriftTolerance tune the simulation's
	// stopping rule; defaults come from queuesim.
	EpochLength    int
	MaxEpochs      int
	DriftTolerance float64

	// Epsilon is the numeric tolerance for input validation. Default
	// DefaultEpsilon.
	Epsilon float64

	// Source supplies all randomness. Default: entropy-seeded. Use
	// WithSeed for reproducible solves.
	Source urand.Source

	// Verbose enables advisory logging of the accepted β and the RMS
	// residual through the standard logger. Diagnostics only; never
	// part of the functional contract.
	Verbose bool
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithTolerances sets the three tolerance constants e1, e2 and k.
// Panics unless all are positive and finite and e1+e2 < 1 (otherwise
// the stability bound would be non-positive and no β could ever be
// accepted).
func WithTolerances(e1, e2, k float64) Option {
	ok := e1 > 0 && e2 > 0 && k > 0 &&
		!math.IsInf(e1, 0) && !math.IsInf(e2, 0) && !math.IsInf(k, 0) &&
		e1+e2 < 1
	if !ok {
		panic(panicTolerancesInvalid)
	}

	return func(o *Options) { o.E1, o.E2, o.K = e1, e2, k }
}

// WithInitialBeta sets the starting injection-rate scale. Panics unless
// beta is positive and finite.
func WithInitialBeta(beta float64) Option {
	if beta <= 0 || math.IsNaN(beta) || math.IsInf(beta, 0) {
		panic(panicInitialBetaInvalid)
	}

	return func(o *Options) { o.InitialBeta = beta }
}

// WithMaxHalvings bounds the halving search. Panics if budget <= 0.
func WithMaxHalvings(budget int) Option {
	if budget <= 0 {
		panic(panicMaxHalvingsInvalid)
	}

	return func(o *Options) { o.MaxHalvings = budget }
}

// WithEpochLength sets the simulation's steps per epoch.
func WithEpochLength(length int) Option {
	if length <= 0 {
		panic("lsolve: WithEpochLength: length must be positive")
	}

	return func(o *Options) { o.EpochLength = length }
}

// WithMaxEpochs sets the simulation's epoch cap.
func WithMaxEpochs(limit int) Option {
	if limit <= 0 {
		panic("lsolve: WithMaxEpochs: cap must be positive")
	}

	return func(o *Options) { o.MaxEpochs = limit }
}

// WithDriftTolerance sets the simulation's stopping threshold.
func WithDriftTolerance(tol float64) Option {
	if tol <= 0 {
		panic("lsolve: WithDriftTolerance: tolerance must be positive")
	}

	return func(o *Options) { o.DriftTolerance = tol }
}

// WithEpsilon overrides the numeric validation tolerance. Panics on a
// negative or non-finite value.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.Epsilon = eps }
}

// WithSource injects the uniform source used by the simulation. Panics
// on nil. Parallel callers must give each Solve its own source.
func WithSource(src urand.Source) Option {
	if src == nil {
		panic(panicSourceNil)
	}

	return func(o *Options) { o.Source = src }
}

// WithSeed is shorthand for WithSource(urand.New(seed)): a fully
// deterministic solve for the given seed.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Source = urand.New(seed)
	}
}

// WithVerbose enables advisory diagnostics on the standard logger.
func WithVerbose() Option {
	return func(o *Options) {
		o.Verbose = true
	}
}

// DefaultOptions returns the documented defaults with a nil Source;
// Solve fills in an entropy-seeded source when none was injected.
func DefaultOptions() Options {
	return Options{
		E1:             DefaultE1,
		E2:             DefaultE2,
		K:              DefaultK,
		InitialBeta:    DefaultInitialBeta,
		MaxHalvings:    DefaultMaxHalvings,
		EpochLength:    queuesim.DefaultEpochLength,
		MaxEpochs:      queuesim.DefaultMaxEpochs,
		DriftTolerance: queuesim.DefaultDriftTolerance,
		Epsilon:        DefaultEpsilon,
	}
}
