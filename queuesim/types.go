package queuesim

import (
	"errors"

	"github.com/laplaq/laplaq/urand"
)

// Sentinel errors for malformed simulation inputs.
var (
	// ErrTooFewVertices indicates fewer than two vertices; the model
	// needs at least one queue plus the sink.
	ErrTooFewVertices = errors.New("queuesim: need at least 2 vertices")

	// ErrDimensionMismatch indicates the alias-table slice and the
	// injection vector disagree in length.
	ErrDimensionMismatch = errors.New("queuesim: tables and injection vector lengths differ")

	// ErrNilTable indicates a missing alias table for a non-sink vertex.
	ErrNilTable = errors.New("queuesim: nil alias table for non-sink vertex")

	// ErrBadRate indicates a non-positive or non-finite injection-rate
	// scale β.
	ErrBadRate = errors.New("queuesim: injection-rate scale must be positive and finite")
)

// Documented defaults for the stopping rule. Callers tune these through
// options; the constants are the single source of truth.
const (
	// DefaultEpochLength is the number of steps per epoch.
	DefaultEpochLength = 4096

	// DefaultMaxEpochs caps the run; reaching it is a forced
	// termination, not convergence.
	DefaultMaxEpochs = 512

	// DefaultDriftTolerance bounds the epoch-to-epoch change of the
	// throughput statistic below which the run is considered settled.
	DefaultDriftTolerance = 1e-2

	// DefaultMinSteps is the minimum number of simulated steps before
	// the drift rule may stop the run. Solvers usually override this
	// with a budget derived from their tolerance constants.
	DefaultMinSteps = DefaultEpochLength
)

// Panic messages for option misuse.
const (
	panicEpochLengthInvalid = "queuesim: WithEpochLength: length must be positive"
	panicMaxEpochsInvalid   = "queuesim: WithMaxEpochs: cap must be positive"
	panicDriftInvalid       = "queuesim: WithDriftTolerance: tolerance must be positive"
	panicMinStepsInvalid    = "queuesim: WithMinSteps: budget must be positive"
	panicSourceNil          = "queuesim: WithSource: source must be non-nil"
)

// Options configures a simulation run.
type Options struct {
	// EpochLength is the number of steps per epoch. Default
	// DefaultEpochLength.
	EpochLength int

	// MaxEpochs caps the total number of epochs. Default
	// DefaultMaxEpochs.
	MaxEpochs int

	// DriftTolerance is the stopping threshold on the throughput
	// statistic's epoch-to-epoch change. Default DefaultDriftTolerance.
	DriftTolerance float64

	// MinSteps is the minimum simulated-step budget before the drift
	// rule applies. Default DefaultMinSteps.
	MinSteps int

	// Source supplies all randomness. Default: an entropy-seeded
	// urand.Rand. Inject a fixed-seed source for reproducible runs;
	// parallel trials must each use an independent source.
	Source urand.Source
}

// Option is a functional option for EstimateOccupancy.
type Option func(*Options)

// WithEpochLength sets the steps per epoch. Panics if length <= 0.
func WithEpochLength(length int) Option {
	if length <= 0 {
		panic(panicEpochLengthInvalid)
	}

	return func(o *Options) { o.EpochLength = length }
}

// WithMaxEpochs sets the epoch cap. Panics if limit <= 0.
func WithMaxEpochs(limit int) Option {
	if limit <= 0 {
		panic(panicMaxEpochsInvalid)
	}

	return func(o *Options) { o.MaxEpochs = limit }
}

// WithDriftTolerance sets the stopping threshold. Panics if tol <= 0.
func WithDriftTolerance(tol float64) Option {
	if tol <= 0 {
		panic(panicDriftInvalid)
	}

	return func(o *Options) { o.DriftTolerance = tol }
}

// WithMinSteps sets the minimum step budget. Panics if steps <= 0.
func WithMinSteps(steps int) Option {
	if steps <= 0 {
		panic(panicMinStepsInvalid)
	}

	return func(o *Options) { o.MinSteps = steps }
}

// WithSource injects the uniform source. Panics on nil.
func WithSource(src urand.Source) Option {
	if src == nil {
		panic(panicSourceNil)
	}

	return func(o *Options) { o.Source = src }
}

// DefaultOptions returns the documented defaults with a nil Source;
// EstimateOccupancy fills in an entropy-seeded source when none was
// injected.
func DefaultOptions() Options {
	return Options{
		EpochLength:    DefaultEpochLength,
		MaxEpochs:      DefaultMaxEpochs,
		DriftTolerance: DefaultDriftTolerance,
		MinSteps:       DefaultMinSteps,
	}
}
