package queuesim

import (
	"math"

	"github.com/laplaq/laplaq/alias"
	"github.com/laplaq/laplaq/urand"
)

// Estimate is the outcome of one simulation run.
type Estimate struct {
	// Eta[i] is the fraction of simulated steps in which queue i was
	// non-empty immediately after injection; Eta[n−1] == 0.
	Eta []float64

	// Converged reports whether the drift rule stopped the run. False
	// means the epoch cap forced termination and Eta is best-effort;
	// callers must not treat the run as settled without re-checking
	// their own acceptance bound.
	Converged bool

	// Steps is the number of simulated time steps.
	Steps int
}

// EstimateOccupancy simulates the queueing network defined by the
// per-vertex alias tables and the injection vector j at rate scale
// beta, and estimates the stationary occupancy vector.
//
// tables[i] routes departures from vertex i; the last vertex is the
// sink and its table (and j entry) are unused. Injection fires at
// vertex i with probability beta·j[i] per step; entries that make this
// non-positive simply never fire. Alias tables and j are read-only and
// may be shared across concurrent runs as long as each run owns its
// Source.
//
// Complexity: O(steps · n) time, O(n) space.
func EstimateOccupancy(tables []*alias.Table, j []float64, beta float64, opts ...Option) (Estimate, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == nil {
		cfg.Source = urand.NewEntropy()
	}

	n := len(tables)
	if n < 2 {
		return Estimate{}, ErrTooFewVertices
	}
	if len(j) != n {
		return Estimate{}, ErrDimensionMismatch
	}
	if beta <= 0 || math.IsNaN(beta) || math.IsInf(beta, 0) {
		return Estimate{}, ErrBadRate
	}
	for i := 0; i < n-1; i++ {
		if tables[i] == nil {
			return Estimate{}, ErrNilTable
		}
	}

	r := &runner{
		tables: tables,
		n:      n,
		beta:   beta,
		j:      j,
		cfg:    cfg,
		src:    cfg.Source,
		queue:  make([]int, n),
		inbox:  make([]int, n),
		busy:   make([]int, n),
	}
	r.run()

	eta := make([]float64, n)
	for i := 0; i < n-1; i++ {
		eta[i] = float64(r.busy[i]) / float64(r.steps)
	}
	// eta[n-1] stays 0 by definition.

	return Estimate{Eta: eta, Converged: r.converged, Steps: r.steps}, nil
}

// runner holds the mutable state of a single simulation run.
type runner struct {
	tables []*alias.Table
	n      int
	beta   float64
	j      []float64
	cfg    Options
	src    urand.Source

	queue []int // packets waiting per vertex
	inbox []int // arrivals staged during the current step
	busy  []int // steps with queue[i] > 0 after injection

	steps     int
	absorbed  int     // packets routed into the sink so far
	expInject float64 // expected injections per step, Σ clamp(beta·j[i], 0, 1)
	converged bool
}

// run executes the epoch loop until the drift rule fires or the epoch
// cap is reached.
func (r *runner) run() {
	sink := r.n - 1

	// Expected injections per step are constant; compute once for the
	// throughput normalization.
	for i := 0; i < sink; i++ {
		p := r.beta * r.j[i]
		if p > 1 {
			p = 1
		}
		if p > 0 {
			r.expInject += p
		}
	}

	prev := math.NaN()
	for epoch := 0; epoch < r.cfg.MaxEpochs; epoch++ {
		for s := 0; s < r.cfg.EpochLength; s++ {
			r.step()
		}

		stat := r.throughput()
		if r.steps >= r.cfg.MinSteps && !math.IsNaN(prev) &&
			math.Abs(stat-prev) <= r.cfg.DriftTolerance {
			r.converged = true
			return
		}
		prev = stat
	}
	// Epoch cap hit: forced termination, r.converged stays false.
}

// step advances the network by one synchronous time step.
func (r *runner) step() {
	sink := r.n - 1

	for i := 0; i < sink; i++ {
		// Injection: with probability beta·j[i] a packet arrives at i.
		// Non-positive rates never fire because Float64() ≥ 0.
		if r.src.Float64() < r.beta*r.j[i] {
			r.queue[i]++
		}

		// Occupancy is observed after injection, before forwarding.
		if r.queue[i] > 0 {
			r.busy[i]++

			// Serve one packet and stage it in the destination inbox;
			// it becomes visible only at the next step.
			r.queue[i]--
			dst := r.tables[i].Pick(r.src)
			if dst == sink {
				r.absorbed++
			} else {
				r.inbox[dst]++
			}
		}
	}

	// Commit phase: merge staged arrivals after the full sweep.
	for i := 0; i < sink; i++ {
		r.queue[i] += r.inbox[i]
		r.inbox[i] = 0
	}

	r.steps++
}

// throughput returns the cumulative normalized throughput: packets
// absorbed at the sink over packets expected to have been injected.
// The ratio climbs toward its stationary value as the run settles, so
// its epoch-to-epoch drift shrinks once the network is in steady state.
func (r *runner) throughput() float64 {
	expected := r.expInject * float64(r.steps)
	if expected == 0 {
		return 0
	}
	return float64(r.absorbed) / expected
}
