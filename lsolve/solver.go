package lsolve

import (
	"fmt"
	"log"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/laplaq/laplaq/alias"
	"github.com/laplaq/laplaq/queuesim"
	"github.com/laplaq/laplaq/urand"
)

// Graph is the read-only collaborator the solver consumes. It is
// queried once per Solve; implementations must return consistent views
// (walkgraph.Graph satisfies this interface).
type Graph interface {
	// NumVertices returns n ≥ 2; vertex n−1 is the sink/reference.
	NumVertices() int

	// DegreeVector returns the n strictly positive weighted degrees.
	DegreeVector() []float64

	// TransitionMatrix returns the n×n row-stochastic random-walk
	// matrix P; P[i][j] is the probability a packet at i forwards to j.
	TransitionMatrix() mat.Matrix

	// LaplacianMatrix returns the n×n Laplacian. Validation only; the
	// solver itself never reads it.
	LaplacianMatrix() mat.Matrix
}

// Result is the outcome of a successful Solve.
type Result struct {
	// X is the canonical (zero-mean) solution vector.
	X []float64

	// Beta is the accepted injection-rate scale.
	Beta float64

	// Eta is the occupancy estimate behind X; max(Eta) satisfies the
	// stability bound.
	Eta []float64

	// Converged reports whether the accepted simulation run stopped on
	// its drift rule rather than the epoch cap.
	Converged bool

	// Halvings is the number of times β was halved from the initial
	// guess; Beta == InitialBeta / 2^Halvings exactly.
	Halvings int
}

// Solve approximately solves L·x = b for the Laplacian of g.
//
// Fails fast with a sentinel error on malformed input (see package
// doc); returns ErrNoStableRate when the halving search exhausts its
// budget. The solution is randomized; inject a seeded source
// (WithSeed) for reproducibility.
//
// Complexity: O(halvings · steps · n) simulation time plus O(n²) for
// validation and table construction.
func Solve(g Graph, b []float64, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == nil {
		cfg.Source = urand.NewEntropy()
	}

	if g == nil {
		return Result{}, ErrNilGraph
	}
	n := g.NumVertices()
	if n < 2 {
		return Result{}, fmt.Errorf("%w: n=%d", ErrTooFewVertices, n)
	}
	if len(b) != n {
		return Result{}, fmt.Errorf("%w: len(b)=%d, n=%d", ErrDemandLength, len(b), n)
	}

	deg := g.DegreeVector()
	if len(deg) != n {
		return Result{}, fmt.Errorf("%w: len(d)=%d, n=%d", ErrBadDegree, len(deg), n)
	}
	for i, d := range deg {
		if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return Result{}, fmt.Errorf("%w: d[%d]=%g", ErrBadDegree, i, d)
		}
	}

	p := g.TransitionMatrix()
	if r, c := p.Dims(); r != n || c != n {
		return Result{}, fmt.Errorf("%w: P is %d×%d, n=%d", ErrNotStochastic, r, c, n)
	}

	// Division by the reference demand must be well defined before J is
	// derived.
	if b[n-1] == 0 {
		return Result{}, ErrZeroReferenceDemand
	}

	// One alias table per vertex, built once from that vertex's
	// transition row and immutable afterwards. Construction doubles as
	// the row-stochasticity check: a row not summing to 1 within
	// epsilon is a graph-collaborator bug, surfaced, never renormalized.
	tables := make([]*alias.Table, n)
	row := make([]float64, n)
	for i := 0; i < n; i++ {
		mat.Row(row, i, p)
		tab, err := alias.New(row, alias.WithEpsilon(cfg.Epsilon))
		if err != nil {
			return Result{}, fmt.Errorf("%w: row %d: %v", ErrNotStochastic, i, err)
		}
		tables[i] = tab
	}

	// Injection rates: J[i] = −b[i]/b[n−1]; the sink never injects.
	// Sign-mixed demands can make entries negative, in which case those
	// vertices simply never inject.
	j := make([]float64, n)
	for i := 0; i < n-1; i++ {
		j[i] = -b[i] / b[n-1]
	}

	r := &searchRunner{cfg: cfg, n: n, tables: tables, j: j}
	est, beta, halvings, err := r.findStableBeta()
	if err != nil {
		return Result{}, err
	}

	x := canonicalSolution(est.Eta, beta, deg, b[n-1])

	if cfg.Verbose {
		rms, rerr := Residual(g, b, x)
		if rerr != nil {
			log.Printf("lsolve: beta=%g halvings=%d converged=%t (residual unavailable: %v)",
				beta, halvings, est.Converged, rerr)
		} else {
			log.Printf("lsolve: beta=%g halvings=%d converged=%t residual=%g",
				beta, halvings, est.Converged, rms)
		}
	}

	return Result{
		X:         x,
		Beta:      beta,
		Eta:       est.Eta,
		Converged: est.Converged,
		Halvings:  halvings,
	}, nil
}

// searchRunner holds the state of one β halving search.
type searchRunner struct {
	cfg    Options
	n      int
	tables []*alias.Table
	j      []float64
}

// findStableBeta halves β from the initial guess until the simulated
// occupancy vector satisfies max(η) ≤ 0.75·(1−e1−e2). β only ever
// decreases; the loop is bounded by MaxHalvings and guarded against
// underflow, so it always terminates.
func (r *searchRunner) findStableBeta() (queuesim.Estimate, float64, int, error) {
	bound := stabilityMargin * (1 - r.cfg.E1 - r.cfg.E2)

	// Minimum sample budget 4·ln n/(k²·e2²): k and e2 control how many
	// steps each candidate must be observed for.
	minSteps := int(math.Ceil(4 * math.Log(float64(r.n)) /
		(r.cfg.K * r.cfg.K * r.cfg.E2 * r.cfg.E2)))
	if minSteps < 1 {
		minSteps = 1
	}

	beta := r.cfg.InitialBeta
	for h := 1; h <= r.cfg.MaxHalvings; h++ {
		beta /= 2
		if beta <= 0 {
			// Underflowed to zero: malformed instance.
			break
		}

		est, err := queuesim.EstimateOccupancy(r.tables, r.j, beta,
			queuesim.WithSource(r.cfg.Source),
			queuesim.WithEpochLength(r.cfg.EpochLength),
			queuesim.WithMaxEpochs(r.cfg.MaxEpochs),
			queuesim.WithDriftTolerance(r.cfg.DriftTolerance),
			queuesim.WithMinSteps(minSteps),
		)
		if err != nil {
			return queuesim.Estimate{}, 0, 0, err
		}

		// Acceptance re-checks the stability bound on every candidate,
		// so a run that only hit its epoch cap can never be accepted on
		// anything weaker than the bound itself.
		if floats.Max(est.Eta) <= bound {
			return est, beta, h, nil
		}
	}

	return queuesim.Estimate{}, 0, 0,
		fmt.Errorf("%w: %d halvings from beta=%g", ErrNoStableRate, r.cfg.MaxHalvings, r.cfg.InitialBeta)
}
