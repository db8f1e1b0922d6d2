// Package lsolve approximately solves the graph Laplacian system
// L·x = b by queueing-network simulation, without forming or factoring
// L.
//
// Algorithm (per Solve call):
//
//  1. Validate the instance: n ≥ 2, strictly positive degrees, rows of
//     the transition matrix summing to 1 within tolerance, b[n−1] ≠ 0.
//  2. Derive the injection vector J[i] = −b[i]/b[n−1] (the last vertex
//     is the sink and never injects) and build one alias table per
//     vertex for O(1) random-walk routing.
//  3. Halve the injection-rate scale β, starting from the initial
//     guess, simulating the queueing network at each candidate until
//     the estimated occupancy vector satisfies the stability bound
//     max(η) ≤ 0.75·(1 − e1 − e2). β is monotonically decreasing; the
//     search trades extra simulation runs for a bracketing strategy
//     that cannot overshoot.
//  4. Reconstruct x[i] = (−b[n−1]/β)·(η[i]/d[i]) and subtract the mean,
//     yielding the unique solution orthogonal to the all-ones vector
//     (L is singular; x is determined only up to an additive constant).
//
// Residual computes the RMS of L·x − b for offline validation; the
// solver's control flow never consults it.
//
// Configuration: the tolerance constants (e1, e2, k), the initial β,
// the epoch length, epoch cap, drift tolerance and halving budget are
// all exposed as functional options with documented default constants,
// and can equally be loaded from a YAML or JSON file via ReadSolverCfg.
//
// Errors (sentinel, matched with errors.Is):
//
//	– ErrNilGraph, ErrTooFewVertices, ErrDemandLength, ErrBadDegree,
//	  ErrNotStochastic, ErrZeroReferenceDemand: invalid input,
//	  detected up front, never silently corrected.
//	– ErrNoStableRate: the halving search exhausted its budget.
//	– A simulation that hits its epoch cap is a soft failure: the η
//	  estimate is still used, but only accepted on the stability bound,
//	  and Result.Converged reports it.
//
// Example:
//
//	g, _ := walkgraph.Path(3)
//	res, err := lsolve.Solve(g, []float64{1, 1, -2},
//	    lsolve.WithTolerances(0.1, 0.1, 0.05),
//	    lsolve.WithSeed(42),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rms, _ := lsolve.Residual(g, []float64{1, 1, -2}, res.X)
package lsolve
