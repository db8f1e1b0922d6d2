// Package laplaq approximately solves graph Laplacian systems L·x = b
// by simulating a network of queues instead of factoring L.
//
// The idea: treat the graph as a packet network. Packets are injected
// at each vertex with probability β·J[i] per time step (J derived from
// the demand vector b), forwarded along the graph's random-walk
// transition probabilities, and absorbed at a designated sink vertex.
// The long-run fraction of time each queue is non-empty (its
// stationary occupancy η[i]) relates to the solution of the Laplacian
// system in closed form:
//
//	x[i] = (−b[n−1]/β) · (η[i]/d[i]),   mean-centered
//
// so a simulation plus a rescaling replaces a matrix factorization.
//
// The module is organized one package per concern:
//
//	urand/      uniform pseudo-random sources (seedable generator and
//	            named independent streams)
//	alias/      Vose alias tables for O(1) discrete sampling
//	queuesim/   the synchronous packet-forwarding simulation and its
//	            occupancy/convergence estimates
//	lsolve/     the solver entry point: validation, β halving search,
//	            canonical solution, residual diagnostics, configuration
//	walkgraph/  a dense random-walk graph: adjacency to degree vector,
//	            row-stochastic transition matrix, Laplacian
//
// Quick start:
//
//	g, _ := walkgraph.Path(3)                      // 0–1–2, vertex 2 is the sink
//	res, err := lsolve.Solve(g, []float64{1, 1, -2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.X, res.Beta)
//
// The solver is randomized: rerunning with a different seed yields a
// slightly different x. Fix a seed with lsolve.WithSeed for
// reproducible runs.
//
//	go get github.com/laplaq/laplaq
package laplaq
