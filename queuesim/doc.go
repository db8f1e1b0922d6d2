// Package queuesim runs the synchronous packet-forwarding simulation
// that estimates stationary queue occupancy on a random-walk network.
//
// Model: each vertex i < n−1 owns a queue. Per discrete time step a
// packet is injected at i with probability β·J[i]; if the queue is then
// non-empty, one packet departs and is routed through vertex i's alias
// table. The last vertex is the sink: it never injects, never serves,
// and absorbs every packet routed to it.
//
// The sweep over vertices is logically simultaneous. Departures land in
// a per-vertex inbox that is merged into the queues only after the full
// sweep, so arrivals become visible at the next step. This two-phase
// (compute-then-commit) update is mandatory: updating queues in place
// during the sweep would let a vertex see same-step arrivals before its
// own departure decision and corrupt the Markov-chain semantics being
// simulated.
//
// Occupancy η[i] is the fraction of all simulated steps in which queue
// i was non-empty immediately after injection; η[n−1] = 0 by
// definition.
//
// Time is grouped into epochs. After each epoch the simulation updates
// a normalized throughput statistic (cumulative sink absorptions over
// cumulative expected injections) and stops once the statistic's
// epoch-to-epoch change falls below the drift tolerance, but never
// before the configured minimum step budget has elapsed. Hitting the
// epoch cap instead is a forced termination, reported as
// Estimate.Converged == false with the best-effort η still returned.
package queuesim
