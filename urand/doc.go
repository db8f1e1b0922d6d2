// Package urand provides the uniform pseudo-random sources consumed by
// the queue simulation.
//
// All randomness in the solver flows through the Source interface:
//
//	Float64() float64   uniform real in [0,1)
//	Intn(n int) int     uniform index in [0,n)
//
// Two implementations are provided:
//
//   - Rand, built on golang.org/x/exp/rand: a single seedable generator.
//     New(seed) is fully deterministic for a given seed, which is what
//     reproducible tests and reruns need. NewEntropy() seeds from the
//     operating system's entropy source once, at construction.
//   - Stream, built on github.com/iti/rngstream (L'Ecuyer MRG32k3a
//     streams): NewStream(name) hands out statistically independent
//     named streams, so parallel trials can each own a stream without
//     sharing generator state.
//
// Sources are not safe for concurrent use; give each goroutine its own.
package urand
