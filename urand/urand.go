package urand

import (
	crand "crypto/rand"
	"encoding/binary"

	"golang.org/x/exp/rand"
)

// Source is the uniform sampling contract used throughout the solver.
// Implementations must be statistically well distributed and advance
// deterministically from their seed; every call mutates generator state.
type Source interface {
	// Float64 returns a uniform real in [0,1).
	Float64() float64

	// Intn returns a uniform int in [0,n). It panics if n <= 0,
	// mirroring the underlying generators.
	Intn(n int) int
}

// Rand is a seedable uniform source backed by golang.org/x/exp/rand.
// It satisfies Source and is deterministic for a given seed.
type Rand struct {
	rng *rand.Rand
}

// New returns a Rand seeded with the given value. Two Rands built from
// the same seed produce identical draw sequences.
func New(seed uint64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// NewEntropy returns a Rand seeded once from the operating system's
// entropy source. Use this for production solves; use New(seed) when
// reproducibility matters.
func NewEntropy() *Rand {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// crypto/rand failing means the platform entropy source is
		// broken; there is no sensible fallback seed.
		panic("urand: reading entropy: " + err.Error())
	}
	return New(binary.LittleEndian.Uint64(buf[:]))
}

// Float64 returns a uniform real in [0,1).
func (r *Rand) Float64() float64 { return r.rng.Float64() }

// Intn returns a uniform int in [0,n).
func (r *Rand) Intn(n int) int { return r.rng.Intn(n) }
