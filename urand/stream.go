package urand

import "github.com/iti/rngstream"

// Stream is a named, statistically independent uniform source backed by
// an rngstream (L'Ecuyer MRG32k3a) stream. Distinct names yield
// independent streams drawn from the same master seed, which makes it
// the right Source when several trials run side by side.
type Stream struct {
	g *rngstream.RngStream
}

// NewStream returns the independent stream registered under name.
func NewStream(name string) *Stream {
	return &Stream{g: rngstream.New(name)}
}

// Float64 returns a uniform real in [0,1).
func (s *Stream) Float64() float64 { return s.g.RandU01() }

// Intn returns a uniform int in [0,n).
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		panic("urand: Intn called with n <= 0")
	}
	return s.g.RandInt(0, n-1)
}
