package alias

import (
	"fmt"
	"math"

	"github.com/laplaq/laplaq/urand"
)

// Table is an immutable alias table over n columns. Build once with
// New, then sample with Pick as often as needed; Pick costs O(1).
type Table struct {
	prob  []float64 // retention probability per column, in [0,1]
	alias []int     // fallback column per column
}

// New builds an alias table for the discrete distribution w using
// Vose's method.
//
// Validation (in order):
//  1. len(w) > 0                    (ErrEmptyDistribution)
//  2. every w[i] finite             (ErrNonFinite)
//  3. every w[i] ≥ 0                (ErrNegativeWeight)
//  4. |sum(w) − 1| ≤ Epsilon        (ErrNotNormalized)
//
// Construction: scale each probability by n, partition columns into
// "small" (< 1) and "large" (≥ 1) worklists, then repeatedly pair one
// small column s with one large column l: s keeps its scaled mass and
// aliases to l, and l gives up 1 − scaled(s) of its own mass before
// being reclassified. Each pairing retires one column for good, so the
// loop runs at most n times. Leftover columns get retention 1.
//
// Complexity: O(n) time, O(n) space.
func New(w []float64, opts ...Option) (*Table, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(w)
	if n == 0 {
		return nil, ErrEmptyDistribution
	}

	sum := 0.0
	for i, p := range w {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, fmt.Errorf("%w: index %d", ErrNonFinite, i)
		}
		if p < 0 {
			return nil, fmt.Errorf("%w: index %d value %g", ErrNegativeWeight, i, p)
		}
		sum += p
	}
	if math.Abs(sum-1) > cfg.Epsilon {
		return nil, fmt.Errorf("%w: sum=%g", ErrNotNormalized, sum)
	}

	scaled := make([]float64, n)
	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for i, p := range w {
		scaled[i] = p * float64(n)
		if scaled[i] < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	t := &Table{
		prob:  make([]float64, n),
		alias: make([]int, n),
	}

	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		t.prob[s] = scaled[s]
		t.alias[s] = l

		// l absorbs the deficit of s; reclassify on its new mass.
		scaled[l] -= 1 - scaled[s]
		if scaled[l] < 1 {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}

	// Whichever worklist is left holds columns whose mass is 1 up to
	// rounding; they retain unconditionally and their alias is unused.
	for _, i := range large {
		t.prob[i] = 1
	}
	for _, i := range small {
		t.prob[i] = 1
	}

	return t, nil
}

// Len returns the number of columns in the table.
func (t *Table) Len() int { return len(t.prob) }

// Pick draws one sample from the table's distribution using two draws
// from src: a uniform column c and a uniform real r. Returns c when
// r < prob[c], and alias[c] otherwise. O(1).
func (t *Table) Pick(src urand.Source) int {
	c := src.Intn(len(t.prob))
	if src.Float64() < t.prob[c] {
		return c
	}
	return t.alias[c]
}
