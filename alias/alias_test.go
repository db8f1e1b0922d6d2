package alias_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/laplaq/laplaq/alias"
	"github.com/laplaq/laplaq/urand"
)

// ------------------------------------------------------------------------
// 1. Validation: malformed distributions fail fast with sentinels.
// ------------------------------------------------------------------------

func TestNew_EmptyDistribution(t *testing.T) {
	_, err := alias.New(nil)
	assert.ErrorIs(t, err, alias.ErrEmptyDistribution)
}

func TestNew_NegativeWeight(t *testing.T) {
	_, err := alias.New([]float64{0.5, -0.1, 0.6})
	assert.ErrorIs(t, err, alias.ErrNegativeWeight)
}

func TestNew_NotNormalized(t *testing.T) {
	_, err := alias.New([]float64{0.4, 0.4})
	assert.ErrorIs(t, err, alias.ErrNotNormalized)
}

func TestNew_NotNormalizedWithinEpsilon(t *testing.T) {
	// A sum within the configured epsilon is accepted; just outside is not.
	_, err := alias.New([]float64{0.5, 0.5 + 1e-12})
	assert.NoError(t, err)

	_, err = alias.New([]float64{0.5, 0.501}, alias.WithEpsilon(1e-4))
	assert.ErrorIs(t, err, alias.ErrNotNormalized)
}

func TestNew_NonFinite(t *testing.T) {
	_, err := alias.New([]float64{math.Inf(1), 0.5})
	assert.ErrorIs(t, err, alias.ErrNonFinite)
}

func TestWithEpsilon_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { alias.WithEpsilon(-1) })
}

// ------------------------------------------------------------------------
// 2. Correctness: sampled frequencies reproduce the input distribution.
// ------------------------------------------------------------------------

func TestPick_Degenerate(t *testing.T) {
	// All mass on one column: every draw must return it.
	tab, err := alias.New([]float64{0, 1, 0})
	require.NoError(t, err)

	src := urand.New(1)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, 1, tab.Pick(src))
	}
}

func TestPick_TwoPointSplit(t *testing.T) {
	// For w = [0.3, 0.7] the empirical split must land within ±1%.
	tab, err := alias.New([]float64{0.3, 0.7})
	require.NoError(t, err)

	const samples = 100000
	src := urand.New(42)
	hits := 0
	for i := 0; i < samples; i++ {
		if tab.Pick(src) == 0 {
			hits++
		}
	}
	assert.InDelta(t, 0.3, float64(hits)/samples, 0.01)
}

func TestPick_ChiSquareGoodnessOfFit(t *testing.T) {
	// Law-of-large-numbers check against a 4-point distribution: the
	// chi-square statistic over 1e5 samples must stay below the 99.9%
	// quantile of χ²(3).
	w := []float64{0.1, 0.2, 0.3, 0.4}
	tab, err := alias.New(w)
	require.NoError(t, err)

	const samples = 100000
	src := urand.New(7)
	counts := make([]float64, len(w))
	for i := 0; i < samples; i++ {
		counts[tab.Pick(src)]++
	}

	chi2 := 0.0
	for i, p := range w {
		expected := p * samples
		diff := counts[i] - expected
		chi2 += diff * diff / expected
	}

	crit := distuv.ChiSquared{K: float64(len(w) - 1)}.Quantile(0.999)
	assert.Less(t, chi2, crit, "chi-square %v exceeds critical value %v", chi2, crit)
}

func TestPick_SparseRow(t *testing.T) {
	// A transition row with many zero entries, as produced by sparse
	// graphs: only the support may ever be returned.
	w := []float64{0, 0.5, 0, 0, 0.5, 0}
	tab, err := alias.New(w)
	require.NoError(t, err)
	require.Equal(t, 6, tab.Len())

	src := urand.New(3)
	counts := make([]int, len(w))
	for i := 0; i < 20000; i++ {
		counts[tab.Pick(src)]++
	}
	for i, c := range counts {
		if w[i] == 0 {
			assert.Zero(t, c, "column %d outside support was sampled", i)
		} else {
			assert.InDelta(t, 0.5, float64(c)/20000, 0.02)
		}
	}
}

func TestNew_UniformRow(t *testing.T) {
	// Uniform distributions exercise the "everything large" path where
	// all scaled masses are exactly 1.
	n := 8
	w := make([]float64, n)
	for i := range w {
		w[i] = 1.0 / float64(n)
	}
	tab, err := alias.New(w)
	require.NoError(t, err)

	src := urand.New(11)
	counts := make([]int, n)
	const samples = 80000
	for i := 0; i < samples; i++ {
		counts[tab.Pick(src)]++
	}
	for i := range counts {
		assert.InDelta(t, 1.0/float64(n), float64(counts[i])/samples, 0.01, "column %d", i)
	}
}

func TestNew_WrappedErrorsKeepSentinel(t *testing.T) {
	// Construction errors carry context but still match via errors.Is.
	_, err := alias.New([]float64{2, -1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, alias.ErrNegativeWeight))
	assert.Contains(t, err.Error(), "index 1")
}
