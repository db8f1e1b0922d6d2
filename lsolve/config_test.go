package lsolve_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laplaq/laplaq/lsolve"
	"github.com/laplaq/laplaq/queuesim"
)

func TestReadSolverCfg_YAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "solver.yaml")
	content := []byte("e1: 0.05\ne2: 0.2\nk: 0.15\ninitialbeta: 2.0\nmaxhalvings: 32\n")
	require.NoError(t, os.WriteFile(file, content, 0o644))

	cfg, err := lsolve.ReadSolverCfg(file)
	require.NoError(t, err)

	assert.Equal(t, 0.05, cfg.E1)
	assert.Equal(t, 0.2, cfg.E2)
	assert.Equal(t, 0.15, cfg.K)
	assert.Equal(t, 2.0, cfg.InitialBeta)
	assert.Equal(t, 32, cfg.MaxHalvings)

	// Fields absent from the file keep the documented defaults.
	assert.Equal(t, queuesim.DefaultEpochLength, cfg.EpochLength)
	assert.Equal(t, queuesim.DefaultMaxEpochs, cfg.MaxEpochs)
	assert.Equal(t, queuesim.DefaultDriftTolerance, cfg.DriftTolerance)
}

func TestReadSolverCfg_JSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "solver.json")
	content := []byte(`{"e1": 0.05, "epochlength": 1024}`)
	require.NoError(t, os.WriteFile(file, content, 0o644))

	cfg, err := lsolve.ReadSolverCfg(file)
	require.NoError(t, err)

	assert.Equal(t, 0.05, cfg.E1)
	assert.Equal(t, 1024, cfg.EpochLength)
	assert.Equal(t, lsolve.DefaultE2, cfg.E2)
}

func TestReadSolverCfg_MissingFile(t *testing.T) {
	_, err := lsolve.ReadSolverCfg(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestReadSolverCfg_Malformed(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(file, []byte("e1: [not a number"), 0o644))

	_, err := lsolve.ReadSolverCfg(file)
	assert.Error(t, err)
}

func TestSolverConfig_Options(t *testing.T) {
	cfg := lsolve.DefaultSolverConfig()
	opts := cfg.Options()
	assert.NotEmpty(t, opts)

	// Partial configs skip zero-valued fields instead of panicking.
	partial := lsolve.SolverConfig{EpochLength: 2048}
	opts = partial.Options()
	assert.Len(t, opts, 1)
}

func TestDefaultSolverConfig_MatchesConstants(t *testing.T) {
	cfg := lsolve.DefaultSolverConfig()
	assert.Equal(t, lsolve.DefaultE1, cfg.E1)
	assert.Equal(t, lsolve.DefaultE2, cfg.E2)
	assert.Equal(t, lsolve.DefaultK, cfg.K)
	assert.Equal(t, lsolve.DefaultInitialBeta, cfg.InitialBeta)
	assert.Equal(t, lsolve.DefaultMaxHalvings, cfg.MaxHalvings)
}
