package lsolve

import (
	"encoding/json"
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/laplaq/laplaq/queuesim"
)

// SolverConfig is the file-backed form of the solver's configuration
// surface. Fields left at zero in the file keep their documented
// defaults; Options() converts the config into functional options.
type SolverConfig struct {
	E1             float64 `yaml:"e1" json:"e1"`
	E2             float64 `yaml:"e2" json:"e2"`
	K              float64 `yaml:"k" json:"k"`
	InitialBeta    float64 `yaml:"initialbeta" json:"initialbeta"`
	MaxHalvings    int     `yaml:"maxhalvings" json:"maxhalvings"`
	EpochLength    int     `yaml:"epochlength" json:"epochlength"`
	MaxEpochs      int     `yaml:"maxepochs" json:"maxepochs"`
	DriftTolerance float64 `yaml:"drifttolerance" json:"drifttolerance"`
}

// DefaultSolverConfig returns a config populated with the documented
// defaults.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		E1:             DefaultE1,
		E2:             DefaultE2,
		K:              DefaultK,
		InitialBeta:    DefaultInitialBeta,
		MaxHalvings:    DefaultMaxHalvings,
		EpochLength:    queuesim.DefaultEpochLength,
		MaxEpochs:      queuesim.DefaultMaxEpochs,
		DriftTolerance: queuesim.DefaultDriftTolerance,
	}
}

// ReadSolverCfg deserializes a SolverConfig from the named file. The
// extension selects the codec: .yaml/.yml parse as YAML, anything else
// as JSON. Fields absent from the file keep their defaults.
func ReadSolverCfg(filename string) (*SolverConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("lsolve: reading config %s: %w", filename, err)
	}

	cfg := DefaultSolverConfig()

	ext := path.Ext(filename)
	useYAML := ext == ".yaml" || ext == ".yml"
	if useYAML {
		err = yaml.Unmarshal(data, &cfg)
	} else {
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("lsolve: parsing config %s: %w", filename, err)
	}

	return &cfg, nil
}

// Options converts the config into functional options for Solve.
// Zero-valued fields are skipped so the defaults stay in force; this
// also keeps hand-built partial configs usable.
func (c *SolverConfig) Options() []Option {
	var opts []Option

	if c.E1 > 0 || c.E2 > 0 || c.K > 0 {
		e1, e2, k := c.E1, c.E2, c.K
		if e1 == 0 {
			e1 = DefaultE1
		}
		if e2 == 0 {
			e2 = DefaultE2
		}
		if k == 0 {
			k = DefaultK
		}
		opts = append(opts, WithTolerances(e1, e2, k))
	}
	if c.InitialBeta > 0 {
		opts = append(opts, WithInitialBeta(c.InitialBeta))
	}
	if c.MaxHalvings > 0 {
		opts = append(opts, WithMaxHalvings(c.MaxHalvings))
	}
	if c.EpochLength > 0 {
		opts = append(opts, WithEpochLength(c.EpochLength))
	}
	if c.MaxEpochs > 0 {
		opts = append(opts, WithMaxEpochs(c.MaxEpochs))
	}
	if c.DriftTolerance > 0 {
		opts = append(opts, WithDriftTolerance(c.DriftTolerance))
	}

	return opts
}
