// Package solvercfg is the on-disk YAML configuration surface for a
// solver run: time budgets, RNG seed, worker count, and the sampling
// knobs threaded down into pkg/optimizer, plus CDE tuning fields that
// are validated but not passed on.
package solvercfg

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dshills/stripnest/pkg/sampler"
	"github.com/dshills/stripnest/pkg/solverconst"
	"github.com/dshills/stripnest/pkg/solvererr"
)

// Config is the full recognised configuration surface. Exactly one of
// GlobalTime or the Exploration+Compression pair must be set; GlobalTime
// is split between the two phases by solverconst.DefaultExploreTimeRatio
// and solverconst.DefaultCompressTimeRatio.
type Config struct {
	// GlobalTime is a single wall-clock budget for explore+compression
	// combined, in seconds. Mutually exclusive with Exploration/Compression.
	GlobalTime float64 `yaml:"global_time,omitempty" json:"global_time,omitempty"`

	// Exploration is the explore phase's wall-clock budget, in seconds.
	Exploration float64 `yaml:"exploration,omitempty" json:"exploration,omitempty"`
	// Compression is the compress phase's wall-clock budget, in seconds.
	Compression float64 `yaml:"compression,omitempty" json:"compression,omitempty"`

	// RNGSeed is the master seed. 0 auto-generates one from the clock.
	RNGSeed uint64 `yaml:"rng_seed" json:"rng_seed"`

	// EarlyTermination caps consecutive failed shrink attempts in the
	// explore phase. 0 selects solverconst.DefaultMaxConseqFailsExpl.
	EarlyTermination int `yaml:"early_termination" json:"early_termination"`

	// NWorkers sizes the pre-refine worker pool. 0 selects runtime.NumCPU().
	NWorkers int `yaml:"n_workers" json:"n_workers"`

	// SampleConfig controls how many candidate poses a Separator
	// attempt draws and keeps for refinement.
	SampleConfig sampler.Config `yaml:"sample_config" json:"sample_config"`

	// The three CDE tuning fields below are checked to be non-negative
	// by Validate and are part of Hash; no other code reads them. Item
	// rings are not simplified, and the CDE's gap between two items comes
	// from each model.Item's own MinSeparation.
	//
	// PolySimplTolerance is the polygon simplification tolerance.
	PolySimplTolerance float64 `yaml:"poly_simpl_tolerance" json:"poly_simpl_tolerance"`
	// MinItemSeparation is the minimum gap between two placed items.
	MinItemSeparation float64 `yaml:"min_item_separation" json:"min_item_separation"`
	// NarrowConcavityCutoffRatio is the narrow-concavity cutoff ratio.
	NarrowConcavityCutoffRatio float64 `yaml:"narrow_concavity_cutoff_ratio" json:"narrow_concavity_cutoff_ratio"`
}

// DefaultConfig returns a Config with a 30-second GlobalTime,
// DefaultMaxConseqFailsExpl as EarlyTermination, the solver's
// recommended sampling budget and a zero seed. NWorkers is left at zero
// and resolved to runtime.NumCPU() in Validate.
func DefaultConfig() Config {
	return Config{
		GlobalTime:       30,
		EarlyTermination: solverconst.DefaultMaxConseqFailsExpl,
		SampleConfig:     solverconst.LBFSampleConfig,
	}
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("solvercfg: reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses and validates YAML configuration from a
// byte slice. The time budget is not defaulted: the YAML itself must
// set global_time or the exploration+compression pair.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	cfg.GlobalTime = 0
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("solvercfg: parsing YAML: %w", err)
	}
	if cfg.RNGSeed == 0 {
		cfg.RNGSeed = generateSeed()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", solvererr.ErrConfig, err)
	}
	return &cfg, nil
}

// Validate checks the mutual-exclusion rule on the time budget and
// that every numeric knob is in a sane range, defaulting NWorkers and
// EarlyTermination where left at zero.
func (c *Config) Validate() error {
	hasGlobal := c.GlobalTime > 0
	hasSplit := c.Exploration > 0 || c.Compression > 0
	if hasGlobal && hasSplit {
		return errors.New("global_time is mutually exclusive with exploration/compression")
	}
	if !hasGlobal && !hasSplit {
		return errors.New("one of global_time or exploration+compression must be set")
	}
	if hasSplit && (c.Exploration <= 0 || c.Compression <= 0) {
		return errors.New("exploration and compression must both be positive when either is set")
	}

	if c.EarlyTermination <= 0 {
		c.EarlyTermination = solverconst.DefaultMaxConseqFailsExpl
	}
	if c.NWorkers <= 0 {
		c.NWorkers = runtime.NumCPU()
	}
	if c.SampleConfig.NCoordDescents <= 0 {
		c.SampleConfig = solverconst.LBFSampleConfig
	}
	if c.MinItemSeparation < 0 {
		return fmt.Errorf("min_item_separation must be >= 0, got %f", c.MinItemSeparation)
	}
	if c.PolySimplTolerance < 0 {
		return fmt.Errorf("poly_simpl_tolerance must be >= 0, got %f", c.PolySimplTolerance)
	}
	if c.NarrowConcavityCutoffRatio < 0 {
		return fmt.Errorf("narrow_concavity_cutoff_ratio must be >= 0, got %f", c.NarrowConcavityCutoffRatio)
	}
	return nil
}

// ExploreCompressSeconds returns the explore and compress phase
// budgets in seconds, splitting GlobalTime by the solver's default
// ratio when the split fields were not set directly.
func (c *Config) ExploreCompressSeconds() (explore, compress float64) {
	if c.Exploration > 0 || c.Compression > 0 {
		return c.Exploration, c.Compression
	}
	return c.GlobalTime * solverconst.DefaultExploreTimeRatio, c.GlobalTime * solverconst.DefaultCompressTimeRatio
}

// ToYAML serialises the configuration back to YAML, used by Hash.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic SHA-256 digest of the configuration,
// used to derive per-stage RNG sub-seeds via pkg/rng.NewRNG.
func (c *Config) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		h := sha256.Sum256([]byte(fmt.Sprintf("%d", c.RNGSeed)))
		return h[:]
	}
	h := sha256.Sum256(data)
	return h[:]
}

// generateSeed derives a seed from the current time.
func generateSeed() uint64 {
	now := time.Now().UnixNano()
	if now <= 0 {
		now = 1
	}
	return uint64(now)
}
