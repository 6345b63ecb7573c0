// Package solverconst collects the solver's tuning constants in one
// place, mirroring the original implementation's consts module so the
// numeric behaviour of the heuristic (step sizes, decay rates, sample
// counts) stays reproducible across the whole pipeline.
package solverconst

import "math"

const (
	// GLSWeightMaxIncRatio is the upper bound of the random factor
	// applied to a pair's weight on a strike.
	GLSWeightMaxIncRatio = 2.0
	// GLSWeightMinIncRatio is the lower bound of that random factor.
	GLSWeightMinIncRatio = 1.2
	// GLSWeightDecay is the multiplicative per-iteration weight decay,
	// floored at 1.0.
	GLSWeightDecay = 0.95
	// OverlapProxyEpsilonDiamRatio scales the overlap proxy's typical
	// magnitude relative to the square of an item pair's diameter.
	OverlapProxyEpsilonDiamRatio = 0.01

	// CDStepSuccess multiplies a coordinate-descent axis' step size
	// after an improving move on that axis.
	CDStepSuccess = 1.1
	// CDStepFail multiplies every axis' step size after a non-improving
	// iteration.
	CDStepFail = 0.5

	// UniqueSampleThreshold is the L-infinity translation distance
	// (as a ratio of the item's min dimension) below which two
	// candidate poses are considered duplicates.
	UniqueSampleThreshold = 0.05

	// DefaultExploreTimeRatio and DefaultCompressTimeRatio split a
	// single global time budget between the explore and compress
	// phases.
	DefaultExploreTimeRatio   = 0.8
	DefaultCompressTimeRatio  = 0.2
	DefaultMaxConseqFailsExpl = 10
	DefaultFailDecayRatioCmpr = 0.9
)

// PreRefineCDTLRatios holds (initial, limit) translation step ratios
// (relative to an item's min dimension) for the coarse first
// refinement pass.
var PreRefineCDTLRatios = [2]float64{0.25, 0.02}

// PreRefineCDRSteps holds (initial, limit) rotation step sizes in
// radians for the coarse first refinement pass.
var PreRefineCDRSteps = [2]float64{deg(5.0), deg(1.0)}

// SndRefineCDTLRatios holds (initial, limit) translation step ratios
// for the fine second refinement pass.
var SndRefineCDTLRatios = [2]float64{0.01, 0.001}

// SndRefineCDRSteps holds (initial, limit) rotation step sizes in
// radians for the fine second refinement pass.
var SndRefineCDRSteps = [2]float64{deg(0.5), deg(0.05)}

// SampleConfig controls how many candidate poses a Separator attempt
// draws and refines. pkg/sampler re-exports it as sampler.Config, a
// type alias, so the struct is defined only here.
type SampleConfig struct {
	NContainerSamples int `yaml:"n_container_samples" json:"n_container_samples"`
	NFocussedSamples  int `yaml:"n_focussed_samples" json:"n_focussed_samples"`
	NCoordDescents    int `yaml:"n_coord_descents" json:"n_coord_descents"`
}

// LBFSampleConfig is the default "largest bounding first" candidate
// budget: a wide uniform container sweep, no focussed samples, keep
// the best 3 for fine refinement.
var LBFSampleConfig = SampleConfig{
	NContainerSamples: 1000,
	NFocussedSamples:  0,
	NCoordDescents:    3,
}

func deg(d float64) float64 {
	return d * math.Pi / 180
}
