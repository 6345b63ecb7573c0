package optimizer

import (
	"github.com/dshills/stripnest/pkg/playout"
	"github.com/dshills/stripnest/pkg/solvererr"
)

// Run executes the full Explore-then-Compress pipeline and returns the
// best-feasible layout found, or ErrUnsolved if Explore's very first
// Separator attempt (against the loose starting layout) could not
// reach feasibility at all. Each phase gets its own wall-clock budget
// (opts.ExploreSeconds, opts.CompressSeconds), freshly measured from
// time.Now() on every call, layered on top of opts.Term rather than
// replacing it.
func Run(opts Options) (*playout.Layout, error) {
	exploreOpts := opts
	exploreOpts.Term = withDeadline(opts.Term, opts.ExploreSeconds)

	explored, err := Explore(exploreOpts)
	if err != nil {
		return explored, err
	}

	compressOpts := opts
	compressOpts.Term = withDeadline(opts.Term, opts.CompressSeconds)

	return Compress(explored, compressOpts), nil
}

// SearchSquareSide binary-searches the smallest square side in
// [lowSide, highSide] for which Run reaches a feasible layout, to
// within tolerance. Each trial reruns the full pipeline against a copy
// of opts.Instance with StartSide set to the trial midpoint.
func SearchSquareSide(opts Options, lowSide, highSide, tolerance float64) (*playout.Layout, float64, error) {
	var bestLayout *playout.Layout
	bestSide := highSide

	for highSide-lowSide > tolerance {
		if shouldStop(opts.Term) {
			break
		}

		mid := (lowSide + highSide) / 2
		trialOpts := opts
		trialOpts.Instance.StartSide = mid

		layout, err := Run(trialOpts)
		if err == nil && layout.IsFeasible() {
			bestLayout = layout
			bestSide = mid
			highSide = mid
		} else {
			lowSide = mid
		}
	}

	if bestLayout == nil {
		return nil, 0, solvererr.ErrUnsolved
	}
	return bestLayout, bestSide, nil
}
