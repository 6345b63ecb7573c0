package optimizer

import (
	"github.com/dshills/stripnest/pkg/playout"
	"github.com/dshills/stripnest/pkg/rng"
	"github.com/dshills/stripnest/pkg/solverconst"
	"github.com/dshills/stripnest/pkg/weights"
)

// Compress fine-tunes an already-feasible layout: each iteration
// shrinks the container by ShrinkDecayStrategy.Step, runs a fresh
// Separator to feasibility or its own strike budget, and either
// accepts the shrink or rolls back to the last feasible snapshot.
// Unlike Explore, Compress never fails outright — it always returns at
// least the layout it was given.
func Compress(layout *playout.Layout, opts Options) *playout.Layout {
	decay := opts.Decay
	if decay == nil {
		decay = NewFailureBasedDecay(0.1, solverconst.DefaultFailDecayRatioCmpr)
	}

	wt := weights.NewTable()
	r := rng.NewRNG(opts.MasterSeed, "compress", opts.ConfigHash)
	best := layout.Snapshot()

	iterations := opts.CompressIterations
	if iterations <= 0 {
		iterations = 100
	}

	// tightestInfeasible tracks the smallest container width tried so
	// far that failed to separate; slack is measured against it rather
	// than against the raw current width, so the decay rate converges
	// on the true feasible/infeasible boundary instead of perpetually
	// treating the whole container as available room.
	tightestInfeasible := 0.0

	for i := 0; i < iterations; i++ {
		if shouldStop(opts.Term) {
			break
		}

		width := layout.ContainerWidth()
		slack := width
		if tightestInfeasible > 0 {
			slack = width - tightestInfeasible
		}
		if slack <= 0 {
			break
		}

		step := decay.Step(slack)
		if step <= 0 {
			break
		}

		shrinkContainer(layout, opts.Instance.Mode, step)
		sep := newSeparator(opts, layout, wt, r)

		if sep.Attempt(opts.Term) && layout.IsFeasible() {
			best = layout.Snapshot()
			decay.OnResult(true)
			continue
		}

		decay.OnResult(false)
		if tried := width - step; tightestInfeasible == 0 || tried < tightestInfeasible {
			tightestInfeasible = tried
		}
		layout = playout.Restore(best)
	}

	return playout.Restore(best)
}
