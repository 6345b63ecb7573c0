package optimizer

import (
	"github.com/dshills/stripnest/pkg/model"
	"github.com/dshills/stripnest/pkg/playout"
	"github.com/dshills/stripnest/pkg/rng"
	"github.com/dshills/stripnest/pkg/separator"
	"github.com/dshills/stripnest/pkg/solverconst"
	"github.com/dshills/stripnest/pkg/solvererr"
	"github.com/dshills/stripnest/pkg/weights"
)

// Explore builds the naive starting layout and ratchets the container
// down: one Separator attempt per iteration, and on feasible the
// container is snapshotted and shrunk again; on infeasible the layout
// rolls back to the last feasible snapshot and the shrink step is
// halved. Stops once MaxConseqFailedAttempts consecutive shrinks fail
// to recover feasibility, or the shrink step underflows.
func Explore(opts Options) (*playout.Layout, error) {
	cellSize := opts.CellSize
	if cellSize <= 0 {
		cellSize = medianBoundingDiameter(opts.Instance)
	}

	var width, height float64
	switch opts.Instance.Mode {
	case model.ModeStrip:
		width = looseInitialWidth(opts.Instance)
		height = opts.Instance.StripHeight
	case model.ModeSquare:
		width = opts.Instance.StartSide
		height = opts.Instance.StartSide
	}

	layout := initialLayout(opts.Instance, width, height, cellSize)
	wt := weights.NewTable()
	r := rng.NewRNG(opts.MasterSeed, "explore", opts.ConfigHash)
	sep := newSeparator(opts, layout, wt, r)

	if !sep.Attempt(opts.Term) {
		return layout, solvererr.ErrUnsolved
	}

	best := layout.Snapshot()

	maxFails := opts.MaxConseqFailedAttempts
	if maxFails <= 0 {
		maxFails = solverconst.DefaultMaxConseqFailsExpl
	}

	step := layout.ContainerWidth() * 0.1
	minStep := step * 1e-4
	fails := 0

	for fails < maxFails && step > minStep {
		if shouldStop(opts.Term) {
			break
		}

		shrinkContainer(layout, opts.Instance.Mode, step)
		wt.Decay()

		if sep.Attempt(opts.Term) && layout.IsFeasible() {
			best = layout.Snapshot()
			fails = 0
			continue
		}

		fails++
		step *= 0.5
		layout = playout.Restore(best)
		sep = newSeparator(opts, layout, wt, r)
	}

	return playout.Restore(best), nil
}

// newSeparator builds a Separator wired to opts' worker pool, if any.
func newSeparator(opts Options, layout *playout.Layout, wt *weights.Table, r *rng.RNG) *separator.Separator {
	sep := separator.New(layout, wt, opts.SampleConfig, opts.IterNoImprvLimit, r)
	if pool := opts.newPool(); pool != nil {
		sep.UsePool(pool)
	}
	return sep
}

// shrinkContainer reduces the container by step, keeping a ModeSquare
// container square.
func shrinkContainer(layout *playout.Layout, mode model.Mode, step float64) {
	switch mode {
	case model.ModeStrip:
		layout.ShrinkWidthTo(layout.ContainerWidth() - step)
	case model.ModeSquare:
		side := layout.ContainerWidth() - step
		layout.ShrinkWidthTo(side)
		layout.ShrinkHeightTo(side)
	}
}
