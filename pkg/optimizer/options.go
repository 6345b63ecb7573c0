package optimizer

import (
	"github.com/dshills/stripnest/pkg/model"
	"github.com/dshills/stripnest/pkg/sampler"
	"github.com/dshills/stripnest/pkg/workerpool"
)

// Options bundles everything Explore, Compress, and Run need: the
// instance to pack, the sampling/search budgets, and the RNG/Terminator
// that make a run both reproducible and cancellable.
type Options struct {
	Instance model.Instance

	SampleConfig            sampler.Config
	IterNoImprvLimit        int
	MaxConseqFailedAttempts int
	CompressIterations      int

	// Decay selects the Compress phase's step-size strategy. Nil
	// selects a FailureBasedDecay with the solver's default rate.
	Decay ShrinkDecayStrategy

	MasterSeed uint64
	ConfigHash []byte

	// CellSize sizes the CDE's broad-phase grid; <= 0 derives it from
	// the instance's median item bounding diameter.
	CellSize float64

	// NWorkers sizes the pre-refine worker pool each Separator uses.
	// <= 1 runs pre-refine sequentially with no pool at all.
	NWorkers int

	// ExploreSeconds and CompressSeconds cap each phase's wall-clock
	// budget. Run derives a fresh deadline from time.Now() for each
	// phase on every call, composed with Term rather than replacing it,
	// so a caller's own cancellation (e.g. SIGINT) still fires. <= 0
	// disables the phase's own deadline.
	ExploreSeconds  float64
	CompressSeconds float64

	Term Terminator
}

func (o Options) newPool() *workerpool.Pool {
	if o.NWorkers <= 1 {
		return nil
	}
	return workerpool.New(o.NWorkers)
}
