package workerpool

import (
	"sync"

	"github.com/dshills/stripnest/pkg/cde"
	"github.com/dshills/stripnest/pkg/descent"
	"github.com/dshills/stripnest/pkg/model"
	"github.com/dshills/stripnest/pkg/playout"
)

// Result is one candidate's outcome after a pre-refine descent.
type Result struct {
	Pose model.Pose
	Cost float64
}

// Pool is a fixed-size set of workers that pull pre-refine jobs from a
// shared channel until it's drained, mirroring the engine package's
// per-worker-state pattern: distinct workers, shared read-only input.
type Pool struct {
	nWorkers int
}

// New builds a Pool with the given worker count, clamped to at least 1.
func New(nWorkers int) *Pool {
	if nWorkers < 1 {
		nWorkers = 1
	}
	return &Pool{nWorkers: nWorkers}
}

// RunPreRefine descends every candidate to its PreRefine local optimum,
// distributed across the pool's workers. snapshot must not be mutated
// by any other goroutine for the duration of the call: every worker
// only reads through it (NodeCost queries), never commits a Move.
// descent.Search is deterministic given (candidate, snapshot, weights),
// so results[idx] matches candidates[idx] regardless of which worker
// handled it or in what order: the fan-out never affects reproducibility.
func (p *Pool) RunPreRefine(
	item *model.Item,
	exclude cde.PlacementID,
	snapshot *playout.Layout,
	weights cde.WeightLookup,
	candidates []model.Pose,
) []Result {
	n := len(candidates)
	results := make([]Result, n)
	if n == 0 {
		return results
	}

	nWorkers := p.nWorkers
	if nWorkers > n {
		nWorkers = n
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(nWorkers)

	for w := 0; w < nWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				pose, cost := descent.Search(item, candidates[idx], exclude, snapshot, weights, descent.PreRefine)
				results[idx] = Result{Pose: pose, Cost: cost}
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
