package separator

import (
	"math"
	"sort"

	"github.com/dshills/stripnest/pkg/cde"
	"github.com/dshills/stripnest/pkg/descent"
	"github.com/dshills/stripnest/pkg/model"
	"github.com/dshills/stripnest/pkg/playout"
	"github.com/dshills/stripnest/pkg/rng"
	"github.com/dshills/stripnest/pkg/sampler"
	"github.com/dshills/stripnest/pkg/weights"
	"github.com/dshills/stripnest/pkg/workerpool"
)

// focussedRotStddev is the spread (radians) of the normal distribution
// the focussed candidate pass samples rotation from, centred on the
// item's current theta.
const focussedRotStddev = math.Pi / 12 // 15 degrees

// Terminator is the cancellation source a long-running Attempt
// consults between iterations. It is satisfied structurally by
// optimizer.ContextTerminator; separator never imports pkg/optimizer.
type Terminator interface {
	ShouldStop() bool
}

// Separator runs overlap-resolution attempts against one Layout,
// sharing a GLS weight table and RNG stream across attempts so strikes
// and sample draws stay part of one continuous, reproducible sequence.
type Separator struct {
	layout           *playout.Layout
	weights          *weights.Table
	cfg              sampler.Config
	iterNoImprvLimit int
	rng              *rng.RNG
	noImprvStreak    int

	pool *workerpool.Pool
}

// New builds a Separator. iterNoImprvLimit is the number of
// consecutive no-improvement iterations (strikes) an Attempt tolerates
// before giving up and reporting infeasible.
func New(layout *playout.Layout, wt *weights.Table, cfg sampler.Config, iterNoImprvLimit int, r *rng.RNG) *Separator {
	return &Separator{
		layout:           layout,
		weights:          wt,
		cfg:              cfg,
		iterNoImprvLimit: iterNoImprvLimit,
		rng:              r,
	}
}

// UsePool makes subsequent tryImprove calls distribute their pre-refine
// descents across pool instead of running them sequentially.
func (s *Separator) UsePool(pool *workerpool.Pool) {
	s.pool = pool
}

// Attempt drives the layout toward feasibility: while some placement
// still overlaps (or, once nothing overlaps, still lies outside the
// container), it relocates the worst offender if a strictly cheaper
// pose can be found, otherwise it strikes the weight table.
// Returns true once the layout is fully feasible, false if the
// no-improvement limit or the Terminator fires first.
func (s *Separator) Attempt(term Terminator) bool {
	for {
		if term != nil && term.ShouldStop() {
			return s.layout.IsFeasible()
		}

		worstID, depth, breakdown, ok := s.layout.WorstOverlapping()
		if !ok || depth <= 0 {
			found := false
			for _, id := range s.layout.Placements() {
				if s.layout.Engine().Certify(id) != nil {
					worstID, breakdown, found = id, nil, true
					break
				}
			}
			if !found {
				return true
			}
		}

		item := s.layout.Item(worstID)
		if s.tryImprove(worstID, item) {
			s.noImprvStreak = 0
			continue
		}

		s.noImprvStreak++
		s.weights.StrikeWorst(worstID, breakdown, s.rng)
		if s.noImprvStreak >= s.iterNoImprvLimit {
			return false
		}
	}
}

// tryImprove generates candidate poses for id, refines them, and
// commits the best one if it strictly beats the current NodeCost.
func (s *Separator) tryImprove(id cde.PlacementID, item *model.Item) bool {
	engine := s.layout.Engine()
	currentPose := s.layout.Pose(id)
	currentCost := engine.NodeCost(item, currentPose, id, s.weights)

	candidates := s.generateCandidates(id, item, currentPose)
	preRefined := make([]model.Pose, 0, len(candidates))
	preRefinedCosts := make([]float64, 0, len(candidates))

	if s.pool != nil {
		results := s.pool.RunPreRefine(item, id, s.layout, s.weights, candidates)
		for _, r := range results {
			if isDuplicateOf(r.Pose, preRefined, item.MinDimension()) {
				continue
			}
			preRefined = append(preRefined, r.Pose)
			preRefinedCosts = append(preRefinedCosts, r.Cost)
		}
	} else {
		for _, cand := range candidates {
			pose, cost := descent.Search(item, cand, id, s.layout, s.weights, descent.PreRefine)
			if isDuplicateOf(pose, preRefined, item.MinDimension()) {
				continue
			}
			preRefined = append(preRefined, pose)
			preRefinedCosts = append(preRefinedCosts, cost)
		}
	}

	order := make([]int, len(preRefined))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return preRefinedCosts[order[i]] < preRefinedCosts[order[j]] })

	keep := s.cfg.NCoordDescents
	if keep > len(order) {
		keep = len(order)
	}

	bestPose, bestCost := currentPose, currentCost
	for _, idx := range order[:keep] {
		pose, cost := descent.Search(item, preRefined[idx], id, s.layout, s.weights, descent.SndRefine)
		if cost < bestCost {
			bestPose, bestCost = pose, cost
		}
	}

	if bestCost < currentCost {
		s.layout.Move(id, bestPose)
		return true
	}
	return false
}

func (s *Separator) generateCandidates(id cde.PlacementID, item *model.Item, ref model.Pose) []model.Pose {
	container := s.layout.Engine().Container()
	uniform := sampler.ContainerUniform{Bounds: container}
	focussed := sampler.Focussed{RefX: ref.X, RefY: ref.Y, Stddev: item.MinDimension() * 0.1}
	uniformRot := sampler.NewUniformRotation(item.Rotation)
	focussedRot := sampler.NewNormalRotation(item.Rotation, ref.Rotation, focussedRotStddev)

	out := make([]model.Pose, 0, s.cfg.NContainerSamples+s.cfg.NFocussedSamples)
	for i := 0; i < s.cfg.NContainerSamples; i++ {
		x, y := uniform.Sample(s.rng)
		out = append(out, model.Pose{X: x, Y: y, Rotation: uniformRot.Sample(s.rng)})
	}
	for i := 0; i < s.cfg.NFocussedSamples; i++ {
		x, y := focussed.Sample(s.rng)
		out = append(out, model.Pose{X: x, Y: y, Rotation: focussedRot.Sample(s.rng)})
	}
	_ = id
	return out
}

func isDuplicateOf(pose model.Pose, existing []model.Pose, minDim float64) bool {
	for _, e := range existing {
		if descent.IsDuplicate(pose, e, minDim) {
			return true
		}
	}
	return false
}
