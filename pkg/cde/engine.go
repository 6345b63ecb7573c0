package cde

import (
	"fmt"
	"math"

	"github.com/dshills/stripnest/pkg/geom"
	"github.com/dshills/stripnest/pkg/model"
)

// WeightLookup is the read side of a GLS weight table: the value
// NodeCost multiplies each pair's depth by. pkg/weights.Table
// implements this; the engine never mutates weights itself.
type WeightLookup interface {
	Weight(a, b PlacementID) float64
}

// Engine is the Collision Detection Engine: the only component that
// computes overlap or containment cost, and the only one that touches
// the spatial index. playout.Layout holds placement bookkeeping and
// calls through to an Engine for every geometric query.
type Engine struct {
	container geom.Rect
	grid      *grid
	entries   map[PlacementID]*placement
	nextID    PlacementID
}

// NewEngine creates an Engine over the given container, with a uniform
// grid cell size (the spec's recommendation is the median item
// bounding diameter; callers that don't know it up front may pass the
// container's shorter side as a coarse fallback).
func NewEngine(container geom.Rect, cellSize float64) *Engine {
	return &Engine{
		container: container,
		grid:      newGrid(cellSize),
		entries:   make(map[PlacementID]*placement),
	}
}

// Container returns the engine's current container bounds.
func (e *Engine) Container() geom.Rect { return e.container }

// SetContainer updates the container bounds in place (used by the
// shrink loop to ratchet the strip width or square side down without
// re-registering every placement).
func (e *Engine) SetContainer(r geom.Rect) { e.container = r }

// Register adds a new placement and returns its ID.
func (e *Engine) Register(item *model.Item, pose model.Pose) PlacementID {
	id := e.nextID
	e.nextID++
	p := transformPlacement(id, item, pose)
	e.entries[id] = p
	e.grid.insert(p)
	return id
}

// Remove drops a placement from the engine. It is an error to query a
// removed ID afterwards; the engine panics rather than returning stale
// geometry, since that would mask an invariant violation in the caller.
func (e *Engine) Remove(id PlacementID) {
	p, ok := e.entries[id]
	if !ok {
		panic(fmt.Sprintf("cde: Remove of unknown placement %d", id))
	}
	e.grid.remove(p)
	delete(e.entries, id)
}

// Relocate moves an existing placement to a new pose, re-indexing it.
func (e *Engine) Relocate(id PlacementID, pose model.Pose) {
	old, ok := e.entries[id]
	if !ok {
		panic(fmt.Sprintf("cde: Relocate of unknown placement %d", id))
	}
	e.grid.remove(old)
	p := transformPlacement(id, old.item, pose)
	e.entries[id] = p
	e.grid.insert(p)
}

// Pose returns the current pose of a registered placement.
func (e *Engine) Pose(id PlacementID) model.Pose {
	return e.entries[id].pose
}

// PenetrationDepth returns the total proxy overlap of item at pose
// against every other currently registered placement (excluding
// exclude, which is typically the placement being re-evaluated in
// place), plus a per-neighbour breakdown.
func (e *Engine) PenetrationDepth(item *model.Item, pose model.Pose, exclude PlacementID) (float64, []PairDepth) {
	probe := transformPlacement(-1, item, pose)
	reqSep := item.MinSeparation

	candidates := e.grid.candidates(probe.bounds.MinX, probe.bounds.MinY, probe.bounds.MaxX, probe.bounds.MaxY)
	var total float64
	var breakdown []PairDepth
	for _, id := range candidates {
		if id == exclude {
			continue
		}
		other := e.entries[id]
		sep := math.Max(reqSep, other.item.MinSeparation)
		d := pairDepth(probe, other, sep)
		if d > 0 {
			total += d
			breakdown = append(breakdown, PairDepth{Other: id, Depth: d})
		}
	}
	return total, breakdown
}

// DepthOf is a convenience wrapper returning only the total depth of a
// registered placement against its neighbours (excluding itself).
func (e *Engine) DepthOf(id PlacementID) float64 {
	p := e.entries[id]
	total, _ := e.PenetrationDepth(p.item, p.pose, id)
	return total
}

// OutOfBounds returns the signed exit distance of item at pose against
// the engine's current container: 0 when fully contained.
func (e *Engine) OutOfBounds(item *model.Item, pose model.Pose) float64 {
	probe := transformPlacement(-1, item, pose)
	return outOfBoundsDepth(e.container, probe.world)
}

// NodeCost is the scalar GLS objective for one candidate pose:
// OutOfBounds plus the weighted sum of pairwise depths.
func (e *Engine) NodeCost(item *model.Item, pose model.Pose, exclude PlacementID, weights WeightLookup) float64 {
	cost := e.OutOfBounds(item, pose)
	_, breakdown := e.PenetrationDepth(item, pose, exclude)
	for _, pd := range breakdown {
		w := 1.0
		if weights != nil {
			w = weights.Weight(exclude, pd.Other)
		}
		cost += w * pd.Depth
	}
	return cost
}

// Certify checks the hazard-proof invariant for a registered placement:
// zero OutOfBounds and zero depth against every other registered item,
// modulo the index's float epsilon. A non-nil error means the layout
// holding this engine has drifted from a feasible state.
func (e *Engine) Certify(id PlacementID) error {
	p, ok := e.entries[id]
	if !ok {
		return fmt.Errorf("cde: Certify of unknown placement %d", id)
	}
	if oob := outOfBoundsDepth(e.container, p.world); oob > certifyEpsilon {
		return fmt.Errorf("cde: placement %d out of bounds by %g", id, oob)
	}
	total, breakdown := e.PenetrationDepth(p.item, p.pose, id)
	if total > certifyEpsilon {
		return fmt.Errorf("cde: placement %d overlaps %d neighbour(s), total depth %g", id, len(breakdown), total)
	}
	return nil
}

// certifyEpsilon is the float tolerance below which a depth or exit
// distance is treated as exactly zero, absorbing the polygon clipping
// and rotation round-trip error accumulated by the proxy measures.
const certifyEpsilon = 1e-9
