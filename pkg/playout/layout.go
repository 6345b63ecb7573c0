package playout

import (
	"fmt"
	"sort"

	"github.com/dshills/stripnest/pkg/cde"
	"github.com/dshills/stripnest/pkg/geom"
	"github.com/dshills/stripnest/pkg/model"
)

// Layout is the mutable placement state of one solve: a set of placed
// items backed by a cde.Engine, plus the container dimensions the
// Explore and Compress phases ratchet down over time.
type Layout struct {
	engine   *cde.Engine
	mode     model.Mode
	cellSize float64
	width    float64
	height   float64
	order    []cde.PlacementID
	items    map[cde.PlacementID]*model.Item
}

// NewLayout creates an empty layout over a width x height container.
// cellSize sizes the CDE's broad-phase grid; the caller typically
// passes the median demanded item's bounding diameter.
func NewLayout(mode model.Mode, width, height, cellSize float64) *Layout {
	container := geom.Rect{MinX: 0, MinY: 0, MaxX: width, MaxY: height}
	return &Layout{
		engine:   cde.NewEngine(container, cellSize),
		mode:     mode,
		cellSize: cellSize,
		width:    width,
		height:   height,
		items:    make(map[cde.PlacementID]*model.Item),
	}
}

// Mode returns the container mode this layout was built for.
func (l *Layout) Mode() model.Mode { return l.mode }

// Engine exposes the underlying CDE for read-only queries (sampler and
// descent packages cost candidate poses against it before Place/Move
// ever commits them).
func (l *Layout) Engine() *cde.Engine { return l.engine }

// Place registers a new item at pose and returns its placement ID.
func (l *Layout) Place(item *model.Item, pose model.Pose) cde.PlacementID {
	id := l.engine.Register(item, pose)
	l.items[id] = item
	l.order = append(l.order, id)
	return id
}

// Move relocates an existing placement to a new pose.
func (l *Layout) Move(id cde.PlacementID, pose model.Pose) {
	l.engine.Relocate(id, pose)
}

// Remove drops a placement from the layout entirely.
func (l *Layout) Remove(id cde.PlacementID) {
	l.engine.Remove(id)
	delete(l.items, id)
	for i, existing := range l.order {
		if existing == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// Placements returns the IDs of all currently placed items, in
// insertion order.
func (l *Layout) Placements() []cde.PlacementID {
	out := make([]cde.PlacementID, len(l.order))
	copy(out, l.order)
	return out
}

// Item returns the item registered under id.
func (l *Layout) Item(id cde.PlacementID) *model.Item {
	return l.items[id]
}

// Pose returns the current pose of a placed item.
func (l *Layout) Pose(id cde.PlacementID) model.Pose {
	return l.engine.Pose(id)
}

// OverlapOf returns the total proxy depth and per-neighbour breakdown
// of one placement against the rest of the layout. Depth(i,j) recorded
// for i always equals depth(j,i): both are computed live from the same
// symmetric pairDepth, so the two never drift independently.
func (l *Layout) OverlapOf(id cde.PlacementID) (float64, []cde.PairDepth) {
	item := l.items[id]
	pose := l.engine.Pose(id)
	return l.engine.PenetrationDepth(item, pose, id)
}

// WorstOverlapping returns the placement with the highest total
// overlap depth. Ties are broken by lowest placement ID. ok is false
// when the layout holds no placements.
func (l *Layout) WorstOverlapping() (id cde.PlacementID, depth float64, breakdown []cde.PairDepth, ok bool) {
	if len(l.order) == 0 {
		return 0, 0, nil, false
	}
	ids := append([]cde.PlacementID(nil), l.order...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	bestID := ids[0]
	bestDepth, bestBreakdown := l.OverlapOf(bestID)
	for _, candidate := range ids[1:] {
		d, bd := l.OverlapOf(candidate)
		if d > bestDepth {
			bestID, bestDepth, bestBreakdown = candidate, d, bd
		}
	}
	return bestID, bestDepth, bestBreakdown, true
}

// ContainerWidth returns the current container width.
func (l *Layout) ContainerWidth() float64 { return l.width }

// ContainerHeight returns the current container height.
func (l *Layout) ContainerHeight() float64 { return l.height }

// ShrinkWidthTo sets a new (smaller) container width. Callers are
// responsible for verifying feasibility at the new width before
// committing to it; ShrinkWidthTo itself just updates the bound the
// CDE checks OutOfBounds against.
func (l *Layout) ShrinkWidthTo(width float64) {
	l.width = width
	l.engine.SetContainer(geom.Rect{MinX: 0, MinY: 0, MaxX: l.width, MaxY: l.height})
}

// ShrinkHeightTo sets a new (smaller) container height.
func (l *Layout) ShrinkHeightTo(height float64) {
	l.height = height
	l.engine.SetContainer(geom.Rect{MinX: 0, MinY: 0, MaxX: l.width, MaxY: l.height})
}

// IsFeasible reports whether every placement is simultaneously in
// bounds and overlap-free, modulo the CDE's certify epsilon.
func (l *Layout) IsFeasible() bool {
	for _, id := range l.order {
		if err := l.engine.Certify(id); err != nil {
			return false
		}
	}
	return true
}

// checkInvariants is the consistency check run by this package's tests
// (non-test code never calls it): bookkeeping (order/items) must agree
// with itself, and overlap must be symmetric.
func (l *Layout) checkInvariants() error {
	if len(l.order) != len(l.items) {
		return fmt.Errorf("playout: order has %d entries, items has %d", len(l.order), len(l.items))
	}
	seen := make(map[cde.PlacementID]bool, len(l.order))
	for _, id := range l.order {
		if seen[id] {
			return fmt.Errorf("playout: placement %d appears twice in order", id)
		}
		seen[id] = true
		if _, ok := l.items[id]; !ok {
			return fmt.Errorf("playout: placement %d in order but missing from items", id)
		}
	}
	for _, id := range l.order {
		_, breakdownA := l.OverlapOf(id)
		for _, pd := range breakdownA {
			_, breakdownB := l.OverlapOf(pd.Other)
			found := false
			for _, back := range breakdownB {
				if back.Other == id {
					found = true
					if diffEpsilon(back.Depth, pd.Depth) {
						return fmt.Errorf("playout: asymmetric depth between %d and %d: %g vs %g", id, pd.Other, pd.Depth, back.Depth)
					}
					break
				}
			}
			if !found {
				return fmt.Errorf("playout: placement %d reports overlap with %d but %d does not report back", id, pd.Other, pd.Other)
			}
		}
	}
	return nil
}

func diffEpsilon(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d > 1e-6
}
