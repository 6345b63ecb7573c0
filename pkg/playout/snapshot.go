package playout

import "github.com/dshills/stripnest/pkg/model"

// PlacedItem is one entry of a Snapshot: an item and the pose it held
// at the moment the snapshot was taken.
type PlacedItem struct {
	Item *model.Item
	Pose model.Pose
}

// Snapshot is an immutable copy of a Layout's placement state, cheap
// enough to hold onto as "last known feasible" while the optimizer
// tries a more aggressive shrink and may need to roll back.
type Snapshot struct {
	Mode     model.Mode
	Width    float64
	Height   float64
	CellSize float64
	Items    []PlacedItem
}

// Snapshot captures the current layout state. The returned value shares
// no mutable state with l: later Place/Move/Remove calls on l do not
// affect it.
func (l *Layout) Snapshot() Snapshot {
	items := make([]PlacedItem, 0, len(l.order))
	for _, id := range l.order {
		items = append(items, PlacedItem{
			Item: l.items[id],
			Pose: l.engine.Pose(id),
		})
	}
	return Snapshot{
		Mode:     l.mode,
		Width:    l.width,
		Height:   l.height,
		CellSize: l.cellSize,
		Items:    items,
	}
}

// Restore rebuilds a fresh Layout from a Snapshot, registering every
// placement with a new cde.Engine. Placement IDs are reassigned in
// snapshot order; callers that need to correlate snapshot entries with
// post-restore IDs should use the returned Layout's Placements() in
// the same order as snap.Items.
func Restore(snap Snapshot) *Layout {
	l := NewLayout(snap.Mode, snap.Width, snap.Height, snap.CellSize)
	for _, pi := range snap.Items {
		l.Place(pi.Item, pi.Pose)
	}
	return l
}
