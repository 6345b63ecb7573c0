package cde

import (
	"github.com/dshills/stripnest/pkg/geom"
	"github.com/dshills/stripnest/pkg/model"
)

// PlacementID identifies one registered item placement. IDs are never
// reused within the lifetime of an Engine, even across Remove/Register
// cycles, so stale references fail loudly rather than silently aliasing.
type PlacementID int

// placement is the engine's internal record: the item, its current
// pose, and polygon/surrogate geometry already transformed into world
// space so repeated queries don't re-rotate the ring every call.
type placement struct {
	id       PlacementID
	item     *model.Item
	pose     model.Pose
	world    geom.Polygon
	poles    []geom.Circle
	outer    geom.Circle
	bounds   geom.Rect
	cellMinX int
	cellMinY int
	cellMaxX int
	cellMaxY int
}

func transformPlacement(id PlacementID, item *model.Item, pose model.Pose) *placement {
	world := item.Polygon.Transformed(pose.X, pose.Y, pose.Rotation)
	poles := make([]geom.Circle, len(item.Surrogate.Poles))
	for i, pole := range item.Surrogate.Poles {
		poles[i] = pole.Transformed(pose.X, pose.Y, pose.Rotation)
	}
	outer := item.Surrogate.Outer.Transformed(pose.X, pose.Y, pose.Rotation)
	return &placement{
		id:     id,
		item:   item,
		pose:   pose,
		world:  world,
		poles:  poles,
		outer:  outer,
		bounds: world.Bounds(),
	}
}
