package model

import (
	"fmt"

	"github.com/dshills/stripnest/pkg/geom"
)

// Surrogate is the fast approximate-collision layer for an Item: a
// handful of inner poles and an outer bounding circle, opaque to
// everything outside pkg/cde. Coordinates are in the item's local
// (unposed) frame.
type Surrogate struct {
	Poles []geom.Circle
	Outer geom.Circle
}

// Item is an immutable polygonal shape with a demanded rotation
// policy. Items never mutate after construction; per-run placement
// state lives in pkg/playout.
type Item struct {
	ID               string
	Polygon          geom.Polygon
	BoundingDiameter float64
	Rotation         RotationSpec
	MinSeparation    float64
	Surrogate        Surrogate
}

// NewItem builds an Item from a polygon ring, deriving its bounding
// diameter and a default surrogate (a single pole at the centroid plus
// an outer circle through the farthest vertex).
func NewItem(id string, ring []geom.Point, rotation RotationSpec, minSeparation float64) (Item, error) {
	if len(ring) < 3 {
		return Item{}, fmt.Errorf("model: item %q polygon needs at least 3 points, got %d", id, len(ring))
	}
	poly := geom.NewPolygon(ring)
	if poly.Area() <= 0 {
		return Item{}, fmt.Errorf("model: item %q polygon has zero area", id)
	}
	if err := rotation.Validate(); err != nil {
		return Item{}, fmt.Errorf("model: item %q: %w", id, err)
	}
	if minSeparation < 0 {
		return Item{}, fmt.Errorf("model: item %q min separation must be >= 0, got %f", id, minSeparation)
	}

	item := Item{
		ID:               id,
		Polygon:          poly,
		BoundingDiameter: poly.BoundingDiameter(),
		Rotation:         rotation,
		MinSeparation:    minSeparation,
	}
	item.Surrogate = defaultSurrogate(poly)
	return item, nil
}

// defaultSurrogate builds a minimal surrogate: one pole at the
// centroid sized to the polygon's inscribed-circle estimate, and an
// outer circle through the farthest vertex from the centroid.
func defaultSurrogate(poly geom.Polygon) Surrogate {
	centroid := poly.Centroid()
	poleRadius := poly.DistanceToPoint(centroid)
	outerRadius := 0.0
	for _, pt := range poly.Points {
		if d := centroid.DistanceTo(pt); d > outerRadius {
			outerRadius = d
		}
	}
	return Surrogate{
		Poles: []geom.Circle{{Center: centroid, Radius: poleRadius}},
		Outer: geom.Circle{Center: centroid, Radius: outerRadius},
	}
}

// MinDimension returns the item's shorter bounding-box side, the base
// unit coordinate-descent step sizes scale from.
func (it Item) MinDimension() float64 {
	return it.Polygon.MinDimension()
}
