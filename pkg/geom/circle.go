package geom

import "math"

// Circle is a pole or outer bounding circle used by an item's
// surrogate. Center is relative to the item's local frame (pre-pose).
type Circle struct {
	Center Point
	Radius float64
}

// Transformed returns the circle's center under the given pose,
// matching Polygon.Transformed's rotate-then-translate convention.
// Radius is rotation-invariant.
func (c Circle) Transformed(dx, dy, theta float64) Circle {
	return Circle{Center: c.Center.Transform(dx, dy, theta), Radius: c.Radius}
}

// Overlaps reports whether c and other intersect (or touch).
func (c Circle) Overlaps(other Circle) bool {
	return c.Center.DistanceTo(other.Center) <= c.Radius+other.Radius
}

// OverlapDepth returns how far c and other interpenetrate along the
// line joining their centers (0 if disjoint).
func (c Circle) OverlapDepth(other Circle) float64 {
	d := c.Center.DistanceTo(other.Center)
	depth := c.Radius + other.Radius - d
	if depth < 0 {
		return 0
	}
	return depth
}

// ContainmentDepth returns how deep point q penetrates inside c (0 if
// q lies outside or exactly on the boundary).
func (c Circle) ContainmentDepth(q Point) float64 {
	depth := c.Radius - c.Center.DistanceTo(q)
	if depth < 0 {
		return 0
	}
	return depth
}

// PoleDepthInPolygon returns, for a pole (small circle) and a
// polygon, a smooth depth measure: 0 if the pole's center is outside
// the polygon, else the distance from the center to the nearest edge
// (the pole's "depth of containment").
func PoleDepthInPolygon(pole Circle, poly Polygon) float64 {
	if !poly.Contains(pole.Center) {
		return 0
	}
	d := poly.DistanceToPoint(pole.Center)
	return math.Max(d, 0)
}
