package geom

import "math"

// Point is a 2D coordinate. Equality is bitwise on both coordinates
// (including the sign of zero), matching the solver's hashing contract:
// the core never produces NaN placements, so bit-pattern equality is a
// safe, allocation-free dedup key.
type Point struct {
	X, Y float64
}

// Key returns a hashable, bitwise-exact representation of p, suitable
// for use in maps and sets that must distinguish -0 from +0.
func (p Point) Key() [2]uint64 {
	return [2]uint64{math.Float64bits(p.X), math.Float64bits(p.Y)}
}

// DistanceTo returns the Euclidean distance between p and other.
func (p Point) DistanceTo(other Point) float64 {
	return math.Sqrt(p.SqDistanceTo(other))
}

// SqDistanceTo returns the squared Euclidean distance between p and other.
func (p Point) SqDistanceTo(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{p.X + dx, p.Y + dy}
}

// Sub returns the vector from other to p.
func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

// Rotated returns p rotated by theta radians around the origin.
func (p Point) Rotated(theta float64) Point {
	sin, cos := math.Sincos(theta)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Transform applies a rigid rotation about the origin followed by a
// translation, matching the solver's Pose convention (rotate, then
// translate).
func (p Point) Transform(dx, dy, theta float64) Point {
	return p.Rotated(theta).Add(dx, dy)
}
