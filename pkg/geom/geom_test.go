package geom

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func rapidPoint(t *rapid.T, label string) Point {
	return Point{
		X: rapid.Float64Range(-500, 500).Draw(t, label+"_x"),
		Y: rapid.Float64Range(-500, 500).Draw(t, label+"_y"),
	}
}

// rapidConvexPolygon draws a regular N-gon (always simple and convex,
// whatever N and radius rapid picks), which keeps the shoelace and
// clipping properties below well-defined without a separate simplicity
// check.
func rapidConvexPolygon(t *rapid.T) Polygon {
	n := rapid.IntRange(3, 12).Draw(t, "n")
	radius := rapid.Float64Range(1, 200).Draw(t, "radius")
	cx := rapid.Float64Range(-200, 200).Draw(t, "cx")
	cy := rapid.Float64Range(-200, 200).Draw(t, "cy")

	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{
			X: cx + radius*math.Cos(theta),
			Y: cy + radius*math.Sin(theta),
		}
	}
	return NewPolygon(pts)
}

// TestProperty_TransformPreservesArea checks that Polygon.Transformed, a
// rigid rotation plus translation, never changes enclosed area.
func TestProperty_TransformPreservesArea(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		poly := rapidConvexPolygon(t)
		dx := rapid.Float64Range(-1000, 1000).Draw(t, "dx")
		dy := rapid.Float64Range(-1000, 1000).Draw(t, "dy")
		theta := rapid.Float64Range(-2*math.Pi, 2*math.Pi).Draw(t, "theta")

		before := poly.Area()
		after := poly.Transformed(dx, dy, theta).Area()

		if math.Abs(before-after) > 1e-6*math.Max(1, before) {
			t.Fatalf("area changed under rigid transform: before=%v after=%v", before, after)
		}
	})
}

// TestProperty_NewPolygonAlwaysCCW checks that NewPolygon normalises any
// winding order (clockwise input included) to a non-negative signed area.
func TestProperty_NewPolygonAlwaysCCW(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		poly := rapidConvexPolygon(t)
		if rapid.Bool().Draw(t, "reversed") {
			rev := Polygon{Points: append([]Point(nil), poly.Points...)}
			rev.reverse()
			poly = NewPolygon(rev.Points)
		}
		if poly.SignedArea() < -1e-9 {
			t.Fatalf("NewPolygon left a clockwise ring, signed area %v", poly.SignedArea())
		}
	})
}

// TestProperty_CentroidInsideConvexPolygon checks that a convex polygon's
// area-weighted centroid always lies within the polygon itself.
func TestProperty_CentroidInsideConvexPolygon(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		poly := rapidConvexPolygon(t)
		if !poly.Contains(poly.Centroid()) {
			t.Fatalf("centroid %v not contained in convex polygon %v", poly.Centroid(), poly.Points)
		}
	})
}

// TestProperty_SelfIntersectionAreaEqualsArea checks that clipping a
// convex polygon against itself returns its own area.
func TestProperty_SelfIntersectionAreaEqualsArea(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		poly := rapidConvexPolygon(t)
		got := poly.IntersectionArea(poly)
		want := poly.Area()
		if math.Abs(got-want) > 1e-6*math.Max(1, want) {
			t.Fatalf("self-intersection area %v, want %v", got, want)
		}
	})
}

// TestProperty_DisjointBoundsNoIntersection checks that two polygons
// whose bounding boxes don't overlap never report an intersection area.
func TestProperty_DisjointBoundsNoIntersection(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapidConvexPolygon(t)
		gap := rapid.Float64Range(1, 50).Draw(t, "gap")
		shift := a.Bounds().Width() + a.Bounds().Height() + gap + 400
		b := a.Transformed(shift, shift, 0)

		if got := a.IntersectionArea(b); got > 1e-9 {
			t.Fatalf("expected zero intersection area for disjoint bounds, got %v", got)
		}
	})
}

// TestProperty_RotationRoundTripIsIdentity checks that rotating a point
// by theta and then by -theta returns the original point.
func TestProperty_RotationRoundTripIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := rapidPoint(t, "p")
		theta := rapid.Float64Range(-4*math.Pi, 4*math.Pi).Draw(t, "theta")

		back := p.Rotated(theta).Rotated(-theta)
		if p.DistanceTo(back) > 1e-6*math.Max(1, p.DistanceTo(Point{})) {
			t.Fatalf("rotation round trip drifted: %v -> %v", p, back)
		}
	})
}
