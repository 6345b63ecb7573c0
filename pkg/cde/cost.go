package cde

import (
	"math"

	"github.com/dshills/stripnest/pkg/geom"
	"github.com/dshills/stripnest/pkg/solverconst"
)

// PairDepth is one term of a PenetrationDepth breakdown: the proxy
// overlap magnitude between the queried placement and one neighbour.
type PairDepth struct {
	Other PlacementID
	Depth float64
}

// pairDepth realises the proxy overlap measure of two world-space
// placements: true polygon intersection area (Sutherland-Hodgman, both
// directions since neither polygon is guaranteed convex), plus a
// poleDepth^2*pi containment term for each surrogate pole lying inside
// the other polygon, plus a continuous deficit term when the pair is
// fully disjoint but closer than their combined minimum separation.
//
// Zero iff the pair is disjoint by at least reqSep; monotonic in true
// penetration depth by construction (see geom.Polygon.IntersectionArea
// and geom.PoleDepthInPolygon for the approximation this relies on).
func pairDepth(p, q *placement, reqSep float64) float64 {
	if !surrogatesCouldOverlap(p, q, reqSep) {
		return 0
	}

	depth := p.world.IntersectionArea(q.world) + q.world.IntersectionArea(p.world)

	for _, pole := range p.poles {
		if d := geom.PoleDepthInPolygon(pole, q.world); d > 0 {
			depth += d * d * math.Pi
		}
	}
	for _, pole := range q.poles {
		if d := geom.PoleDepthInPolygon(pole, p.world); d > 0 {
			depth += d * d * math.Pi
		}
	}

	if depth == 0 && reqSep > 0 {
		dist := polyMinDistance(p.world, q.world)
		if dist < reqSep {
			deficit := reqSep - dist
			depth = deficit * deficit * solverconst.OverlapProxyEpsilonDiamRatio
		}
	}

	return depth
}

// surrogatesCouldOverlap is the cheap broad-phase reject: two outer
// circles (dilated by reqSep) that don't overlap can never yield a
// positive depth, so the expensive polygon/pole tests are skipped.
func surrogatesCouldOverlap(p, q *placement, reqSep float64) bool {
	centerDist := p.outer.Center.DistanceTo(q.outer.Center)
	return centerDist <= p.outer.Radius+q.outer.Radius+reqSep
}

// polyMinDistance approximates the minimum distance between two
// polygon boundaries by checking each polygon's vertices against the
// other's boundary. Exact for convex polygons; an acceptable
// approximation for concave ones, consistent with the intersection
// area approximation used elsewhere in this package.
func polyMinDistance(a, b geom.Polygon) float64 {
	best := math.Inf(1)
	for _, v := range a.Points {
		if d := b.DistanceToPoint(v); d < best {
			best = d
		}
	}
	for _, v := range b.Points {
		if d := a.DistanceToPoint(v); d < best {
			best = d
		}
	}
	return best
}

// outOfBoundsDepth returns the worst (maximum) signed exit distance of
// any vertex of poly outside container; 0 when poly is fully contained.
func outOfBoundsDepth(container geom.Rect, poly geom.Polygon) float64 {
	worst := 0.0
	for _, v := range poly.Points {
		if d := container.ExitDistance(v); d > worst {
			worst = d
		}
	}
	return worst
}
