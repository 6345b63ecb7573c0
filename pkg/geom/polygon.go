package geom

import "math"

// Polygon is a simple polygon ring: counter-clockwise, no self
// intersections, closure implicit (the last point does not repeat the
// first).
type Polygon struct {
	Points []Point
}

// NewPolygon builds a Polygon from a point slice, normalising winding
// order to counter-clockwise.
func NewPolygon(points []Point) Polygon {
	p := Polygon{Points: append([]Point(nil), points...)}
	if p.SignedArea() < 0 {
		p.reverse()
	}
	return p
}

func (p *Polygon) reverse() {
	for i, j := 0, len(p.Points)-1; i < j; i, j = i+1, j-1 {
		p.Points[i], p.Points[j] = p.Points[j], p.Points[i]
	}
}

// SignedArea returns the shoelace-formula signed area; positive for
// counter-clockwise rings.
func (p Polygon) SignedArea() float64 {
	n := len(p.Points)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Area returns the unsigned area enclosed by the ring.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Centroid returns the area-weighted centroid of the ring.
func (p Polygon) Centroid() Point {
	n := len(p.Points)
	if n == 0 {
		return Point{}
	}
	var cx, cy, area float64
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		cross := a.X*b.Y - b.X*a.Y
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
		area += cross
	}
	area /= 2
	if area == 0 {
		return p.Points[0]
	}
	return Point{cx / (6 * area), cy / (6 * area)}
}

// Bounds returns the polygon's axis-aligned bounding box.
func (p Polygon) Bounds() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	r := Rect{p.Points[0].X, p.Points[0].Y, p.Points[0].X, p.Points[0].Y}
	for _, pt := range p.Points[1:] {
		r.MinX = min(r.MinX, pt.X)
		r.MinY = min(r.MinY, pt.Y)
		r.MaxX = max(r.MaxX, pt.X)
		r.MaxY = max(r.MaxY, pt.Y)
	}
	return r
}

// BoundingDiameter returns the diameter of the polygon's bounding box
// (the diagonal length), used to scale the overlap proxy epsilon.
func (p Polygon) BoundingDiameter() float64 {
	b := p.Bounds()
	return math.Hypot(b.Width(), b.Height())
}

// MinDimension returns the shorter side of the polygon's bounding box,
// used as the base unit for coordinate-descent step sizes.
func (p Polygon) MinDimension() float64 {
	b := p.Bounds()
	return math.Min(b.Width(), b.Height())
}

// Transformed returns a copy of p rotated by theta radians about the
// origin and then translated by (dx, dy) — the solver's Pose convention.
func (p Polygon) Transformed(dx, dy, theta float64) Polygon {
	out := Polygon{Points: make([]Point, len(p.Points))}
	for i, pt := range p.Points {
		out.Points[i] = pt.Transform(dx, dy, theta)
	}
	return out
}

// Contains reports whether p contains point q, using a ray-casting
// parity test. Points exactly on the boundary may be reported as
// outside; callers needing margin semantics should dilate first.
func (p Polygon) Contains(q Point) bool {
	n := len(p.Points)
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.Points[i], p.Points[j]
		if (a.Y > q.Y) != (b.Y > q.Y) {
			xInt := (b.X-a.X)*(q.Y-a.Y)/(b.Y-a.Y) + a.X
			if q.X < xInt {
				inside = !inside
			}
		}
	}
	return inside
}

// IntersectionArea returns the area of the intersection of p and a
// convex clip polygon clip, via Sutherland-Hodgman clipping. When clip
// is non-convex the result approximates clipping against its convex
// hull, which is the acceptable realisation the overlap proxy allows
// (see OVERLAP_PROXY design note) — fine concave detail is instead
// covered by the surrogate pole terms.
func (p Polygon) IntersectionArea(clip Polygon) float64 {
	if len(p.Points) < 3 || len(clip.Points) < 3 {
		return 0
	}
	if !p.Bounds().Overlaps(clip.Bounds()) {
		return 0
	}
	subject := append([]Point(nil), p.Points...)
	n := len(clip.Points)
	for i := 0; i < n; i++ {
		a := clip.Points[i]
		b := clip.Points[(i+1)%n]
		subject = clipEdge(subject, a, b)
		if len(subject) == 0 {
			return 0
		}
	}
	return Polygon{Points: subject}.Area()
}

// clipEdge clips subject against the half-plane to the left of a->b
// (Sutherland-Hodgman single-edge step).
func clipEdge(subject []Point, a, b Point) []Point {
	if len(subject) == 0 {
		return subject
	}
	out := make([]Point, 0, len(subject)+1)
	inside := func(p Point) bool {
		return (b.X-a.X)*(p.Y-a.Y)-(b.Y-a.Y)*(p.X-a.X) >= 0
	}
	intersect := func(p1, p2 Point) Point {
		dx1, dy1 := b.X-a.X, b.Y-a.Y
		dx2, dy2 := p2.X-p1.X, p2.Y-p1.Y
		denom := dx1*dy2 - dy1*dx2
		if denom == 0 {
			return p2
		}
		t := ((p1.X-a.X)*dy1 - (p1.Y-a.Y)*dx1) / (-denom)
		return Point{p1.X + t*dx2, p1.Y + t*dy2}
	}

	n := len(subject)
	for i := 0; i < n; i++ {
		cur := subject[i]
		prev := subject[(i-1+n)%n]
		curIn := inside(cur)
		prevIn := inside(prev)
		if curIn {
			if !prevIn {
				out = append(out, intersect(prev, cur))
			}
			out = append(out, cur)
		} else if prevIn {
			out = append(out, intersect(prev, cur))
		}
	}
	return out
}

// Edges calls fn for every directed edge (a, b) of the ring, in order.
func (p Polygon) Edges(fn func(a, b Point)) {
	n := len(p.Points)
	for i := 0; i < n; i++ {
		fn(p.Points[i], p.Points[(i+1)%n])
	}
}

// DistanceToPoint returns the minimum distance from q to the polygon's
// boundary (0 if q lies exactly on an edge).
func (p Polygon) DistanceToPoint(q Point) float64 {
	best := math.Inf(1)
	p.Edges(func(a, b Point) {
		d := segmentDistance(q, a, b)
		if d < best {
			best = d
		}
	})
	return best
}

func segmentDistance(p, a, b Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	length2 := abx*abx + aby*aby
	if length2 == 0 {
		return p.DistanceTo(a)
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / length2
	t = math.Max(0, math.Min(1, t))
	proj := Point{a.X + t*abx, a.Y + t*aby}
	return p.DistanceTo(proj)
}
