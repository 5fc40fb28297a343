package quadtree

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// sphericalPointPoint computes the great-circle central angle, in radians,
// between two points whose coordinates are (longitude, latitude) radians
// on a unit sphere, via github.com/golang/geo's s2.LatLng: s1.Angle is
// itself a radian-typed float64, so the conversion is a direct cast.
func sphericalPointPoint(a, b Coord) float64 {
	la := s2.LatLng{Lat: s1.Angle(a.Y), Lng: s1.Angle(a.X)}
	lb := s2.LatLng{Lat: s1.Angle(b.Y), Lng: s1.Angle(b.X)}
	return float64(la.Distance(lb))
}

// sphericalPointSegment computes the great-circle distance from p to the
// segment a-b. The closest point on the segment is found by the same
// parameter-space projection and clamp used in the planar case, then the
// resulting point is compared to p with the spherical metric. This is an
// approximation (a true geodesic segment is not a straight line in
// longitude/latitude space) that is acceptable at the scale the sub-node
// partition already operates at.
func sphericalPointSegment(p, a, b Coord) float64 {
	ab := b.Subtract(a)
	ap := p.Subtract(a)
	t := ap.Project(ab)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := a.Add(ab.Scale(t))
	return sphericalPointPoint(p, closest)
}

// rectClampPoint clamps p into r component-wise.
func rectClampPoint(r Rect, p Coord) Coord {
	return Coord{X: clamp(p.X, r.Min.X, r.Max.X), Y: clamp(p.Y, r.Min.Y, r.Max.Y)}
}

// sphericalRectPoint computes the great-circle distance between a
// longitude/latitude rectangle and a point, clamping the point into the
// rectangle before measuring.
func sphericalRectPoint(r Rect, p Coord) float64 {
	return sphericalPointPoint(rectClampPoint(r, p), p)
}

// nearestAxis returns the coordinate within [selfMin, selfMax] closest to
// the interval [otherMin, otherMax]: an endpoint when the intervals don't
// overlap, or the midpoint of the overlap otherwise.
func nearestAxis(selfMin, selfMax, otherMin, otherMax float64) float64 {
	if selfMax < otherMin {
		return selfMax
	}
	if otherMax < selfMin {
		return selfMin
	}
	lo := math.Max(selfMin, otherMin)
	hi := math.Min(selfMax, otherMax)
	return (lo + hi) / 2
}

// rectNearestPoints returns the point in a and the point in b that are
// nearest each other under independent per-axis clamping. This does not
// account for antimeridian wraparound, which is left undefined.
func rectNearestPoints(a, b Rect) (Coord, Coord) {
	pa := Coord{
		X: nearestAxis(a.Min.X, a.Max.X, b.Min.X, b.Max.X),
		Y: nearestAxis(a.Min.Y, a.Max.Y, b.Min.Y, b.Max.Y),
	}
	pb := Coord{
		X: nearestAxis(b.Min.X, b.Max.X, a.Min.X, a.Max.X),
		Y: nearestAxis(b.Min.Y, b.Max.Y, a.Min.Y, a.Max.Y),
	}
	return pa, pb
}

// sphericalRectRect computes the great-circle distance between two
// longitude/latitude rectangles, via their nearest per-axis-clamped
// points. Overlapping rectangles yield coincident nearest points and
// therefore a zero distance.
func sphericalRectRect(a, b Rect) float64 {
	pa, pb := rectNearestPoints(a, b)
	return sphericalPointPoint(pa, pb)
}

// sphericalRectGeom computes the great-circle distance between a
// longitude/latitude rectangle and an arbitrary geometry.
func sphericalRectGeom(r Rect, g Geometry) (float64, error) {
	switch g.Kind {
	case GeometryRect:
		gr, _ := g.RectValue()
		return sphericalRectRect(r, gr), nil
	case GeometryPoint:
		p, _ := g.Point()
		return sphericalRectPoint(r, p), nil
	case GeometryLine:
		a, b, _ := g.Line()
		return sphericalShapeDistance(rectShape(r), shape{points: []Coord{a, b}}), nil
	default:
		// No geodesic formula is defined for LineString/Polygon under
		// Spherical mode; only Point, Line and Rect have one.
		return 0, ErrUnsupportedGeometry
	}
}

// sphericalGeomGeom computes the great-circle distance between two
// arbitrary geometries.
func sphericalGeomGeom(a, b Geometry) (float64, error) {
	if a.Kind == GeometryRect && b.Kind == GeometryRect {
		ra, _ := a.RectValue()
		rb, _ := b.RectValue()
		return sphericalRectRect(ra, rb), nil
	}
	if a.Kind == GeometryRect {
		return sphericalRectGeom(mustRect(a), b)
	}
	if b.Kind == GeometryRect {
		return sphericalRectGeom(mustRect(b), a)
	}
	if a.Kind == GeometryPoint && b.Kind == GeometryPoint {
		pa, _ := a.Point()
		pb, _ := b.Point()
		return sphericalPointPoint(pa, pb), nil
	}
	if a.Kind == GeometryLineString || a.Kind == GeometryPolygon ||
		b.Kind == GeometryLineString || b.Kind == GeometryPolygon {
		// No geodesic formula is defined for LineString/Polygon under
		// Spherical mode; see sphericalRectGeom.
		return 0, ErrUnsupportedGeometry
	}
	sa, err := geometryToShape(a)
	if err != nil {
		return 0, err
	}
	sb, err := geometryToShape(b)
	if err != nil {
		return 0, err
	}
	return sphericalShapeDistance(sa, sb), nil
}

// sphericalShapeDistance mirrors shapeDistance's structure (boundary
// containment, then edge crossing, then nearest point-to-segment pair)
// but measures every candidate distance with the spherical metric instead
// of the planar one. Containment and crossing tests stay planar, since
// they are topological rather than metric and operate at sub-node scale.
func sphericalShapeDistance(a, b shape) float64 {
	if len(a.points) == 1 && len(b.points) == 1 {
		return sphericalPointPoint(a.points[0], b.points[0])
	}
	if len(a.points) == 1 {
		return sphericalShapeToPointDistance(b, a.points[0])
	}
	if len(b.points) == 1 {
		return sphericalShapeToPointDistance(a, b.points[0])
	}

	for _, p := range a.points {
		if b.closed && pointInRing(p, b.points) {
			return 0
		}
	}
	for _, p := range b.points {
		if a.closed && pointInRing(p, a.points) {
			return 0
		}
	}

	best := math.Inf(1)
	aSegs := ringSegments(a.points, a.closed)
	bSegs := ringSegments(b.points, b.closed)
	for _, sa := range aSegs {
		for _, sb := range bSegs {
			if segmentsIntersect(sa[0], sa[1], sb[0], sb[1]) {
				return 0
			}
			if d := sphericalPointSegment(sa[0], sb[0], sb[1]); d < best {
				best = d
			}
			if d := sphericalPointSegment(sa[1], sb[0], sb[1]); d < best {
				best = d
			}
			if d := sphericalPointSegment(sb[0], sa[0], sa[1]); d < best {
				best = d
			}
			if d := sphericalPointSegment(sb[1], sa[0], sa[1]); d < best {
				best = d
			}
		}
	}
	return best
}

func sphericalShapeToPointDistance(s shape, p Coord) float64 {
	if s.closed && pointInRing(p, s.points) {
		return 0
	}
	best := math.Inf(1)
	for _, seg := range ringSegments(s.points, s.closed) {
		if d := sphericalPointSegment(p, seg[0], seg[1]); d < best {
			best = d
		}
	}
	return best
}
