package quadtree

import "math"

// euclideanRectRect computes the planar distance between two rectangles:
// classify overlap along each axis independently; zero if both axes
// overlap, the cross-axis gap if only one does, and the corner-to-corner
// distance otherwise. All three cases collapse into a single formula:
// the gap along an axis is zero wherever that axis overlaps, so squaring
// and summing the two (possibly zero) gaps is equivalent to the
// branching description.
func euclideanRectRect(a, b Rect) float64 {
	xOverlap, yOverlap := a.overlap(b)
	dx, dy := 0.0, 0.0
	if !xOverlap {
		dx = axisGap(a.Min.X, a.Max.X, b.Min.X, b.Max.X)
	}
	if !yOverlap {
		dy = axisGap(a.Min.Y, a.Max.Y, b.Min.Y, b.Max.Y)
	}
	return math.Sqrt(dx*dx + dy*dy)
}

// axisGap returns the gap between two non-overlapping 1-D intervals.
func axisGap(aMin, aMax, bMin, bMax float64) float64 {
	if aMax < bMin {
		return bMin - aMax
	}
	return aMin - bMax
}

// euclideanRectPoint computes the planar distance between a rectangle and
// a point, via clamping the point into the rectangle.
func euclideanRectPoint(r Rect, p Coord) float64 {
	cx := clamp(p.X, r.Min.X, r.Max.X)
	cy := clamp(p.Y, r.Min.Y, r.Max.Y)
	return Coord{X: cx, Y: cy}.Distance(p)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// euclideanRectGeom computes the planar distance between a rectangle and
// an arbitrary geometry.
func euclideanRectGeom(r Rect, g Geometry) (float64, error) {
	if g.Kind == GeometryRect {
		gr, _ := g.RectValue()
		return euclideanRectRect(r, gr), nil
	}
	shape, err := geometryToShape(g)
	if err != nil {
		return 0, err
	}
	return shapeDistance(rectShape(r), shape), nil
}

// euclideanGeomGeom computes the planar distance between two arbitrary
// geometries.
func euclideanGeomGeom(a, b Geometry) (float64, error) {
	if a.Kind == GeometryRect && b.Kind == GeometryRect {
		ra, _ := a.RectValue()
		rb, _ := b.RectValue()
		return euclideanRectRect(ra, rb), nil
	}
	if a.Kind == GeometryRect {
		return euclideanRectGeom(mustRect(a), b)
	}
	if b.Kind == GeometryRect {
		return euclideanRectGeom(mustRect(b), a)
	}
	sa, err := geometryToShape(a)
	if err != nil {
		return 0, err
	}
	sb, err := geometryToShape(b)
	if err != nil {
		return 0, err
	}
	return shapeDistance(sa, sb), nil
}

func mustRect(g Geometry) Rect {
	r, _ := g.RectValue()
	return r
}

// shape is a planar decomposition of a Geometry into a point sequence,
// used to compute distance generically across Point/Line/LineString/
// Polygon/Rect pairs: a point (len(points)==1), an open polyline, or a
// closed ring enclosing an interior.
type shape struct {
	points []Coord
	closed bool
}

func geometryToShape(g Geometry) (shape, error) {
	switch g.Kind {
	case GeometryPoint:
		p, _ := g.Point()
		return shape{points: []Coord{p}}, nil
	case GeometryLine:
		a, b, _ := g.Line()
		return shape{points: []Coord{a, b}}, nil
	case GeometryLineString:
		pts, _ := g.LineString()
		if len(pts) == 0 {
			return shape{}, ErrCannotMakeBbox
		}
		return shape{points: pts}, nil
	case GeometryPolygon:
		if len(g.polygon) == 0 || len(g.polygon[0]) == 0 {
			return shape{}, ErrCannotMakeBbox
		}
		ring := g.polygon[0]
		pts := make([]Coord, len(ring))
		for i, p := range ring {
			pts[i] = coordFromOrb(p)
		}
		return shape{points: pts, closed: true}, nil
	case GeometryRect:
		r, _ := g.RectValue()
		return rectShape(r), nil
	default:
		return shape{}, ErrUnsupportedGeometry
	}
}

func rectShape(r Rect) shape {
	return shape{
		points: []Coord{
			{r.Min.X, r.Min.Y}, {r.Max.X, r.Min.Y},
			{r.Max.X, r.Max.Y}, {r.Min.X, r.Max.Y},
		},
		closed: true,
	}
}

// shapeDistance computes the planar distance between two decomposed
// shapes: zero if either contains the other's point set or their edges
// cross, otherwise the minimum point-to-segment distance over every
// endpoint/segment combination.
func shapeDistance(a, b shape) float64 {
	if len(a.points) == 1 && len(b.points) == 1 {
		return a.points[0].Distance(b.points[0])
	}
	if len(a.points) == 1 {
		return shapeToPointDistance(b, a.points[0])
	}
	if len(b.points) == 1 {
		return shapeToPointDistance(a, b.points[0])
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
			if d := pointSegmentDistance(sa[0], sb[0], sb[1]); d < best {
				best = d
			}
			if d := pointSegmentDistance(sa[1], sb[0], sb[1]); d < best {
				best = d
			}
			if d := pointSegmentDistance(sb[0], sa[0], sa[1]); d < best {
				best = d
			}
			if d := pointSegmentDistance(sb[1], sa[0], sa[1]); d < best {
				best = d
			}
		}
	}
	return best
}

func shapeToPointDistance(s shape, p Coord) float64 {
	if s.closed && pointInRing(p, s.points) {
		return 0
	}
	best := math.Inf(1)
	for _, seg := range ringSegments(s.points, s.closed) {
		if d := pointSegmentDistance(p, seg[0], seg[1]); d < best {
			best = d
		}
	}
	return best
}

// ringSegments returns the consecutive edges of points, closing the loop
// back to the first point when closed is true.
func ringSegments(points []Coord, closed bool) [][2]Coord {
	if len(points) < 2 {
		return nil
	}
	n := len(points)
	segs := make([][2]Coord, 0, n)
	for i := 0; i < n-1; i++ {
		segs = append(segs, [2]Coord{points[i], points[i+1]})
	}
	if closed {
		segs = append(segs, [2]Coord{points[n-1], points[0]})
	}
	return segs
}

// pointSegmentDistance computes the planar distance from p to the segment
// a-b by projecting onto the segment in parameter space, clamping to an
// endpoint when the projection falls outside [0, 1].
func pointSegmentDistance(p, a, b Coord) float64 {
	ab := b.Subtract(a)
	ap := p.Subtract(a)
	t := ap.Project(ab)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := a.Add(ab.Scale(t))
	return p.Distance(closest)
}

// pointInRing reports whether p lies inside (or on the boundary of) the
// polygon described by ring, using the standard even-odd ray-casting
// test with an explicit boundary check.
func pointInRing(p Coord, ring []Coord) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := ring[i], ring[j]
		if pointOnSegment(p, vi, vj) {
			return true
		}
		if (vi.Y > p.Y) != (vj.Y > p.Y) {
			xIntersect := (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y) + vi.X
			if p.X < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}

func pointOnSegment(p, a, b Coord) bool {
	return pointSegmentDistance(p, a, b) == 0
}

// segmentsIntersect reports whether segments p1-p2 and p3-p4 cross or
// touch, using the standard orientation test.
func segmentsIntersect(p1, p2, p3, p4 Coord) bool {
	o1 := orientation(p1, p2, p3)
	o2 := orientation(p1, p2, p4)
	o3 := orientation(p3, p4, p1)
	o4 := orientation(p3, p4, p2)

	if o1 != o2 && o3 != o4 {
		return true
	}

	if o1 == 0 && onSegmentBox(p1, p2, p3) {
		return true
	}
	if o2 == 0 && onSegmentBox(p1, p2, p4) {
		return true
	}
	if o3 == 0 && onSegmentBox(p3, p4, p1) {
		return true
	}
	if o4 == 0 && onSegmentBox(p3, p4, p2) {
		return true
	}
	return false
}

// orientation returns 0 if a, b, c are collinear, 1 for clockwise and -1
// for counter-clockwise.
func orientation(a, b, c Coord) int {
	val := (b.Y-a.Y)*(c.X-b.X) - (b.X-a.X)*(c.Y-b.Y)
	switch {
	case val == 0:
		return 0
	case val > 0:
		return 1
	default:
		return -1
	}
}

// onSegmentBox assumes a, b, c are collinear and reports whether c's
// coordinates fall within a and b's bounding box.
func onSegmentBox(a, b, c Coord) bool {
	return c.X <= math.Max(a.X, b.X) && c.X >= math.Min(a.X, b.X) &&
		c.Y <= math.Max(a.Y, b.Y) && c.Y >= math.Min(a.Y, b.Y)
}
