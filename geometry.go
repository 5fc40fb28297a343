package quadtree

import "github.com/paulmach/orb"

// GeometryKind tags which variant a Geometry value holds.
type GeometryKind int

const (
	GeometryPoint GeometryKind = iota
	GeometryLine
	GeometryLineString
	GeometryPolygon
	GeometryRect
)

func (k GeometryKind) String() string {
	switch k {
	case GeometryPoint:
		return "Point"
	case GeometryLine:
		return "Line"
	case GeometryLineString:
		return "LineString"
	case GeometryPolygon:
		return "Polygon"
	case GeometryRect:
		return "Rect"
	default:
		return "Unknown"
	}
}

// Geometry is a tagged union over the five shape kinds this package
// understands: Point, Line (a two-endpoint segment), LineString (a
// polyline), Polygon and Rect. Geometric primitives themselves are
// supplied by github.com/paulmach/orb rather than reimplemented here;
// this package only owns the tagged-union wrapper and dispatch logic.
type Geometry struct {
	Kind       GeometryKind
	point      orb.Point
	line       [2]orb.Point
	lineString orb.LineString
	polygon    orb.Polygon
	rect       orb.Bound
}

// NewPointGeometry builds a Point geometry.
func NewPointGeometry(c Coord) Geometry {
	return Geometry{Kind: GeometryPoint, point: c.ToOrb()}
}

// NewLineGeometry builds a Line (two-endpoint segment) geometry.
func NewLineGeometry(a, b Coord) Geometry {
	return Geometry{Kind: GeometryLine, line: [2]orb.Point{a.ToOrb(), b.ToOrb()}}
}

// NewLineStringGeometry builds a LineString (polyline) geometry.
func NewLineStringGeometry(coords []Coord) Geometry {
	ls := make(orb.LineString, len(coords))
	for i, c := range coords {
		ls[i] = c.ToOrb()
	}
	return Geometry{Kind: GeometryLineString, lineString: ls}
}

// NewPolygonGeometry builds a Polygon geometry from one or more rings; the
// first ring is the exterior, any further rings are holes.
func NewPolygonGeometry(rings [][]Coord) Geometry {
	poly := make(orb.Polygon, len(rings))
	for i, ring := range rings {
		r := make(orb.Ring, len(ring))
		for j, c := range ring {
			r[j] = c.ToOrb()
		}
		poly[i] = r
	}
	return Geometry{Kind: GeometryPolygon, polygon: poly}
}

// NewRectGeometry builds a Rect geometry.
func NewRectGeometry(r Rect) Geometry {
	return Geometry{Kind: GeometryRect, rect: r.ToOrb()}
}

// Point returns the underlying point and true if g is a Point geometry.
func (g Geometry) Point() (Coord, bool) {
	if g.Kind != GeometryPoint {
		return Coord{}, false
	}
	return coordFromOrb(g.point), true
}

// Line returns the underlying segment endpoints and true if g is a Line
// geometry.
func (g Geometry) Line() (Coord, Coord, bool) {
	if g.Kind != GeometryLine {
		return Coord{}, Coord{}, false
	}
	return coordFromOrb(g.line[0]), coordFromOrb(g.line[1]), true
}

// LineString returns the underlying vertices and true if g is a
// LineString geometry.
func (g Geometry) LineString() ([]Coord, bool) {
	if g.Kind != GeometryLineString {
		return nil, false
	}
	out := make([]Coord, len(g.lineString))
	for i, p := range g.lineString {
		out[i] = coordFromOrb(p)
	}
	return out, true
}

// Polygon returns the underlying rings (exterior first, holes after) and
// true if g is a Polygon geometry.
func (g Geometry) Polygon() ([][]Coord, bool) {
	if g.Kind != GeometryPolygon {
		return nil, false
	}
	rings := make([][]Coord, len(g.polygon))
	for i, ring := range g.polygon {
		pts := make([]Coord, len(ring))
		for j, p := range ring {
			pts[j] = coordFromOrb(p)
		}
		rings[i] = pts
	}
	return rings, true
}

// RectValue returns the underlying rectangle and true if g is a Rect geometry.
func (g Geometry) RectValue() (Rect, bool) {
	if g.Kind != GeometryRect {
		return Rect{}, false
	}
	return rectFromOrb(g.rect), true
}

// Bound computes g's axis-aligned bounding rectangle. It fails with
// ErrCannotMakeBbox for an empty LineString or Polygon, which have no
// finite extent.
func (g Geometry) Bound() (Rect, error) {
	switch g.Kind {
	case GeometryPoint:
		return Rect{Min: coordFromOrb(g.point), Max: coordFromOrb(g.point)}, nil
	case GeometryLine:
		b := orb.Bound{Min: g.line[0], Max: g.line[0]}
		b = b.Extend(g.line[1])
		return rectFromOrb(b), nil
	case GeometryLineString:
		if len(g.lineString) == 0 {
			return Rect{}, ErrCannotMakeBbox
		}
		return rectFromOrb(g.lineString.Bound()), nil
	case GeometryPolygon:
		if len(g.polygon) == 0 || len(g.polygon[0]) == 0 {
			return Rect{}, ErrCannotMakeBbox
		}
		return rectFromOrb(g.polygon.Bound()), nil
	case GeometryRect:
		return rectFromOrb(g.rect), nil
	default:
		return Rect{}, ErrUnsupportedGeometry
	}
}

// PointDatum is satisfied by any value that can be stored in a PointTree.
// AsPoint supplies the coordinate used for insertion and retrieval;
// AsGeometry supplies the full geometry used by Find/Knn to compute exact
// distances. Go generics cannot express the Rust original's split bound
// (PointDatum required for insert, the richer Datum bound required only
// additionally for find/knn) on a single type parameter, so this package
// asks for the full interface up front -- the same choice made by
// github.com/paulmach/orb's QuadtreeOf[T] and by rtreego's Spatial
// interface.
type PointDatum interface {
	AsPoint() Coord
	AsGeometry() (Geometry, error)
}

// BoundsDatum is satisfied by any value that can be stored in a
// BoundsTree. Its bounding rectangle (via AsGeometry().Bound()) is used
// both for placement and for broad-phase retrieval.
type BoundsDatum interface {
	AsGeometry() (Geometry, error)
}

// Comparator is satisfied by search probes passed to Find, FindR, Knn and
// KnnR. It is deliberately the same shape as BoundsDatum: the tree derives
// every distance call it needs, under its configured Mode, from the single
// AsGeometry method.
type Comparator interface {
	AsGeometry() (Geometry, error)
}
