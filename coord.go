package quadtree

import (
	"math"

	"github.com/paulmach/orb"
)

// Coord represents a single planar coordinate pair (x, y). Under Euclidean
// mode these are plain Cartesian units; under Spherical mode x is a
// longitude and y is a latitude, both in radians.
//
// Coord carries a small set of vector operations (Add, Subtract, Scale,
// Dot, Distance, Project, Between) fixed to exactly two components, since
// every geometry this package deals with is planar.
type Coord struct {
	X, Y float64
}

// NewCoord constructs a Coord from its x and y components.
func NewCoord(x, y float64) Coord {
	return Coord{X: x, Y: y}
}

// ToOrb converts a Coord to the orb.Point representation used internally
// by Geometry.
func (c Coord) ToOrb() orb.Point {
	return orb.Point{c.X, c.Y}
}

// coordFromOrb converts an orb.Point to a Coord.
func coordFromOrb(p orb.Point) Coord {
	return Coord{X: p[0], Y: p[1]}
}

// Add returns the component-wise sum of c and other.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Subtract returns the component-wise difference of c and other.
func (c Coord) Subtract(other Coord) Coord {
	return Coord{X: c.X - other.X, Y: c.Y - other.Y}
}

// Scale returns c with each component multiplied by scalar.
func (c Coord) Scale(scalar float64) Coord {
	return Coord{X: c.X * scalar, Y: c.Y * scalar}
}

// Dot returns the dot product of c and other.
func (c Coord) Dot(other Coord) float64 {
	return c.X*other.X + c.Y*other.Y
}

// DistanceSquared returns the squared Euclidean distance between c and
// other. Avoids the square root when only comparisons are needed.
func (c Coord) DistanceSquared(other Coord) float64 {
	dx := c.X - other.X
	dy := c.Y - other.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between c and other.
func (c Coord) Distance(other Coord) float64 {
	return math.Sqrt(c.DistanceSquared(other))
}

// Project returns the scalar parameter t at which c's projection onto the
// segment from origin to other falls, i.e. the value used to clamp a
// point-segment projection into [0, 1]. The result itself is not clamped.
// If other is the zero vector, Project returns 0.
func (c Coord) Project(other Coord) float64 {
	lenSq := other.Dot(other)
	if lenSq == 0 {
		return 0
	}
	return c.Dot(other) / lenSq
}

// Between reports whether the projection of c onto other falls strictly
// between the origin and other.
func (c Coord) Between(other Coord) bool {
	d := c.Dot(other)
	return d > 0 && d < other.Dot(other)
}
