package quadtree

import "github.com/paulmach/orb"

// Rect is an axis-aligned rectangle given by its minimum and maximum
// corners, with Min.X <= Max.X and Min.Y <= Max.Y. Following a
// top-left-origin convention, "top" means the smaller y value.
type Rect struct {
	Min, Max Coord
}

// NewRect builds a Rect from two corners, normalizing them so Min/Max are
// correctly ordered regardless of the order the caller supplies them in.
func NewRect(a, b Coord) Rect {
	min := Coord{X: minF(a.X, b.X), Y: minF(a.Y, b.Y)}
	max := Coord{X: maxF(a.X, b.X), Y: maxF(a.Y, b.Y)}
	return Rect{Min: min, Max: max}
}

// ToOrb converts a Rect to an orb.Bound.
func (r Rect) ToOrb() orb.Bound {
	return orb.Bound{Min: r.Min.ToOrb(), Max: r.Max.ToOrb()}
}

// rectFromOrb converts an orb.Bound to a Rect.
func rectFromOrb(b orb.Bound) Rect {
	return Rect{Min: coordFromOrb(b.Min), Max: coordFromOrb(b.Max)}
}

// Width returns the rectangle's extent along x.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the rectangle's extent along y.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the rectangle's midpoint, used both for sub-node
// selection and as the representative coordinate of a bounds-variant
// datum.
func (r Rect) Center() Coord {
	return Coord{
		X: (r.Min.X + r.Max.X) / 2,
		Y: (r.Min.Y + r.Max.Y) / 2,
	}
}

// ContainsPoint reports whether p lies within r, boundary inclusive.
func (r Rect) ContainsPoint(p Coord) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ContainsRect reports whether other is fully contained by r, boundary
// inclusive. Containment is deliberately a closed-interval comparison
// rather than a strict DE-9IM "contains" relationship, so that a
// zero-area feature sitting exactly on a boundary still counts.
func (r Rect) ContainsRect(other Rect) bool {
	return other.Min.X >= r.Min.X && other.Max.X <= r.Max.X &&
		other.Min.Y >= r.Min.Y && other.Max.Y <= r.Max.Y
}

// Intersects reports whether r and other share any area or boundary,
// boundary inclusive.
func (r Rect) Intersects(other Rect) bool {
	x, y := r.overlap(other)
	return x && y
}

// overlap classifies whether r and other overlap along each axis
// independently. Intersects and the Euclidean rect-rect distance formula
// branch on this classification.
func (r Rect) overlap(other Rect) (xOverlap, yOverlap bool) {
	xOverlap = r.Min.X <= other.Max.X && other.Min.X <= r.Max.X
	yOverlap = r.Min.Y <= other.Max.Y && other.Min.Y <= r.Max.Y
	return
}

// quadrants holds the fixed-order [TL, TR, BR, BL] sub-rectangles produced
// by subdividing r at its midpoint.
func (r Rect) quadrants() [4]Rect {
	mx, my := r.Center().X, r.Center().Y
	tl := Rect{Min: Coord{r.Min.X, r.Min.Y}, Max: Coord{mx, my}}
	tr := Rect{Min: Coord{mx, r.Min.Y}, Max: Coord{r.Max.X, my}}
	br := Rect{Min: Coord{mx, my}, Max: Coord{r.Max.X, r.Max.Y}}
	bl := Rect{Min: Coord{r.Min.X, my}, Max: Coord{mx, r.Max.Y}}
	return [4]Rect{tl, tr, br, bl}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
