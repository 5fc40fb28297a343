package quadtree

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// DefaultMaxDepth and DefaultMaxChildren are the subdivision thresholds
// used by the *FromBounds constructors: a shallow, wide tree rather than
// a deep, narrow one.
const (
	DefaultMaxDepth    = 4
	DefaultMaxChildren = 4
)

// pointNode is the point-variant node: data are reduced to a single
// coordinate, so every feature lives in exactly one node and
// stuck-children never apply.
type pointNode[T PointDatum] struct {
	boundsR      Rect
	depth        int
	maxDepth     int
	maxChildren  int
	kids         []T
	sub          *[4]pointNode[T]
}

func newPointNode[T PointDatum](bounds Rect, depth, maxDepth, maxChildren int) *pointNode[T] {
	return &pointNode[T]{boundsR: bounds, depth: depth, maxDepth: maxDepth, maxChildren: maxChildren}
}

func (n *pointNode[T]) bounds() Rect { return n.boundsR }
func (n *pointNode[T]) items() []T   { return n.kids }

func (n *pointNode[T]) children() []treeNode[T] {
	if n.sub == nil {
		return nil
	}
	out := make([]treeNode[T], 4)
	for i := range n.sub {
		out[i] = &n.sub[i]
	}
	return out
}

// subdivide allocates the four sub-nodes tiling n's bounds, in fixed
// [TL, TR, BR, BL] order.
func (n *pointNode[T]) subdivide() {
	quads := n.boundsR.quadrants()
	depth := n.depth + 1
	var sub [4]pointNode[T]
	for i, q := range quads {
		sub[i] = pointNode[T]{boundsR: q, depth: depth, maxDepth: n.maxDepth, maxChildren: n.maxChildren}
	}
	n.sub = &sub
}

// insert descends to the sub-node selected by the datum's point, or
// subdivides and re-inserts existing children (plus d) once this leaf
// has reached max_children -- unless max_depth has already been reached,
// in which case children accumulate without limit.
func (n *pointNode[T]) insert(d T) {
	if n.sub != nil {
		idx := findSubNodeIndex(d.AsPoint(), n.boundsR)
		n.sub[idx].insert(d)
		return
	}
	if shouldSubdivide(len(n.kids), n.maxChildren, n.depth, n.maxDepth) {
		n.subdivide()
		existing := n.kids
		n.kids = nil
		for _, c := range existing {
			n.insert(c)
		}
		n.insert(d)
		return
	}
	n.kids = append(n.kids, d)
}

// retrieve recurses to the sub-node selected by rep and returns its
// children; this is a broad-phase single-bucket lookup, not a distance
// search.
func (n *pointNode[T]) retrieve(rep Coord) []T {
	if n.sub != nil {
		idx := findSubNodeIndex(rep, n.boundsR)
		return n.sub[idx].retrieve(rep)
	}
	return n.kids
}

func (n *pointNode[T]) write(b *strings.Builder) {
	indent := strings.Repeat(" ", n.depth*4)
	count := len(n.kids)
	suffix := ""
	switch count {
	case 0:
	case 1:
		suffix = " 1 child"
	default:
		suffix = fmt.Sprintf(" %d children", count)
	}
	fmt.Fprintf(b, "%s(%.2f, %.2f):%s\n", indent, n.boundsR.Min.X, n.boundsR.Min.Y, suffix)
	if n.sub != nil {
		for i := range n.sub {
			n.sub[i].write(b)
		}
	}
}

// PointTree indexes data reduced to a single coordinate. It supports
// broad-phase retrieval and, once constructed with a Mode other than
// ModeNone, distance-pruned Find/Knn search and a distance-sorted
// iterator.
type PointTree[T PointDatum] struct {
	root   *pointNode[T]
	bounds Rect
	metric metric
	size   int
}

// NewPointTree constructs a PointTree over bounds with explicit
// subdivision thresholds.
func NewPointTree[T PointDatum](bounds Rect, mode Mode, maxDepth, maxChildren int) *PointTree[T] {
	return &PointTree[T]{
		root:   newPointNode[T](bounds, 0, maxDepth, maxChildren),
		bounds: bounds,
		metric: metric{mode: mode},
	}
}

// NewPointTreeFromBounds constructs a PointTree using DefaultMaxDepth and
// DefaultMaxChildren.
func NewPointTreeFromBounds[T PointDatum](bounds Rect, mode Mode) *PointTree[T] {
	return NewPointTree[T](bounds, mode, DefaultMaxDepth, DefaultMaxChildren)
}

// Size returns the number of data currently stored.
func (t *PointTree[T]) Size() int { return t.size }

// Insert adds d to the tree, failing with ErrOutOfBounds if d's point
// lies outside the root bounds (boundary inclusive).
func (t *PointTree[T]) Insert(d T) error {
	if !t.bounds.ContainsPoint(d.AsPoint()) {
		return ErrOutOfBounds
	}
	t.root.insert(d)
	t.size++
	return nil
}

// Retrieve returns every datum sharing query's leaf bucket, a broad-phase
// prefilter rather than an exact match. An out-of-bounds query returns
// nil rather than an error.
func (t *PointTree[T]) Retrieve(query T) []T {
	p := query.AsPoint()
	if !t.bounds.ContainsPoint(p) {
		return nil
	}
	return t.root.retrieve(p)
}

// Find returns the single closest datum to cmp.
func (t *PointTree[T]) Find(cmp Comparator) (T, float64, error) {
	return t.FindR(cmp, math.Inf(1))
}

// FindR returns the single closest datum to cmp within radius r, failing
// with ErrNoneInRadius if nothing qualifies.
func (t *PointTree[T]) FindR(cmp Comparator, r float64) (T, float64, error) {
	return treeFind[T](t.root, t.size, t.metric, cmp, r)
}

// Knn returns the k closest data to cmp, nearest first.
func (t *PointTree[T]) Knn(cmp Comparator, k int) ([]T, []float64, error) {
	return t.KnnR(cmp, k, math.Inf(1))
}

// KnnR returns up to k closest data to cmp within radius r, nearest
// first.
func (t *PointTree[T]) KnnR(cmp Comparator, k int, r float64) ([]T, []float64, error) {
	return treeKnn[T](t.root, t.size, t.metric, cmp, k, r)
}

// All iterates every stored datum in preorder: a node's own children
// first, then its sub-nodes in fixed index order.
func (t *PointTree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		descend(t.root, yield)
	}
}

// Sorted returns a lazy iterator over every stored datum in non-decreasing
// distance order from cmp.
func (t *PointTree[T]) Sorted(cmp Comparator) *SortedIter[T] {
	return newSortedIter[T](t.root, t.metric, cmp)
}

// String renders a recursive indented dump of the tree: each node's
// minimum corner and child count. The format is illustrative and is not
// meant to be parsed.
func (t *PointTree[T]) String() string {
	var b strings.Builder
	b.WriteString("Quadtree Root:\n")
	t.root.write(&b)
	return b.String()
}
