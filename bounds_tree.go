package quadtree

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// boundsNode is the bounds-variant node: data are placed by their
// bounding rectangle, and a feature that straddles a sub-node boundary
// is retained as a stuck child at the deepest ancestor fully containing
// it, rather than forced into one sub-node.
type boundsNode[T BoundsDatum] struct {
	boundsR     Rect
	depth       int
	maxDepth    int
	maxChildren int
	kids        []T
	stuck       []T
	sub         *[4]boundsNode[T]
}

func newBoundsNode[T BoundsDatum](bounds Rect, depth, maxDepth, maxChildren int) *boundsNode[T] {
	return &boundsNode[T]{boundsR: bounds, depth: depth, maxDepth: maxDepth, maxChildren: maxChildren}
}

func (n *boundsNode[T]) bounds() Rect { return n.boundsR }

// items returns both the node's direct children and its stuck children,
// since search algorithms treat them identically as "data living at
// this node."
func (n *boundsNode[T]) items() []T {
	if len(n.stuck) == 0 {
		return n.kids
	}
	out := make([]T, 0, len(n.kids)+len(n.stuck))
	out = append(out, n.kids...)
	out = append(out, n.stuck...)
	return out
}

func (n *boundsNode[T]) children() []treeNode[T] {
	if n.sub == nil {
		return nil
	}
	out := make([]treeNode[T], 4)
	for i := range n.sub {
		out[i] = &n.sub[i]
	}
	return out
}

func (n *boundsNode[T]) subdivide() {
	quads := n.boundsR.quadrants()
	depth := n.depth + 1
	var sub [4]boundsNode[T]
	for i, q := range quads {
		sub[i] = boundsNode[T]{boundsR: q, depth: depth, maxDepth: n.maxDepth, maxChildren: n.maxChildren}
	}
	n.sub = &sub
}

// insert places d, whose bbox has already been computed by the caller.
// If this node is subdivided, d descends into the sub-node selected by
// its bbox center only when that sub-node's bounds fully contain the
// bbox (boundary inclusive); otherwise d becomes a stuck child here.
func (n *boundsNode[T]) insert(d T, bbox Rect) error {
	if n.sub != nil {
		idx := findSubNodeIndex(bbox.Center(), n.boundsR)
		sub := &n.sub[idx]
		if sub.boundsR.ContainsRect(bbox) {
			return sub.insert(d, bbox)
		}
		n.stuck = append(n.stuck, d)
		return nil
	}
	if shouldSubdivide(len(n.kids), n.maxChildren, n.depth, n.maxDepth) {
		n.subdivide()
		existing := n.kids
		n.kids = nil
		for _, c := range existing {
			cb, err := boundsOf(c)
			if err != nil {
				return err
			}
			if err := n.insert(c, cb); err != nil {
				return err
			}
		}
		return n.insert(d, bbox)
	}
	n.kids = append(n.kids, d)
	return nil
}

// retrieve yields the node's own children and stuck children first (per
// the stuck-children-surface-early contract), then either recurses into
// the single sub-node fully containing query, or -- when no sub-node
// does -- every descendant of every sub-node whose bounds merely
// intersect query.
func (n *boundsNode[T]) retrieve(query Rect) []T {
	out := append([]T{}, n.kids...)
	out = append(out, n.stuck...)

	if n.sub == nil {
		return out
	}

	idx := findSubNodeIndex(query.Center(), n.boundsR)
	chosen := &n.sub[idx]
	if chosen.boundsR.ContainsRect(query) {
		return append(out, chosen.retrieve(query)...)
	}
	for i := range n.sub {
		if n.sub[i].boundsR.Intersects(query) {
			out = append(out, collectAll[T](&n.sub[i])...)
		}
	}
	return out
}

func boundsOf[T BoundsDatum](d T) (Rect, error) {
	g, err := d.AsGeometry()
	if err != nil {
		return Rect{}, err
	}
	return g.Bound()
}

func (n *boundsNode[T]) write(b *strings.Builder) {
	indent := strings.Repeat(" ", n.depth*4)
	count := len(n.kids) + len(n.stuck)
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

// BoundsTree indexes data by their bounding rectangle. Features whose
// bbox straddles a sub-node boundary are retained as stuck children of
// the deepest node that fully contains them, rather than forced into an
// arbitrary sub-node.
type BoundsTree[T BoundsDatum] struct {
	root   *boundsNode[T]
	bounds Rect
	metric metric
	size   int
}

// NewBoundsTree constructs a BoundsTree over bounds with explicit
// subdivision thresholds.
func NewBoundsTree[T BoundsDatum](bounds Rect, mode Mode, maxDepth, maxChildren int) *BoundsTree[T] {
	return &BoundsTree[T]{
		root:   newBoundsNode[T](bounds, 0, maxDepth, maxChildren),
		bounds: bounds,
		metric: metric{mode: mode},
	}
}

// NewBoundsTreeFromBounds constructs a BoundsTree using DefaultMaxDepth
// and DefaultMaxChildren.
func NewBoundsTreeFromBounds[T BoundsDatum](bounds Rect, mode Mode) *BoundsTree[T] {
	return NewBoundsTree[T](bounds, mode, DefaultMaxDepth, DefaultMaxChildren)
}

// Size returns the number of data currently stored.
func (t *BoundsTree[T]) Size() int { return t.size }

// Insert adds d to the tree. It fails with ErrCannotMakeBbox if d's
// geometry has no finite bbox, or ErrOutOfBounds if that bbox is not
// fully contained (boundary inclusive) by the root bounds.
func (t *BoundsTree[T]) Insert(d T) error {
	bbox, err := boundsOf(d)
	if err != nil {
		return err
	}
	if !t.bounds.ContainsRect(bbox) {
		return ErrOutOfBounds
	}
	if err := t.root.insert(d, bbox); err != nil {
		return err
	}
	t.size++
	return nil
}

// Retrieve returns every datum whose placement could overlap query, a
// broad-phase prefilter rather than an exact match. A query whose bbox
// can't be computed, or that lies outside the root bounds, yields nil
// rather than an error.
func (t *BoundsTree[T]) Retrieve(query T) []T {
	bbox, err := boundsOf(query)
	if err != nil {
		return nil
	}
	if !t.bounds.ContainsRect(bbox) {
		return nil
	}
	return t.root.retrieve(bbox)
}

// Find returns the single closest datum to cmp.
func (t *BoundsTree[T]) Find(cmp Comparator) (T, float64, error) {
	return t.FindR(cmp, math.Inf(1))
}

// FindR returns the single closest datum to cmp within radius r, failing
// with ErrNoneInRadius if nothing qualifies.
func (t *BoundsTree[T]) FindR(cmp Comparator, r float64) (T, float64, error) {
	return treeFind[T](t.root, t.size, t.metric, cmp, r)
}

// Knn returns the k closest data to cmp, nearest first.
func (t *BoundsTree[T]) Knn(cmp Comparator, k int) ([]T, []float64, error) {
	return t.KnnR(cmp, k, math.Inf(1))
}

// KnnR returns up to k closest data to cmp within radius r, nearest
// first.
func (t *BoundsTree[T]) KnnR(cmp Comparator, k int, r float64) ([]T, []float64, error) {
	return treeKnn[T](t.root, t.size, t.metric, cmp, k, r)
}

// All iterates every stored datum in preorder: a node's own children and
// stuck children first, then its sub-nodes in fixed index order.
func (t *BoundsTree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		descend(t.root, yield)
	}
}

// Sorted returns a lazy iterator over every stored datum in non-decreasing
// distance order from cmp.
func (t *BoundsTree[T]) Sorted(cmp Comparator) *SortedIter[T] {
	return newSortedIter[T](t.root, t.metric, cmp)
}

// String renders a recursive indented dump of the tree: each node's
// minimum corner and child count. The format is illustrative and is not
// meant to be parsed.
func (t *BoundsTree[T]) String() string {
	var b strings.Builder
	b.WriteString("Quadtree Root:\n")
	t.root.write(&b)
	return b.String()
}
