package quadtree

// descend walks n in preorder -- its own items first, then its sub-nodes
// in fixed index order -- calling yield for each datum found. It stops
// early and returns false as soon as yield does, per the range-over-func
// protocol used by PointTree.All/BoundsTree.All.
func descend[T any](n treeNode[T], yield func(T) bool) bool {
	for _, item := range n.items() {
		if !yield(item) {
			return false
		}
	}
	for _, sub := range n.children() {
		if !descend(sub, yield) {
			return false
		}
	}
	return true
}

// collectAll gathers every datum reachable from n, in the same preorder
// as descend. Used by the bounds variant's retrieve when a query bbox
// isn't fully contained by any single sub-node, so every intersecting
// sub-node's entire contents must be returned.
func collectAll[T any](n treeNode[T]) []T {
	var out []T
	descend(n, func(t T) bool {
		out = append(out, t)
		return true
	})
	return out
}

// SortedIter lazily yields every datum reachable from a tree's root in
// non-decreasing distance order from a fixed comparator. It shares the
// same priority work-queue state machine as Knn/KnnR, but -- unlike
// them -- skips individual children whose distance computation errors
// rather than aborting the whole walk, and has no k or r cutoff.
type SortedIter[T distable] struct {
	q       *workQueue[T]
	m       metric
	cmpGeom Geometry
}

func newSortedIter[T distable](root treeNode[T], m metric, cmp Comparator) *SortedIter[T] {
	s := &SortedIter[T]{q: newWorkQueue[T](), m: m}

	cmpGeom, err := cmp.AsGeometry()
	if err != nil {
		return s
	}
	s.cmpGeom = cmpGeom

	if d, err := m.distGeomRect(root.bounds(), cmpGeom); err == nil {
		s.q.pushNode(root, d)
	}
	return s
}

// Next returns the next closest datum and its distance, and false once
// every reachable datum has been yielded.
func (s *SortedIter[T]) Next() (T, float64, bool) {
	var zero T
	for !s.q.isEmpty() {
		top := s.q.pop()
		if !top.isNode {
			return top.datum, top.dist, true
		}

		for _, child := range top.node.items() {
			childGeom, err := child.AsGeometry()
			if err != nil {
				continue
			}
			d, err := s.m.distGeom(s.cmpGeom, childGeom)
			if err != nil {
				continue
			}
			s.q.pushDatum(child, d)
		}
		for _, sub := range top.node.children() {
			d, err := s.m.distGeomRect(sub.bounds(), s.cmpGeom)
			if err != nil {
				continue
			}
			s.q.pushNode(sub, d)
		}
	}
	return zero, 0, false
}
