package quadtree

// distable is satisfied by any stored datum type usable in the shared
// search algorithms below: both PointDatum and BoundsDatum qualify,
// since each requires AsGeometry.
type distable interface {
	AsGeometry() (Geometry, error)
}

// treeFind runs the plain best-first DFS behind Find/FindR, shared by
// both tree variants via the treeNode abstraction. It maintains a single
// running minimum rather than a sorted work list, matching the
// original's point-tree find loop.
func treeFind[T distable](root treeNode[T], size int, m metric, cmp Comparator, r float64) (T, float64, error) {
	var zero T
	if size == 0 {
		return zero, 0, ErrEmpty
	}

	cmpGeom, err := cmp.AsGeometry()
	if err != nil {
		return zero, 0, err
	}

	rootDist, err := m.distGeomRect(root.bounds(), cmpGeom)
	if err != nil {
		return zero, 0, err
	}
	if rootDist != 0 {
		return zero, 0, ErrOutOfBounds
	}

	stack := []treeNode[T]{root}
	var best T
	found := false
	bestD := r

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		bd, err := m.distGeomRect(n.bounds(), cmpGeom)
		if err != nil {
			return zero, 0, err
		}
		if bd >= bestD {
			continue
		}

		for _, child := range n.items() {
			childGeom, err := child.AsGeometry()
			if err != nil {
				return zero, 0, err
			}

			// Cheap prefilter: skip the exact distance calculation when
			// the child's own bbox is already further than the current
			// best. Always available for bounds data; for point data the
			// bbox degenerates to the point itself, so the prefilter gives
			// the same value as the exact distance.
			if bbox, err := childGeom.Bound(); err == nil {
				if pre, err := m.distGeomRect(bbox, cmpGeom); err == nil && pre > bestD {
					continue
				}
			}

			cd, err := m.distGeom(cmpGeom, childGeom)
			if err != nil {
				return zero, 0, err
			}
			if cd <= bestD {
				bestD = cd
				best = child
				found = true
			}
		}

		subs := n.children()
		for i := len(subs) - 1; i >= 0; i-- {
			stack = append(stack, subs[i])
		}
	}

	if !found {
		return zero, 0, ErrNoneInRadius
	}
	return best, bestD, nil
}

// treeKnn runs the priority-ordered best-first search behind Knn/KnnR,
// shared by both tree variants. Unlike treeFind, an empty tree is not an
// error here -- it simply yields no results.
func treeKnn[T distable](root treeNode[T], size int, m metric, cmp Comparator, k int, r float64) ([]T, []float64, error) {
	if size == 0 || k <= 0 {
		return nil, nil, nil
	}

	cmpGeom, err := cmp.AsGeometry()
	if err != nil {
		return nil, nil, err
	}

	rootDist, err := m.distGeomRect(root.bounds(), cmpGeom)
	if err != nil {
		return nil, nil, err
	}
	if rootDist != 0 {
		return nil, nil, ErrOutOfBounds
	}

	q := newWorkQueue[T]()
	q.pushNode(root, rootDist)

	var results []T
	var dists []float64

	for !q.isEmpty() {
		for !q.isEmpty() && !q.peek().isNode {
			top := q.peek()
			if top.dist > r {
				return results, dists, nil
			}
			q.pop()
			results = append(results, top.datum)
			dists = append(dists, top.dist)
			if len(results) >= k {
				return results, dists, nil
			}
		}
		if q.isEmpty() {
			break
		}
		top := q.pop()
		if top.dist > r {
			return results, dists, nil
		}
		if err := expandInto(q, top.node, m, cmpGeom); err != nil {
			return nil, nil, err
		}
	}
	return results, dists, nil
}

// expandInto pushes a popped node's direct data (keyed by geometry
// distance) and sub-nodes (keyed by bbox distance) onto q. Used by
// treeKnn; the sorted iterator in iter.go does the same expansion inline
// but skips items whose distance fails instead of returning the error.
func expandInto[T distable](q *workQueue[T], n treeNode[T], m metric, cmpGeom Geometry) error {
	for _, child := range n.items() {
		childGeom, err := child.AsGeometry()
		if err != nil {
			return err
		}
		d, err := m.distGeom(cmpGeom, childGeom)
		if err != nil {
			return err
		}
		q.pushDatum(child, d)
	}
	for _, sub := range n.children() {
		d, err := m.distGeomRect(sub.bounds(), cmpGeom)
		if err != nil {
			return err
		}
		q.pushNode(sub, d)
	}
	return nil
}
