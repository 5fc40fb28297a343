package quadtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointTreeAllVisitsEveryDatumExactlyOnce(t *testing.T) {
	tree := NewPointTree[ptDatum](NewRect(NewCoord(0, 0), NewCoord(1, 1)), ModeEuclidean, 2, 2)
	inserted := []ptDatum{pt(0.1, 0.1), pt(0.1, 0.1), pt(0.9, 0.9), pt(0.2, 0.8), pt(0.8, 0.2)}
	for _, d := range inserted {
		assert.NoError(t, tree.Insert(d))
	}

	var seen []ptDatum
	for d := range tree.All() {
		seen = append(seen, d)
	}
	assert.Len(t, seen, len(inserted))
	assert.ElementsMatch(t, inserted, seen)
}

func TestPointTreeAllStopsEarly(t *testing.T) {
	tree := NewPointTreeFromBounds[ptDatum](NewRect(NewCoord(0, 0), NewCoord(1, 1)), ModeEuclidean)
	for _, d := range []ptDatum{pt(0.1, 0.1), pt(0.2, 0.2), pt(0.3, 0.3)} {
		assert.NoError(t, tree.Insert(d))
	}

	count := 0
	for range tree.All() {
		count++
		if count == 1 {
			break
		}
	}
	assert.Equal(t, 1, count)
}

// Sorted iterator: concatenating emitted distances is
// non-decreasing, and every stored datum is enumerated exactly once.
func TestPointTreeSortedIterIsMonotonicAndComplete(t *testing.T) {
	tree := NewPointTreeFromBounds[ptDatum](NewRect(NewCoord(0, 0), NewCoord(20, 20)), ModeEuclidean)
	data := []ptDatum{
		pt(0, 0), pt(3, 5), pt(7, 2), pt(2, 7), pt(1, 1),
		pt(11, 13), pt(9, 8), pt(5, 5), pt(1, 2),
	}
	for _, d := range data {
		assert.NoError(t, tree.Insert(d))
	}

	it := tree.Sorted(pt(0, 0))
	var seen []ptDatum
	var dists []float64
	for {
		d, dist, ok := it.Next()
		if !ok {
			break
		}
		seen = append(seen, d)
		dists = append(dists, dist)
	}

	assert.Len(t, seen, len(data))
	assert.ElementsMatch(t, data, seen)
	for i := 1; i < len(dists); i++ {
		assert.True(t, dists[i-1] <= dists[i])
	}
}

func TestBoundsTreeAllIncludesStuckChildren(t *testing.T) {
	tree := NewBoundsTree[rectDatum](NewRect(NewCoord(0, 0), NewCoord(8, 8)), ModeEuclidean, 2, 2)
	for _, d := range []rectDatum{
		rd("B1", 1, 1, 2, 2),
		rd("B2", 3, 3, 4, 4),
		rd("B3", 1, 1, 3, 3),
	} {
		assert.NoError(t, tree.Insert(d))
	}

	var all []string
	for d := range tree.All() {
		all = append(all, d.label)
	}
	assert.ElementsMatch(t, []string{"B1", "B2", "B3"}, all)
}
