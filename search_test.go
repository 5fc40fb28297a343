package quadtree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindReturnsErrCalcMethodNotSet(t *testing.T) {
	tree := NewPointTreeFromBounds[ptDatum](NewRect(NewCoord(0, 0), NewCoord(1, 1)), ModeNone)
	assert.NoError(t, tree.Insert(pt(0.1, 0.1)))

	_, _, err := tree.Find(pt(0.5, 0.5))
	assert.ErrorIs(t, err, ErrCalcMethodNotSet)
}

func TestFindOutOfBoundsProbe(t *testing.T) {
	tree := NewPointTreeFromBounds[ptDatum](NewRect(NewCoord(0, 0), NewCoord(1, 1)), ModeEuclidean)
	assert.NoError(t, tree.Insert(pt(0.1, 0.1)))

	_, _, err := tree.Find(pt(5, 5))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestKnnRespectsRadiusCutoff(t *testing.T) {
	tree := NewPointTreeFromBounds[ptDatum](NewRect(NewCoord(0, 0), NewCoord(20, 20)), ModeEuclidean)
	for _, d := range []ptDatum{pt(0, 0), pt(1, 1), pt(10, 10)} {
		assert.NoError(t, tree.Insert(d))
	}

	results, dists, err := tree.KnnR(pt(0, 0), 3, 2.0)
	assert.NoError(t, err)
	assert.Len(t, results, 2)
	for _, d := range dists {
		assert.True(t, d <= 2.0)
	}
}

func TestKnnNonPositiveKReturnsNil(t *testing.T) {
	tree := NewPointTreeFromBounds[ptDatum](NewRect(NewCoord(0, 0), NewCoord(1, 1)), ModeEuclidean)
	assert.NoError(t, tree.Insert(pt(0.1, 0.1)))

	results, dists, err := tree.Knn(pt(0.5, 0.5), 0)
	assert.NoError(t, err)
	assert.Nil(t, results)
	assert.Nil(t, dists)
}

func TestKnnOnEmptyTreeYieldsNoResultsAndNoError(t *testing.T) {
	tree := NewPointTreeFromBounds[ptDatum](NewRect(NewCoord(0, 0), NewCoord(1, 1)), ModeEuclidean)

	results, dists, err := tree.Knn(pt(0.5, 0.5), 3)
	assert.NoError(t, err)
	assert.Nil(t, results)
	assert.Nil(t, dists)
}

// knn monotonicity: returned distances are non-decreasing.
func TestKnnDistancesAreMonotonic(t *testing.T) {
	tree := NewPointTreeFromBounds[ptDatum](NewRect(NewCoord(0, 0), NewCoord(20, 20)), ModeEuclidean)
	data := []ptDatum{
		pt(0, 0), pt(3, 5), pt(7, 2), pt(2, 7), pt(1, 1),
		pt(11, 13), pt(9, 8), pt(5, 5), pt(1, 2),
	}
	for _, d := range data {
		assert.NoError(t, tree.Insert(d))
	}

	_, dists, err := tree.Knn(pt(0, 0), len(data))
	assert.NoError(t, err)
	for i := 1; i < len(dists); i++ {
		assert.True(t, dists[i-1] <= dists[i], "distances must be non-decreasing")
	}
}

func TestBoundsTreeKnnOverRects(t *testing.T) {
	tree := NewBoundsTreeFromBounds[rectDatum](NewRect(NewCoord(0, 0), NewCoord(20, 20)), ModeEuclidean)
	for _, d := range []rectDatum{
		rd("near", 0, 0, 1, 1),
		rd("mid", 5, 5, 6, 6),
		rd("far", 15, 15, 16, 16),
	} {
		assert.NoError(t, tree.Insert(d))
	}

	query := rd("q", 0, 0, 0, 0)
	results, _, err := tree.Knn(query, 2)
	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, "near", results[0].label)
	assert.Equal(t, "mid", results[1].label)
}

func TestFindOptimality(t *testing.T) {
	tree := NewPointTreeFromBounds[ptDatum](NewRect(NewCoord(0, 0), NewCoord(20, 20)), ModeEuclidean)
	data := []ptDatum{pt(0, 0), pt(3, 5), pt(7, 2), pt(2, 7), pt(1, 1)}
	for _, d := range data {
		assert.NoError(t, tree.Insert(d))
	}

	probe := pt(2, 2)
	_, delta, err := tree.Find(probe)
	assert.NoError(t, err)

	for _, d := range data {
		assert.True(t, d.c.Distance(probe.c) >= delta-1e-9)
	}
}

func TestFindROnEmptyTreeReturnsErrEmpty(t *testing.T) {
	tree := NewBoundsTreeFromBounds[rectDatum](NewRect(NewCoord(0, 0), NewCoord(8, 8)), ModeEuclidean)
	_, _, err := tree.FindR(rd("q", 0, 0, 1, 1), math.Inf(1))
	assert.ErrorIs(t, err, ErrEmpty)
}
