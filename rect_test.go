package quadtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bratter/quadtree"
)

func TestNewRectNormalizesCorners(t *testing.T) {
	r := quadtree.NewRect(quadtree.NewCoord(5, 5), quadtree.NewCoord(0, 0))
	assert.Equal(t, quadtree.NewCoord(0, 0), r.Min)
	assert.Equal(t, quadtree.NewCoord(5, 5), r.Max)
}

func TestRectWidthHeightCenter(t *testing.T) {
	r := quadtree.NewRect(quadtree.NewCoord(0, 0), quadtree.NewCoord(4, 2))
	assert.Equal(t, 4.0, r.Width())
	assert.Equal(t, 2.0, r.Height())
	assert.Equal(t, quadtree.NewCoord(2, 1), r.Center())
}

func TestRectContainsPointBoundaryInclusive(t *testing.T) {
	r := quadtree.NewRect(quadtree.NewCoord(0, 0), quadtree.NewCoord(1, 1))
	assert.True(t, r.ContainsPoint(quadtree.NewCoord(0, 0)))
	assert.True(t, r.ContainsPoint(quadtree.NewCoord(1, 1)))
	assert.True(t, r.ContainsPoint(quadtree.NewCoord(0.5, 0.5)))
	assert.False(t, r.ContainsPoint(quadtree.NewCoord(1.01, 0.5)))
}

func TestRectContainsRectBoundaryInclusive(t *testing.T) {
	outer := quadtree.NewRect(quadtree.NewCoord(0, 0), quadtree.NewCoord(4, 4))
	onBoundary := quadtree.NewRect(quadtree.NewCoord(0, 0), quadtree.NewCoord(4, 2))
	straddling := quadtree.NewRect(quadtree.NewCoord(-1, 0), quadtree.NewCoord(2, 2))

	assert.True(t, outer.ContainsRect(onBoundary))
	assert.False(t, outer.ContainsRect(straddling))
}

func TestRectIntersects(t *testing.T) {
	a := quadtree.NewRect(quadtree.NewCoord(0, 0), quadtree.NewCoord(2, 2))
	touching := quadtree.NewRect(quadtree.NewCoord(2, 2), quadtree.NewCoord(4, 4))
	disjoint := quadtree.NewRect(quadtree.NewCoord(10, 10), quadtree.NewCoord(12, 12))

	assert.True(t, a.Intersects(touching), "sharing only a boundary corner still counts")
	assert.False(t, a.Intersects(disjoint))
}
