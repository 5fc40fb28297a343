package quadtree_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bratter/quadtree"
)

// euclideanDist is a small helper exercising the package through a
// one-off BoundsTree, since the distance formulas themselves are
// unexported -- the public surface for measuring a distance is always
// through a tree's Find/Knn.
func euclideanDist(t *testing.T, a, b quadtree.Geometry) float64 {
	t.Helper()
	bounds := quadtree.NewRect(quadtree.NewCoord(-100, -100), quadtree.NewCoord(100, 100))
	tree := quadtree.NewBoundsTreeFromBounds[geomDatum](bounds, quadtree.ModeEuclidean)
	assert.NoError(t, tree.Insert(geomDatum{g: a}))
	_, dist, err := tree.Find(geomDatum{g: b})
	assert.NoError(t, err)
	return dist
}

type geomDatum struct {
	g quadtree.Geometry
}

func (d geomDatum) AsGeometry() (quadtree.Geometry, error) { return d.g, nil }

func TestEuclideanPointToPoint(t *testing.T) {
	a := quadtree.NewPointGeometry(quadtree.NewCoord(0, 0))
	b := quadtree.NewPointGeometry(quadtree.NewCoord(3, 4))
	assert.Equal(t, 5.0, euclideanDist(t, a, b))
}

func TestEuclideanPointToLine(t *testing.T) {
	line := quadtree.NewLineGeometry(quadtree.NewCoord(0, 0), quadtree.NewCoord(10, 0))
	probe := quadtree.NewPointGeometry(quadtree.NewCoord(5, 3))
	assert.Equal(t, 3.0, euclideanDist(t, line, probe))
}

func TestEuclideanPointInsideRectIsZero(t *testing.T) {
	rect := quadtree.NewRectGeometry(quadtree.NewRect(quadtree.NewCoord(0, 0), quadtree.NewCoord(10, 10)))
	probe := quadtree.NewPointGeometry(quadtree.NewCoord(5, 5))
	assert.Equal(t, 0.0, euclideanDist(t, rect, probe))
}

func TestEuclideanRectToRectOverlappingIsZero(t *testing.T) {
	a := quadtree.NewRectGeometry(quadtree.NewRect(quadtree.NewCoord(0, 0), quadtree.NewCoord(2, 2)))
	b := quadtree.NewRectGeometry(quadtree.NewRect(quadtree.NewCoord(1, 1), quadtree.NewCoord(3, 3)))
	assert.Equal(t, 0.0, euclideanDist(t, a, b))
}

func TestEuclideanRectToRectCornerGap(t *testing.T) {
	a := quadtree.NewRectGeometry(quadtree.NewRect(quadtree.NewCoord(0, 0), quadtree.NewCoord(1, 1)))
	b := quadtree.NewRectGeometry(quadtree.NewRect(quadtree.NewCoord(4, 5), quadtree.NewCoord(5, 6)))
	assert.InDelta(t, 5.0, euclideanDist(t, a, b), 1e-9)
}

func TestEuclideanPolygonPolygonNoRestriction(t *testing.T) {
	square := func(minX, minY, maxX, maxY float64) quadtree.Geometry {
		return quadtree.NewPolygonGeometry([][]quadtree.Coord{{
			quadtree.NewCoord(minX, minY), quadtree.NewCoord(maxX, minY),
			quadtree.NewCoord(maxX, maxY), quadtree.NewCoord(minX, maxY),
		}})
	}
	a := square(0, 0, 1, 1)
	b := square(3, 0, 4, 1)
	assert.Equal(t, 2.0, euclideanDist(t, a, b))
}

// sphericalDist mirrors euclideanDist but under Spherical mode, operating
// on radian (longitude, latitude) coordinates.
func sphericalDist(t *testing.T, a, b quadtree.Geometry) (float64, error) {
	t.Helper()
	bounds := quadtree.NewRect(quadtree.NewCoord(-math.Pi, -math.Pi/2), quadtree.NewCoord(math.Pi, math.Pi/2))
	tree := quadtree.NewBoundsTreeFromBounds[geomDatum](bounds, quadtree.ModeSpherical)
	assert.NoError(t, tree.Insert(geomDatum{g: a}))
	_, dist, err := tree.Find(geomDatum{g: b})
	return dist, err
}

func TestSphericalPointToPointEquatorialQuarterCircle(t *testing.T) {
	a := quadtree.NewPointGeometry(quadtree.NewCoord(0, 0))
	b := quadtree.NewPointGeometry(quadtree.NewCoord(math.Pi/2, 0))
	dist, err := sphericalDist(t, a, b)
	assert.NoError(t, err)
	assert.InDelta(t, math.Pi/2, dist, 1e-9)
}

func TestSphericalPolygonPolygonUnsupported(t *testing.T) {
	triangle := func(cx, cy float64) quadtree.Geometry {
		return quadtree.NewPolygonGeometry([][]quadtree.Coord{{
			quadtree.NewCoord(cx, cy), quadtree.NewCoord(cx+0.1, cy), quadtree.NewCoord(cx, cy+0.1),
		}})
	}
	a := triangle(0, 0)
	b := triangle(1, 1)
	_, err := sphericalDist(t, a, b)
	assert.ErrorIs(t, err, quadtree.ErrUnsupportedGeometry)
}

func TestSphericalLineStringUnsupported(t *testing.T) {
	ls := quadtree.NewLineStringGeometry([]quadtree.Coord{
		quadtree.NewCoord(0, 0), quadtree.NewCoord(0.1, 0.1), quadtree.NewCoord(0.2, 0),
	})
	point := quadtree.NewPointGeometry(quadtree.NewCoord(1, 1))
	_, err := sphericalDist(t, ls, point)
	assert.ErrorIs(t, err, quadtree.ErrUnsupportedGeometry)
}

func TestSphericalRectToPointSupported(t *testing.T) {
	rect := quadtree.NewRectGeometry(quadtree.NewRect(quadtree.NewCoord(-0.1, -0.1), quadtree.NewCoord(0.1, 0.1)))
	point := quadtree.NewPointGeometry(quadtree.NewCoord(0.5, 0))
	dist, err := sphericalDist(t, rect, point)
	assert.NoError(t, err)
	assert.True(t, dist > 0)
}
