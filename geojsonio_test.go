package quadtree_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bratter/quadtree"
)

type exportable struct {
	g quadtree.Geometry
}

func (e exportable) AsGeometry() (quadtree.Geometry, error) { return e.g, nil }

func TestExportThenLoadGeoJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "features.geojson")

	data := []exportable{
		{g: quadtree.NewPointGeometry(quadtree.NewCoord(1, 2))},
		{g: quadtree.NewLineGeometry(quadtree.NewCoord(0, 0), quadtree.NewCoord(1, 1))},
	}

	assert.NoError(t, quadtree.ExportGeoJSON(path, data))

	loaded, err := quadtree.LoadGeometriesGeoJSON(path)
	assert.NoError(t, err)
	assert.Len(t, loaded, len(data))

	p, ok := loaded[0].Point()
	assert.True(t, ok)
	assert.Equal(t, quadtree.NewCoord(1, 2), p)

	a, b, ok := loaded[1].Line()
	assert.True(t, ok)
	assert.Equal(t, quadtree.NewCoord(0, 0), a)
	assert.Equal(t, quadtree.NewCoord(1, 1), b)
}

func TestLoadGeoJSONMissingFile(t *testing.T) {
	_, err := quadtree.LoadGeometriesGeoJSON(filepath.Join(t.TempDir(), "nonexistent.geojson"))
	assert.Error(t, err)
}
