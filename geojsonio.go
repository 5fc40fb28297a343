package quadtree

import (
	"fmt"
	"os"

	"github.com/paulmach/go.geojson"
)

// LoadGeometriesGeoJSON reads a GeoJSON FeatureCollection from path and
// converts every feature into a Geometry. Callers wrap the results into
// their own PointDatum/BoundsDatum implementations before inserting them
// into a tree -- this package has no way to construct an arbitrary T on
// the caller's behalf.
func LoadGeometriesGeoJSON(path string) ([]Geometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("quadtree: reading %s: %w", path, err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("quadtree: parsing %s: %w", path, err)
	}

	out := make([]Geometry, 0, len(fc.Features))
	for _, f := range fc.Features {
		g, err := featureToGeometry(f)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

func featureToGeometry(f *geojson.Feature) (Geometry, error) {
	if f.Geometry == nil {
		return Geometry{}, ErrCannotMakeBbox
	}
	switch f.Geometry.Type {
	case geojson.GeometryPoint:
		p := f.Geometry.Point
		return NewPointGeometry(NewCoord(p[0], p[1])), nil
	case geojson.GeometryLineString:
		coords := make([]Coord, len(f.Geometry.LineString))
		for i, p := range f.Geometry.LineString {
			coords[i] = NewCoord(p[0], p[1])
		}
		if len(coords) == 2 {
			return NewLineGeometry(coords[0], coords[1]), nil
		}
		return NewLineStringGeometry(coords), nil
	case geojson.GeometryPolygon:
		rings := make([][]Coord, len(f.Geometry.Polygon))
		for i, ring := range f.Geometry.Polygon {
			pts := make([]Coord, len(ring))
			for j, p := range ring {
				pts[j] = NewCoord(p[0], p[1])
			}
			rings[i] = pts
		}
		return NewPolygonGeometry(rings), nil
	default:
		return Geometry{}, ErrUnsupportedGeometry
	}
}

// ExportGeoJSON writes the geometries of a slice of BoundsDatum-like
// values to path as a GeoJSON FeatureCollection. Geometry is the only
// thing this package knows how to serialize; it carries no opinion on
// feature properties.
func ExportGeoJSON[T interface{ AsGeometry() (Geometry, error) }](path string, data []T) error {
	fc := geojson.NewFeatureCollection()
	for _, d := range data {
		g, err := d.AsGeometry()
		if err != nil {
			return err
		}
		f, err := geometryToFeature(g)
		if err != nil {
			return err
		}
		fc.AddFeature(f)
	}
	return writeFeatureCollection(path, fc)
}

func geometryToFeature(g Geometry) (*geojson.Feature, error) {
	switch g.Kind {
	case GeometryPoint:
		p, _ := g.Point()
		return geojson.NewPointFeature([]float64{p.X, p.Y}), nil
	case GeometryLine:
		a, b, _ := g.Line()
		return geojson.NewLineStringFeature([][]float64{{a.X, a.Y}, {b.X, b.Y}}), nil
	case GeometryLineString:
		pts, _ := g.LineString()
		coords := make([][]float64, len(pts))
		for i, p := range pts {
			coords[i] = []float64{p.X, p.Y}
		}
		return geojson.NewLineStringFeature(coords), nil
	case GeometryPolygon:
		rings, _ := g.Polygon()
		poly := make([][][]float64, len(rings))
		for i, ring := range rings {
			coords := make([][]float64, len(ring))
			for j, p := range ring {
				coords[j] = []float64{p.X, p.Y}
			}
			poly[i] = coords
		}
		return geojson.NewPolygonFeature(poly), nil
	case GeometryRect:
		r, _ := g.RectValue()
		ring := [][]float64{
			{r.Min.X, r.Min.Y}, {r.Max.X, r.Min.Y},
			{r.Max.X, r.Max.Y}, {r.Min.X, r.Max.Y},
			{r.Min.X, r.Min.Y},
		}
		return geojson.NewPolygonFeature([][][]float64{ring}), nil
	default:
		return nil, ErrUnsupportedGeometry
	}
}

// writeFeatureCollection marshals fc to path, returning an error rather
// than logging and swallowing it -- the natural shape for a library
// function as opposed to a one-off test fixture writer.
func writeFeatureCollection(path string, fc *geojson.FeatureCollection) error {
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("quadtree: encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("quadtree: writing %s: %w", path, err)
	}
	return nil
}
