// Command quadtree-demo is a small command-line harness exercising a
// quadtree.BoundsTree built from a GeoJSON feature collection: it loads
// features from a file, builds a tree over a configurable bounds and
// metric mode, and answers find/knn/retrieve queries against a probe
// point supplied on the command line.
package main

import (
	"fmt"
	"os"

	"github.com/bratter/quadtree"
	"github.com/spf13/cobra"
)

var (
	inputFile string
	outputFile string
	mode       string
	maxDepth   int
	maxChild   int
	minX, minY, maxX, maxY float64
)

var rootCmd = &cobra.Command{
	Use:   "quadtree-demo",
	Short: "Region quadtree spatial index demo",
	Long:  `Loads geometry features from a GeoJSON file into a quadtree and runs proximity queries against them.`,
}

var retrieveCmd = &cobra.Command{
	Use:   "retrieve <x> <y>",
	Short: "Broad-phase retrieve around a query point",
	Args:  cobra.ExactArgs(2),
	RunE:  runRetrieve,
}

var findCmd = &cobra.Command{
	Use:   "find <x> <y>",
	Short: "Find the single closest feature to a query point",
	Args:  cobra.ExactArgs(2),
	RunE:  runFind,
}

var knnCmd = &cobra.Command{
	Use:   "knn <x> <y> <k>",
	Short: "Find the k closest features to a query point",
	Args:  cobra.ExactArgs(3),
	RunE:  runKnn,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Re-export every loaded feature to a GeoJSON file",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputFile, "file", "f", "features.geojson", "GeoJSON input file")
	rootCmd.PersistentFlags().StringVarP(&mode, "mode", "m", "euclidean", "Distance mode: euclidean or spherical")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", quadtree.DefaultMaxDepth, "Maximum subdivision depth")
	rootCmd.PersistentFlags().IntVar(&maxChild, "max-children", quadtree.DefaultMaxChildren, "Max children per node before subdivision")
	rootCmd.PersistentFlags().Float64Var(&minX, "min-x", -180, "Root bounds minimum x")
	rootCmd.PersistentFlags().Float64Var(&minY, "min-y", -90, "Root bounds minimum y")
	rootCmd.PersistentFlags().Float64Var(&maxX, "max-x", 180, "Root bounds maximum x")
	rootCmd.PersistentFlags().Float64Var(&maxY, "max-y", 90, "Root bounds maximum y")

	exportCmd.Flags().StringVarP(&outputFile, "out", "o", "out.geojson", "GeoJSON output file")

	rootCmd.AddCommand(retrieveCmd, findCmd, knnCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// feature wraps a loaded Geometry so it satisfies quadtree.BoundsDatum and
// quadtree.Comparator. Every demo subcommand shares this one datum type.
type feature struct {
	geom quadtree.Geometry
}

func (f feature) AsGeometry() (quadtree.Geometry, error) { return f.geom, nil }

func buildTree() (*quadtree.BoundsTree[feature], error) {
	m, err := parseMode(mode)
	if err != nil {
		return nil, err
	}

	geoms, err := quadtree.LoadGeometriesGeoJSON(inputFile)
	if err != nil {
		return nil, err
	}

	bounds := quadtree.NewRect(quadtree.NewCoord(minX, minY), quadtree.NewCoord(maxX, maxY))
	tree := quadtree.NewBoundsTree[feature](bounds, m, maxDepth, maxChild)

	for _, g := range geoms {
		if err := tree.Insert(feature{geom: g}); err != nil {
			fmt.Fprintf(os.Stderr, "quadtree-demo: skipping feature: %v\n", err)
			continue
		}
	}
	return tree, nil
}

func parseMode(s string) (quadtree.Mode, error) {
	switch s {
	case "euclidean":
		return quadtree.ModeEuclidean, nil
	case "spherical":
		return quadtree.ModeSpherical, nil
	default:
		return quadtree.ModeNone, fmt.Errorf("quadtree-demo: unknown mode %q (want euclidean or spherical)", s)
	}
}

func parseQueryPoint(xs, ys string) (feature, error) {
	var x, y float64
	if _, err := fmt.Sscanf(xs, "%g", &x); err != nil {
		return feature{}, fmt.Errorf("quadtree-demo: invalid x %q", xs)
	}
	if _, err := fmt.Sscanf(ys, "%g", &y); err != nil {
		return feature{}, fmt.Errorf("quadtree-demo: invalid y %q", ys)
	}
	return feature{geom: quadtree.NewPointGeometry(quadtree.NewCoord(x, y))}, nil
}

func runRetrieve(cmd *cobra.Command, args []string) error {
	tree, err := buildTree()
	if err != nil {
		return err
	}
	q, err := parseQueryPoint(args[0], args[1])
	if err != nil {
		return err
	}
	results := tree.Retrieve(q)
	fmt.Printf("Loaded %d features, %d in the query bucket\n", tree.Size(), len(results))
	for _, r := range results {
		printGeometry(r.geom)
	}
	return nil
}

func runFind(cmd *cobra.Command, args []string) error {
	tree, err := buildTree()
	if err != nil {
		return err
	}
	q, err := parseQueryPoint(args[0], args[1])
	if err != nil {
		return err
	}
	best, dist, err := tree.Find(q)
	if err != nil {
		return err
	}
	fmt.Printf("Closest feature at distance %g:\n", dist)
	printGeometry(best.geom)
	return nil
}

func runKnn(cmd *cobra.Command, args []string) error {
	tree, err := buildTree()
	if err != nil {
		return err
	}
	q, err := parseQueryPoint(args[0], args[1])
	if err != nil {
		return err
	}
	var k int
	if _, err := fmt.Sscanf(args[2], "%d", &k); err != nil {
		return fmt.Errorf("quadtree-demo: invalid k %q", args[2])
	}
	results, dists, err := tree.Knn(q, k)
	if err != nil {
		return err
	}
	fmt.Printf("%d nearest features:\n", len(results))
	for i, r := range results {
		fmt.Printf("  [%d] distance=%g\n", i, dists[i])
		printGeometry(r.geom)
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	tree, err := buildTree()
	if err != nil {
		return err
	}
	var all []feature
	for f := range tree.All() {
		all = append(all, f)
	}
	if err := quadtree.ExportGeoJSON(outputFile, all); err != nil {
		return err
	}
	fmt.Printf("Exported %d features to %s\n", len(all), outputFile)
	return nil
}

func printGeometry(g quadtree.Geometry) {
	switch g.Kind {
	case quadtree.GeometryPoint:
		p, _ := g.Point()
		fmt.Printf("  Point(%g, %g)\n", p.X, p.Y)
	case quadtree.GeometryLine:
		a, b, _ := g.Line()
		fmt.Printf("  Line(%g,%g)-(%g,%g)\n", a.X, a.Y, b.X, b.Y)
	case quadtree.GeometryLineString:
		pts, _ := g.LineString()
		fmt.Printf("  LineString[%d points]\n", len(pts))
	case quadtree.GeometryRect:
		r, _ := g.RectValue()
		fmt.Printf("  Rect(%g,%g)-(%g,%g)\n", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
	default:
		fmt.Printf("  %s\n", g.Kind)
	}
}
