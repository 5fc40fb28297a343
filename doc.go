// Package quadtree implements a region quadtree spatial index over
// geometric features (points, line segments, polylines, polygons and
// axis-aligned rectangles).
//
// Two tree variants are provided: PointTree, which indexes data reduced to
// a single coordinate, and BoundsTree, which indexes data by its bounding
// rectangle. Both support Euclidean (planar) and Spherical (great-circle)
// distance modes, selected at construction.
//
// Once built, a tree answers three kinds of proximity query: Retrieve
// (a broad-phase collision prefilter), Find/FindR (closest feature, with
// an optional radius cap) and Knn/KnnR (k closest features). A tree also
// exposes a distance-sorted iterator over all of its data.
//
// The tree is a single-threaded value: it has no internal locking, and
// callers must serialize their own access. There is no delete or rebalance
// operation; trees grow by insertion only.
package quadtree
