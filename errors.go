package quadtree

import "errors"

// Sentinel errors returned from fallible tree operations. Tree operations
// return one of these, or pass through unchanged an error returned by a
// datum's or comparator's AsGeometry. The GeoJSON helpers additionally
// return I/O and decoding errors wrapped via fmt.Errorf's %w verb, so
// callers should compare with errors.Is rather than direct equality.
var (
	// ErrOutOfBounds is returned from Insert when a datum's representative
	// geometry lies outside the tree's root bounds.
	ErrOutOfBounds = errors.New("quadtree: datum out of bounds")

	// ErrEmpty is returned from Find/FindR when the tree holds no data at
	// all. Knn/KnnR on an empty tree return no results and no error.
	ErrEmpty = errors.New("quadtree: tree is empty")

	// ErrNoneInRadius is returned from FindR when the tree has data, but
	// none of it lies within the requested radius of the probe. KnnR in
	// that case returns no results and no error.
	ErrNoneInRadius = errors.New("quadtree: no data within radius")

	// ErrInvalidDistance is returned when a distance computation produces
	// a non-finite (NaN or +-Inf) result.
	ErrInvalidDistance = errors.New("quadtree: invalid (non-finite) distance")

	// ErrCannotMakeBbox is returned when a datum's geometry has no finite
	// bounding rectangle (e.g. an empty LineString or Polygon).
	ErrCannotMakeBbox = errors.New("quadtree: geometry has no finite bounding box")

	// ErrCannotFindSubNode is returned if a sub-node cannot be selected for
	// a datum, which should not happen under correct usage and generally
	// indicates a non-finite coordinate.
	ErrCannotFindSubNode = errors.New("quadtree: cannot find sub-node for datum")

	// ErrUnsupportedGeometry is returned when a distance is requested
	// between two geometry kinds (or under a metric mode) that have no
	// defined formula, e.g. polygon-to-polygon under Spherical mode.
	ErrUnsupportedGeometry = errors.New("quadtree: unsupported geometry pair for this metric")

	// ErrCalcMethodNotSet is returned from Find/FindR/Knn/KnnR on a
	// non-empty tree constructed with metric mode None. The sorted
	// iterator of such a tree yields nothing instead of an error.
	ErrCalcMethodNotSet = errors.New("quadtree: distance calculation method not set")

	// ErrCannotCastInfinity is returned when an infinite radius sentinel
	// cannot be represented in the operation being performed.
	ErrCannotCastInfinity = errors.New("quadtree: cannot cast infinity for this operation")
)
