// Package dlerrors declares the sentinel error values raised by the
// mesh and cdt packages. It is a separate package (rather than living
// in mesh or cdt directly) because both layers raise these: mesh's
// point-location and polygon-collection primitives, and cdt's flip and
// tessellation algorithms built on top of them.
package dlerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrPointNotInTriangle means the point-location walk exhausted
	// every triangle without finding one that contains the query
	// point — a degenerate mesh, or a predicate tolerance violation.
	ErrPointNotInTriangle = errors.New("delaunay: point not located in any triangle")

	// ErrSwappingFailed means a flip was requested on a pair of
	// triangles that do not share a vertex index.
	ErrSwappingFailed = errors.New("delaunay: swapping failed, triangles do not share an edge")

	// ErrTrianglesDontShareIndex means adjacency claims two triangles
	// are neighbours but they do not share the expected vertex — an
	// internal consistency violation.
	ErrTrianglesDontShareIndex = errors.New("delaunay: triangles don't share the expected vertex index")

	// ErrTesselationFailed means a midpoint insertion during area
	// refinement failed to locate its host triangle.
	ErrTesselationFailed = errors.New("delaunay: tesselation failed to locate host triangle")

	// ErrEdgeNotFoundInTriangles means a polygon-outline edge has no
	// carrier triangle when marking a hole for removal. Wrap with
	// EdgeNotFoundInTriangles to carry the offending endpoints.
	ErrEdgeNotFoundInTriangles = errors.New("delaunay: edge not found in any triangle")

	// ErrPolygonIsOpen means an outline triangle's neighbour slot was
	// unexpectedly absent while walking a polygon boundary.
	ErrPolygonIsOpen = errors.New("delaunay: polygon is open")

	// ErrTooFewPoints means the input point set has fewer than 3
	// points, the minimum needed to form a single triangle.
	ErrTooFewPoints = errors.New("delaunay: at least 3 points are required")

	// ErrInvalidHolePolygon means a hole polygon failed validation:
	// fewer than 3 distinct vertices, or not CCW-ordered.
	ErrInvalidHolePolygon = errors.New("delaunay: hole polygon is not a valid closed CCW loop")
)

// EdgeNotFoundInTriangles reports which directed edge had no carrier
// triangle. It unwraps to ErrEdgeNotFoundInTriangles so callers can
// test for it with errors.Is without caring about the endpoints.
type EdgeNotFoundInTriangles struct {
	A, B int
}

func (e *EdgeNotFoundInTriangles) Error() string {
	return fmt.Sprintf("delaunay: edge (%d, %d) not found in any triangle", e.A, e.B)
}

func (e *EdgeNotFoundInTriangles) Unwrap() error {
	return ErrEdgeNotFoundInTriangles
}
