// Package mesh implements TriangleSet, the index-addressed triangle
// mesh the construction driver in package cdt builds and mutates.
//
// Points and triangles are appended to flat arenas and addressed by
// stable index; nothing is ever deleted or compacted during
// construction. Adjacency is stored explicitly per triangle edge
// (types.TriIndex, or NilTri for "no neighbour"). The mutating methods
// in this package write exactly the records they are given; keeping
// adjacency symmetric is up to their caller, the cdt package.
package mesh

import (
	"github.com/hatchtri/delaunay/predicates"
	"github.com/hatchtri/delaunay/types"
)

// TriangleSet is the mesh: an arena of points and an arena of
// triangles, addressed by stable VertexID / TriIndex.
type TriangleSet struct {
	points    []types.Vector2
	triangles []types.TriangleInfo
	epsilon   float32
}

// New creates an empty mesh using the default orientation tolerance.
func New() *TriangleSet {
	return &TriangleSet{epsilon: predicates.Epsilon}
}

// NewWithEpsilon creates an empty mesh whose orientation-predicate
// tolerance is eps, used by the location walks in this package.
func NewWithEpsilon(eps float32) *TriangleSet {
	return &TriangleSet{epsilon: eps}
}

// NumPoints returns the number of points currently in the mesh.
func (ts *TriangleSet) NumPoints() int {
	return len(ts.points)
}

// NumTriangles returns the number of triangles currently in the mesh.
func (ts *TriangleSet) NumTriangles() int {
	return len(ts.triangles)
}

// GetPoint returns the coordinates of vertex v.
func (ts *TriangleSet) GetPoint(v types.VertexID) types.Vector2 {
	return ts.points[v]
}

// Points returns the mesh's point arena. Callers must not retain it
// across further mutation of the mesh.
func (ts *TriangleSet) Points() []types.Vector2 {
	return ts.points
}

// GetTriangle returns triangle i's info record.
func (ts *TriangleSet) GetTriangle(i types.TriIndex) types.TriangleInfo {
	return ts.triangles[i]
}

// GetTrianglePoints returns the three corner coordinates of triangle i.
func (ts *TriangleSet) GetTrianglePoints(i types.TriIndex) (types.Vector2, types.Vector2, types.Vector2) {
	t := ts.triangles[i]
	return ts.points[t.Vertices[0]], ts.points[t.Vertices[1]], ts.points[t.Vertices[2]]
}
