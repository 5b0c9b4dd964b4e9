package cdt

import (
	"github.com/hatchtri/delaunay/mesh"
	"github.com/hatchtri/delaunay/types"
)

// superTriangleMargin places the super-triangle's vertices far enough
// outside the normalised unit square [0,1]x[0,1] that every normalised
// input point lies strictly inside it.
const superTriangleMargin = 10.0

// BuildSuperTriangle appends the three super-triangle vertices and the
// single triangle joining them to an empty mesh. It must be the first
// thing added to ts.
func BuildSuperTriangle(ts *mesh.TriangleSet) types.TriIndex {
	v0, _ := ts.AddPoint(types.Vector2{X: -superTriangleMargin, Y: -superTriangleMargin})
	v1, _ := ts.AddPoint(types.Vector2{X: 2*superTriangleMargin + 1, Y: -superTriangleMargin})
	v2, _ := ts.AddPoint(types.Vector2{X: 0.5, Y: 2*superTriangleMargin + 1})

	return ts.AddTriangleInfo(
		[3]types.VertexID{v0, v1, v2},
		[3]types.TriIndex{types.NilTri, types.NilTri, types.NilTri},
	)
}

// SuperTriangleTriangles returns every triangle incident to one of the
// first three points (the super-triangle's vertices), for removal at
// output assembly.
func SuperTriangleTriangles(ts *mesh.TriangleSet) []types.TriIndex {
	marked := make(map[types.TriIndex]bool)
	var out []types.TriIndex

	for v := types.VertexID(0); v < 3; v++ {
		for _, tri := range ts.TrianglesIncidentToVertex(v) {
			if !marked[tri] {
				marked[tri] = true
				out = append(out, tri)
			}
		}
	}
	return out
}
