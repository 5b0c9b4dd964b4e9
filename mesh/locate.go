package mesh

import (
	"github.com/hatchtri/delaunay/dlerrors"
	"github.com/hatchtri/delaunay/predicates"
	"github.com/hatchtri/delaunay/types"
)

// FindTriangleContainingPoint walks the mesh from start toward p: at
// each triangle, if p is strictly to the right of an edge, it steps to
// that edge's neighbour; it terminates at the first triangle where p
// is not strictly right of any edge. The walk is bounded by the total
// triangle count; if it visits them all without success the mesh is
// degenerate relative to p and ErrPointNotInTriangle is returned.
func (ts *TriangleSet) FindTriangleContainingPoint(p types.Vector2, start types.TriIndex) (types.TriIndex, error) {
	current := start
	for checked := 0; checked < len(ts.triangles); checked++ {
		t := ts.triangles[current]
		a, b, c := ts.points[t.Vertices[0]], ts.points[t.Vertices[1]], ts.points[t.Vertices[2]]
		edges := [3][2]types.Vector2{{a, b}, {b, c}, {c, a}}

		steppedOut := false
		for i, e := range edges {
			if predicates.RightOfEps(e[0], e[1], p, ts.epsilon) {
				next := t.Adjacents[i]
				if !next.IsValid() {
					return types.NilTri, dlerrors.ErrPointNotInTriangle
				}
				current = next
				steppedOut = true
				break
			}
		}
		if !steppedOut {
			return current, nil
		}
	}
	return types.NilTri, dlerrors.ErrPointNotInTriangle
}

// FindTriangleContainingDirectedEdge scans for the directed edge a->b
// as a triangle side and returns the triangle and the local edge
// index, or ok=false if no triangle has it.
func (ts *TriangleSet) FindTriangleContainingDirectedEdge(a, b types.VertexID) (tri types.TriIndex, edgeIndex int, ok bool) {
	for i, t := range ts.triangles {
		for j := 0; j < 3; j++ {
			va, vb := t.Edge(j)
			if va == a && vb == b {
				return types.TriIndex(i), j, true
			}
		}
	}
	return types.NilTri, 0, false
}

// TrianglesIncidentToVertex returns every triangle that has v as one
// of its three vertices.
func (ts *TriangleSet) TrianglesIncidentToVertex(v types.VertexID) []types.TriIndex {
	var out []types.TriIndex
	for i, t := range ts.triangles {
		if t.IndexOf(v) >= 0 {
			out = append(out, types.TriIndex(i))
		}
	}
	return out
}

// FindTriangleWithVertexAndCrossingDirection finds, among the
// triangles incident to vertex a, the one whose two edges meeting at a
// bracket the ray from a toward b — i.e. the wedge the segment a->b
// enters first.
func (ts *TriangleSet) FindTriangleWithVertexAndCrossingDirection(a, b types.VertexID) (types.TriIndex, error) {
	pa := ts.points[a]
	pb := ts.points[b]

	for _, tri := range ts.TrianglesIncidentToVertex(a) {
		t := ts.triangles[tri]
		slot := t.IndexOf(a)
		p1 := ts.points[t.Vertices[(slot+1)%3]]
		p2 := ts.points[t.Vertices[(slot+2)%3]]

		if predicates.RightOfEps(p1, pa, pb, ts.epsilon) && predicates.RightOfEps(pa, p2, pb, ts.epsilon) {
			return tri, nil
		}
	}
	return types.NilTri, dlerrors.ErrPointNotInTriangle
}
