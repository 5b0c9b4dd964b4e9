package mesh

import "github.com/hatchtri/delaunay/types"

// AddPoint returns the index of p in the mesh, appending it if no
// existing point is bitwise-equal to it.
//
// The linear scan is O(|P|) per call; this is acceptable because the
// bin-grid insertion order (package spatial) keeps location walks
// local, so this is not the dominant cost.
func (ts *TriangleSet) AddPoint(p types.Vector2) (types.VertexID, types.Status) {
	for i, existing := range ts.points {
		if existing == p {
			return types.VertexID(i), types.Found
		}
	}
	ts.points = append(ts.points, p)
	return types.VertexID(len(ts.points) - 1), types.Added
}
