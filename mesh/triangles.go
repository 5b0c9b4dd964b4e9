package mesh

import "github.com/hatchtri/delaunay/types"

// AddTriangleInfo appends a new triangle and returns its index.
func (ts *TriangleSet) AddTriangleInfo(vertices [3]types.VertexID, adjacents [3]types.TriIndex) types.TriIndex {
	ts.triangles = append(ts.triangles, types.TriangleInfo{Vertices: vertices, Adjacents: adjacents})
	return types.TriIndex(len(ts.triangles) - 1)
}

// ReplaceTriangle overwrites triangle i's vertex and adjacency arrays
// in place. Triangle indices are never reassigned or compacted, so
// this is how "deleting" a triangle during a split or flip is
// expressed: the old record is simply repurposed.
func (ts *TriangleSet) ReplaceTriangle(i types.TriIndex, info types.TriangleInfo) {
	ts.triangles[i] = info
}

// ReplaceAdjacent rewrites triangle i's adjacency slot that currently
// points at old so that it points at replacement instead; only the
// first such slot is rewritten. It is a no-op if i is NilTri or no slot
// of i holds old; the NilTri case happens when fixing a boundary
// neighbour's back-reference after a split.
func (ts *TriangleSet) ReplaceAdjacent(i types.TriIndex, old, replacement types.TriIndex) {
	if !i.IsValid() {
		return
	}
	t := &ts.triangles[i]
	for slot, adj := range t.Adjacents {
		if adj == old {
			t.Adjacents[slot] = replacement
			return
		}
	}
}
