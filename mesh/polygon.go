package mesh

import (
	"github.com/hatchtri/delaunay/dlerrors"
	"github.com/hatchtri/delaunay/predicates"
	"github.com/hatchtri/delaunay/types"
)

// CollectTrianglesInsidePolygon returns every triangle inside the
// closed, CCW-ordered polygon outline, for later removal.
//
// It first locates the carrier triangle of each outline edge, then
// expands by adjacency (BFS) from the two non-outline edges of each
// carrier, stopping at triangles already marked or at a neighbour that
// shares one of the polygon's own (possibly flipped) outline edges —
// a boundary-corner case, not an interior triangle.
func (ts *TriangleSet) CollectTrianglesInsidePolygon(polygon []types.VertexID) ([]types.TriIndex, error) {
	n := len(polygon)
	marked := make(map[types.TriIndex]bool)
	var result []types.TriIndex
	var queue []types.TriIndex

	add := func(i types.TriIndex) {
		if !marked[i] {
			marked[i] = true
			result = append(result, i)
		}
	}

	isOutlineEdge := func(a, b types.VertexID) bool {
		for i := 0; i < n; i++ {
			va, vb := polygon[i], polygon[(i+1)%n]
			if (va == a && vb == b) || (va == b && vb == a) {
				return true
			}
		}
		return false
	}

	for i := 0; i < n; i++ {
		a, b := polygon[i], polygon[(i+1)%n]
		tri, edgeIdx, ok := ts.FindTriangleContainingDirectedEdge(a, b)
		if !ok {
			return nil, &dlerrors.EdgeNotFoundInTriangles{A: int(a), B: int(b)}
		}
		add(tri)

		t := ts.triangles[tri]
		for k := 1; k < 3; k++ {
			edge := (edgeIdx + k) % 3
			va, vb := t.Edge(edge)
			if isOutlineEdge(va, vb) {
				continue
			}
			neighbor := t.Adjacents[edge]
			if !neighbor.IsValid() {
				return nil, dlerrors.ErrPolygonIsOpen
			}
			if !marked[neighbor] {
				queue = append(queue, neighbor)
			}
		}
	}

	for len(queue) > 0 {
		cur := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if marked[cur] {
			continue
		}
		add(cur)
		for _, nb := range ts.triangles[cur].Adjacents {
			if nb.IsValid() && !marked[nb] {
				queue = append(queue, nb)
			}
		}
	}

	return result, nil
}

// CollectCrossedEdges walks from start toward the triangle containing
// pb, recording every edge that segment pa-pb intersects.
//
// At each triangle it picks the unique edge whose far side pb lies on;
// if that edge intersects pa-pb (a closed-segment test, so an edge the
// segment only touches counts too) the crossing is recorded and
// the walk steps through it, otherwise the walk steps through it
// anyway without recording a crossing (pb lies past the edge but the
// segment itself doesn't cross it — a glancing wedge). The walk
// terminates when a triangle has pb as one of its own vertices.
func (ts *TriangleSet) CollectCrossedEdges(pa, pb types.Vector2, start types.TriIndex) ([]types.Edge, error) {
	var crossed []types.Edge
	current := start

	for {
		if !current.IsValid() {
			return nil, dlerrors.ErrPolygonIsOpen
		}
		t := ts.triangles[current]

		foundB := false
		tentative := -1
		steppedThroughCrossing := false

		for i := 0; i < 3; i++ {
			va, vb := t.Vertices[i], t.Vertices[(i+1)%3]
			pva, pvb := ts.points[va], ts.points[vb]

			if pva == pb || pvb == pb {
				foundB = true
				break
			}

			if predicates.RightOfEps(pva, pvb, pb, ts.epsilon) {
				tentative = i
				if _, ok := predicates.SegmentIntersection(pva, pvb, pa, pb); ok {
					crossed = append(crossed, types.NewEdge(va, vb))
					current = t.Adjacents[i]
					steppedThroughCrossing = true
					break
				}
			}
		}

		if foundB {
			return crossed, nil
		}
		if !steppedThroughCrossing {
			if tentative < 0 {
				return nil, dlerrors.ErrPointNotInTriangle
			}
			current = t.Adjacents[tentative]
		}
	}
}
