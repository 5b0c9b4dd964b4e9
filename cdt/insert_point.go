package cdt

import (
	"github.com/hatchtri/delaunay/dlerrors"
	"github.com/hatchtri/delaunay/mesh"
	"github.com/hatchtri/delaunay/predicates"
	"github.com/hatchtri/delaunay/types"
)

// InsertPoint adds p to the mesh and restores the Delaunay property.
// If p is bitwise equal to an existing vertex, no topology changes and
// that vertex's index is returned with types.Found; otherwise the
// containing triangle is located and split into three, and a flip
// stack propagates Delaunay restoration outward from the new vertex.
func InsertPoint(ts *mesh.TriangleSet, p types.Vector2) (types.VertexID, types.Status, error) {
	vid, status := ts.AddPoint(p)
	if status == types.Found {
		return vid, status, nil
	}

	start := types.TriIndex(ts.NumTriangles() - 1)
	containing, err := ts.FindTriangleContainingPoint(p, start)
	if err != nil {
		return types.NilVertex, status, err
	}

	if err := splitTriangle(ts, containing, vid); err != nil {
		return types.NilVertex, status, err
	}
	return vid, status, nil
}

// splitTriangle implements spec §4.5 steps 3-6: the containing triangle
// T=(v0,v1,v2) with neighbours (N0,N1,N2) becomes three triangles all
// sharing p as vertex 0, followed by Delaunay restoration.
func splitTriangle(ts *mesh.TriangleSet, containingIdx types.TriIndex, p types.VertexID) error {
	containing := ts.GetTriangle(containingIdx)
	v0, v1, v2 := containing.Vertices[0], containing.Vertices[1], containing.Vertices[2]
	n0, n1, n2 := containing.Adjacents[0], containing.Adjacents[1], containing.Adjacents[2]

	taIdx := ts.AddTriangleInfo(
		[3]types.VertexID{p, v0, v1},
		[3]types.TriIndex{types.NilTri, n0, containingIdx},
	)
	tbIdx := ts.AddTriangleInfo(
		[3]types.VertexID{p, v2, v0},
		[3]types.TriIndex{containingIdx, n2, taIdx},
	)

	ta := ts.GetTriangle(taIdx)
	ta.Adjacents[0] = tbIdx
	ts.ReplaceTriangle(taIdx, ta)

	containing.Vertices[0] = p
	containing.Adjacents[0] = taIdx
	containing.Adjacents[2] = tbIdx
	ts.ReplaceTriangle(containingIdx, containing)

	ts.ReplaceAdjacent(n0, containingIdx, taIdx)
	ts.ReplaceAdjacent(n2, containingIdx, tbIdx)

	stack := newFlipStack()
	stack.push(containingIdx, n1)
	stack.push(taIdx, n0)
	stack.push(tbIdx, n2)

	return restoreDelaunay(ts, p, stack)
}

// restoreDelaunay pops (tri, against) pairs, checking whether p lies
// inside against's circumcircle; if so it flips the shared edge (which
// extends both resulting triangles to include p) and pushes the two
// newly exposed outer neighbours for further checking.
func restoreDelaunay(ts *mesh.TriangleSet, p types.VertexID, stack *flipStack) error {
	for !stack.empty() {
		tri, against := stack.pop()

		lt := ts.GetTriangle(tri)
		pSlot := lt.IndexOf(p)
		if pSlot < 0 {
			continue
		}
		edgeIdx := (pSlot + 1) % 3
		if lt.Adjacents[edgeIdx] != against {
			continue // stale entry: already resolved by an earlier flip
		}

		rt := ts.GetTriangle(against)
		rSharedSlot := sharedEdgeSlot(rt, tri)
		if rSharedSlot < 0 {
			return dlerrors.ErrTrianglesDontShareIndex
		}

		// Shared edge first, so p lies across it from r2.
		r0 := ts.GetPoint(rt.Vertices[rSharedSlot])
		r1 := ts.GetPoint(rt.Vertices[(rSharedSlot+1)%3])
		r2 := ts.GetPoint(rt.Vertices[(rSharedSlot+2)%3])
		if !predicates.InCircumcircle(r0, r1, r2, ts.GetPoint(p)) {
			continue
		}

		// against's far edge not touched by the swap; once against
		// gains p as a vertex, this is its new opposite-p edge.
		oppFarEdge := rt.Adjacents[(rSharedSlot+1)%3]

		_, outwardOpp, err := Flip(ts, tri, pSlot, against, rSharedSlot)
		if err != nil {
			return err
		}
		stack.push(tri, outwardOpp)
		stack.push(against, oppFarEdge)
	}
	return nil
}
