package cdt

import (
	"github.com/hatchtri/delaunay/dlerrors"
	"github.com/hatchtri/delaunay/mesh"
	"github.com/hatchtri/delaunay/predicates"
	"github.com/hatchtri/delaunay/types"
)

// defaultRequeueCapMultiplier bounds, as a multiple of the crossed-edge
// count, how many times a non-convex quadrilateral may be requeued
// during ForceEdge before it is treated as non-terminating (§12.1).
const defaultRequeueCapMultiplier = 8

// ForceEdge inserts the directed edge (a,b) into the mesh so that it
// appears as a triangle side, flipping every edge it crosses. If the
// edge already exists (in either direction) this is a no-op.
//
// requeueCapMultiplier bounds retries of the non-convex-quadrilateral
// case at requeueCapMultiplier*len(crossedEdges); exceeding it returns
// EdgeNotFoundInTriangles rather than looping indefinitely.
func ForceEdge(ts *mesh.TriangleSet, a, b types.VertexID, requeueCapMultiplier int) error {
	if requeueCapMultiplier <= 0 {
		requeueCapMultiplier = defaultRequeueCapMultiplier
	}

	if _, _, ok := ts.FindTriangleContainingDirectedEdge(a, b); ok {
		return nil
	}
	if _, _, ok := ts.FindTriangleContainingDirectedEdge(b, a); ok {
		return nil
	}

	pa, pb := ts.GetPoint(a), ts.GetPoint(b)

	startTri, err := ts.FindTriangleWithVertexAndCrossingDirection(a, b)
	if err != nil {
		return err
	}

	crossed, err := ts.CollectCrossedEdges(pa, pb, startTri)
	if err != nil {
		return err
	}
	if len(crossed) == 0 {
		return &dlerrors.EdgeNotFoundInTriangles{A: int(a), B: int(b)}
	}

	cap := requeueCapMultiplier * len(crossed)
	deque := newEdgeDeque(crossed)
	var newEdges []types.Edge
	requeues := 0

	for !deque.empty() {
		e := deque.popBack()

		tri, edgeIdx, ok := ts.FindTriangleContainingDirectedEdge(e.V1(), e.V2())
		if !ok {
			tri, edgeIdx, ok = ts.FindTriangleContainingDirectedEdge(e.V2(), e.V1())
			if !ok {
				return &dlerrors.EdgeNotFoundInTriangles{A: int(e.V1()), B: int(e.V2())}
			}
		}

		t := ts.GetTriangle(tri)
		oppIdx := t.Adjacents[edgeIdx]
		if !oppIdx.IsValid() {
			return dlerrors.ErrPolygonIsOpen
		}
		opp := ts.GetTriangle(oppIdx)
		oppSharedSlot := sharedEdgeSlot(opp, tri)
		if oppSharedSlot < 0 {
			return dlerrors.ErrTrianglesDontShareIndex
		}

		notInEdge := (edgeIdx + 2) % 3
		p0, p1, p2 := ts.GetTrianglePoints(tri)
		triPoints := [3]types.Vector2{p0, p1, p2}
		oppFar := ts.GetPoint(opp.Vertices[(oppSharedSlot+2)%3])

		if !predicates.IsConvexQuadrilateral(triPoints[0], triPoints[1], triPoints[2], oppFar) {
			requeues++
			if requeues > cap {
				return &dlerrors.EdgeNotFoundInTriangles{A: int(a), B: int(b)}
			}
			deque.pushFront(e)
			continue
		}

		if _, _, err := Flip(ts, tri, notInEdge, oppIdx, oppSharedSlot); err != nil {
			return err
		}

		t = ts.GetTriangle(tri)
		newSlot := (edgeIdx + 2) % 3
		nv0, nv1 := t.Vertices[newSlot], t.Vertices[(newSlot+1)%3]
		newEdge := types.NewEdge(nv0, nv1)

		if nv0 == a && nv1 == b || nv0 == b && nv1 == a {
			newEdges = append(newEdges, newEdge)
			continue
		}

		np0, np1 := ts.GetPoint(nv0), ts.GetPoint(nv1)
		if _, crosses := predicates.SegmentIntersection(pa, pb, np0, np1); crosses {
			deque.pushBack(newEdge)
		} else {
			newEdges = append(newEdges, newEdge)
		}
	}

	return restoreAlongNewEdges(ts, a, b, newEdges)
}

// restoreAlongNewEdges runs a final Delaunay-restoration pass over the
// diagonals created while forcing (a,b) — every one except the forced
// edge itself is still eligible to flip.
func restoreAlongNewEdges(ts *mesh.TriangleSet, a, b types.VertexID, newEdges []types.Edge) error {
	for _, e := range newEdges {
		if e.V1() == a && e.V2() == b || e.V1() == b && e.V2() == a {
			continue
		}

		tri, edgeIdx, ok := ts.FindTriangleContainingDirectedEdge(e.V1(), e.V2())
		if !ok {
			continue
		}
		t := ts.GetTriangle(tri)
		oppIdx := t.Adjacents[edgeIdx]
		if !oppIdx.IsValid() {
			continue
		}
		opp := ts.GetTriangle(oppIdx)
		oppSharedSlot := sharedEdgeSlot(opp, tri)
		if oppSharedSlot < 0 {
			continue
		}

		notInEdge := (edgeIdx + 2) % 3
		notShared := ts.GetPoint(t.Vertices[notInEdge])
		o0 := ts.GetPoint(opp.Vertices[oppSharedSlot])
		o1 := ts.GetPoint(opp.Vertices[(oppSharedSlot+1)%3])
		o2 := ts.GetPoint(opp.Vertices[(oppSharedSlot+2)%3])

		if predicates.InCircumcircle(o0, o1, o2, notShared) {
			if _, _, err := Flip(ts, tri, notInEdge, oppIdx, oppSharedSlot); err != nil {
				return err
			}
		}
	}
	return nil
}
