// Package cdt implements the construction driver: point insertion with
// Delaunay restoration, constrained-edge forcing, hole marking and
// optional area refinement, all operating on a mesh.TriangleSet.
package cdt

import (
	"github.com/hatchtri/delaunay/dlerrors"
	"github.com/hatchtri/delaunay/mesh"
	"github.com/hatchtri/delaunay/types"
)

// sharedEdgeSlot returns the local edge index (0-2) in t whose
// adjacency slot points at neighbor, or -1 if none does.
func sharedEdgeSlot(t types.TriangleInfo, neighbor types.TriIndex) int {
	for i, adj := range t.Adjacents {
		if adj == neighbor {
			return i
		}
	}
	return -1
}

// Flip replaces the shared diagonal of the convex quadrilateral formed
// by mainIdx and oppIdx with the other diagonal, rewriting both
// triangles' vertex and adjacency arrays in place and fixing the two
// outer neighbours' back-references.
//
// notInEdge is the local vertex index, in mainIdx, that is not part of
// the edge shared with oppIdx; oppSharedEdge is the local edge index,
// in oppIdx, where the shared edge begins. It returns the two outward
// neighbours (main's former neighbour across the moved edge, and opp's
// former neighbour across its moved edge) so callers can continue
// propagating the Delaunay check outward.
func Flip(ts *mesh.TriangleSet, mainIdx types.TriIndex, notInEdge int, oppIdx types.TriIndex, oppSharedEdge int) (types.TriIndex, types.TriIndex, error) {
	main := ts.GetTriangle(mainIdx)
	opp := ts.GetTriangle(oppIdx)

	movedSlot := (notInEdge + 1) % 3
	if main.Adjacents[movedSlot] != oppIdx || sharedEdgeSlot(opp, mainIdx) < 0 {
		return types.NilTri, types.NilTri, dlerrors.ErrSwappingFailed
	}

	oppVertex := (oppSharedEdge + 2) % 3

	outwardMain := main.Adjacents[notInEdge]
	outwardOpp := opp.Adjacents[oppVertex]

	opp.Adjacents[oppSharedEdge] = outwardMain
	main.Vertices[movedSlot] = opp.Vertices[oppVertex]
	opp.Vertices[oppSharedEdge] = main.Vertices[notInEdge]
	main.Adjacents[notInEdge] = oppIdx
	main.Adjacents[movedSlot] = outwardOpp
	opp.Adjacents[oppVertex] = mainIdx

	ts.ReplaceTriangle(mainIdx, main)
	ts.ReplaceTriangle(oppIdx, opp)

	ts.ReplaceAdjacent(outwardOpp, oppIdx, mainIdx)
	ts.ReplaceAdjacent(outwardMain, mainIdx, oppIdx)

	return outwardMain, outwardOpp, nil
}
