package cdt

import (
	"github.com/hatchtri/delaunay/dlerrors"
	"github.com/hatchtri/delaunay/mesh"
	"github.com/hatchtri/delaunay/predicates"
	"github.com/hatchtri/delaunay/types"
)

// Tesselate refines the mesh, by edge midpoint insertion, until every
// non-super-triangle triangle's area is at most maxArea. After the
// three midpoints of an over-area triangle are inserted, it restarts
// its scan from the first non-super triangle, since splitting one
// triangle can enlarge none but may retarget the index being examined.
func Tesselate(ts *mesh.TriangleSet, maxArea float32) error {
	i := 3
	for i < ts.NumTriangles() {
		idx := types.TriIndex(i)
		t := ts.GetTriangle(idx)
		if touchesSuperTriangle(t) {
			i++
			continue
		}

		p0, p1, p2 := ts.GetTrianglePoints(idx)
		if predicates.TriangleArea(p0, p1, p2) <= maxArea {
			i++
			continue
		}

		midpoints := [3]types.Vector2{p0.Midpoint(p1), p1.Midpoint(p2), p2.Midpoint(p0)}
		for _, m := range midpoints {
			if _, _, err := InsertPoint(ts, m); err != nil {
				return dlerrors.ErrTesselationFailed
			}
		}
		i = 3
	}
	return nil
}

func touchesSuperTriangle(t types.TriangleInfo) bool {
	for _, v := range t.Vertices {
		if v == 0 || v == 1 || v == 2 {
			return true
		}
	}
	return false
}
