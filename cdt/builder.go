package cdt

import (
	"github.com/hatchtri/delaunay/dlerrors"
	"github.com/hatchtri/delaunay/mesh"
	"github.com/hatchtri/delaunay/normalize"
	"github.com/hatchtri/delaunay/spatial"
	"github.com/hatchtri/delaunay/types"
)

// Diagnostics carries information about the triangulation run that the
// plain triangle slice discards by default (§12.2).
type Diagnostics struct {
	// DuplicateCount is the number of input points (across the main
	// point set and every hole polygon) that coalesced onto an
	// already-present vertex. Populated only when the driver is
	// configured with WithDuplicatePointPolicy(ReportDuplicates).
	DuplicateCount int
}

// Result is the construction driver's output: the final triangle list
// plus any requested diagnostics.
type Result struct {
	Triangles   []types.Triangle
	Diagnostics Diagnostics
}

// Build runs the full construction pipeline (§2): normalise, bin-sort,
// super-triangle, insert every point, optionally tessellate, insert
// and force every hole's boundary, mark triangles for removal, then
// denormalise and emit what remains.
func Build(points []types.Vector2, holes [][]types.Vector2, cfg Config) (Result, error) {
	if len(points) < 3 {
		return Result{}, dlerrors.ErrTooFewPoints
	}

	normPoints, bounds := normalize.Points(points, nil)
	ordered := spatial.Order(normPoints)

	ts := mesh.NewWithEpsilon(cfg.Epsilon)
	BuildSuperTriangle(ts)

	duplicates := 0
	for _, p := range ordered {
		_, status, err := InsertPoint(ts, p)
		if err != nil {
			return Result{}, err
		}
		if status == types.Found {
			duplicates++
		}
	}

	if cfg.HasMaxTriangleArea {
		// The threshold is in caller units; areas in the normalised
		// frame are smaller by the square of the shared scale factor.
		scale := bounds.Width()
		if h := bounds.Height(); h > scale {
			scale = h
		}
		if scale == 0 {
			scale = 1
		}
		if err := Tesselate(ts, cfg.MaxTriangleArea/(scale*scale)); err != nil {
			return Result{}, err
		}
	}

	toRemove := make(map[types.TriIndex]bool)

	for _, hole := range holes {
		normHole, _ := normalize.Points(hole, &bounds)

		vertexIDs := make([]types.VertexID, len(normHole))
		for i, p := range normHole {
			vid, status, err := InsertPoint(ts, p)
			if err != nil {
				return Result{}, err
			}
			if status == types.Found {
				duplicates++
			}
			vertexIDs[i] = vid
		}

		n := len(vertexIDs)
		for i := 0; i < n; i++ {
			a, b := vertexIDs[i], vertexIDs[(i+1)%n]
			if err := ForceEdge(ts, a, b, cfg.RequeueCapMultiplier); err != nil {
				return Result{}, err
			}
		}

		inside, err := ts.CollectTrianglesInsidePolygon(vertexIDs)
		if err != nil {
			return Result{}, err
		}
		for _, tri := range inside {
			toRemove[tri] = true
		}
	}

	for _, tri := range SuperTriangleTriangles(ts) {
		toRemove[tri] = true
	}

	normalize.Denormalize(ts.Points(), bounds)

	triangles := emitTriangles(ts, toRemove)

	result := Result{Triangles: triangles}
	if cfg.DuplicatePointPolicy == ReportDuplicates {
		result.Diagnostics.DuplicateCount = duplicates
	}
	return result, nil
}

// emitTriangles walks the mesh's triangle list in index order, skipping
// every index marked for removal, and copies out the surviving
// triangles by value.
func emitTriangles(ts *mesh.TriangleSet, toRemove map[types.TriIndex]bool) []types.Triangle {
	out := make([]types.Triangle, 0, ts.NumTriangles()-len(toRemove))
	for i := 0; i < ts.NumTriangles(); i++ {
		idx := types.TriIndex(i)
		if toRemove[idx] {
			continue
		}
		p0, p1, p2 := ts.GetTrianglePoints(idx)
		out = append(out, types.Triangle{A: p0, B: p1, C: p2})
	}
	return out
}
