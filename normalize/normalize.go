// Package normalize maps a point cloud into the unit square and back.
//
// Working in [0,1]x[0,1] keeps the tuned float32 predicate tolerances
// meaningful regardless of the input's original scale. Hole polygons
// are normalised against the point cloud's own bounds (passed in as
// shared) rather than their own, so every coordinate in a triangulation
// run shares one frame.
package normalize

import "github.com/hatchtri/delaunay/types"

// Points maps every point in src into the unit square using bounds.
// If shared is non-nil, it is used instead of computing bounds from
// src — this is how hole vertices are normalised into the same frame
// as the main point cloud. Returns the normalised points and the
// bounds actually used (so callers can thread it through).
func Points(src []types.Vector2, shared *types.AABB) ([]types.Vector2, types.AABB) {
	var bounds types.AABB
	if shared != nil {
		bounds = *shared
	} else {
		bounds = types.BoundingBox(src)
	}

	scale := maxDimension(bounds)

	out := make([]types.Vector2, len(src))
	for i, p := range src {
		out[i] = types.Vector2{
			X: (p.X - bounds.Min.X) / scale,
			Y: (p.Y - bounds.Min.Y) / scale,
		}
	}
	return out, bounds
}

// Denormalize maps points in the unit square back to bounds' frame,
// in place.
func Denormalize(points []types.Vector2, bounds types.AABB) {
	scale := maxDimension(bounds)
	for i, p := range points {
		points[i] = types.Vector2{
			X: p.X*scale + bounds.Min.X,
			Y: p.Y*scale + bounds.Min.Y,
		}
	}
}

// maxDimension is the larger of the bounds' width and height. A single
// shared scale factor for both axes is what keeps normalisation a
// uniform (similarity) transform: non-uniform per-axis scaling would
// distort circumcircles and invalidate the Delaunay property the
// predicates were tuned against.
func maxDimension(bounds types.AABB) float32 {
	d := bounds.Width()
	if h := bounds.Height(); h > d {
		d = h
	}
	if d == 0 {
		d = 1
	}
	return d
}
