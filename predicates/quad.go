package predicates

import "github.com/hatchtri/delaunay/types"

// isCW reports whether the triangle (p0, p1, p2) is wound clockwise.
func isCW(p0, p1, p2 types.Vector2) bool {
	det := p0.X*p1.Y - p1.X*p0.Y +
		p1.X*p2.Y - p2.X*p1.Y +
		p2.X*p0.Y - p0.X*p2.Y
	return det < 0
}

// IsConvexQuadrilateral reports whether the quadrilateral a-b-c-d is
// convex. It enumerates the six admissible CW/CCW sign patterns across
// the four sub-triangles (abc, abd, bcd, cad), rather than computing a
// general polygon convexity test — this matches the two-triangle shape
// every caller in this package actually produces.
func IsConvexQuadrilateral(a, b, c, d types.Vector2) bool {
	abc := isCW(a, b, c)
	abd := isCW(a, b, d)
	bcd := isCW(b, c, d)
	cad := isCW(c, a, d)

	switch {
	case abc && abd && bcd && !cad:
		return true
	case abc && abd && !bcd && cad:
		return true
	case abc && !abd && bcd && cad:
		return true
	case !abc && !abd && !bcd && cad:
		return true
	case !abc && !abd && bcd && !cad:
		return true
	case !abc && abd && !bcd && !cad:
		return true
	default:
		return false
	}
}
