package predicates

import "github.com/hatchtri/delaunay/types"

// SegmentIntersection returns the single point at which closed segments
// a1-b1 and a2-b2 intersect, and true, iff such a point exists.
//
// It returns false for parallel or collinear segments and when the
// computed intersection falls outside either closed segment. Vertical
// segments (where computing a slope would divide by zero) are handled
// as a special case; otherwise each line is reduced to slope-intercept
// form (y = m*x - c) and solved directly, rather than through a general
// determinant — this is the form the reference algorithm uses and it is
// adequate for the tolerances this package targets.
func SegmentIntersection(a1, b1, a2, b2 types.Vector2) (types.Vector2, bool) {
	line1Vertical := b1.X == a1.X
	line2Vertical := b2.X == a2.X

	var x, y float32

	switch {
	case line1Vertical && !line2Vertical:
		m2 := (b2.Y - a2.Y) / (b2.X - a2.X)
		c2 := a2.X*m2 - a2.Y
		x = a1.X
		y = m2*a1.X - c2

	case line2Vertical && !line1Vertical:
		m1 := (b1.Y - a1.Y) / (b1.X - a1.X)
		c1 := a1.X*m1 - a1.Y
		x = a2.X
		y = m1*a2.X - c1

	case !line1Vertical && !line2Vertical:
		m1 := (b1.Y - a1.Y) / (b1.X - a1.X)
		c1 := a1.X*m1 - a1.Y

		m2 := (b2.Y - a2.Y) / (b2.X - a2.X)
		c2 := a2.X*m2 - a2.Y

		det := m1*(-1) - m2*(-1)
		if det == 0 {
			return types.Vector2{}, false
		}
		x = (-c1 - (-c2)) / det
		y = (m1*c2 - m2*c1) / det

	default:
		// Both vertical: either parallel or collinear, neither a
		// single-point intersection.
		return types.Vector2{}, false
	}

	if x <= max(a1.X, b1.X) && x >= min(a1.X, b1.X) &&
		y <= max(a1.Y, b1.Y) && y >= min(a1.Y, b1.Y) &&
		x <= max(a2.X, b2.X) && x >= min(a2.X, b2.X) &&
		y <= max(a2.Y, b2.Y) && y >= min(a2.Y, b2.Y) {
		return types.Vector2{X: x, Y: y}, true
	}
	return types.Vector2{}, false
}
