package predicates

import "github.com/hatchtri/delaunay/types"

// InCircumcircle reports whether p lies strictly inside the circumcircle
// of the CCW-ordered triangle (t0, t1, t2), for p on the far side of
// edge t0->t1 from t2 (the edge-swap test: is the edge t0-t1 of the
// quadrilateral t0, p, t1, t2 illegal?). For p on t2's side of that
// edge the result is not the in-circle answer.
//
// This uses Sloan's cosine/sine sign-combination form rather than the
// classical 4x4 determinant: it is better conditioned for the tuned
// float32 arithmetic used throughout this package, at the cost of being
// an approximation rather than an exact predicate — acceptable here
// since exact-arithmetic predicates are explicitly out of scope.
func InCircumcircle(t0, t1, t2, p types.Vector2) bool {
	x02 := t0.X - t2.X
	x12 := t1.X - t2.X
	x0p := t0.X - p.X
	x1p := t1.X - p.X
	y02 := t0.Y - t2.Y
	y12 := t1.Y - t2.Y
	y0p := t0.Y - p.Y
	y1p := t1.Y - p.Y

	cosa := x02*x12 + y02*y12
	cosb := x0p*x1p + y0p*y1p

	if cosa >= 0 && cosb >= 0 {
		return false
	}
	if cosa < 0 && cosb < 0 {
		return true
	}

	sina := x02*y12 - x12*y02
	sinb := x1p*y0p - x0p*y1p

	return sina*cosb+sinb*cosa < 0
}
