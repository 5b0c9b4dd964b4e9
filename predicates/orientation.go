package predicates

import "github.com/hatchtri/delaunay/types"

// Epsilon is the default absolute tolerance of the orientation tests
// (RightOf, LeftOf, and PointInTriangle through them); the other
// predicates in this package use none. It is chosen so that small
// negative floating-point noise is
// treated as "on the edge" rather than as a sign flip.
const Epsilon float32 = 1e-8

// RightOf reports whether p lies strictly to the right of the directed
// edge a->b. Vertices throughout this module are stored
// counter-clockwise, so "outside" an edge means strictly to the right
// of it.
func RightOf(a, b, p types.Vector2) bool {
	return RightOfEps(a, b, p, Epsilon)
}

// RightOfEps is RightOf with an explicit tolerance, for callers that
// configure their own (e.g. cdt.WithEpsilon).
func RightOfEps(a, b, p types.Vector2, eps float32) bool {
	det := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	return det < -eps
}

// LeftOf is the negation of RightOf: on-edge counts as left.
func LeftOf(a, b, p types.Vector2) bool {
	return !RightOf(a, b, p)
}

// LeftOfEps is LeftOf with an explicit tolerance.
func LeftOfEps(a, b, p types.Vector2, eps float32) bool {
	return !RightOfEps(a, b, p, eps)
}

// TriangleArea returns the unsigned area of the triangle (p0, p1, p2).
// Winding does not matter.
func TriangleArea(p0, p1, p2 types.Vector2) float32 {
	area2 := p1.Sub(p0).Cross(p2.Sub(p0))
	if area2 < 0 {
		area2 = -area2
	}
	return area2 * 0.5
}

// PointInTriangle reports whether p lies inside or on the CCW-ordered
// triangle (a, b, c).
func PointInTriangle(a, b, c, p types.Vector2) bool {
	return LeftOf(a, b, p) && LeftOf(b, c, p) && LeftOf(c, a, p)
}
