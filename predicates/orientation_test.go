package predicates

import (
	"testing"

	"github.com/hatchtri/delaunay/types"
)

func v(x, y float32) types.Vector2 { return types.Vector2{X: x, Y: y} }

func TestRightOfLeftOf(t *testing.T) {
	a, b := v(0, 0), v(1, 0)

	if !RightOf(a, b, v(0.5, -1)) {
		t.Errorf("expected point below a->b to be RightOf")
	}
	if RightOf(a, b, v(0.5, 1)) {
		t.Errorf("expected point above a->b to not be RightOf")
	}
	if !LeftOf(a, b, v(0.5, 1)) {
		t.Errorf("expected point above a->b to be LeftOf")
	}
}

func TestRightOfEpsTolerance(t *testing.T) {
	a, b := v(0, 0), v(1, 0)
	// A point barely below the line should be swallowed by a large eps.
	p := v(0.5, -1e-6)
	if RightOfEps(a, b, p, 1e-3) {
		t.Errorf("expected large epsilon to treat near-collinear point as not RightOf")
	}
	if !RightOfEps(a, b, p, 1e-9) {
		t.Errorf("expected tiny epsilon to treat the point as RightOf")
	}
}

func TestTriangleArea(t *testing.T) {
	area := TriangleArea(v(0, 0), v(4, 0), v(0, 3))
	if area != 6 {
		t.Errorf("got area %v, want 6", area)
	}
	// Winding shouldn't matter.
	area2 := TriangleArea(v(0, 0), v(0, 3), v(4, 0))
	if area2 != 6 {
		t.Errorf("got area %v, want 6 (CW winding)", area2)
	}
}

func TestPointInTriangle(t *testing.T) {
	a, b, c := v(0, 0), v(4, 0), v(0, 4)
	if !PointInTriangle(a, b, c, v(1, 1)) {
		t.Errorf("expected (1,1) inside triangle")
	}
	if PointInTriangle(a, b, c, v(10, 10)) {
		t.Errorf("expected (10,10) outside triangle")
	}
}
