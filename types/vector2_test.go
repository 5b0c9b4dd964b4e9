package types

import "testing"

func TestVector2Arithmetic(t *testing.T) {
	a := Vector2{X: 1, Y: 2}
	b := Vector2{X: 3, Y: 4}

	if got := a.Add(b); got != (Vector2{X: 4, Y: 6}) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Sub(a); got != (Vector2{X: 2, Y: 2}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vector2{X: 2, Y: 4}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := b.Div(2); got != (Vector2{X: 1.5, Y: 2}) {
		t.Errorf("Div: got %v", got)
	}
	if got := a.Dot(b); got != 11 {
		t.Errorf("Dot: got %v, want 11", got)
	}
	if got := a.Cross(b); got != -2 {
		t.Errorf("Cross: got %v, want -2", got)
	}
	if got := a.Midpoint(b); got != (Vector2{X: 2, Y: 3}) {
		t.Errorf("Midpoint: got %v", got)
	}
}

func TestAABBWidthHeight(t *testing.T) {
	b := AABB{Min: Vector2{X: -1, Y: -2}, Max: Vector2{X: 3, Y: 4}}
	if b.Width() != 4 {
		t.Errorf("Width: got %v, want 4", b.Width())
	}
	if b.Height() != 6 {
		t.Errorf("Height: got %v, want 6", b.Height())
	}
}

func TestBoundingBox(t *testing.T) {
	pts := []Vector2{{X: 1, Y: 5}, {X: -2, Y: 3}, {X: 4, Y: -1}}
	b := BoundingBox(pts)
	want := AABB{Min: Vector2{X: -2, Y: -1}, Max: Vector2{X: 4, Y: 5}}
	if b != want {
		t.Errorf("got %v, want %v", b, want)
	}
}
