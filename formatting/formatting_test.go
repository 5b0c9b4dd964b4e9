package formatting

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hatchtri/delaunay/types"
)

func TestVector2String(t *testing.T) {
	got := Vector2String(types.Vector2{X: 1.5, Y: -2})
	if !strings.Contains(got, "1.5") || !strings.Contains(got, "-2") {
		t.Errorf("got %q", got)
	}
}

func TestVertexIDAndTriIndexNilRendering(t *testing.T) {
	if got := VertexIDString(types.NilVertex); got != "nil" {
		t.Errorf("got %q, want \"nil\"", got)
	}
	if got := TriIndexString(types.NilTri); got != "nil" {
		t.Errorf("got %q, want \"nil\"", got)
	}
	if got := VertexIDString(types.VertexID(3)); got != "3" {
		t.Errorf("got %q, want \"3\"", got)
	}
}

func TestEdgeString(t *testing.T) {
	e := types.NewEdge(5, 2)
	got := EdgeString(e)
	if !strings.Contains(got, "2") || !strings.Contains(got, "5") {
		t.Errorf("got %q", got)
	}

	var buf bytes.Buffer
	if err := WriteEdge(&buf, e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != got {
		t.Errorf("WriteEdge wrote %q, want %q", buf.String(), got)
	}
}

func TestTriangleString(t *testing.T) {
	tri := types.Triangle{A: types.Vector2{X: 0, Y: 0}, B: types.Vector2{X: 1, Y: 0}, C: types.Vector2{X: 0, Y: 1}}
	got := TriangleString(tri)
	if !strings.Contains(got, "Triangle") {
		t.Errorf("got %q", got)
	}
}

func TestPolygonLoopString(t *testing.T) {
	loop := types.NewPolygonLoop(0, 1, 2)
	got := PolygonLoopString(loop)
	if !strings.Contains(got, "0") || !strings.Contains(got, "1") || !strings.Contains(got, "2") {
		t.Errorf("got %q", got)
	}
}

func TestAABBString(t *testing.T) {
	box := types.AABB{Min: types.Vector2{X: 0, Y: 0}, Max: types.Vector2{X: 1, Y: 1}}
	got := AABBString(box)
	if !strings.Contains(got, "0") || !strings.Contains(got, "1") {
		t.Errorf("got %q", got)
	}
}
