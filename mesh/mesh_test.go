package mesh

import (
	"testing"

	"github.com/hatchtri/delaunay/types"
)

func p(x, y float32) types.Vector2 { return types.Vector2{X: x, Y: y} }

func TestAddPointDedup(t *testing.T) {
	ts := New()
	v1, status1 := ts.AddPoint(p(1, 2))
	if status1 != types.Added {
		t.Fatalf("expected first insert to be Added")
	}
	v2, status2 := ts.AddPoint(p(1, 2))
	if status2 != types.Found {
		t.Fatalf("expected duplicate insert to be Found")
	}
	if v1 != v2 {
		t.Errorf("expected duplicate insert to return the same VertexID, got %d vs %d", v1, v2)
	}
	if ts.NumPoints() != 1 {
		t.Errorf("expected 1 point in mesh, got %d", ts.NumPoints())
	}
}

func TestAddTriangleInfoAndReplace(t *testing.T) {
	ts := New()
	a, _ := ts.AddPoint(p(0, 0))
	b, _ := ts.AddPoint(p(1, 0))
	c, _ := ts.AddPoint(p(0, 1))

	idx := ts.AddTriangleInfo([3]types.VertexID{a, b, c}, [3]types.TriIndex{types.NilTri, types.NilTri, types.NilTri})
	if ts.NumTriangles() != 1 {
		t.Fatalf("expected 1 triangle, got %d", ts.NumTriangles())
	}

	tri := ts.GetTriangle(idx)
	if tri.Vertices != [3]types.VertexID{a, b, c} {
		t.Errorf("got vertices %v", tri.Vertices)
	}

	ts.ReplaceTriangle(idx, types.TriangleInfo{
		Vertices:  [3]types.VertexID{c, b, a},
		Adjacents: [3]types.TriIndex{1, 2, 3},
	})
	replaced := ts.GetTriangle(idx)
	if replaced.Vertices != [3]types.VertexID{c, b, a} {
		t.Errorf("ReplaceTriangle did not take effect: %v", replaced.Vertices)
	}
}

func TestReplaceAdjacent(t *testing.T) {
	ts := New()
	a, _ := ts.AddPoint(p(0, 0))
	b, _ := ts.AddPoint(p(1, 0))
	c, _ := ts.AddPoint(p(0, 1))

	idx := ts.AddTriangleInfo([3]types.VertexID{a, b, c}, [3]types.TriIndex{5, types.NilTri, types.NilTri})
	ts.ReplaceAdjacent(idx, 5, 9)
	if ts.GetTriangle(idx).Adjacents[0] != 9 {
		t.Errorf("expected adjacency slot 0 to become 9, got %d", ts.GetTriangle(idx).Adjacents[0])
	}

	// No-op on an invalid index.
	ts.ReplaceAdjacent(types.NilTri, 5, 9)

	// No-op when old isn't present.
	ts.ReplaceAdjacent(idx, 123, 456)
	if ts.GetTriangle(idx).Adjacents[0] != 9 {
		t.Errorf("expected adjacency slot 0 to remain 9 after no-op replace")
	}
}

func TestGetTrianglePoints(t *testing.T) {
	ts := New()
	a, _ := ts.AddPoint(p(0, 0))
	b, _ := ts.AddPoint(p(1, 0))
	c, _ := ts.AddPoint(p(0, 1))
	idx := ts.AddTriangleInfo([3]types.VertexID{a, b, c}, [3]types.TriIndex{types.NilTri, types.NilTri, types.NilTri})

	p0, p1, p2 := ts.GetTrianglePoints(idx)
	if p0 != p(0, 0) || p1 != p(1, 0) || p2 != p(0, 1) {
		t.Errorf("got (%v, %v, %v)", p0, p1, p2)
	}
}
