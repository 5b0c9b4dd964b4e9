package spatial

import (
	"testing"

	"github.com/hatchtri/delaunay/types"
)

func TestCellsPerSide(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 1},
		{1, 1},
		{16, 2},
		{81, 3},
	}
	for _, c := range cases {
		if got := CellsPerSide(c.n); got != c.want {
			t.Errorf("CellsPerSide(%d): got %d, want %d", c.n, got, c.want)
		}
	}
}

func TestOrderPreservesAllPoints(t *testing.T) {
	pts := []types.Vector2{
		{X: 0.1, Y: 0.1}, {X: 0.9, Y: 0.1}, {X: 0.9, Y: 0.9}, {X: 0.1, Y: 0.9},
		{X: 0.5, Y: 0.5},
	}
	ordered := Order(pts)
	if len(ordered) != len(pts) {
		t.Fatalf("got %d points, want %d", len(ordered), len(pts))
	}

	seen := make(map[types.Vector2]bool)
	for _, p := range ordered {
		seen[p] = true
	}
	for _, p := range pts {
		if !seen[p] {
			t.Errorf("point %v missing from ordered output", p)
		}
	}
}

func TestBoustrophedonOrdering(t *testing.T) {
	g := NewPointBinGrid(2)
	// Row 0 (bottom, even -> left to right): cols 0, 1.
	bottomLeft := types.Vector2{X: 0.1, Y: 0.1}
	bottomRight := types.Vector2{X: 0.9, Y: 0.1}
	// Row 1 (top, odd -> right to left): cols 1, 0.
	topRight := types.Vector2{X: 0.9, Y: 0.9}
	topLeft := types.Vector2{X: 0.1, Y: 0.9}

	g.Add(bottomLeft)
	g.Add(bottomRight)
	g.Add(topLeft)
	g.Add(topRight)

	ordered := g.Ordered()
	want := []types.Vector2{bottomLeft, bottomRight, topRight, topLeft}
	for i, p := range want {
		if ordered[i] != p {
			t.Errorf("position %d: got %v, want %v", i, ordered[i], p)
		}
	}
}
