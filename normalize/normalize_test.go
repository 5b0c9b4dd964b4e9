package normalize

import (
	"math"
	"testing"

	"github.com/hatchtri/delaunay/types"
)

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestPointsNormalizesIntoUnitSquare(t *testing.T) {
	src := []types.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}, {X: 0, Y: 5}}
	out, bounds := Points(src, nil)

	if bounds.Min != (types.Vector2{X: 0, Y: 0}) || bounds.Max != (types.Vector2{X: 10, Y: 5}) {
		t.Fatalf("unexpected bounds: %v", bounds)
	}

	// Scale is max(width, height) = 10, applied uniformly to both axes.
	want := []types.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0.5}, {X: 0, Y: 0.5}}
	for i, p := range out {
		if !almostEqual(p.X, want[i].X) || !almostEqual(p.Y, want[i].Y) {
			t.Errorf("point %d: got %v, want %v", i, p, want[i])
		}
	}
}

func TestPointsUsesSharedBounds(t *testing.T) {
	shared := types.AABB{Min: types.Vector2{X: 0, Y: 0}, Max: types.Vector2{X: 10, Y: 10}}
	hole := []types.Vector2{{X: 5, Y: 5}}

	out, bounds := Points(hole, &shared)
	if bounds != shared {
		t.Errorf("expected Points to return the shared bounds unchanged")
	}
	if !almostEqual(out[0].X, 0.5) || !almostEqual(out[0].Y, 0.5) {
		t.Errorf("got %v, want (0.5, 0.5)", out[0])
	}
}

func TestRoundTrip(t *testing.T) {
	src := []types.Vector2{{X: -3, Y: 7}, {X: 12, Y: -4}, {X: 0.5, Y: 0.5}}
	normalized, bounds := Points(src, nil)

	roundTripped := make([]types.Vector2, len(normalized))
	copy(roundTripped, normalized)
	Denormalize(roundTripped, bounds)

	for i, p := range roundTripped {
		if !almostEqual(p.X, src[i].X) || !almostEqual(p.Y, src[i].Y) {
			t.Errorf("point %d: round trip got %v, want %v", i, p, src[i])
		}
	}
}

func TestNonSquareBoundsUseSharedScaleFactor(t *testing.T) {
	// A wide, short bounding box: width 20, height 2. Using independent
	// per-axis scaling would map (20,2) to (1,1); the correct uniform
	// transform maps it to (1, 0.1).
	src := []types.Vector2{{X: 0, Y: 0}, {X: 20, Y: 2}}
	out, _ := Points(src, nil)

	if !almostEqual(out[1].X, 1) {
		t.Errorf("got X=%v, want 1", out[1].X)
	}
	if !almostEqual(out[1].Y, 0.1) {
		t.Errorf("got Y=%v, want 0.1 (uniform scale by the larger dimension)", out[1].Y)
	}
}
