package hulltest

import (
	"math"
	"testing"

	"github.com/hatchtri/delaunay/types"
)

func TestConvexHullAreaOfSquareWithInteriorPoint(t *testing.T) {
	points := []types.Vector2{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
		{X: 5, Y: 5}, // interior, must not affect the hull
	}
	area := ConvexHullArea(points)
	if math.Abs(float64(area-100)) > 0.5 {
		t.Errorf("got area %v, want approximately 100", area)
	}
}

func TestConvexHullAreaTooFewPoints(t *testing.T) {
	if area := ConvexHullArea([]types.Vector2{{X: 0, Y: 0}, {X: 1, Y: 1}}); area != 0 {
		t.Errorf("expected 0 area for fewer than 3 points, got %v", area)
	}
}

func TestConvexHullVerticesExcludesInteriorPoint(t *testing.T) {
	points := []types.Vector2{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
		{X: 5, Y: 5},
	}
	hull := ConvexHullVertices(points)
	for _, p := range hull {
		if p == (types.Vector2{X: 5, Y: 5}) {
			t.Errorf("interior point (5,5) should not appear on the convex hull boundary")
		}
	}
	if len(hull) != 4 {
		t.Errorf("expected 4 hull vertices for a square with one interior point, got %d", len(hull))
	}
}
