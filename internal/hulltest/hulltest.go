// Package hulltest computes the convex hull area of a planar point set
// using an independent third-party hull algorithm, so the coverage
// property test (§8) has a reference that isn't derived from the
// triangulator under test.
package hulltest

import (
	"math"
	"sort"

	"github.com/golang/geo/r3"
	"github.com/hatchtri/delaunay/types"
	"github.com/markus-wa/quickhull-go/v2"
)

const defaultEps = 1e-7

// ConvexHullArea returns the area enclosed by the convex hull of
// points, computed via quickhull-go's 3D hull algorithm on the points
// lifted to the z=0 plane. Every vertex referenced by any returned
// facet lies on the hull boundary; angularly sorting that vertex set
// around its centroid recovers the hull polygon, whose area is then
// computed with the shoelace formula.
func ConvexHullArea(points []types.Vector2) float32 {
	boundary := ConvexHullVertices(points)
	if len(boundary) < 3 {
		return 0
	}
	return shoelaceArea(boundary)
}

// ConvexHullVertices returns the convex hull's vertices, in CCW order.
func ConvexHullVertices(points []types.Vector2) []types.Vector2 {
	if len(points) < 3 {
		return nil
	}

	lifted := make([]r3.Vector, len(points))
	for i, p := range points {
		lifted[i] = r3.Vector{X: float64(p.X), Y: float64(p.Y), Z: 0}
	}

	qh := new(quickhull.QuickHull)
	hull := qh.ConvexHull(lifted, true, true, defaultEps)

	onHull := make(map[int]bool)
	for _, idx := range hull.Indices {
		onHull[idx] = true
	}
	if len(onHull) == 0 {
		return nil
	}

	boundary := make([]types.Vector2, 0, len(onHull))
	var centroid types.Vector2
	for idx := range onHull {
		p := points[idx]
		boundary = append(boundary, p)
		centroid = centroid.Add(p)
	}
	centroid = centroid.Div(float32(len(boundary)))

	sort.Slice(boundary, func(i, j int) bool {
		ai := math.Atan2(float64(boundary[i].Y-centroid.Y), float64(boundary[i].X-centroid.X))
		aj := math.Atan2(float64(boundary[j].Y-centroid.Y), float64(boundary[j].X-centroid.X))
		return ai < aj
	})
	return boundary
}

func shoelaceArea(poly []types.Vector2) float32 {
	var sum float32
	n := len(poly)
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	if sum < 0 {
		sum = -sum
	}
	return sum * 0.5
}
