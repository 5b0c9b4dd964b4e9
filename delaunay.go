// Package delaunay computes 2D constrained Delaunay triangulations.
//
// Given a point set and an optional list of polygonal holes, Triangulate
// produces triangles covering the convex hull of the points minus the
// hole interiors, satisfying the Delaunay empty-circumcircle property
// everywhere that doesn't conflict with a hole boundary.
package delaunay

import (
	"github.com/hatchtri/delaunay/cdt"
	"github.com/hatchtri/delaunay/types"
	"github.com/hatchtri/delaunay/validation"
)

// Option configures a Triangulate / TriangulateWithDiagnostics call.
type Option = cdt.Option

// DuplicatePointPolicy selects whether duplicate input points are
// reported back to the caller (§12.2).
type DuplicatePointPolicy = cdt.DuplicatePointPolicy

const (
	// DiscardDuplicates is the default: coalesced duplicate points are
	// not reported.
	DiscardDuplicates = cdt.DiscardDuplicates
	// ReportDuplicates populates Result.Diagnostics.DuplicateCount.
	ReportDuplicates = cdt.ReportDuplicates
)

// Result is TriangulateWithDiagnostics' return value.
type Result = cdt.Result

// Diagnostics carries information a plain Triangulate call discards;
// see WithDuplicatePointPolicy.
type Diagnostics = cdt.Diagnostics

// WithEpsilon overrides the absolute tolerance used by orientation
// predicates (default 1e-8).
func WithEpsilon(eps float32) Option { return cdt.WithEpsilon(eps) }

// WithMaxTriangleArea enables area-bounded refinement: every output
// triangle not touching the super-triangle will have area <= area.
func WithMaxTriangleArea(area float32) Option { return cdt.WithMaxTriangleArea(area) }

// WithRequeueCapMultiplier overrides the edge-forcing non-convex-
// quadrilateral re-queue cap (default 8x the crossed-edge count).
func WithRequeueCapMultiplier(n int) Option { return cdt.WithRequeueCapMultiplier(n) }

// WithDuplicatePointPolicy selects whether TriangulateWithDiagnostics
// reports how many input points coalesced onto an existing vertex.
func WithDuplicatePointPolicy(policy DuplicatePointPolicy) Option {
	return cdt.WithDuplicatePointPolicy(policy)
}

// Triangulate computes the constrained Delaunay triangulation of
// points, treating each entry of holes as a polygonal region to
// exclude from the output. points must have at least 3 entries; each
// hole must be a closed, CCW-ordered polygon of at least 3 distinct
// vertices lying inside the convex hull of points.
func Triangulate(points []types.Vector2, holes [][]types.Vector2, opts ...Option) ([]types.Triangle, error) {
	result, err := TriangulateWithDiagnostics(points, holes, opts...)
	if err != nil {
		return nil, err
	}
	return result.Triangles, nil
}

// TriangulateWithDiagnostics is Triangulate, additionally returning the
// §12.2 duplicate-point diagnostics when requested via
// WithDuplicatePointPolicy(ReportDuplicates).
func TriangulateWithDiagnostics(points []types.Vector2, holes [][]types.Vector2, opts ...Option) (Result, error) {
	for _, hole := range holes {
		if err := validation.HolePolygon(hole); err != nil {
			return Result{}, err
		}
	}

	cfg := cdt.NewConfig(opts...)
	return cdt.Build(points, holes, cfg)
}
