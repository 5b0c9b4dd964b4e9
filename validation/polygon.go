// Package validation checks hole polygons before they reach the
// construction driver, surfacing a clear error up front instead of
// letting a malformed polygon fail deep inside edge forcing or hole
// marking as an obscure ErrPolygonIsOpen.
package validation

import (
	"fmt"
	"strings"

	"github.com/hatchtri/delaunay/dlerrors"
	"github.com/hatchtri/delaunay/predicates"
	"github.com/hatchtri/delaunay/types"
)

// PolygonConfig holds validation options for a hole polygon.
type PolygonConfig struct {
	Epsilon               float32
	MinArea               float32
	AllowSelfIntersection bool
	RequireCCW            bool
}

// PolygonOption configures polygon validation.
type PolygonOption func(*PolygonConfig)

// WithPolygonEpsilon sets PolygonConfig.Epsilon. No check reads it:
// the self-intersection test is exact, and duplicate vertices are
// found by bitwise equality.
func WithPolygonEpsilon(eps float32) PolygonOption {
	return func(c *PolygonConfig) { c.Epsilon = eps }
}

// WithPolygonMinArea rejects polygons whose absolute area is smaller
// than area (catches collinear or near-degenerate loops).
func WithPolygonMinArea(area float32) PolygonOption {
	return func(c *PolygonConfig) { c.MinArea = area }
}

// WithAllowSelfIntersection allows self-intersecting polygons through;
// off by default since a self-intersecting hole has no well-defined
// interior for hole marking (§4.7) to remove.
func WithAllowSelfIntersection(allow bool) PolygonOption {
	return func(c *PolygonConfig) { c.AllowSelfIntersection = allow }
}

// WithRequireCCW toggles the CCW-winding requirement. On by default,
// matching §6's "holes[i] is a CCW-ordered closed polygon".
func WithRequireCCW(require bool) PolygonOption {
	return func(c *PolygonConfig) { c.RequireCCW = require }
}

func defaultPolygonConfig() PolygonConfig {
	return PolygonConfig{
		Epsilon:    predicates.Epsilon,
		RequireCCW: true,
	}
}

// HolePolygon validates poly as a hole outline per §6 and §13: at least
// 3 distinct vertices, CCW-ordered (unless disabled), non-self-
// intersecting (unless allowed), and of non-degenerate area.
func HolePolygon(poly []types.Vector2, opts ...PolygonOption) error {
	cfg := defaultPolygonConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(poly) < 3 {
		return fmt.Errorf("%w: %d vertices, need at least 3", dlerrors.ErrInvalidHolePolygon, len(poly))
	}
	if hasDuplicateVertex(poly) {
		return fmt.Errorf("%w: contains a duplicate vertex", dlerrors.ErrInvalidHolePolygon)
	}

	area := signedArea(poly)
	if !cfg.AllowSelfIntersection && polygonSelfIntersects(poly, cfg.Epsilon) {
		return fmt.Errorf("%w: self-intersects", dlerrors.ErrInvalidHolePolygon)
	}
	if cfg.MinArea > 0 && absf32(area) < cfg.MinArea {
		return fmt.Errorf("%w: area %.6g is below minimum %.6g", dlerrors.ErrInvalidHolePolygon, absf32(area), cfg.MinArea)
	}
	if cfg.RequireCCW && area <= 0 {
		return fmt.Errorf("%w: not CCW-ordered", dlerrors.ErrInvalidHolePolygon)
	}

	return nil
}

// Result describes a polygon's validation outcome in detail, for
// callers (e.g. the validation cmd/ tool) that want to report why a
// polygon failed rather than just that it did.
type Result struct {
	Valid       bool
	Error       error
	VertexCount int
	Area        float32
	Bounds      types.AABB
	IsCCW       bool
}

func (r Result) String() string {
	var parts []string
	if r.Error != nil {
		parts = append(parts, r.Error.Error())
	}
	parts = append(parts, fmt.Sprintf("vertices=%d", r.VertexCount))
	parts = append(parts, fmt.Sprintf("area=%.6g", r.Area))
	if r.IsCCW {
		parts = append(parts, "winding=CCW")
	} else {
		parts = append(parts, "winding=CW")
	}
	parts = append(parts, fmt.Sprintf("bounds=[%.6g,%.6g to %.6g,%.6g]",
		r.Bounds.Min.X, r.Bounds.Min.Y, r.Bounds.Max.X, r.Bounds.Max.Y))
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}

// HolePolygonDetailed is HolePolygon plus a Result describing the
// polygon's properties regardless of whether validation passed.
func HolePolygonDetailed(poly []types.Vector2, opts ...PolygonOption) Result {
	result := Result{VertexCount: len(poly)}
	if len(poly) == 0 {
		result.Error = HolePolygon(poly, opts...)
		return result
	}

	result.Area = signedArea(poly)
	result.IsCCW = result.Area > 0
	result.Bounds = types.BoundingBox(poly)
	result.Error = HolePolygon(poly, opts...)
	result.Valid = result.Error == nil
	return result
}

func hasDuplicateVertex(poly []types.Vector2) bool {
	for i := range poly {
		for j := i + 1; j < len(poly); j++ {
			if poly[i] == poly[j] {
				return true
			}
		}
	}
	return false
}

// signedArea is twice the shoelace sum, halved; positive for CCW loops.
func signedArea(poly []types.Vector2) float32 {
	var sum float32
	n := len(poly)
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum * 0.5
}

// polygonSelfIntersects checks every pair of non-adjacent edges for a
// crossing. O(n^2), acceptable for the small hole outlines this
// validates (hole polygons, not the main point cloud).
func polygonSelfIntersects(poly []types.Vector2, eps float32) bool {
	n := len(poly)
	for i := 0; i < n; i++ {
		a1, b1 := poly[i], poly[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i || (j+1)%n == i || i == (j+1)%n {
				continue
			}
			if j-i == 1 || (i == 0 && j == n-1) {
				continue
			}
			a2, b2 := poly[j], poly[(j+1)%n]
			if _, ok := predicates.SegmentIntersection(a1, b1, a2, b2); ok {
				return true
			}
		}
	}
	return false
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
