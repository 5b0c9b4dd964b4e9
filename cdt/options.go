package cdt

import "github.com/hatchtri/delaunay/predicates"

// DuplicatePointPolicy controls whether Build surfaces how many input
// points coalesced onto an existing vertex (§12.2).
type DuplicatePointPolicy int

const (
	// DiscardDuplicates is the default: duplicate points are silently
	// coalesced, matching §4.9's plain triangle-slice output.
	DiscardDuplicates DuplicatePointPolicy = iota
	// ReportDuplicates populates Diagnostics.DuplicateCount on Build's
	// result with the number of input points that coalesced.
	ReportDuplicates
)

// Config collects the construction driver's tunables. Build always
// receives a fully populated Config built by NewConfig.
type Config struct {
	Epsilon              float32
	MaxTriangleArea      float32
	HasMaxTriangleArea   bool
	RequeueCapMultiplier int
	DuplicatePointPolicy DuplicatePointPolicy
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithEpsilon overrides the absolute tolerance used by orientation
// predicates during point location (default predicates.Epsilon).
func WithEpsilon(eps float32) Option {
	return func(c *Config) { c.Epsilon = eps }
}

// WithMaxTriangleArea enables §4.8 area-bounded refinement with the
// given threshold.
func WithMaxTriangleArea(area float32) Option {
	return func(c *Config) {
		c.MaxTriangleArea = area
		c.HasMaxTriangleArea = true
	}
}

// WithRequeueCapMultiplier overrides the §12.1 non-convex-quadrilateral
// re-queue cap (default 8, i.e. 8*len(crossedEdges)).
func WithRequeueCapMultiplier(n int) Option {
	return func(c *Config) { c.RequeueCapMultiplier = n }
}

// WithDuplicatePointPolicy selects whether duplicate input points are
// reported back to the caller (§12.2).
func WithDuplicatePointPolicy(policy DuplicatePointPolicy) Option {
	return func(c *Config) { c.DuplicatePointPolicy = policy }
}

// NewConfig applies opts over the default configuration.
func NewConfig(opts ...Option) Config {
	c := Config{
		Epsilon:              predicates.Epsilon,
		RequeueCapMultiplier: defaultRequeueCapMultiplier,
		DuplicatePointPolicy: DiscardDuplicates,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
