package cdt

import (
	"testing"

	"github.com/hatchtri/delaunay/predicates"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Epsilon != predicates.Epsilon {
		t.Errorf("got Epsilon %v, want %v", cfg.Epsilon, predicates.Epsilon)
	}
	if cfg.RequeueCapMultiplier != defaultRequeueCapMultiplier {
		t.Errorf("got RequeueCapMultiplier %d, want %d", cfg.RequeueCapMultiplier, defaultRequeueCapMultiplier)
	}
	if cfg.HasMaxTriangleArea {
		t.Errorf("expected HasMaxTriangleArea to default to false")
	}
	if cfg.DuplicatePointPolicy != DiscardDuplicates {
		t.Errorf("expected DiscardDuplicates by default")
	}
}

func TestWithEpsilon(t *testing.T) {
	cfg := NewConfig(WithEpsilon(1e-3))
	if cfg.Epsilon != 1e-3 {
		t.Errorf("got Epsilon %v, want 1e-3", cfg.Epsilon)
	}
}

func TestWithMaxTriangleArea(t *testing.T) {
	cfg := NewConfig(WithMaxTriangleArea(5))
	if !cfg.HasMaxTriangleArea {
		t.Fatalf("expected HasMaxTriangleArea to be set")
	}
	if cfg.MaxTriangleArea != 5 {
		t.Errorf("got MaxTriangleArea %v, want 5", cfg.MaxTriangleArea)
	}
}

func TestWithRequeueCapMultiplier(t *testing.T) {
	cfg := NewConfig(WithRequeueCapMultiplier(3))
	if cfg.RequeueCapMultiplier != 3 {
		t.Errorf("got RequeueCapMultiplier %d, want 3", cfg.RequeueCapMultiplier)
	}
}

func TestWithDuplicatePointPolicy(t *testing.T) {
	cfg := NewConfig(WithDuplicatePointPolicy(ReportDuplicates))
	if cfg.DuplicatePointPolicy != ReportDuplicates {
		t.Errorf("expected ReportDuplicates to be set")
	}
}

func TestOptionsCompose(t *testing.T) {
	cfg := NewConfig(WithEpsilon(1e-5), WithMaxTriangleArea(2), WithRequeueCapMultiplier(4), WithDuplicatePointPolicy(ReportDuplicates))
	if cfg.Epsilon != 1e-5 || cfg.MaxTriangleArea != 2 || cfg.RequeueCapMultiplier != 4 || cfg.DuplicatePointPolicy != ReportDuplicates {
		t.Errorf("composed options did not all apply: %+v", cfg)
	}
}
