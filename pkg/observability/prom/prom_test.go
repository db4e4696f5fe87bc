package prom

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/matzehuels/ghstats/pkg/observability"
)

func TestHooksRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	h, err := New(reg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	ctx := context.Background()

	h.OnCollectComplete(ctx, "octocat", time.Second, nil)
	h.OnCollectComplete(ctx, "octocat", time.Second, errors.New("boom"))
	h.OnRenderComplete(ctx, "dark", 8000, time.Millisecond)
	h.OnCacheHit(ctx, "github")
	h.OnCacheMiss(ctx, "github")
	h.OnResponse(ctx, "GET", "api.github.com", "/users/octocat", 200, 50*time.Millisecond)
	h.OnError(ctx, "POST", "api.github.com", "/graphql", errors.New("reset"))

	tests := []struct {
		name string
		c    prometheus.Collector
		want float64
	}{
		{"collect ok", h.collects.WithLabelValues("ok"), 1},
		{"collect error", h.collects.WithLabelValues("error"), 1},
		{"render dark", h.renders.WithLabelValues("dark"), 1},
		{"cache hit", h.cacheOps.WithLabelValues("github", "hit"), 1},
		{"cache miss", h.cacheOps.WithLabelValues("github", "miss"), 1},
		{"requests 200", h.requests.WithLabelValues("GET", "api.github.com", "200"), 1},
		{"errors", h.requestErrors.WithLabelValues("POST", "api.github.com"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testutil.ToFloat64(tt.c); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := New(reg); err != nil {
		t.Fatalf("first New() failed: %v", err)
	}
	if _, err := New(reg); err == nil {
		t.Error("second New() on the same registry should fail")
	}
}

func TestInstall(t *testing.T) {
	defer observability.Reset()

	h, err := New(prometheus.NewRegistry())
	if err != nil {
		t.Fatal(err)
	}
	h.Install()

	if observability.Pipeline() != observability.PipelineHooks(h) {
		t.Error("Install should register pipeline hooks")
	}
	if observability.HTTP() != observability.HTTPHooks(h) {
		t.Error("Install should register HTTP hooks")
	}
}
