// Package prom implements the observability hooks with Prometheus metrics.
//
// The server registers these hooks and exposes the registry on /metrics:
//
//	reg := prometheus.NewRegistry()
//	hooks, err := prom.New(reg)
//	if err != nil {
//	    return err
//	}
//	hooks.Install()
package prom

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/ghstats/pkg/observability"
)

const namespace = "ghstats"

// Hooks records pipeline, cache and upstream HTTP events as metrics.
// Usernames and request paths are never used as label values.
type Hooks struct {
	collects        *prometheus.CounterVec
	collectDuration prometheus.Histogram
	renders         *prometheus.CounterVec
	renderBytes     prometheus.Histogram
	cacheOps        *prometheus.CounterVec
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestErrors   *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Hooks, error) {
	h := &Hooks{
		collects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collect_total",
			Help:      "Stats collections by result.",
		}, []string{"result"}),
		collectDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "collect_duration_seconds",
			Help:      "Duration of the fan-out fetch plus aggregation.",
			Buckets:   prometheus.DefBuckets,
		}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_total",
			Help:      "Rendered documents by theme.",
		}, []string{"theme"}),
		renderBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_bytes",
			Help:      "Size of rendered documents.",
			Buckets:   prometheus.ExponentialBuckets(4096, 2, 6),
		}),
		cacheOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_operations_total",
			Help:      "Upstream response cache operations.",
		}, []string{"key_type", "op"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Upstream API responses by status code.",
		}, []string{"method", "host", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream API latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "host"}),
		requestErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_errors_total",
			Help:      "Upstream API transport failures.",
		}, []string{"method", "host"}),
	}

	for _, c := range []prometheus.Collector{
		h.collects, h.collectDuration, h.renders, h.renderBytes,
		h.cacheOps, h.requests, h.requestDuration, h.requestErrors,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Install registers h as the process-wide pipeline, cache and HTTP hooks.
func (h *Hooks) Install() {
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

func (h *Hooks) OnCollectStart(context.Context, string) {}

func (h *Hooks) OnCollectComplete(_ context.Context, _ string, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	h.collects.WithLabelValues(result).Inc()
	h.collectDuration.Observe(d.Seconds())
}

func (h *Hooks) OnRenderComplete(_ context.Context, theme string, size int, _ time.Duration) {
	h.renders.WithLabelValues(theme).Inc()
	h.renderBytes.Observe(float64(size))
}

func (h *Hooks) OnCacheHit(_ context.Context, keyType string) {
	h.cacheOps.WithLabelValues(keyType, "hit").Inc()
}

func (h *Hooks) OnCacheMiss(_ context.Context, keyType string) {
	h.cacheOps.WithLabelValues(keyType, "miss").Inc()
}

func (h *Hooks) OnCacheSet(_ context.Context, keyType string, _ int) {
	h.cacheOps.WithLabelValues(keyType, "set").Inc()
}

func (h *Hooks) OnRequest(context.Context, string, string, string) {}

func (h *Hooks) OnResponse(_ context.Context, method, host, _ string, code int, d time.Duration) {
	h.requests.WithLabelValues(method, host, strconv.Itoa(code)).Inc()
	h.requestDuration.WithLabelValues(method, host).Observe(d.Seconds())
}

func (h *Hooks) OnError(_ context.Context, method, host, _ string, _ error) {
	h.requestErrors.WithLabelValues(method, host).Inc()
}

var (
	_ observability.PipelineHooks = (*Hooks)(nil)
	_ observability.CacheHooks    = (*Hooks)(nil)
	_ observability.HTTPHooks     = (*Hooks)(nil)
)
