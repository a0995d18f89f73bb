// Package metrics exposes Prometheus counters for provider fetches and tool
// calls. Each Metrics owns its own registry so tests and multiple servers in
// one process never collide on the global one.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "boredom_mcp"

// Metrics records fetch and tool-call activity. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	registry      *prometheus.Registry
	fetchTotal    *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	toolCalls     *prometheus.CounterVec
}

// New creates a Metrics with a fresh registry that also carries the Go and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		fetchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fetch_total",
				Help:      "Provider fetches by provider and result kind.",
			},
			[]string{"provider", "kind"},
		),
		fetchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "fetch_duration_seconds",
				Help:      "Duration of provider fetches.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		toolCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tool_calls_total",
				Help:      "MCP tool calls by tool and outcome.",
			},
			[]string{"tool", "outcome"},
		),
	}

	m.registry.MustRegister(
		m.fetchTotal,
		m.fetchDuration,
		m.toolCalls,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveFetch records one provider fetch.
func (m *Metrics) ObserveFetch(provider, kind string, d time.Duration) {
	if m == nil {
		return
	}
	m.fetchTotal.WithLabelValues(provider, kind).Inc()
	m.fetchDuration.WithLabelValues(provider).Observe(d.Seconds())
}

// ObserveToolCall records one tool call. Rejected calls are those answered
// with an IsError result.
func (m *Metrics) ObserveToolCall(tool string, rejected bool) {
	if m == nil {
		return
	}
	outcome := "ok"
	if rejected {
		outcome = "rejected"
	}
	m.toolCalls.WithLabelValues(tool, outcome).Inc()
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
