// Package metrics collects Prometheus counters and histograms for the
// controle time service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns the service's metrics and the registry they live in.
// Record methods are safe on a nil Collector, which then record nothing.
type Collector struct {
	registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	windowsTotal    *prometheus.CounterVec
}

// NewCollector builds a Collector backed by its own registry, so several
// instances can coexist in one process.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "brevet_request_duration_seconds",
				Help:    "Time spent serving HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brevet_requests_total",
				Help: "HTTP requests served, by path and status code.",
			},
			[]string{"path", "status"},
		),
		windowsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brevet_controle_windows_total",
				Help: "Controle window computations, by brevet distance and outcome.",
			},
			[]string{"brevet", "outcome"},
		),
	}

	c.registry.MustRegister(c.requestDuration, c.requestsTotal, c.windowsTotal)

	return c
}

// RecordRequest notes one served HTTP request.
func (c *Collector) RecordRequest(path string, status int, duration time.Duration) {
	if c == nil {
		return
	}
	c.requestDuration.WithLabelValues(path).Observe(duration.Seconds())
	c.requestsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
}

// RecordWindow notes one controle window computation. Outcome is "ok" or a
// short reason such as "invalid_distance".
func (c *Collector) RecordWindow(brevetKm int, outcome string) {
	if c == nil {
		return
	}
	c.windowsTotal.WithLabelValues(strconv.Itoa(brevetKm), outcome).Inc()
}

// Handler serves the collected metrics in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
