// Package metrics holds the Prometheus collectors exported by the API server
// on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "model_viewer"

// Metrics holds all Prometheus metrics of the API server
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	loginFailures   prometheus.Counter
	modelsCreated   prometheus.Counter
	viewsSaved      prometheus.Counter
	uploadedBytes   prometheus.Counter
}

// New creates the collectors on a private registry together with the Go
// runtime and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Latency of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		loginFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "login_failures_total",
				Help:      "Total number of rejected login attempts",
			},
		),
		modelsCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "models_created_total",
				Help:      "Total number of created model records",
			},
		),
		viewsSaved: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "saved_views_total",
				Help:      "Total number of saved camera views",
			},
		),
		uploadedBytes: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "asset_uploaded_bytes_total",
				Help:      "Total size of uploaded model files in bytes",
			},
		),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one served request. route is the matched route
// pattern, never the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// IncLoginFailures increments the rejected logins counter
func (m *Metrics) IncLoginFailures() {
	m.loginFailures.Inc()
}

// IncModelsCreated increments the created models counter
func (m *Metrics) IncModelsCreated() {
	m.modelsCreated.Inc()
}

// IncViewsSaved increments the saved views counter
func (m *Metrics) IncViewsSaved() {
	m.viewsSaved.Inc()
}

// AddUploadedBytes adds the size of a stored asset
func (m *Metrics) AddUploadedBytes(n int64) {
	if n > 0 {
		m.uploadedBytes.Add(float64(n))
	}
}
