// Package metrics exposes Prometheus collectors for the storefront: carousel
// navigation, cart insertions, live carousel sessions and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"retiro-storefront/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

// Metrics holds the collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	navigations  *prometheus.CounterVec
	insertions   *prometheus.CounterVec
	liveSessions prometheus.Gauge
	requests     *prometheus.CounterVec
	latency      *prometheus.HistogramVec
}

// New registers every collector, plus the Go and process collectors, on a
// fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		navigations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "carousel",
			Name:      "navigations_total",
			Help:      "Slide changes by carousel kind and cause.",
		}, []string{"kind", "cause"}),
		insertions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "carousel",
			Name:      "cart_insertions_total",
			Help:      "Add-to-cart attempts from carousels by kind and result.",
		}, []string{"kind", "result"}),
		liveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "carousel",
			Name:      "live_sessions",
			Help:      "Open carousel sessions.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		m.navigations,
		m.insertions,
		m.liveSessions,
		m.requests,
		m.latency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Navigated counts a slide change.
func (m *Metrics) Navigated(kind model.PromotableKind, cause string) {
	m.navigations.WithLabelValues(string(kind), cause).Inc()
}

// CartInsertion counts an add-to-cart attempt.
func (m *Metrics) CartInsertion(kind model.PromotableKind, ok bool) {
	result := "success"
	if !ok {
		result = "failure"
	}
	m.insertions.WithLabelValues(string(kind), result).Inc()
}

// LiveSessions is the open carousel sessions gauge.
func (m *Metrics) LiveSessions() prometheus.Gauge {
	return m.liveSessions
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request counts and latency keyed by the chi route
// pattern, so path parameters do not explode label cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(rw.status)).Inc()
		m.latency.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
