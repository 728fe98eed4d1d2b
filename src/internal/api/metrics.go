package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/maksimkurb/keen-console/src/internal/errors"
	"github.com/maksimkurb/keen-console/src/internal/session"
)

// Metrics holds the Prometheus collectors of the API server.
type Metrics struct {
	registry        *prometheus.Registry
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	editCount       *prometheus.CounterVec
	saveCount       *prometheus.CounterVec
}

// NewMetrics creates the collectors in a new registry. sessions may be nil.
func NewMetrics(sessions *session.Manager) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keen_console_http_requests_total",
			Help: "Counter of API requests made.",
		}, []string{"method", "route", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "keen_console_http_request_duration_seconds",
			Help:    "Histogram of the time (in seconds) each request took.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		editCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keen_console_edits_total",
			Help: "Counter of document edits by operation and result code.",
		}, []string{"op", "result"}),
		saveCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keen_console_saves_total",
			Help: "Counter of configuration saves.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(m.requestCount, m.requestDuration, m.editCount, m.saveCount)
	m.registry.MustRegister(collectors.NewGoCollector())

	if sessions != nil {
		m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "keen_console_sessions_open",
			Help: "Number of open editing sessions.",
		}, func() float64 {
			return float64(sessions.Len())
		}))
	}
	return m
}

// Handler serves the metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware counts requests by route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		m.requestCount.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.statusCode)).Inc()
		m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) observeEdit(op string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = string(errors.CodeOf(err))
	}
	m.editCount.WithLabelValues(op, result).Inc()
}

func (m *Metrics) observeSave(ok bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	m.saveCount.WithLabelValues(result).Inc()
}
