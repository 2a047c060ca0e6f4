package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var httpDurationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// Metrics holds all Prometheus metric instruments for the service.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Workflow metrics
	TransitionsTotal *prometheus.CounterVec
	ApprovalsTotal   *prometheus.CounterVec
	ClonesTotal      *prometheus.CounterVec

	// Event sink metrics
	EventsPublishedTotal *prometheus.CounterVec
	EventsDroppedTotal   *prometheus.CounterVec
}

// InitMetrics creates and registers all Prometheus metric instruments.
func InitMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "workorder_http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path_pattern", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "workorder_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: httpDurationBuckets,
		}, []string{"method", "path_pattern"}),

		TransitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "workorder_transitions_total",
			Help: "Total number of work item transition requests by outcome.",
		}, []string{"outcome", "to_status"}),
		ApprovalsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "workorder_update_resolutions_total",
			Help: "Total number of resolved proposals by decision.",
		}, []string{"decision"}),
		ClonesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "workorder_order_clones_total",
			Help: "Total number of order clone attempts by result.",
		}, []string{"result"}),

		EventsPublishedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "workorder_events_published_total",
			Help: "Total number of events handed to the sink.",
		}, []string{"type"}),
		EventsDroppedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "workorder_events_dropped_total",
			Help: "Total number of events dropped because the sink queue was full.",
		}, []string{"type"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.TransitionsTotal,
		m.ApprovalsTotal,
		m.ClonesTotal,
		m.EventsPublishedTotal,
		m.EventsDroppedTotal,
	)

	return m
}

// --- Recording helpers ---
// All helpers are safe to call on a nil *Metrics.

// RecordHTTPRequest records HTTP request metrics.
func (m *Metrics) RecordHTTPRequest(method, pathPattern string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, pathPattern, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, pathPattern).Observe(duration.Seconds())
}

// RecordTransition records a transition outcome: committed, pending or failed.
func (m *Metrics) RecordTransition(outcome, toStatus string) {
	if m == nil {
		return
	}
	m.TransitionsTotal.WithLabelValues(outcome, toStatus).Inc()
}

// RecordResolution records an approved or rejected proposal.
func (m *Metrics) RecordResolution(decision string) {
	if m == nil {
		return
	}
	m.ApprovalsTotal.WithLabelValues(decision).Inc()
}

// RecordClone records the result of an order clone.
func (m *Metrics) RecordClone(result string) {
	if m == nil {
		return
	}
	m.ClonesTotal.WithLabelValues(result).Inc()
}

// RecordEventPublished records an event accepted by the sink queue.
func (m *Metrics) RecordEventPublished(eventType string) {
	if m == nil {
		return
	}
	m.EventsPublishedTotal.WithLabelValues(eventType).Inc()
}

// RecordEventDropped records an event dropped on a full queue.
func (m *Metrics) RecordEventDropped(eventType string) {
	if m == nil {
		return
	}
	m.EventsDroppedTotal.WithLabelValues(eventType).Inc()
}

// --- HTTP Middleware ---

// GinMiddleware records request metrics using gin's route pattern (not the actual
// URL path) to keep label cardinality bounded.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		pathPattern := c.FullPath()
		if pathPattern == "" {
			pathPattern = "unmatched"
		}
		m.RecordHTTPRequest(c.Request.Method, pathPattern, c.Writer.Status(), time.Since(start))
	}
}

// Handler returns the Prometheus handler for the /metrics endpoint.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
