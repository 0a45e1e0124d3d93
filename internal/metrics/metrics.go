// Package metrics exposes Prometheus collectors for the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry. All recording methods are safe on a nil
// receiver so services can run without metrics in tests.
type Metrics struct {
	registry      *prometheus.Registry
	httpReqCnt    *prometheus.CounterVec
	httpDur       *prometheus.HistogramVec
	httpInfl      *prometheus.GaugeVec
	purchaseWrite *prometheus.CounterVec
	backfill      *prometheus.CounterVec
	extraction    *prometheus.CounterVec
	extractionDur prometheus.Histogram
	auditFailures prometheus.Counter
}

// New creates and registers every collector under namespace.
func New(ns string) *Metrics {
	r := prometheus.NewRegistry()
	r.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	r.MustRegister(collectors.NewGoCollector())

	httpReqCnt := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "http_requests_total"}, []string{"method", "route", "status"})
	httpDur := prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: ns, Name: "http_request_duration_seconds", Buckets: prometheus.DefBuckets}, []string{"method", "route", "status"})
	httpInfl := prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: ns, Name: "http_requests_inflight"}, []string{"route"})
	r.MustRegister(httpReqCnt, httpDur, httpInfl)

	purchaseWrite := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "purchase_writes_total"}, []string{"operation"})
	backfill := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "home_backfill_items_total"}, []string{"outcome"})
	extraction := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "invoice_extractions_total"}, []string{"status"})
	extractionDur := prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: ns, Name: "invoice_extraction_duration_seconds", Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 60}})
	auditFailures := prometheus.NewCounter(prometheus.CounterOpts{Namespace: ns, Name: "audit_write_failures_total"})
	r.MustRegister(purchaseWrite, backfill, extraction, extractionDur, auditFailures)

	return &Metrics{
		registry:      r,
		httpReqCnt:    httpReqCnt,
		httpDur:       httpDur,
		httpInfl:      httpInfl,
		purchaseWrite: purchaseWrite,
		backfill:      backfill,
		extraction:    extraction,
		extractionDur: extractionDur,
		auditFailures: auditFailures,
	}
}

// PurchaseWritten counts a committed create, update or delete.
func (m *Metrics) PurchaseWritten(operation string) {
	if m == nil {
		return
	}
	m.purchaseWrite.WithLabelValues(operation).Inc()
}

// BackfillOutcome adds n items with the given outcome.
func (m *Metrics) BackfillOutcome(outcome string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.backfill.WithLabelValues(outcome).Add(float64(n))
}

// ExtractionDone records one call to the invoice extraction collaborator.
func (m *Metrics) ExtractionDone(status string, since time.Time) {
	if m == nil {
		return
	}
	m.extraction.WithLabelValues(status).Inc()
	m.extractionDur.Observe(time.Since(since).Seconds())
}

// AuditFailed counts an audit row that could not be written.
func (m *Metrics) AuditFailed() {
	if m == nil {
		return
	}
	m.auditFailures.Inc()
}

// Middleware records per-route request counts and latency.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpInfl.WithLabelValues(route).Inc()
		start := time.Now()
		c.Next()
		status := strconv.Itoa(c.Writer.Status())
		m.httpReqCnt.WithLabelValues(c.Request.Method, route, status).Inc()
		m.httpDur.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
		m.httpInfl.WithLabelValues(route).Dec()
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
