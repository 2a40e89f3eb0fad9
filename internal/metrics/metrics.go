// Package metrics exposes Prometheus collectors for the API and the
// complaint mutations behind it. A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"

	"github.com/civiclink/backend/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "civiclink"

type Metrics struct {
	registry *prometheus.Registry

	RequestCounter     *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	RequestsInFlight   prometheus.Gauge
	Mutations          *prometheus.CounterVec
	Comments           prometheus.Counter
	ComplaintsByStatus *prometheus.GaugeVec
}

// New registers every collector on a fresh registry, so tests can build as
// many instances as they like.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		RequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_in_flight",
				Help:      "Number of requests currently being processed",
			},
		),
		Mutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "complaints",
				Name:      "field_updates_total",
				Help:      "Complaint fields changed through updates",
			},
			[]string{"field"},
		),
		Comments: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "complaints",
				Name:      "comments_total",
				Help:      "Comments appended to complaints",
			},
		),
		ComplaintsByStatus: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "complaints",
				Name:      "by_status",
				Help:      "Complaints per status at the last analytics computation",
			},
			[]string{"status"},
		),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveFieldUpdates(fields []string) {
	if m == nil {
		return
	}
	for _, f := range fields {
		m.Mutations.WithLabelValues(f).Inc()
	}
}

func (m *Metrics) ObserveComment() {
	if m == nil {
		return
	}
	m.Comments.Inc()
}

func (m *Metrics) RecordStats(stats models.DashboardStats) {
	if m == nil {
		return
	}
	m.ComplaintsByStatus.WithLabelValues(string(models.StatusOpen)).Set(float64(stats.OpenComplaints))
	m.ComplaintsByStatus.WithLabelValues(string(models.StatusInProgress)).Set(float64(stats.InProgressComplaints))
	m.ComplaintsByStatus.WithLabelValues(string(models.StatusResolved)).Set(float64(stats.ResolvedComplaints))
}
