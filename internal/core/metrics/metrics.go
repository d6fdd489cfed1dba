// Package metrics owns the Prometheus registry and the pipeline collectors.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "transitiq"

// Metrics groups the collectors recorded by the analysis pipeline.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Registry is the private registry every collector is registered on.
	Registry *prometheus.Registry

	analyses              *prometheus.CounterVec
	analysisDuration      *prometheus.HistogramVec
	ingestFailures        *prometheus.CounterVec
	analyzerDegraded      *prometheus.CounterVec
	normalizationDefaults *prometheus.CounterVec
	exports               *prometheus.CounterVec
}

// New creates a registry with runtime collectors and the pipeline series.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		Registry: reg,
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Completed analyses by data source.",
		}, []string{"source"}),
		analysisDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Wall time of normalize plus analyze by data source.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
		}, []string{"source"}),
		ingestFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingest_failures_total",
			Help:      "Rejected uploads by failure reason.",
		}, []string{"reason"}),
		analyzerDegraded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyzer_degraded_total",
			Help:      "Analyzer runs that returned a placeholder result.",
		}, []string{"analyzer"}),
		normalizationDefaults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "normalization_defaults_total",
			Help:      "Canonical fields filled with their static default.",
		}, []string{"field"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Export artifacts built by format and outcome.",
		}, []string{"format", "outcome"}),
	}

	reg.MustRegister(
		m.analyses,
		m.analysisDuration,
		m.ingestFailures,
		m.analyzerDegraded,
		m.normalizationDefaults,
		m.exports,
	)

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// ObserveAnalysis records one completed analysis.
func (m *Metrics) ObserveAnalysis(source string, took time.Duration) {
	if m == nil {
		return
	}
	m.analyses.WithLabelValues(source).Inc()
	m.analysisDuration.WithLabelValues(source).Observe(took.Seconds())
}

// IngestFailed records a rejected upload.
func (m *Metrics) IngestFailed(reason string) {
	if m == nil {
		return
	}
	m.ingestFailures.WithLabelValues(reason).Inc()
}

// AnalyzerDegraded records an analyzer that fell back to its placeholder.
func (m *Metrics) AnalyzerDegraded(analyzer string) {
	if m == nil {
		return
	}
	m.analyzerDegraded.WithLabelValues(analyzer).Inc()
}

// FieldDefaulted records a canonical field filled from its default.
func (m *Metrics) FieldDefaulted(field string) {
	if m == nil {
		return
	}
	m.normalizationDefaults.WithLabelValues(field).Inc()
}

// ExportBuilt records an export attempt.
func (m *Metrics) ExportBuilt(format string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.exports.WithLabelValues(format, outcome).Inc()
}
