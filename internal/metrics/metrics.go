package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the pipeline's Prometheus collectors. A nil *Metrics is a
// valid no-op recorder.
type Metrics struct {
	registry *prometheus.Registry

	runsTotal        *prometheus.CounterVec
	runDuration      *prometheus.HistogramVec
	pagesTotal       *prometheus.CounterVec
	providerFallback *prometheus.CounterVec
	runsInFlight     prometheus.Gauge
	queueTasksTotal  *prometheus.CounterVec
}

// New creates a private registry with Go/process collectors and all
// pipeline metrics registered on it.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		runsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scriptsense_runs_total",
				Help: "Total number of pipeline runs",
			},
			[]string{"source", "pdf_type", "status"},
		),
		runDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "scriptsense_run_duration_seconds",
				Help:    "Pipeline run latency in seconds",
				Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"source", "status"},
		),
		pagesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scriptsense_pages_total",
				Help: "Page OCR outcomes by provider role and status",
			},
			[]string{"provider", "status"},
		),
		providerFallback: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scriptsense_provider_fallbacks_total",
				Help: "Pages recognized by the fallback provider",
			},
			[]string{"primary", "fallback"},
		),
		runsInFlight: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "scriptsense_runs_in_flight",
				Help: "Current number of pipeline runs",
			},
		),
		queueTasksTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scriptsense_queue_tasks_total",
				Help: "Queue tasks by type and outcome",
			},
			[]string{"task", "status"},
		),
	}
}

// RunStarted increments the in-flight gauge; call the returned func when the run ends.
func (m *Metrics) RunStarted() func() {
	if m == nil {
		return func() {}
	}
	m.runsInFlight.Inc()
	return m.runsInFlight.Dec
}

// RecordRun counts one finished run. pdfType is "" for images.
func (m *Metrics) RecordRun(source, pdfType string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	status := statusLabel(err)
	if pdfType == "" {
		pdfType = "none"
	}
	m.runsTotal.WithLabelValues(source, pdfType, status).Inc()
	m.runDuration.WithLabelValues(source, status).Observe(duration.Seconds())
}

// RecordPage counts one page outcome.
func (m *Metrics) RecordPage(provider string, err error) {
	if m == nil {
		return
	}
	m.pagesTotal.WithLabelValues(provider, statusLabel(err)).Inc()
}

// RecordFallback counts a page served by the fallback provider.
func (m *Metrics) RecordFallback(primary, fallback string) {
	if m == nil {
		return
	}
	m.providerFallback.WithLabelValues(primary, fallback).Inc()
}

// RecordTask counts a processed queue task.
func (m *Metrics) RecordTask(task string, err error) {
	if m == nil {
		return
	}
	m.queueTasksTotal.WithLabelValues(task, statusLabel(err)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
