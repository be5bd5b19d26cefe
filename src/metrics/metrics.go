// Package metrics exports quote synthesis outcomes to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the engine's collectors on a private prometheus registry.
type Registry struct {
	registry *prometheus.Registry

	Quotes         *prometheus.CounterVec
	SynthesisTime  *prometheus.HistogramVec
	InquiryRecords prometheus.Gauge
	WorkbookLoads  *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),

		Quotes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "option_inquiry_quotes_total",
				Help: "Quote synthesis calls by outcome",
			},
			[]string{"source"},
		),

		SynthesisTime: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "option_inquiry_synthesis_duration_seconds",
				Help:    "Duration of one quote synthesis in seconds",
				Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
			},
			[]string{"source"},
		),

		InquiryRecords: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "option_inquiry_records",
				Help: "Inquiry records currently held in memory",
			},
		),

		WorkbookLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "option_inquiry_workbook_loads_total",
				Help: "Quote workbook loads by result",
			},
			[]string{"result"},
		),
	}

	r.registry.MustRegister(
		r.Quotes,
		r.SynthesisTime,
		r.InquiryRecords,
		r.WorkbookLoads,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// Observe records one synthesis outcome.
func (r *Registry) Observe(outcome string, elapsed time.Duration) {
	r.Quotes.WithLabelValues(outcome).Inc()
	r.SynthesisTime.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func (r *Registry) SetInquiryRecords(n int) {
	r.InquiryRecords.Set(float64(n))
}

func (r *Registry) RecordWorkbookLoad(err error) {
	if err != nil {
		r.WorkbookLoads.WithLabelValues("error").Inc()
		return
	}

	r.WorkbookLoads.WithLabelValues("ok").Inc()
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
