package server

import (
	"net/http"

	"github.com/iwvelando/loan-calculator/pkg/loans"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors exported on /metrics.
type Metrics struct {
	registry        *prometheus.Registry
	calculations    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics registers the server collectors on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "loancalc",
			Name:      "calculations_total",
			Help:      "Loan calculations served, by interest model.",
		}, []string{"model"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "loancalc",
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests by handler.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"handler", "code", "method"}),
	}

	registry.MustRegister(
		m.calculations,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveCalculation counts one served calculation.
func (m *Metrics) ObserveCalculation(model loans.InterestModel) {
	m.calculations.WithLabelValues(model.String()).Inc()
}

// Instrument wraps next with a latency histogram labelled with name.
func (m *Metrics) Instrument(name string, next http.Handler) http.Handler {
	observer := m.requestDuration.MustCurryWith(prometheus.Labels{"handler": name})
	return promhttp.InstrumentHandlerDuration(observer, next)
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
