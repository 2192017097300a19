package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is safe to use as a nil pointer: every method then does nothing.
type Metrics struct {
	Submissions *prometheus.CounterVec
	Latency     prometheus.Histogram
	InFlight    prometheus.Gauge
	Batches     prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "dishseed_submissions_total", Help: "Submitted records by outcome"},
			[]string{"status"},
		),
		Latency: prometheus.NewHistogram(
			prometheus.HistogramOpts{Name: "dishseed_submit_latency_seconds", Help: "Latency of a single submission"},
		),
		InFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{Name: "dishseed_in_flight", Help: "Submissions currently in flight"},
		),
		Batches: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "dishseed_batches_total", Help: "Completed batches"},
		),
	}
	reg.MustRegister(m.Collectors()...)
	return m
}

func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.Submissions, m.Latency, m.InFlight, m.Batches}
}

func (m *Metrics) Start() {
	if m != nil {
		m.InFlight.Inc()
	}
}

func (m *Metrics) Done(ok bool, took time.Duration) {
	if m == nil {
		return
	}
	m.InFlight.Dec()
	m.Latency.Observe(took.Seconds())
	status := "failure"
	if ok {
		status = "success"
	}
	m.Submissions.WithLabelValues(status).Inc()
}

func (m *Metrics) BatchDone() {
	if m != nil {
		m.Batches.Inc()
	}
}

// Handler serves everything gathered by g in the prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
