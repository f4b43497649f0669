package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Исходы отправки формы.
const (
	OutcomeInvalid   = "invalid"
	OutcomeInFlight  = "in_flight"
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
)

// Metrics счётчики отправок и генерации.
type Metrics struct {
	submissions        *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
	activeSessions     prometheus.Gauge
}

// New регистрирует метрики в reg. nil означает prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "grant_assistant_submissions_total",
				Help: "Total number of form submissions by outcome",
			},
			[]string{"outcome"},
		),
		generationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "grant_assistant_generation_duration_seconds",
				Help:    "Duration of suggestion generation calls",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
			},
			[]string{"backend", "result"},
		),
		activeSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "grant_assistant_active_sessions",
				Help: "Number of live form sessions",
			},
		),
	}

	reg.MustRegister(m.submissions, m.generationDuration, m.activeSessions)
	return m
}

// Submission учитывает исход одной попытки отправки.
func (m *Metrics) Submission(outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(outcome).Inc()
}

// ObserveGeneration реализует наблюдателя генерации.
func (m *Metrics) ObserveGeneration(backend string, d time.Duration, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.generationDuration.WithLabelValues(backend, result).Observe(d.Seconds())
}

func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.activeSessions.Inc()
}

func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
}
