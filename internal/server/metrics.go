package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments for the limits service.
type Metrics struct {
	calculations *prometheus.CounterVec
	rateLimited  prometheus.Counter
}

// NewMetrics creates the service metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ebs_limits_calculations_total",
			Help: "Limit calculations by volume type and outcome.",
		}, []string{"volume_type", "outcome"}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ebs_limits_rate_limited_total",
			Help: "Requests rejected by the rate limiter.",
		}),
	}
	reg.MustRegister(m.calculations, m.rateLimited)
	return m
}

// observeCalculation records one calculation attempt. outcome is "ok",
// "out_of_range", "ratio_violation", or "invalid_argument".
func (m *Metrics) observeCalculation(volumeType, outcome string) {
	m.calculations.WithLabelValues(volumeType, outcome).Inc()
}
