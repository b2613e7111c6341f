package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors exposed by flowdoc's serve mode.
type Metrics struct {
	syncs          *prometheus.CounterVec
	renderDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		syncs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flowdoc_syncs_total",
				Help: "Total number of document sync attempts by outcome",
			},
			[]string{"outcome"},
		),
		renderDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name: "flowdoc_render_duration_seconds",
				Help: "Duration of diagram rendering",
			},
		),
	}
	reg.MustRegister(m.syncs, m.renderDuration)
	return m
}

// RecordSync increments the sync counter for the given outcome
// ("updated", "unchanged" or "error").
func (m *Metrics) RecordSync(outcome string) {
	m.syncs.WithLabelValues(outcome).Inc()
}

// ObserveRender records one diagram render duration.
func (m *Metrics) ObserveRender(d time.Duration) {
	m.renderDuration.Observe(d.Seconds())
}
