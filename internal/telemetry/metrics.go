package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics mirrors registry activity into Prometheus collectors.
type Metrics struct {
	events *prometheus.CounterVec
	stored prometheus.Gauge
}

// NewMetrics registers the collectors on reg. Pass prometheus.NewRegistry() in tests
// to avoid clashing with the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		events: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "todolist_activity_events_total",
				Help: "Total number of activity-log events by kind",
			},
			[]string{"kind"},
		),
		stored: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "todolist_tasks_stored",
				Help: "Current number of tasks held by the registry",
			},
		),
	}
}

// Observe counts one event and records the registry size after it.
// A nil receiver is a no-op so callers need not check whether metrics are enabled.
func (m *Metrics) Observe(e Event, stored int) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(string(e.Kind)).Inc()
	m.stored.Set(float64(stored))
}
