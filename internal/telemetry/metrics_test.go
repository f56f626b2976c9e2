package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.Observe(Event{Kind: EventTaskAdded}, 1)
	m.Observe(Event{Kind: EventTaskAdded}, 2)
	m.Observe(Event{Kind: EventTaskRemoved}, 1)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.events.WithLabelValues("added")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.events.WithLabelValues("removed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.stored))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.Observe(Event{Kind: EventTaskAdded}, 1) })
}
