package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSchedulingMetricsCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSchedulingMetrics(reg)

	m.ObserveAvailability(3, nil)
	m.ObserveAvailability(0, nil)
	m.ObserveAvailability(0, errors.New("boom"))
	m.ObserveTicketCreated(2)
	m.ObserveTicketRejected()
	m.ObserveTicketRejected()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.availabilityTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.availabilityTotal.WithLabelValues("empty")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.availabilityTotal.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ticketsTotal.WithLabelValues("created")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ticketsTotal.WithLabelValues("rejected")))
}

func TestSchedulingMetricsNilSafe(t *testing.T) {
	var m *SchedulingMetrics
	m.ObserveAvailability(1, nil)
	m.ObserveTicketCreated(1)
	m.ObserveTicketRejected()
}
