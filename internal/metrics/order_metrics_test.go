package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordCreated(t *testing.T) {
	m := NewOrderMetrics(prometheus.NewRegistry())

	m.RecordCreated(false, 10*time.Millisecond)
	m.RecordCreated(true, 20*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ordersCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.varietyDiscounts))
}

func TestRecordFailed(t *testing.T) {
	m := NewOrderMetrics(prometheus.NewRegistry())

	m.RecordFailed(ReasonInsufficientStock, time.Millisecond)
	m.RecordFailed(ReasonInsufficientStock, time.Millisecond)
	m.RecordFailed(ReasonInvalidRequest, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.orderFailures.WithLabelValues(ReasonInsufficientStock)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.orderFailures.WithLabelValues(ReasonInvalidRequest)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ordersCreated))
}

func TestNewOrderMetrics_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewOrderMetrics(reg)
	second := NewOrderMetrics(reg)

	first.RecordCreated(false, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(second.ordersCreated))
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *OrderMetrics
	assert.NotPanics(t, func() {
		m.RecordCreated(true, time.Millisecond)
		m.RecordFailed(ReasonInternal, time.Millisecond)
	})
}
