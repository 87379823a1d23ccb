package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Failure reasons recorded by OrderMetrics.
const (
	ReasonInvalidRequest    = "invalid_request"
	ReasonProductNotFound   = "product_not_found"
	ReasonInsufficientStock = "insufficient_stock"
	ReasonInternal          = "internal"
)

// OrderMetrics tracks the order creation workflow. A nil *OrderMetrics is
// valid and records nothing.
type OrderMetrics struct {
	ordersCreated    prometheus.Counter
	orderFailures    *prometheus.CounterVec
	varietyDiscounts prometheus.Counter
	createDuration   prometheus.Histogram
}

// NewOrderMetrics registers the order metrics on registerer, or on the
// default registerer when it is nil. Registering twice reuses the existing
// collectors.
func NewOrderMetrics(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersCreated: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "toko_orders_created_total",
			Help: "Total number of orders created",
		})),
		orderFailures: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "toko_order_failures_total",
			Help: "Total number of rejected order creation requests",
		}, []string{"reason"})),
		varietyDiscounts: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "toko_variety_discounts_total",
			Help: "Total number of orders that received the variety discount",
		})),
		createDuration: register(registerer, prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "toko_order_create_duration_seconds",
			Help:    "Duration of order creation in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		})),
	}
}

func register[C prometheus.Collector](registerer prometheus.Registerer, collector C) C {
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(C)
			if !ok {
				panic(fmt.Sprintf("collector already registered with unexpected type %T", alreadyRegistered.ExistingCollector))
			}
			return existing
		}
		panic(fmt.Sprintf("register collector: %v", err))
	}
	return collector
}

// RecordCreated counts a committed order.
func (m *OrderMetrics) RecordCreated(discounted bool, took time.Duration) {
	if m == nil {
		return
	}
	m.ordersCreated.Inc()
	if discounted {
		m.varietyDiscounts.Inc()
	}
	m.createDuration.Observe(took.Seconds())
}

// RecordFailed counts a rejected order creation.
func (m *OrderMetrics) RecordFailed(reason string, took time.Duration) {
	if m == nil {
		return
	}
	m.orderFailures.WithLabelValues(reason).Inc()
	m.createDuration.Observe(took.Seconds())
}
