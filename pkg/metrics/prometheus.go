package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	Transitions         *prometheus.CounterVec
	SalesConverted      prometheus.Counter
	LifecycleRejections *prometheus.CounterVec
	PaymentsApproved    prometheus.Counter
	RequestDuration     *prometheus.HistogramVec
}

// NewMetrics registers the service collectors on reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "service_detail_transitions_total",
			Help:      "The total number of applied service detail status transitions",
		}, []string{"from", "to"}),
		SalesConverted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_converted_total",
			Help:      "The total number of service details converted to sales",
		}),
		LifecycleRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lifecycle_rejections_total",
			Help:      "The total number of rejected lifecycle operations",
		}, []string{"reason"}),
		PaymentsApproved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sale_payments_approved_total",
			Help:      "The total number of approved sale payments",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to serve HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// NewNopMetrics returns collectors bound to a private registry.
func NewNopMetrics() *Metrics {
	return NewMetrics("test", prometheus.NewRegistry())
}
