package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	Mutations           *prometheus.CounterVec
	SlotLoads           *prometheus.CounterVec
	PersistenceFailures *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
}

// NewMetrics registers the itinerary metrics on reg. Tests pass a fresh
// prometheus.NewRegistry() so repeated construction does not collide.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "itinerary_mutations_total",
			Help:      "Itinerary mutations by operation and outcome",
		}, []string{"operation", "outcome"}),
		SlotLoads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "itinerary_slot_loads_total",
			Help:      "Itinerary loads by where the starting value came from",
		}, []string{"source"}),
		PersistenceFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "itinerary_persistence_failures_total",
			Help:      "Failures reading or writing the itinerary slot",
		}, []string{"stage"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}
