package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "operations_total",
		Help:      "Count of history and checkpoint store operations.",
	}, []string{"operation", "backend", "status"})
	storeRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "operation_duration_seconds",
		Help:      "Duration of history and checkpoint store operations.",
		Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"operation", "backend", "status"})
)

// Store tracks metrics for the transaction store and checkpoint tracker.
type Store struct {
	backend string
}

// NewStore creates a Store metrics collector for the given KV backend.
func NewStore(backend string) *Store {
	return &Store{backend: orUnknown(backend)}
}

// Observe records duration and status of a store operation.
func (m Store) Observe(operation string, err error, started time.Time) {
	s := status(err)
	storeRequestsTotal.WithLabelValues(operation, m.backend, s).Inc()
	storeRequestDuration.WithLabelValues(operation, m.backend, s).Observe(time.Since(started).Seconds())
}
