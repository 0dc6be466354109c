package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gapSearchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "gap_sync",
		Name:      "searches_total",
		Help:      "Count of indexed transfer searches.",
	}, []string{"chain", "status"})

	gapSearchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "gap_sync",
		Name:      "search_duration_seconds",
		Help:      "Duration of indexed transfer searches.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "status"})

	gapSearchHits = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "gap_sync",
		Name:      "search_hits",
		Help:      "Number of results per transfer search.",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100},
	}, []string{"chain"})
)

// GapSync tracks metrics for gap synchronization.
type GapSync struct {
	chain string
}

// NewGapSync constructs a GapSync collector.
func NewGapSync(chain string) *GapSync {
	return &GapSync{chain: orUnknown(chain)}
}

// ObserveSearch records one transfer search.
func (m GapSync) ObserveSearch(err error, hits int, started time.Time) {
	s := status(err)
	gapSearchTotal.WithLabelValues(m.chain, s).Inc()
	gapSearchDuration.WithLabelValues(m.chain, s).Observe(time.Since(started).Seconds())
	if err == nil {
		gapSearchHits.WithLabelValues(m.chain).Observe(float64(hits))
	}
}

// ObserveAdded counts records inserted into the history.
func (m GapSync) ObserveAdded(source string, count int) {
	if count <= 0 {
		return
	}
	recordsAddedTotal.WithLabelValues(m.chain, source).Add(float64(count))
}
