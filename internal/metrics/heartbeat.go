package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	heartbeatHeadTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "heartbeat",
		Name:      "head_lookups_total",
		Help:      "Count of chain head lookups.",
	}, []string{"chain", "status"})

	heartbeatHeadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "heartbeat",
		Name:      "head_lookup_duration_seconds",
		Help:      "Duration of chain head lookups including fallbacks.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "status"})

	heartbeatWindowTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "heartbeat",
		Name:      "windows_total",
		Help:      "Count of scanned windows.",
	}, []string{"chain", "forced", "status"})

	heartbeatWindowDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "heartbeat",
		Name:      "window_duration_seconds",
		Help:      "Duration of scanning one window.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "forced", "status"})

	heartbeatWindowSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "heartbeat",
		Name:      "window_heights",
		Help:      "Number of heights per scanned window.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
	}, []string{"chain", "forced"})

	heartbeatHeightTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "heartbeat",
		Name:      "heights_total",
		Help:      "Count of per-height scans by strategy.",
	}, []string{"chain", "strategy", "status"})

	heartbeatHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "heartbeat",
		Name:      "height_duration_seconds",
		Help:      "Duration of per-height scans by strategy.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "strategy", "status"})

	recordsAddedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_added_total",
		Help:      "Count of history records added by discovery source.",
	}, []string{"chain", "source"})
)

// Heartbeat tracks metrics for heartbeat and forced scans.
type Heartbeat struct {
	chain string
}

// NewHeartbeat constructs a Heartbeat collector.
func NewHeartbeat(chain string) *Heartbeat {
	return &Heartbeat{chain: orUnknown(chain)}
}

// ObserveHead records a head lookup.
func (m Heartbeat) ObserveHead(err error, started time.Time) {
	s := status(err)
	heartbeatHeadTotal.WithLabelValues(m.chain, s).Inc()
	heartbeatHeadDuration.WithLabelValues(m.chain, s).Observe(time.Since(started).Seconds())
}

// ObserveWindow records a scanned window.
func (m Heartbeat) ObserveWindow(err error, forced bool, heights int, started time.Time) {
	s := status(err)
	f := strconv.FormatBool(forced)
	heartbeatWindowTotal.WithLabelValues(m.chain, f, s).Inc()
	heartbeatWindowDuration.WithLabelValues(m.chain, f, s).Observe(time.Since(started).Seconds())
	heartbeatWindowSize.WithLabelValues(m.chain, f).Observe(float64(heights))
}

// ObserveHeight records one strategy attempt on one height.
func (m Heartbeat) ObserveHeight(err error, strategy string, started time.Time) {
	s := status(err)
	heartbeatHeightTotal.WithLabelValues(m.chain, strategy, s).Inc()
	heartbeatHeightDuration.WithLabelValues(m.chain, strategy, s).Observe(time.Since(started).Seconds())
}

// ObserveAdded counts records inserted into the history.
func (m Heartbeat) ObserveAdded(source string, count int) {
	if count <= 0 {
		return
	}
	recordsAddedTotal.WithLabelValues(m.chain, source).Add(float64(count))
}
