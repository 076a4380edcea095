package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	followerSyncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_follower",
		Name:      "sync_total",
		Help:      "Count of attempts to catch up with the node tip.",
	}, []string{"network", "status"})

	followerSyncDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_follower",
		Name:      "sync_duration_seconds",
		Help:      "Duration of catching up with the node tip.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	followerSyncSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_follower",
		Name:      "sync_blocks",
		Help:      "Number of blocks delivered per sync.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8), // 1..128
	}, []string{"network"})

	followerTipHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_follower",
		Name:      "tip_height",
		Help:      "Height of the last block delivered to the window.",
	}, []string{"network"})
)

// BlockFollower tracks metrics for the block follower loop.
type BlockFollower struct {
	network string
}

// NewBlockFollower constructs a BlockFollower with sane defaults.
func NewBlockFollower(network string) *BlockFollower {
	if network == "" {
		network = "unknown"
	}
	return &BlockFollower{network: network}
}

// ObserveSync records one catch-up attempt.
func (m BlockFollower) ObserveSync(err error, blocks int, started time.Time) {
	status := statusOf(err)
	followerSyncTotal.WithLabelValues(m.network, status).Inc()
	followerSyncDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	if blocks > 0 {
		followerSyncSize.WithLabelValues(m.network).Observe(float64(blocks))
	}
}

// SetTipHeight records the height of the newest delivered block.
func (m BlockFollower) SetTipHeight(height uint64) {
	followerTipHeight.WithLabelValues(m.network).Set(float64(height))
}
