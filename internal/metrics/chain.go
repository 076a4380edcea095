package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainWindowSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chain",
		Name:      "window_blocks",
		Help:      "Number of blocks held in the estimation window.",
	})

	chainHashRate = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chain",
		Name:      "estimated_hash_rate",
		Help:      "Last estimated network hash rate.",
	})

	chainEstimateErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chain",
		Name:      "estimate_errors_total",
		Help:      "Count of windows rejected by the hash rate estimator.",
	})

	chainActivePeers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chain",
		Name:      "active_peers",
		Help:      "Number of connected peers in the last snapshot.",
	})
)

// Chain tracks derived blockchain and peer gauges.
type Chain struct{}

// NewChain constructs a Chain collector.
func NewChain() *Chain {
	return &Chain{}
}

// ObserveEstimate records the window size and the estimator outcome.
func (m Chain) ObserveEstimate(windowSize int, hashRate uint64, err error) {
	chainWindowSize.Set(float64(windowSize))
	if err != nil {
		chainEstimateErrors.Inc()
		return
	}
	chainHashRate.Set(float64(hashRate))
}

// SetActivePeers records the number of peers in the last snapshot.
func (m Chain) SetActivePeers(n int) {
	chainActivePeers.Set(float64(n))
}
