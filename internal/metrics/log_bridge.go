package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	logBridgeLinesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "log_bridge",
		Name:      "lines_total",
		Help:      "Count of log lines forwarded per channel.",
	}, []string{"channel"})

	logBridgeDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "log_bridge",
		Name:      "dropped_total",
		Help:      "Count of log lines dropped because the queue was full or closed.",
	})
)

// LogBridge tracks forwarded log lines.
type LogBridge struct{}

// NewLogBridge constructs a LogBridge collector.
func NewLogBridge() *LogBridge {
	return &LogBridge{}
}

// ObserveLine records a forwarded line.
func (m LogBridge) ObserveLine(channel string) {
	logBridgeLinesTotal.WithLabelValues(channel).Inc()
}

// ObserveDropped records a line that could not be queued.
func (m LogBridge) ObserveDropped() {
	logBridgeDroppedTotal.Inc()
}
