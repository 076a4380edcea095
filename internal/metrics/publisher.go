package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	publisherMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "publisher",
		Name:      "messages_total",
		Help:      "Count of messages published per topic.",
	}, []string{"topic"})

	publisherDeliveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "publisher",
		Name:      "deliveries_total",
		Help:      "Count of messages queued to subscribers.",
	}, []string{"topic"})

	publisherDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "publisher",
		Name:      "dropped_total",
		Help:      "Count of messages dropped for slow subscribers.",
	}, []string{"topic"})

	publisherSubscribers = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "publisher",
		Name:      "subscribers",
		Help:      "Number of connected subscribers per topic.",
	}, []string{"topic"})
)

// Publisher tracks metrics for topic fan-out.
type Publisher struct{}

// NewPublisher constructs a Publisher collector.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// ObservePublish records one published message and how many subscribers got it.
func (m Publisher) ObservePublish(topic string, delivered, dropped int) {
	publisherMessagesTotal.WithLabelValues(topic).Inc()
	publisherDeliveriesTotal.WithLabelValues(topic).Add(float64(delivered))
	if dropped > 0 {
		publisherDroppedTotal.WithLabelValues(topic).Add(float64(dropped))
	}
}

// SetSubscribers records the current subscriber count of a topic.
func (m Publisher) SetSubscribers(topic string, n int) {
	publisherSubscribers.WithLabelValues(topic).Set(float64(n))
}
