package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var geoLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "blockinsight7000",
	Subsystem: "geo",
	Name:      "lookups_total",
	Help:      "Count of IP to country lookups by result.",
}, []string{"result"})

// Geo tracks country resolver lookups.
type Geo struct{}

// NewGeo constructs a Geo collector.
func NewGeo() *Geo {
	return &Geo{}
}

// ObserveLookup records a lookup result.
func (m Geo) ObserveLookup(result string) {
	geoLookupsTotal.WithLabelValues(result).Inc()
}
