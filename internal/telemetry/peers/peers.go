// Package peers joins the node's connected peers with its address registry.
package peers

import (
	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/model"
)

// CountryResolver maps an IP address to a 3-letter country code.
type CountryResolver interface {
	Resolve(ip string) string
}

// Correlate builds one PeerRecord per active peer, in input order.
//
// LastPing is taken from the first known peer sharing the identity, or
// model.UnknownLastPing when none does. known is read once and never retained.
func Correlate(active []model.ActivePeer, known []model.KnownPeer, resolver CountryResolver) []model.PeerRecord {
	lastCheck := make(map[string]int64, len(known))
	for _, k := range known {
		if _, ok := lastCheck[k.PeerID]; ok {
			continue
		}
		lastCheck[k.PeerID] = k.LastCheck
	}

	out := make([]model.PeerRecord, 0, len(active))
	for _, p := range active {
		rec := model.PeerRecord{
			PeerID:           p.PeerID,
			Host:             p.Host,
			LastPing:         model.UnknownLastPing,
			AvgLatencyMillis: p.AvgLatencyMillis,
			Reputation:       p.Reputation,
		}
		if ts, ok := lastCheck[p.PeerID]; ok && p.PeerID != "" {
			rec.LastPing = ts
		}
		if resolver != nil {
			rec.Country = resolver.Resolve(p.Host)
		}
		out = append(out, rec)
	}
	return out
}
