package model

// UnknownLastPing marks a peer absent from the known-peer registry.
const UnknownLastPing int64 = -1

// ActivePeer is a currently connected peer as reported by the node.
type ActivePeer struct {
	PeerID           string
	Host             string
	AvgLatencyMillis int64
	Reputation       int64
}

// KnownPeer is an entry of the node's address registry.
type KnownPeer struct {
	PeerID    string
	LastCheck int64
}

// PeerRecord is the published view of one active peer.
type PeerRecord struct {
	PeerID           string `json:"nodeId"`
	Host             string `json:"ip"`
	Country          string `json:"country3Code"`
	LastPing         int64  `json:"lastPing"`
	AvgLatencyMillis int64  `json:"pingLatency"`
	Reputation       int64  `json:"reputation"`
}
