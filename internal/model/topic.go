package model

// Topic names a publish destination.
type Topic string

var (
	TopicMachineInfo    Topic = "/topic/machineInfo"
	TopicBlockchainInfo Topic = "/topic/blockchainInfo"
	TopicPeers          Topic = "/topic/peers"
	TopicSystemLog      Topic = "/topic/systemLog"
)

// Topics lists every topic the service publishes to.
func Topics() []Topic {
	return []Topic{TopicMachineInfo, TopicBlockchainInfo, TopicPeers, TopicSystemLog}
}

// ParseTopic accepts either the full topic path or its last segment.
func ParseTopic(s string) (Topic, bool) {
	for _, t := range Topics() {
		if string(t) == s || string(t) == "/topic/"+s {
			return t, true
		}
	}
	return "", false
}
