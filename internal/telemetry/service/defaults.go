package service

import "time"

const (
	MachineTaskName    = "machine"
	BlockchainTaskName = "blockchain"
	PeerTaskName       = "peers"

	defaultMachineInterval    = 5 * time.Second
	defaultBlockchainInterval = 2 * time.Second
	defaultPeerInterval       = 1500 * time.Millisecond
	defaultPublishTimeout     = 3 * time.Second
)
