package model

// MachineSnapshot describes host resources at one sampling point.
type MachineSnapshot struct {
	CPULoadPercent   int    `json:"cpuUsage"`
	FreeMemoryBytes  uint64 `json:"memoryFree"`
	TotalMemoryBytes uint64 `json:"memoryTotal"`
	FreeDiskBytes    uint64 `json:"freeSpace"`
}

// BlockchainSnapshot describes the chain head and the derived hash rate.
type BlockchainSnapshot struct {
	Height     uint64 `json:"lastBlockNumber"`
	Timestamp  int64  `json:"lastBlockTime"`
	TxCount    uint32 `json:"lastBlockTransactions"`
	Difficulty uint64 `json:"difficulty"`
	// Reserved is always zero.
	Reserved uint64 `json:"lastReforkTime"`
	HashRate uint64 `json:"networkHashRate"`
}

// InitialInfo is set once at startup.
type InitialInfo struct {
	NodeLibraryVersion string `json:"nodeLibraryVersion"`
	AppVersion         string `json:"appVersion"`
}
