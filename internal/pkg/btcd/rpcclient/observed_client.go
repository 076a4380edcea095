// Package rpcclient instruments node RPC calls with metrics.
package rpcclient

import (
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Operation labels reported to RPCMetrics.
const (
	OpGetBlockCount    = "get_block_count"
	OpGetBlockHash     = "get_block_hash"
	OpGetBestBlockHash = "get_best_block_hash"
	OpGetBlockVerbose  = "get_block_verbose"
	OpGetPeerInfo      = "get_peer_info"
	OpGetNodeAddresses = "get_node_addresses"
)

// ObservedClient records the outcome and latency of every call it forwards.
type ObservedClient struct {
	client     Client
	rpcMetrics RPCMetrics
}

func NewObservedClient(client Client, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

func (r *ObservedClient) GetBlockCount() (int64, error) {
	return observe(r.rpcMetrics, OpGetBlockCount, r.client.GetBlockCount)
}

func (r *ObservedClient) GetBlockHash(blockHeight int64) (*chainhash.Hash, error) {
	return observe(r.rpcMetrics, OpGetBlockHash, func() (*chainhash.Hash, error) {
		return r.client.GetBlockHash(blockHeight)
	})
}

func (r *ObservedClient) GetBestBlockHash() (*chainhash.Hash, error) {
	return observe(r.rpcMetrics, OpGetBestBlockHash, r.client.GetBestBlockHash)
}

func (r *ObservedClient) GetBlockVerbose(blockHash *chainhash.Hash) (*btcjson.GetBlockVerboseResult, error) {
	return observe(r.rpcMetrics, OpGetBlockVerbose, func() (*btcjson.GetBlockVerboseResult, error) {
		return r.client.GetBlockVerbose(blockHash)
	})
}

func (r *ObservedClient) GetPeerInfo() ([]btcjson.GetPeerInfoResult, error) {
	return observe(r.rpcMetrics, OpGetPeerInfo, r.client.GetPeerInfo)
}

func (r *ObservedClient) GetNodeAddresses(count *int32) ([]btcjson.GetNodeAddressesResult, error) {
	return observe(r.rpcMetrics, OpGetNodeAddresses, func() ([]btcjson.GetNodeAddressesResult, error) {
		return r.client.GetNodeAddresses(count)
	})
}

func observe[T any](m RPCMetrics, operation string, call func() (T, error)) (T, error) {
	started := time.Now()
	res, err := call()
	m.Observe(operation, err, started)
	return res, err
}
