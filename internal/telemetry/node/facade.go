// Package node reads chain and peer state from the backing node over RPC.
package node

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/model"
)

// ErrNoChainHead is returned while the node has no best block to report.
var ErrNoChainHead = errors.New("node: chain head not available")

// BreakerSettings configures the circuit breaker guarding RPC calls.
type BreakerSettings struct {
	Name             string
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

// Facade exposes the node views consumed by the snapshot tasks and the follower.
type Facade struct {
	client       RPCClient
	breaker      *gobreaker.CircuitBreaker[any]
	logger       *zap.Logger
	knownPeerCap int32
}

// NewFacade wraps client with a circuit breaker. knownPeerCap limits the
// registry query, 0 asks the node for every address it knows.
func NewFacade(client RPCClient, settings BreakerSettings, knownPeerCap int32, metrics BreakerMetrics, logger *zap.Logger) *Facade {
	logger = logger.Named("node")
	if settings.Name == "" {
		settings.Name = "node-rpc"
	}
	if settings.FailureThreshold == 0 {
		settings.FailureThreshold = 5
	}
	if settings.OpenTimeout == 0 {
		settings.OpenTimeout = 30 * time.Second
	}

	threshold := settings.FailureThreshold
	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:    settings.Name,
		Timeout: settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
			if metrics != nil {
				metrics.ObserveBreakerState(name, from.String(), to.String())
			}
		},
	})

	return &Facade{
		client:       client,
		breaker:      cb,
		logger:       logger,
		knownPeerCap: knownPeerCap,
	}
}

func execute[T any](ctx context.Context, cb *gobreaker.CircuitBreaker[any], fn func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	res, err := cb.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		return zero, err
	}
	out, _ := res.(T)
	return out, nil
}

// TipHeight returns the height of the node's best block.
func (f *Facade) TipHeight(ctx context.Context) (uint64, error) {
	count, err := execute(ctx, f.breaker, f.client.GetBlockCount)
	if err != nil {
		return 0, fmt.Errorf("get block count: %w", err)
	}
	if count < 0 {
		return 0, ErrNoChainHead
	}
	return uint64(count), nil
}

// BestBlock returns the current chain head.
func (f *Facade) BestBlock(ctx context.Context) (model.Block, error) {
	hash, err := execute(ctx, f.breaker, f.client.GetBestBlockHash)
	if err != nil {
		return model.Block{}, fmt.Errorf("get best block hash: %w", err)
	}
	if hash == nil {
		return model.Block{}, ErrNoChainHead
	}

	res, err := execute(ctx, f.breaker, func() (*btcjson.GetBlockVerboseResult, error) {
		return f.client.GetBlockVerbose(hash)
	})
	if err != nil {
		return model.Block{}, fmt.Errorf("get block %s: %w", hash, err)
	}
	return convertBlock(res)
}

// BlockAt returns the block at height on the active chain.
func (f *Facade) BlockAt(ctx context.Context, height uint64) (model.Block, error) {
	hash, err := execute(ctx, f.breaker, func() (*chainhash.Hash, error) {
		return f.client.GetBlockHash(int64(height))
	})
	if err != nil {
		return model.Block{}, fmt.Errorf("get block hash %d: %w", height, err)
	}

	res, err := execute(ctx, f.breaker, func() (*btcjson.GetBlockVerboseResult, error) {
		return f.client.GetBlockVerbose(hash)
	})
	if err != nil {
		return model.Block{}, fmt.Errorf("get block %d: %w", height, err)
	}
	return convertBlock(res)
}

// ActivePeers returns the currently connected peers.
func (f *Facade) ActivePeers(ctx context.Context) ([]model.ActivePeer, error) {
	res, err := execute(ctx, f.breaker, f.client.GetPeerInfo)
	if err != nil {
		return nil, fmt.Errorf("get peer info: %w", err)
	}

	out := make([]model.ActivePeer, 0, len(res))
	for _, p := range res {
		out = append(out, convertActivePeer(p))
	}
	return out, nil
}

// KnownPeers returns a private copy of the node's address registry.
func (f *Facade) KnownPeers(ctx context.Context) ([]model.KnownPeer, error) {
	count := f.knownPeerCap
	res, err := execute(ctx, f.breaker, func() ([]btcjson.GetNodeAddressesResult, error) {
		return f.client.GetNodeAddresses(&count)
	})
	if err != nil {
		return nil, fmt.Errorf("get node addresses: %w", err)
	}

	out := make([]model.KnownPeer, 0, len(res))
	for _, a := range res {
		out = append(out, convertKnownPeer(a))
	}
	return out, nil
}
