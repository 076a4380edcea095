package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/telemetry/hashrate"
)

// BlockchainTask reads the chain head, estimates the hash rate over the
// block window and publishes a BlockchainSnapshot.
type BlockchainTask struct {
	chain          ChainReader
	window         BlockWindow
	publisher      Publisher
	metrics        ChainMetrics
	latest         *Latest[model.BlockchainSnapshot]
	publishTimeout time.Duration
	logger         *zap.Logger
}

// Name implements Task.
func (t *BlockchainTask) Name() string { return BlockchainTaskName }

// Run implements Task.
func (t *BlockchainTask) Run(ctx context.Context) error {
	head, err := t.chain.BestBlock(ctx)
	if err != nil {
		return fmt.Errorf("read chain head: %w", err)
	}

	blocks := t.window.Snapshot()
	rate, err := hashrate.Estimate(blocks)
	t.metrics.ObserveEstimate(len(blocks), rate, err)
	if err != nil {
		if !errors.Is(err, hashrate.ErrInvalidWindowState) {
			return fmt.Errorf("estimate hash rate: %w", err)
		}
		t.logger.Debug("hash rate unavailable for window", zap.Int("blocks", len(blocks)), zap.Error(err))
		rate = 0
	}

	snap := model.BlockchainSnapshot{
		Height:     head.Height,
		Timestamp:  head.Timestamp,
		TxCount:    head.TxCount,
		Difficulty: head.Difficulty,
		HashRate:   rate,
	}
	t.latest.Store(snap)

	if err := publish(ctx, t.publisher, t.publishTimeout, model.TopicBlockchainInfo, snap); err != nil {
		return fmt.Errorf("publish blockchain snapshot: %w", err)
	}
	return nil
}
