package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/telemetry/peers"
)

// PeerTask correlates connected peers with the address registry and
// publishes the resulting records.
type PeerTask struct {
	source         PeerSource
	resolver       CountryResolver
	publisher      Publisher
	metrics        ChainMetrics
	latest         *Latest[[]model.PeerRecord]
	publishTimeout time.Duration
	logger         *zap.Logger

	// connected is only touched from Run, which the scheduler never overlaps.
	connected map[string]string
}

// Name implements Task.
func (t *PeerTask) Name() string { return PeerTaskName }

// Run implements Task.
func (t *PeerTask) Run(ctx context.Context) error {
	active, err := t.source.ActivePeers(ctx)
	if err != nil {
		return fmt.Errorf("read active peers: %w", err)
	}
	known, err := t.source.KnownPeers(ctx)
	if err != nil {
		return fmt.Errorf("read known peers: %w", err)
	}

	records := peers.Correlate(active, known, t.resolver)
	t.latest.Store(records)
	t.metrics.SetActivePeers(len(records))
	t.logChanges(active)

	if err := publish(ctx, t.publisher, t.publishTimeout, model.TopicPeers, records); err != nil {
		return fmt.Errorf("publish peers: %w", err)
	}
	return nil
}

func (t *PeerTask) logChanges(active []model.ActivePeer) {
	current := make(map[string]string, len(active))
	for _, p := range active {
		current[p.PeerID] = p.Host
		if _, ok := t.connected[p.PeerID]; !ok {
			t.logger.Info("peer added to pool", zap.String("peer", p.PeerID))
		}
	}
	for id, host := range t.connected {
		if _, ok := current[id]; !ok {
			t.logger.Info("peer disconnected", zap.String("peer", id), zap.String("host", host))
		}
	}
	t.connected = current
}
