package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/model"
)

// MachineTask samples host counters and publishes a MachineSnapshot.
type MachineTask struct {
	sampler        MachineSampler
	publisher      Publisher
	latest         *Latest[model.MachineSnapshot]
	publishTimeout time.Duration
	logger         *zap.Logger
}

// Name implements Task.
func (t *MachineTask) Name() string { return MachineTaskName }

// Run implements Task.
func (t *MachineTask) Run(ctx context.Context) error {
	snap, err := t.sampler.Sample(ctx)
	if err != nil {
		return fmt.Errorf("sample host counters: %w", err)
	}

	t.latest.Store(snap)
	t.logger.Debug("machine snapshot",
		zap.Int("cpu", snap.CPULoadPercent),
		zap.Uint64("memory_free", snap.FreeMemoryBytes),
		zap.Uint64("disk_free", snap.FreeDiskBytes))

	if err := publish(ctx, t.publisher, t.publishTimeout, model.TopicMachineInfo, snap); err != nil {
		return fmt.Errorf("publish machine snapshot: %w", err)
	}
	return nil
}
