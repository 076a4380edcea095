// Package host samples resource counters of the machine running the service.
package host

import (
	"context"
	"fmt"
	"os"

	"github.com/docker/go-units"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-telemetry/pkg/safe"
)

// Probe reads CPU, memory and disk counters through gopsutil.
type Probe struct {
	logger   *zap.Logger
	diskPath string

	cpuPercent func(ctx context.Context) ([]float64, error)
	memory     func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	diskUsage  func(ctx context.Context, path string) (*disk.UsageStat, error)
}

// NewProbe builds a Probe reporting free space of the volume holding diskPath.
// An empty diskPath means the working directory.
func NewProbe(diskPath string, logger *zap.Logger) *Probe {
	if diskPath == "" {
		if wd, err := os.Getwd(); err == nil {
			diskPath = wd
		} else {
			diskPath = "."
		}
	}
	return &Probe{
		logger:   logger.Named("host"),
		diskPath: diskPath,
		cpuPercent: func(ctx context.Context) ([]float64, error) {
			// zero interval compares against the previous call
			return cpu.PercentWithContext(ctx, 0, false)
		},
		memory:    mem.VirtualMemoryWithContext,
		diskUsage: disk.UsageWithContext,
	}
}

// Sample reads all counters. Any unreadable counter fails the whole sample.
func (p *Probe) Sample(ctx context.Context) (model.MachineSnapshot, error) {
	load, err := p.cpuPercent(ctx)
	if err != nil {
		return model.MachineSnapshot{}, fmt.Errorf("read cpu load: %w", err)
	}
	if len(load) == 0 {
		return model.MachineSnapshot{}, fmt.Errorf("read cpu load: no samples")
	}

	vm, err := p.memory(ctx)
	if err != nil {
		return model.MachineSnapshot{}, fmt.Errorf("read memory: %w", err)
	}

	usage, err := p.diskUsage(ctx, p.diskPath)
	if err != nil {
		return model.MachineSnapshot{}, fmt.Errorf("read disk usage of %s: %w", p.diskPath, err)
	}
	p.logger.Debug("disk usage",
		zap.String("path", usage.Path),
		zap.String("available", units.BytesSize(float64(usage.Free))),
		zap.String("total", units.BytesSize(float64(usage.Total))))

	return model.MachineSnapshot{
		CPULoadPercent:   safe.Int(load[0], 0, 100),
		FreeMemoryBytes:  vm.Available,
		TotalMemoryBytes: vm.Total,
		FreeDiskBytes:    usage.Free,
	}, nil
}
