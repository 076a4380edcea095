// Package service assembles telemetry snapshots on independent timers and
// serves the most recent ones.
package service

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/model"
)

// Config carries task intervals and version strings.
type Config struct {
	NodeLibraryVersion string
	AppVersion         string
	MachineInterval    time.Duration
	BlockchainInterval time.Duration
	PeerInterval       time.Duration
	PublishTimeout     time.Duration
}

// Dependencies are the collaborators the snapshot tasks read from.
type Dependencies struct {
	Sampler   MachineSampler
	Chain     ChainReader
	Window    BlockWindow
	Peers     PeerSource
	Resolver  CountryResolver
	Publisher Publisher
	Metrics   ChainMetrics
}

// Service owns the latest snapshots and the tasks producing them.
type Service struct {
	initial    *Latest[model.InitialInfo]
	machine    *Latest[model.MachineSnapshot]
	blockchain *Latest[model.BlockchainSnapshot]
	peers      *Latest[[]model.PeerRecord]
	schedules  []Schedule
}

// New wires the machine, blockchain and peer tasks.
func New(cfg Config, deps Dependencies, logger *zap.Logger) (*Service, error) {
	if deps.Sampler == nil || deps.Chain == nil || deps.Window == nil || deps.Peers == nil {
		return nil, errors.New("telemetry service: missing data source")
	}
	if deps.Publisher == nil {
		return nil, errors.New("telemetry service: publisher is required")
	}
	if deps.Metrics == nil {
		return nil, errors.New("telemetry service: chain metrics is required")
	}
	if cfg.MachineInterval <= 0 {
		cfg.MachineInterval = defaultMachineInterval
	}
	if cfg.BlockchainInterval <= 0 {
		cfg.BlockchainInterval = defaultBlockchainInterval
	}
	if cfg.PeerInterval <= 0 {
		cfg.PeerInterval = defaultPeerInterval
	}
	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = defaultPublishTimeout
	}

	s := &Service{
		initial: NewLatest(model.InitialInfo{
			NodeLibraryVersion: cfg.NodeLibraryVersion,
			AppVersion:         cfg.AppVersion,
		}),
		machine:    NewLatest(model.MachineSnapshot{}),
		blockchain: NewLatest(model.BlockchainSnapshot{}),
		peers:      NewLatest([]model.PeerRecord{}),
	}

	s.schedules = []Schedule{
		{
			Interval: cfg.MachineInterval,
			Task: &MachineTask{
				sampler:        deps.Sampler,
				publisher:      deps.Publisher,
				latest:         s.machine,
				publishTimeout: cfg.PublishTimeout,
				logger:         logger.Named("general"),
			},
		},
		{
			Interval: cfg.BlockchainInterval,
			Task: &BlockchainTask{
				chain:          deps.Chain,
				window:         deps.Window,
				publisher:      deps.Publisher,
				metrics:        deps.Metrics,
				latest:         s.blockchain,
				publishTimeout: cfg.PublishTimeout,
				logger:         logger.Named("chain"),
			},
		},
		{
			Interval: cfg.PeerInterval,
			Task: &PeerTask{
				source:         deps.Peers,
				resolver:       deps.Resolver,
				publisher:      deps.Publisher,
				metrics:        deps.Metrics,
				latest:         s.peers,
				publishTimeout: cfg.PublishTimeout,
				logger:         logger.Named("network"),
			},
		},
	}

	logger.Named("general").Info("telemetry initialized",
		zap.String("node_library_version", cfg.NodeLibraryVersion),
		zap.String("app_version", cfg.AppVersion))
	return s, nil
}

// Schedules returns the task schedules for a Scheduler.
func (s *Service) Schedules() []Schedule {
	out := make([]Schedule, len(s.schedules))
	copy(out, s.schedules)
	return out
}

// InitialInfo returns the versions captured at startup.
func (s *Service) InitialInfo() model.InitialInfo {
	return s.initial.Load()
}

// MachineInfo returns the last published machine snapshot.
func (s *Service) MachineInfo() model.MachineSnapshot {
	return s.machine.Load()
}

// BlockchainInfo returns the last published blockchain snapshot.
func (s *Service) BlockchainInfo() model.BlockchainSnapshot {
	return s.blockchain.Load()
}

// Peers returns the last published peer records.
func (s *Service) Peers() []model.PeerRecord {
	return s.peers.Load()
}
