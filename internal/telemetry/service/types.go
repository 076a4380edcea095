package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Task interface {
		Name() string
		Run(ctx context.Context) error
	}

	MachineSampler interface {
		Sample(ctx context.Context) (model.MachineSnapshot, error)
	}

	ChainReader interface {
		BestBlock(ctx context.Context) (model.Block, error)
	}

	BlockWindow interface {
		Snapshot() []model.Block
	}

	PeerSource interface {
		ActivePeers(ctx context.Context) ([]model.ActivePeer, error)
		KnownPeers(ctx context.Context) ([]model.KnownPeer, error)
	}

	CountryResolver interface {
		Resolve(ip string) string
	}

	Publisher interface {
		Publish(ctx context.Context, topic model.Topic, payload any) error
	}

	StatusReporter interface {
		SetServing(task string, serving bool)
	}

	SchedulerMetrics interface {
		ObserveTask(task string, err error, started time.Time)
	}

	ChainMetrics interface {
		ObserveEstimate(windowSize int, hashRate uint64, err error)
		SetActivePeers(n int)
	}
)
