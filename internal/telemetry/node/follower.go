package node

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-telemetry/pkg/workerpool"
)

// FollowerConfig tunes the block follower.
type FollowerConfig struct {
	// Prefill is the number of blocks loaded below the tip on start and the
	// largest gap fetched in one pass.
	Prefill      int
	Workers      int
	RPS          int
	PollInterval time.Duration
	FailureSleep time.Duration
	// Wake, when set, cuts the poll interval short, e.g. on a node block
	// notification.
	Wake <-chan struct{}
}

// Follower polls the node tip and delivers every new block to the sink in
// height order.
type Follower struct {
	logger       *zap.Logger
	source       BlockSource
	sink         BlockSink
	metrics      FollowerMetrics
	rl           ratelimit.Limiter
	sleep        func(context.Context, time.Duration) error
	prefill      uint64
	workers      int
	pollInterval time.Duration
	failureSleep time.Duration
	wake         <-chan struct{}

	// next is the first height not yet delivered, zero before the first sync.
	next uint64
}

// NewFollower builds a Follower with dependencies.
func NewFollower(source BlockSource, sink BlockSink, metrics FollowerMetrics, cfg FollowerConfig, logger *zap.Logger) (*Follower, error) {
	if source == nil || sink == nil {
		return nil, errors.New("block follower requires a source and a sink")
	}
	if metrics == nil {
		return nil, errors.New("block follower metrics is required")
	}
	if cfg.Prefill <= 0 {
		cfg.Prefill = defaultPrefill
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkerCount
	}
	if cfg.RPS <= 0 {
		cfg.RPS = defaultRPS
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = pollInterval
	}
	if cfg.FailureSleep <= 0 {
		cfg.FailureSleep = failureSleepDuration
	}

	return &Follower{
		logger:       logger.Named("sync"),
		source:       source,
		sink:         sink,
		metrics:      metrics,
		rl:           ratelimit.New(cfg.RPS),
		sleep:        clock.Sleeper(clock.New()),
		prefill:      uint64(cfg.Prefill),
		workers:      cfg.Workers,
		pollInterval: cfg.PollInterval,
		failureSleep: cfg.FailureSleep,
		wake:         cfg.Wake,
	}, nil
}

// Run follows the chain until the context is canceled.
func (f *Follower) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		started := time.Now()
		delivered, err := f.sync(ctx)
		f.metrics.ObserveSync(err, delivered, started)

		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			f.logger.Warn("block sync failed, backing off", zap.Error(err), zap.Duration("sleep", f.failureSleep))
			if err := f.sleep(ctx, f.failureSleep); err != nil {
				return err
			}
			continue
		}
		if err := f.waitPoll(ctx); err != nil {
			return err
		}
	}
}

// waitPoll sleeps for the poll interval or until a wake signal arrives.
func (f *Follower) waitPoll(ctx context.Context) error {
	if f.wake == nil {
		return f.sleep(ctx, f.pollInterval)
	}

	sleepCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- f.sleep(sleepCtx, f.pollInterval)
	}()

	select {
	case err := <-done:
		return err
	case <-f.wake:
		cancel()
		<-done
		return ctx.Err()
	}
}

// sync delivers blocks (next, tip] and returns how many were delivered.
func (f *Follower) sync(ctx context.Context) (int, error) {
	tip, err := f.source.TipHeight(ctx)
	if err != nil {
		return 0, err
	}

	if f.next > 0 && tip < f.next {
		return 0, nil
	}

	from := f.next
	if tip+1 > from+f.prefill {
		// older blocks would be evicted from the window right away
		from = tip + 1 - f.prefill
	}

	heights := make([]uint64, 0, tip-from+1)
	for h := from; h <= tip; h++ {
		heights = append(heights, h)
	}

	blocks, err := f.fetch(ctx, heights)
	if err != nil {
		return 0, err
	}

	for _, b := range blocks {
		f.sink.OnBlockArrived(b)
	}
	f.next = tip + 1
	f.metrics.SetTipHeight(tip)

	if len(blocks) == 1 {
		f.logger.Info("new block", zap.Uint64("height", tip), zap.String("hash", blocks[0].Hash))
	} else {
		f.logger.Info("blocks loaded", zap.Uint64("from", from), zap.Uint64("to", tip), zap.Int("count", len(blocks)))
	}
	return len(blocks), nil
}

func (f *Follower) fetch(ctx context.Context, heights []uint64) ([]model.Block, error) {
	return workerpool.Map(ctx, f.workers, heights, func(ctx context.Context, h uint64) (model.Block, error) {
		f.rl.Take()
		b, err := f.source.BlockAt(ctx, h)
		if err != nil {
			return model.Block{}, fmt.Errorf("fetch block %d: %w", h, err)
		}
		return b, nil
	})
}
