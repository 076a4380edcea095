// Package batcher buffers items from hot paths and hands them to a flush
// callback in batches.
package batcher

import (
	"context"
	"sync"
	"time"

	bclock "github.com/benbjohnson/clock"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Config sizes a Batcher.
type Config struct {
	// FlushSize triggers a flush once that many items are buffered.
	FlushSize int
	// QueueSize bounds the items waiting to be buffered, 2*FlushSize when zero.
	QueueSize int
	// FlushInterval flushes a partial batch.
	FlushInterval time.Duration
	// RPS limits flushes per second, zero means unlimited.
	RPS int
	// Clock drives the flush interval, the wall clock when nil.
	Clock bclock.Clock
}

// Batcher buffers items and flushes them either by size or interval.
type Batcher[T any] struct {
	flush         func(context.Context, []T) error
	queue         chan T
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	clock         bclock.Clock
	logger        *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher. flush must not retain the slice it is given.
func New[T any](cfg Config, flush func(context.Context, []T) error, logger *zap.Logger) *Batcher[T] {
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = cfg.FlushSize * 2
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	if cfg.Clock == nil {
		cfg.Clock = bclock.New()
	}
	rl := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		rl = ratelimit.New(cfg.RPS)
	}

	return &Batcher[T]{
		flush:         flush,
		queue:         make(chan T, cfg.QueueSize),
		flushSize:     cfg.FlushSize,
		flushInterval: cfg.FlushInterval,
		rl:            rl,
		clock:         cfg.Clock,
		logger:        logger,
		stop:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes everything still queued and waits for the loop to exit.
// It is safe to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// TryAdd queues an item without blocking. It reports false when the batcher
// is stopped or its queue is full.
func (b *Batcher[T]) TryAdd(item T) bool {
	select {
	case <-b.stop:
		return false
	default:
	}

	select {
	case b.queue <- item:
		return true
	default:
		return false
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := b.clock.Ticker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)
	flush := func() {
		if len(buf) == 0 {
			return
		}
		b.rl.Take()
		if err := b.flush(ctx, buf); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		}
		buf = buf[:0]
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			return

		case <-b.stop:
			buf = b.drain(buf)
			flush()
			return

		case item := <-b.queue:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}

// drain appends whatever is still queued so Stop does not lose items.
func (b *Batcher[T]) drain(buf []T) []T {
	for {
		select {
		case item := <-b.queue:
			buf = append(buf, item)
		default:
			return buf
		}
	}
}
