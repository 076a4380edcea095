// Package logbridge republishes selected log entries as human-readable lines
// on the system log topic.
package logbridge

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-telemetry/pkg/batcher"
)

// DefaultChannels are the logger names forwarded when none are configured.
var DefaultChannels = []string{"chain", "sync", "network", "consensus", "general"}

const (
	queueSize      = 256
	flushInterval  = 200 * time.Millisecond
	flushRPS       = 50
	publishTimeout = 2 * time.Second
)

// Config selects which entries are forwarded.
type Config struct {
	Channels []string
	MinLevel zapcore.Level
}

// Bridge is a zapcore.Core forwarding entries of the configured channels at
// or above MinLevel. Writes never block and never fail; lines that cannot be
// queued are dropped.
type Bridge struct {
	*state
	fields []zapcore.Field
}

type state struct {
	channels  []string
	level     zapcore.Level
	publisher Publisher
	metrics   Metrics
	queue     *batcher.Batcher[string]
	closed    atomic.Bool
}

// New builds a Bridge. logger must not itself be wrapped by the bridge.
func New(publisher Publisher, metrics Metrics, cfg Config, logger *zap.Logger) *Bridge {
	channels := cfg.Channels
	if len(channels) == 0 {
		channels = DefaultChannels
	}

	s := &state{
		channels:  channels,
		level:     cfg.MinLevel,
		publisher: publisher,
		metrics:   metrics,
	}
	s.queue = batcher.New(batcher.Config{
		FlushSize:     queueSize / 2,
		QueueSize:     queueSize,
		FlushInterval: flushInterval,
		RPS:           flushRPS,
	}, s.flush, logger.Named("logbridge"))

	return &Bridge{state: s}
}

// Start begins delivering queued lines.
func (b *Bridge) Start(ctx context.Context) {
	b.queue.Start(ctx)
}

// Close stops forwarding new entries and delivers what is already queued.
func (b *Bridge) Close() {
	if b.closed.Swap(true) {
		return
	}
	b.queue.Stop()
}

// Enabled implements zapcore.LevelEnabler.
func (b *Bridge) Enabled(lvl zapcore.Level) bool {
	return !b.closed.Load() && lvl >= b.level
}

// With implements zapcore.Core.
func (b *Bridge) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(b.fields)+len(fields))
	merged = append(merged, b.fields...)
	merged = append(merged, fields...)
	return &Bridge{state: b.state, fields: merged}
}

// Check implements zapcore.Core.
func (b *Bridge) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !b.Enabled(ent.Level) {
		return ce
	}
	if _, ok := b.channelOf(ent.LoggerName); !ok {
		return ce
	}
	return ce.AddCore(ent, b)
}

// Write implements zapcore.Core. It recovers from formatting panics so the
// primary log output is never interrupted.
func (b *Bridge) Write(ent zapcore.Entry, fields []zapcore.Field) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.dropped()
		}
	}()

	channel, ok := b.channelOf(ent.LoggerName)
	if !ok || b.closed.Load() {
		return nil
	}

	all := fields
	if len(b.fields) > 0 {
		all = make([]zapcore.Field, 0, len(b.fields)+len(fields))
		all = append(all, b.fields...)
		all = append(all, fields...)
	}

	if !b.queue.TryAdd(formatLine(ent, all)) {
		b.dropped()
		return nil
	}
	if b.metrics != nil {
		b.metrics.ObserveLine(channel)
	}
	return nil
}

// Sync implements zapcore.Core.
func (b *Bridge) Sync() error {
	return nil
}

// channelOf matches name against the configured channels: a logger belongs to
// a channel when its name equals it or is nested below it.
func (s *state) channelOf(name string) (string, bool) {
	for _, ch := range s.channels {
		if name == ch || strings.HasPrefix(name, ch+".") {
			return ch, true
		}
	}
	return "", false
}

func (s *state) dropped() {
	if s.metrics != nil {
		s.metrics.ObserveDropped()
	}
}

func (s *state) flush(ctx context.Context, lines []string) error {
	var firstErr error
	for _, line := range lines {
		pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		err := s.publisher.Publish(pctx, model.TopicSystemLog, line)
		cancel()
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
