package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/clock"
)

// Schedule binds a task to its interval.
type Schedule struct {
	Task     Task
	Interval time.Duration
}

// Scheduler runs every task on its own ticker. Tasks share nothing and a
// failing or slow task never delays the others.
type Scheduler struct {
	clock     clock.Clock
	schedules []Schedule
	metrics   SchedulerMetrics
	status    StatusReporter
	logger    *zap.Logger
}

// NewScheduler builds a Scheduler. status may be nil.
func NewScheduler(clk clock.Clock, metrics SchedulerMetrics, status StatusReporter, logger *zap.Logger, schedules ...Schedule) (*Scheduler, error) {
	if metrics == nil {
		return nil, errors.New("scheduler metrics is required")
	}
	if clk == nil {
		clk = clock.New()
	}
	for _, s := range schedules {
		if s.Task == nil {
			return nil, errors.New("scheduled task is nil")
		}
		if s.Interval <= 0 {
			return nil, fmt.Errorf("task %s: interval must be positive, got %s", s.Task.Name(), s.Interval)
		}
	}

	return &Scheduler{
		clock:     clk,
		schedules: schedules,
		metrics:   metrics,
		status:    status,
		logger:    logger.Named("general"),
	}, nil
}

// Run blocks until ctx is canceled and every task loop has returned.
func (s *Scheduler) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	for _, sch := range s.schedules {
		wg.Add(1)
		go func(sch Schedule) {
			defer wg.Done()
			s.loop(ctx, sch)
		}(sch)
	}

	s.logger.Info("scheduler started", zap.Int("tasks", len(s.schedules)))
	wg.Wait()
	s.logger.Info("scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) loop(ctx context.Context, sch Schedule) {
	// ticker first so the immediate run does not shift the schedule
	ticker := s.clock.Ticker(sch.Interval)
	defer ticker.Stop()

	s.runOnce(ctx, sch.Task)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			s.runOnce(ctx, sch.Task)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context, task Task) {
	started := time.Now()
	err := s.safeRun(ctx, task)
	s.metrics.ObserveTask(task.Name(), err, started)
	if s.status != nil {
		s.status.SetServing(task.Name(), err == nil)
	}
	if err != nil && ctx.Err() == nil {
		s.logger.Warn("task failed, waiting for next tick", zap.String("task", task.Name()), zap.Error(err))
	}
}

func (s *Scheduler) safeRun(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task %s panicked: %v", task.Name(), r)
		}
	}()
	return task.Run(ctx)
}
