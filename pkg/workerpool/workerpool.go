// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Process runs fn over items with at most workerCount goroutines. The first
// error cancels the remaining work and is returned.
func Process[T any](ctx context.Context, workerCount int, items []T, fn func(context.Context, T) error) error {
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
		wg       sync.WaitGroup
	)
	tasks := make(chan T)
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range tasks {
				if ctx.Err() != nil {
					continue
				}
				if err := fn(ctx, item); err != nil {
					once.Do(func() {
						firstErr = err
						cancel()
					})
				}
			}
		}()
	}

feed:
	for _, item := range items {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- item:
		}
	}
	close(tasks)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

// Map is Process collecting one result per item, in item order.
func Map[T, R any](ctx context.Context, workerCount int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	type slot struct {
		idx  int
		item T
	}
	slots := make([]slot, len(items))
	for i, item := range items {
		slots[i] = slot{idx: i, item: item}
	}

	out := make([]R, len(items))
	err := Process(ctx, workerCount, slots, func(ctx context.Context, s slot) error {
		r, err := fn(ctx, s.item)
		if err != nil {
			return err
		}
		out[s.idx] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
