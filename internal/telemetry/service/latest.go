package service

import "sync/atomic"

// Latest holds the most recently published value of T. Store replaces the
// whole value; stored values must not be mutated afterwards.
type Latest[T any] struct {
	p atomic.Pointer[T]
}

// NewLatest creates a holder preloaded with initial.
func NewLatest[T any](initial T) *Latest[T] {
	l := &Latest[T]{}
	l.Store(initial)
	return l
}

// Load returns the current value without blocking.
func (l *Latest[T]) Load() T {
	if v := l.p.Load(); v != nil {
		return *v
	}
	var zero T
	return zero
}

// Store publishes v to all subsequent Load calls.
func (l *Latest[T]) Store(v T) {
	l.p.Store(&v)
}
