// Package resource loads what the puzzle needs outside the core: theme and
// number faces, and the pictures shown on the back of the tiles. Loads run
// in goroutines and publish completion through Loaded, which the controller
// polls once per tick.
package resource

import (
	"context"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// Async is a value loaded in the background.
// It implements controller.Readiness.
type Async[T any] struct {
	name   string
	loaded atomic.Bool
	done   chan struct{}
	value  T
	err    error
}

// Load starts fn in a new goroutine. A failed load still counts as loaded;
// callers check Err or Value before using the result.
func Load[T any](ctx context.Context, name string, logger *log.Logger, fn func(context.Context) (T, error)) *Async[T] {
	a := &Async[T]{name: name, done: make(chan struct{})}
	go func() {
		defer close(a.done)
		v, err := fn(ctx)
		if err != nil {
			if logger != nil {
				logger.Warn("resource failed to load", "resource", name, "error", err)
			}
			a.err = err
		} else {
			a.value = v
			if logger != nil {
				logger.Debug("resource loaded", "resource", name)
			}
		}
		a.loaded.Store(true)
	}()
	return a
}

// Ready returns an already loaded value.
func Ready[T any](name string, v T) *Async[T] {
	a := &Async[T]{name: name, done: make(chan struct{}), value: v}
	close(a.done)
	a.loaded.Store(true)
	return a
}

// Name returns the resource name used in logs.
func (a *Async[T]) Name() string {
	return a.name
}

// Loaded reports whether the load has finished. It never blocks.
func (a *Async[T]) Loaded() bool {
	return a.loaded.Load()
}

// Value returns the loaded value and error. Only meaningful once Loaded is true.
func (a *Async[T]) Value() (T, error) {
	if !a.loaded.Load() {
		var zero T
		return zero, nil
	}
	return a.value, a.err
}

// Err returns the load error, if any.
func (a *Async[T]) Err() error {
	_, err := a.Value()
	return err
}

// Wait blocks until the load finishes or ctx is done.
func (a *Async[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-a.done:
		return a.value, a.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
