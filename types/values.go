package types

import (
	"context"
	"errors"
	"sync"
)

// ErrFutureCancelled is returned by Future.Await once the future was cancelled
var ErrFutureCancelled = errors.New("future cancelled")

// OptionalValue is the resolved value of an OptionalOf type
type OptionalValue struct {
	Value   any
	Present bool
}

// Get returns the wrapped value and whether it is present
func (o OptionalValue) Get() (any, bool) {
	return o.Value, o.Present
}

// OrElse returns the wrapped value or fallback when empty
func (o OptionalValue) OrElse(fallback any) any {
	if !o.Present {
		return fallback
	}

	return o.Value
}

// Future is the pending result of an AsyncOf type
type Future struct {
	done      chan struct{}
	once      sync.Once
	mu        sync.Mutex
	value     any
	err       error
	cancelled bool
}

// NewFuture creates an unfulfilled future
func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Complete fulfils the future. Only the first call to Complete or Cancel has an effect.
func (f *Future) Complete(value any, err error) {
	f.once.Do(func() {
		f.mu.Lock()
		f.value, f.err = value, err
		f.mu.Unlock()
		close(f.done)
	})
}

// Cancel fails the future with ErrFutureCancelled and reports whether it was still pending
func (f *Future) Cancel() bool {
	cancelled := false
	f.once.Do(func() {
		f.mu.Lock()
		f.err = ErrFutureCancelled
		f.cancelled = true
		f.mu.Unlock()
		cancelled = true
		close(f.done)
	})

	return cancelled
}

// Done reports whether the future is fulfilled or cancelled
func (f *Future) Done() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Cancelled reports whether the future was cancelled before completing
func (f *Future) Cancelled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cancelled
}

// Await blocks until the future completes or ctx is done
func (f *Future) Await(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.value, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
