package vearchstore

import (
	"context"
	"time"

	"github.com/vearch-contrib/vearchstore/v1/observability"
)

// observerHook wraps an optional Observer so call sites stay nil-safe.
type observerHook struct {
	observer observability.Observer
}

// WithObserver sets the observer for this store and returns the store for
// method chaining. The observer receives one event per completed operation.
func (s *Store) WithObserver(observer observability.Observer) *Store {
	s.observer = observerHook{observer: observer}
	return s
}

// observe runs fn, times it, and reports the outcome to the observer when
// one is configured. The context is accepted for symmetry with the wrapped
// operations; the observer itself must not block.
func (s *Store) observe(_ context.Context, operation string, size int64, fn func() error) error {
	if s.observer.observer == nil {
		return fn()
	}

	start := time.Now()
	err := fn()

	s.observer.observer.ObserveOperation(observability.OperationContext{
		Component:   "vearchstore",
		Operation:   operation,
		Resource:    s.schema.SpaceName,
		SubResource: s.schema.DatabaseName,
		Duration:    time.Since(start),
		Error:       err,
		Size:        size,
	})
	return err
}
