package queue

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// ErrInvalidCapacity is returned when a queue is constructed with a
// non-positive capacity.
var ErrInvalidCapacity = errors.New("queue capacity must be > 0")

// Queue is a capacity-bounded single-producer single-consumer FIFO.
// Capacity is fixed at construction. Producers use [Queue.TryPush], which is
// safe from callback context; the consumer blocks in [Queue.Pop] or
// [Queue.PopTimeout]. Element order is preserved.
type Queue[T any] struct {
	ch      chan T
	dropped atomic.Uint64
}

// New creates a queue with the given fixed capacity.
func New[T any](capacity int) (*Queue[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Queue[T]{ch: make(chan T, capacity)}, nil
}

// TryPush enqueues v without blocking. When the queue is full the element is
// discarded, the dropped counter increments, and TryPush returns false.
func (q *Queue[T]) TryPush(v T) bool {
	select {
	case q.ch <- v:
		return true
	default:
		q.dropped.Add(1)
		return false
	}
}

// Pop blocks until an element is available or ctx is done. The second return
// value is false only when ctx ended before an element arrived.
func (q *Queue[T]) Pop(ctx context.Context) (T, bool) {
	select {
	case v := <-q.ch:
		return v, true
	case <-ctx.Done():
		var zero T
		return zero, false
	}
}

// PopTimeout blocks for at most d. The second return value is false when the
// wait timed out or ctx ended first.
func (q *Queue[T]) PopTimeout(ctx context.Context, d time.Duration) (T, bool) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case v := <-q.ch:
		return v, true
	case <-timer.C:
		var zero T
		return zero, false
	case <-ctx.Done():
		var zero T
		return zero, false
	}
}

// Len returns the number of buffered elements.
func (q *Queue[T]) Len() int {
	return len(q.ch)
}

// Cap returns the fixed capacity.
func (q *Queue[T]) Cap() int {
	return cap(q.ch)
}

// Dropped returns the number of elements discarded by TryPush since
// construction.
func (q *Queue[T]) Dropped() uint64 {
	return q.dropped.Load()
}
