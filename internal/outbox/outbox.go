// Package outbox holds side effects that must only happen once the
// request's database transaction has been committed.
package outbox

import (
	"context"
	"sync"
)

// Publish sends one deferred side effect. It receives the context of Flush.
type Publish func(ctx context.Context)

// Queue collects Publish calls for a single request.
type Queue struct {
	mu      sync.Mutex
	pending []Publish
}

type queueKey struct{}

// WithQueue returns a child context carrying a fresh Queue.
func WithQueue(ctx context.Context) (context.Context, *Queue) {
	q := &Queue{}
	return context.WithValue(ctx, queueKey{}, q), q
}

// FromContext returns the Queue bound to ctx, or nil.
func FromContext(ctx context.Context) *Queue {
	q, _ := ctx.Value(queueKey{}).(*Queue)
	return q
}

// Add defers fn until Flush.
func (q *Queue) Add(fn Publish) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, fn)
}

// Len returns the number of queued calls.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Flush runs the queued calls in the order they were added and empties the queue.
func (q *Queue) Flush(ctx context.Context) {
	for _, fn := range q.take() {
		fn(ctx)
	}
}

// Discard drops the queued calls without running them and returns how many were dropped.
func (q *Queue) Discard() int {
	return len(q.take())
}

func (q *Queue) take() []Publish {
	q.mu.Lock()
	defer q.mu.Unlock()
	pending := q.pending
	q.pending = nil
	return pending
}
