package pubsub

import (
	"context"

	"github.com/google/uuid"
)

// Stream adapts a queue into a lazy sequence of leased messages for one
// consumer. The adapter's id is stable across polls, so repeated parks
// replace the prior wake handle instead of occupying multiple slots in the
// queue's wake order. A Stream must not be shared between goroutines.
type Stream[T any] struct {
	id    uuid.UUID
	queue *Queue[T]
	ready chan struct{}
}

// NewStream creates a stream adapter over the supplied queue.
func NewStream[T any](queue *Queue[T]) *Stream[T] {
	return &Stream[T]{
		id:    uuid.New(),
		queue: queue,
		ready: make(chan struct{}, 1),
	}
}

// Poll returns the next deliverable message if one exists. Otherwise the
// stream's wake handle is registered with the queue and ok=false is
// returned; the caller should wait for the wake before polling again.
func (s *Stream[T]) Poll() (LeaseTag, int, T, bool) {
	return s.queue.poll(s.id, s.wake)
}

// wake is the non-blocking wake primitive handed to the queue. The buffered
// channel coalesces redundant wakes.
func (s *Stream[T]) wake() {
	select {
	case s.ready <- struct{}{}:
	default:
	}
}

// Next blocks until a message is deliverable or the context is cancelled.
func (s *Stream[T]) Next(ctx context.Context) (LeaseTag, int, T, error) {
	for {
		if tag, idx, value, ok := s.Poll(); ok {
			return tag, idx, value, nil
		}
		select {
		case <-ctx.Done():
			var zero T
			return LeaseTag{}, 0, zero, ctx.Err()
		case <-s.ready:
		}
	}
}
