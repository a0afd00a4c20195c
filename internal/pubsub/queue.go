// Package pubsub implements the in-memory message substrate of the broker:
// per-subscription slot queues with leased at-least-once delivery, the FIFO
// waker registry that turns a queue into a lazy push source for concurrent
// stream consumers, and the topic/registry layers that compose them.
package pubsub

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is the lease ttl applied to queues that do not configure one.
const DefaultTTL = 10 * time.Second

// Unbounded disables the slot bound on a queue.
const Unbounded = 0

// QueueConfig holds the construction options for a Queue. The zero value
// yields an unbounded queue with no pre-allocated capacity and the default
// lease ttl.
type QueueConfig struct {
	// SlotCapacity is the initial capacity of the backing slot array.
	SlotCapacity int
	// WakerCapacity is the initial capacity of the waker registry.
	WakerCapacity int
	// TTL is the lease ttl for locked slots. Zero means DefaultTTL.
	TTL time.Duration
	// MaxSlots bounds the slot array when positive; pushes beyond the bound
	// fail with ErrQueueFull. Unbounded by default.
	MaxSlots int
}

// Queue is an ordered collection of slots plus a waker registry. A single
// exclusive lock covers both, so callers never observe the queue
// mid-transition and a consumer can atomically poll-or-park. Queue handles
// are shared: pass the pointer around freely.
type Queue[T any] struct {
	ttl      time.Duration
	maxSlots int

	mu    sync.Mutex
	slots []slot[T]
	waker *Waker
}

// NewQueue creates a queue from the supplied config.
func NewQueue[T any](cfg QueueConfig) *Queue[T] {
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Queue[T]{
		ttl:      ttl,
		maxSlots: cfg.MaxSlots,
		slots:    make([]slot[T], 0, cfg.SlotCapacity),
		waker:    NewWaker(cfg.WakerCapacity),
	}
}

// Push fills the first empty slot with the supplied message, appending a new
// slot when none is free. Insertion order is therefore the order of first
// publish. On success the oldest parked consumer, if any, is woken.
func (q *Queue[T]) Push(msg T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	idx := -1
	for i := range q.slots {
		if q.slots[i].state == slotEmpty {
			idx = i
			break
		}
	}
	if idx < 0 {
		if q.maxSlots > 0 && len(q.slots) >= q.maxSlots {
			return ErrQueueFull
		}
		q.slots = append(q.slots, slot[T]{})
		idx = len(q.slots) - 1
	}

	if err := q.slots[idx].fill(msg); err != nil {
		return err
	}

	m := metrics()
	m.IncReceived()
	m.AddPending(1)

	// Wake the oldest parked consumer so it can pick the message up on its
	// next poll. Wake handles are non-blocking, so holding the lock here is
	// safe.
	q.waker.Wake()
	return nil
}

// Next locks and returns the earliest deliverable message as a
// (tag, index, value) tuple. Locked slots whose lease has expired are lazily
// promoted back to filled (redelivery) before being considered. Returns
// ok=false when nothing is deliverable.
func (q *Queue[T]) Next() (LeaseTag, int, T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.next()
}

func (q *Queue[T]) next() (LeaseTag, int, T, bool) {
	m := metrics()
	for i := range q.slots {
		s := &q.slots[i]
		if s.expired() {
			s.expire()
			m.IncRedelivered()
			m.AddInFlight(-1)
			m.AddPending(1)
		}
		if s.state != slotFilled {
			continue
		}
		tag, value, err := s.lock(q.ttl)
		if err != nil {
			continue
		}
		m.AddPending(-1)
		m.AddInFlight(1)
		return tag, i, value, true
	}
	var zero T
	return LeaseTag{}, 0, zero, false
}

// poll is the atomic poll-or-park used by stream adapters: either the next
// deliverable message is returned, or the wake handle is registered under the
// adapter's id before the lock is released, so a concurrent push cannot slip
// between the scan and the registration.
func (q *Queue[T]) poll(id uuid.UUID, wake func()) (LeaseTag, int, T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if tag, idx, value, ok := q.next(); ok {
		return tag, idx, value, true
	}
	q.waker.Register(id, wake)
	var zero T
	return LeaseTag{}, 0, zero, false
}

// Ack acknowledges the message at the given slot index, freeing the slot.
// The lease id must match the slot's current lease.
func (q *Queue[T]) Ack(leaseID uint64, index int) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if index < 0 || index >= len(q.slots) {
		return ErrIndexOutOfRange
	}
	if err := q.slots[index].ack(leaseID); err != nil {
		return err
	}
	m := metrics()
	m.IncAcked()
	m.AddInFlight(-1)
	return nil
}

// Nack negatively acknowledges the message at the given slot index,
// returning it to the backlog for redelivery. The lease id must match the
// slot's current lease. A waiting consumer is woken since the slot is
// deliverable again.
func (q *Queue[T]) Nack(leaseID uint64, index int) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if index < 0 || index >= len(q.slots) {
		return ErrIndexOutOfRange
	}
	if err := q.slots[index].nack(leaseID); err != nil {
		return err
	}
	m := metrics()
	m.IncNacked()
	m.AddInFlight(-1)
	m.AddPending(1)
	q.waker.Wake()
	return nil
}

// RegisterWaker stores the wake handle in the queue's waker registry under
// the supplied consumer id.
func (q *Queue[T]) RegisterWaker(id uuid.UUID, wake func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.waker.Register(id, wake)
}
