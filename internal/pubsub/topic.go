package pubsub

import (
	"sync"
	"time"
)

// Topic is a named fan-out point owning a set of subscriptions keyed by
// name. Publishing enqueues the message into every subscription's queue;
// each subscription keeps an independent backlog, lease space, and ack
// state. Messages are treated as immutable once published.
type Topic[T any] struct {
	// Created is when this topic was created.
	Created time.Time
	// Updated is when this topic was last updated; zero if never.
	Updated time.Time

	qcfg QueueConfig

	mu   sync.RWMutex
	subs map[string]*Subscription[T]
}

// NewTopic creates a topic whose subscriptions' queues are built from the
// supplied config.
func NewTopic[T any](qcfg QueueConfig) *Topic[T] {
	return &Topic[T]{
		Created: time.Now(),
		qcfg:    qcfg,
		subs:    make(map[string]*Subscription[T]),
	}
}

// CreateSubscription creates a subscription within this topic, returning the
// existing one if the name is already taken.
func (t *Topic[T]) CreateSubscription(name string) *Subscription[T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	if sub, ok := t.subs[name]; ok {
		return sub
	}
	sub := NewSubscription(NewQueue[T](t.qcfg))
	t.subs[name] = sub
	return sub
}

// Subscription retrieves the named subscription if it exists.
func (t *Topic[T]) Subscription(name string) (*Subscription[T], bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	sub, ok := t.subs[name]
	return sub, ok
}

// RemoveSubscription removes and returns the named subscription if it
// exists.
func (t *Topic[T]) RemoveSubscription(name string) (*Subscription[T], bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	sub, ok := t.subs[name]
	if ok {
		delete(t.subs, name)
	}
	return sub, ok
}

// Range calls fn for each subscription under the read lock until fn returns
// false. fn must not mutate the topic.
func (t *Topic[T]) Range(fn func(name string, sub *Subscription[T]) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for name, sub := range t.subs {
		if !fn(name, sub) {
			return
		}
	}
}

// Publish enqueues the message into every subscription's queue. Delivery is
// best effort: every subscription is attempted, and the first push error is
// returned after the full iteration. Publishing to a topic with no
// subscriptions fails with ErrNoSubscriptions.
func (t *Topic[T]) Publish(msg T) error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.subs) == 0 {
		return ErrNoSubscriptions
	}
	var first error
	for _, sub := range t.subs {
		if err := sub.Queue.Push(msg); err != nil && first == nil {
			first = err
		}
	}
	return first
}
