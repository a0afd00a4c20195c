package pubsub

import "errors"

var (
	// ErrMustBeEmpty is returned when an operation like fill is made against
	// a non-empty slot.
	ErrMustBeEmpty = errors.New("pubsub: slot must be empty for this operation")

	// ErrMustBeFilled is returned when an operation like lock is made against
	// a non-filled slot.
	ErrMustBeFilled = errors.New("pubsub: slot must be filled for this operation")

	// ErrMustBeLocked is returned when an operation like ack/nack is made
	// against a non-locked slot.
	ErrMustBeLocked = errors.New("pubsub: slot must be locked for this operation")

	// ErrInvalidOrExpiredLease is returned when attempting to ack/nack with a
	// lease id that does not match the slot's current lease.
	ErrInvalidOrExpiredLease = errors.New("pubsub: lease is invalid, missing, or expired")

	// ErrQueueFull is returned by bounded queues that have no empty slot left.
	ErrQueueFull = errors.New("pubsub: queue is full and unable to accept new messages")

	// ErrIndexOutOfRange is returned when an ack/nack addresses a slot index
	// past the end of the queue.
	ErrIndexOutOfRange = errors.New("pubsub: slot index is out of range")

	// ErrNoSubscriptions is returned when publishing to a topic that has no
	// subscriptions to deliver to.
	ErrNoSubscriptions = errors.New("pubsub: topic has no subscriptions")
)
