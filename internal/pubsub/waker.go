package pubsub

import "github.com/google/uuid"

// Waker tracks parked stream consumers waiting for new messages. Wake events
// are handed out round robin in FIFO registration order so that N pushes
// eventually wake up to N distinct consumers. The Waker is not synchronised;
// the owning queue's lock covers it.
type Waker struct {
	wakers map[uuid.UUID]func()
	ids    []uuid.UUID
}

// NewWaker creates a waker with a predefined initial capacity.
func NewWaker(capacity int) *Waker {
	return &Waker{
		wakers: make(map[uuid.UUID]func(), capacity),
		ids:    make([]uuid.UUID, 0, capacity),
	}
}

// Register stores the given id/wake combination. If the id is already
// registered the original handle is overwritten, but the id keeps its
// existing position in the wake order so a re-parking consumer cannot
// occupy more than one slot.
func (w *Waker) Register(id uuid.UUID, wake func()) {
	if _, ok := w.wakers[id]; !ok {
		w.ids = append(w.ids, id)
	}
	w.wakers[id] = wake
}

// Wake invokes and removes the oldest registered handle, reporting whether
// one existed. Handles must be non-blocking; they are invoked while the
// owning queue's lock is held.
func (w *Waker) Wake() bool {
	if len(w.ids) == 0 {
		return false
	}
	id := w.ids[0]
	w.ids = w.ids[1:]
	wake, ok := w.wakers[id]
	if !ok {
		return false
	}
	delete(w.wakers, id)
	wake()
	return true
}

// Len returns the number of currently parked consumers.
func (w *Waker) Len() int {
	return len(w.wakers)
}
