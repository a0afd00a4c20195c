package store

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	ttl     time.Duration
	created time.Time
	payload []byte
}

func (e *entry) expired() bool {
	return e.ttl > 0 && time.Since(e.created) >= e.ttl
}

// HashStore is an in-memory map-backed Store. Expired entries are reaped
// lazily when read.
type HashStore struct {
	mu   sync.RWMutex
	data map[string]*entry
}

// NewHashStore creates an empty hash store.
func NewHashStore() *HashStore {
	return &HashStore{
		data: make(map[string]*entry, 1024),
	}
}

func (h *HashStore) Get(_ context.Context, key []byte) ([]byte, bool, error) {
	h.mu.RLock()
	e, ok := h.data[string(key)]
	h.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if e.expired() {
		h.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have replaced
		// the entry since the read lock was dropped.
		if cur, ok := h.data[string(key)]; ok && cur == e {
			delete(h.data, string(key))
		}
		h.mu.Unlock()
		return nil, false, nil
	}
	cp := make([]byte, len(e.payload))
	copy(cp, e.payload)
	return cp, true, nil
}

func (h *HashStore) Set(_ context.Context, key, value []byte, ttl time.Duration) ([]byte, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	old, ok := h.data[string(key)]
	h.data[string(key)] = &entry{
		ttl:     ttl,
		created: time.Now(),
		payload: value,
	}
	if !ok || old.expired() {
		return nil, false, nil
	}
	return old.payload, true, nil
}

func (h *HashStore) Delete(_ context.Context, key []byte) ([]byte, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	old, ok := h.data[string(key)]
	if !ok {
		return nil, false, nil
	}
	delete(h.data, string(key))
	if old.expired() {
		return nil, false, nil
	}
	return old.payload, true, nil
}
