// Package store defines the backing store for the KV service: a key-value
// store over opaque byte keys and values with per-entry TTLs. The default
// implementation is an in-memory map; the interface leaves room for other
// backends.
package store

import (
	"context"
	"time"
)

// Store abstracts the KV service's backing store. All operations are safe
// for concurrent use. Mutating operations return the previous value for the
// key, if any.
type Store interface {
	// Get retrieves the value stored at key. ok is false when the key does
	// not exist or its TTL has elapsed.
	Get(ctx context.Context, key []byte) (value []byte, ok bool, err error)

	// Set stores value at key with the given TTL, returning the value it
	// replaced if one existed. A zero TTL means the entry does not expire.
	Set(ctx context.Context, key, value []byte, ttl time.Duration) (prev []byte, ok bool, err error)

	// Delete removes key, returning the removed value if one existed.
	Delete(ctx context.Context, key []byte) (prev []byte, ok bool, err error)
}
