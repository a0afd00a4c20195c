package store

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestHashStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewHashStore()

	if _, ok, err := s.Get(ctx, []byte("missing")); err != nil || ok {
		t.Fatalf("expected miss for unknown key, got ok=%v err=%v", ok, err)
	}

	prev, ok, err := s.Set(ctx, []byte("k"), []byte("v1"), 0)
	if err != nil || ok || prev != nil {
		t.Fatalf("first set: expected no previous value, got prev=%q ok=%v err=%v", prev, ok, err)
	}

	value, ok, err := s.Get(ctx, []byte("k"))
	if err != nil || !ok || !bytes.Equal(value, []byte("v1")) {
		t.Fatalf("get: expected v1, got value=%q ok=%v err=%v", value, ok, err)
	}

	prev, ok, err = s.Set(ctx, []byte("k"), []byte("v2"), 0)
	if err != nil || !ok || !bytes.Equal(prev, []byte("v1")) {
		t.Fatalf("overwrite: expected previous v1, got prev=%q ok=%v err=%v", prev, ok, err)
	}

	prev, ok, err = s.Delete(ctx, []byte("k"))
	if err != nil || !ok || !bytes.Equal(prev, []byte("v2")) {
		t.Fatalf("delete: expected removed v2, got prev=%q ok=%v err=%v", prev, ok, err)
	}

	if _, ok, _ := s.Get(ctx, []byte("k")); ok {
		t.Fatal("expected miss after delete")
	}
	if _, ok, _ := s.Delete(ctx, []byte("k")); ok {
		t.Fatal("expected repeated delete to miss")
	}
}

func TestHashStoreTTLExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewHashStore()

	if _, _, err := s.Set(ctx, []byte("k"), []byte("v"), time.Millisecond); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	if _, ok, _ := s.Get(ctx, []byte("k")); ok {
		t.Fatal("expected expired entry to read as missing")
	}

	// The expired entry was reaped; a fresh set sees no previous value.
	prev, ok, err := s.Set(ctx, []byte("k"), []byte("v2"), 0)
	if err != nil || ok || prev != nil {
		t.Fatalf("set after expiry: expected no previous value, got prev=%q ok=%v err=%v", prev, ok, err)
	}
}

func TestHashStoreZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	s := NewHashStore()

	if _, _, err := s.Set(ctx, []byte("k"), []byte("v"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	if _, ok, _ := s.Get(ctx, []byte("k")); !ok {
		t.Fatal("expected zero ttl entry to persist")
	}
}
