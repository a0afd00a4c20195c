package grpc

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/csaide/riftdb/api/proto/riftpb"
	"github.com/csaide/riftdb/internal/store"
)

func TestKVRoundTrip(t *testing.T) {
	srv := NewKVServer(store.NewHashStore())
	ctx := context.Background()

	// A miss yields an empty value rather than an error.
	got, err := srv.Get(ctx, &riftpb.Key{Key: []byte("k")})
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(got.GetValue()) != 0 {
		t.Fatalf("expected empty value for a missing key, got %q", got.GetValue())
	}

	prev, err := srv.Set(ctx, &riftpb.KeyValue{Key: []byte("k"), Value: []byte("v1")})
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if len(prev.GetValue()) != 0 {
		t.Fatalf("expected no previous value on first set, got %q", prev.GetValue())
	}

	got, err = srv.Get(ctx, &riftpb.Key{Key: []byte("k")})
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !bytes.Equal(got.GetValue(), []byte("v1")) {
		t.Fatalf("expected v1, got %q", got.GetValue())
	}

	prev, err = srv.Set(ctx, &riftpb.KeyValue{Key: []byte("k"), Value: []byte("v2")})
	if err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	if !bytes.Equal(prev.GetValue(), []byte("v1")) {
		t.Fatalf("expected previous value v1, got %q", prev.GetValue())
	}

	deleted, err := srv.Delete(ctx, &riftpb.Key{Key: []byte("k")})
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !bytes.Equal(deleted.GetValue(), []byte("v2")) {
		t.Fatalf("expected removed value v2, got %q", deleted.GetValue())
	}
}

func TestKVSetWithTTL(t *testing.T) {
	srv := NewKVServer(store.NewHashStore())
	ctx := context.Background()

	ttl := uint64(time.Millisecond.Nanoseconds())
	if _, err := srv.Set(ctx, &riftpb.KeyValue{Key: []byte("k"), Value: []byte("v"), TtlNs: ttl}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	got, err := srv.Get(ctx, &riftpb.Key{Key: []byte("k")})
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(got.GetValue()) != 0 {
		t.Fatalf("expected expired key to read as missing, got %q", got.GetValue())
	}
}
