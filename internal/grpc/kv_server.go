package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/csaide/riftdb/api/proto/riftpb"
	"github.com/csaide/riftdb/internal/store"
)

// KVServer implements the rift.v1.KV service over a backing store.
type KVServer struct {
	riftpb.UnimplementedKVServer
	store store.Store
}

// NewKVServer creates the KV service over the supplied store.
func NewKVServer(s store.Store) *KVServer {
	return &KVServer{store: s}
}

// Get retrieves the value at the supplied key. Absent or expired keys yield
// an empty value.
func (s *KVServer) Get(ctx context.Context, req *riftpb.Key) (*riftpb.Value, error) {
	value, ok, err := s.store.Get(ctx, req.GetKey())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get failed: %v", err)
	}
	if !ok {
		return &riftpb.Value{}, nil
	}
	return &riftpb.Value{Key: req.GetKey(), Value: value}, nil
}

// Set stores the value at the supplied key with the supplied ttl, returning
// the previous value if one existed.
func (s *KVServer) Set(ctx context.Context, req *riftpb.KeyValue) (*riftpb.Value, error) {
	ttl := time.Duration(req.GetTtlNs())
	prev, ok, err := s.store.Set(ctx, req.GetKey(), req.GetValue(), ttl)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "set failed: %v", err)
	}
	if !ok {
		return &riftpb.Value{}, nil
	}
	return &riftpb.Value{Key: req.GetKey(), Value: prev}, nil
}

// Delete removes the value at the supplied key, returning it if it existed.
func (s *KVServer) Delete(ctx context.Context, req *riftpb.Key) (*riftpb.Value, error) {
	prev, ok, err := s.store.Delete(ctx, req.GetKey())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "delete failed: %v", err)
	}
	if !ok {
		return &riftpb.Value{}, nil
	}
	return &riftpb.Value{Key: req.GetKey(), Value: prev}, nil
}
