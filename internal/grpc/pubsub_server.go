// Package grpc implements the rift gRPC services over the pubsub core and
// the KV store, plus the unified server that hosts them.
package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/csaide/riftdb/api/proto/riftpb"
	"github.com/csaide/riftdb/internal/pubsub"
)

// Registry is the concrete topic registry the services operate on.
type Registry = pubsub.Registry[*riftpb.Message]

// PubSubServer implements the rift.v1.PubSub service.
type PubSubServer struct {
	riftpb.UnimplementedPubSubServer
	registry *Registry
}

// NewPubSubServer creates the data plane service over the supplied registry.
func NewPubSubServer(registry *Registry) *PubSubServer {
	return &PubSubServer{registry: registry}
}

// Publish validates and stamps the message, then fans it out to every
// subscription of the target topic.
func (s *PubSubServer) Publish(ctx context.Context, msg *riftpb.Message) (*riftpb.Confirmation, error) {
	if msg.GetTopic() == "" {
		return nil, status.Error(codes.InvalidArgument, "topic name must be non-empty")
	}
	if len(msg.GetData()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "data payload must be non-empty")
	}

	topic, ok := s.registry.Get(msg.GetTopic())
	if !ok {
		return nil, topicNotFound(msg.GetTopic())
	}

	msg.Published = timestamppb.Now()

	if err := topic.Publish(msg); err != nil {
		return nil, status.Errorf(codes.Internal, "publish failed: %v", err)
	}
	return &riftpb.Confirmation{Status: riftpb.ConfirmationStatus_COMMITTED}, nil
}

// Ack settles the lease positively, freeing its slot.
func (s *PubSubServer) Ack(ctx context.Context, lease *riftpb.Lease) (*riftpb.Confirmation, error) {
	sub, err := s.resolve(lease)
	if err != nil {
		return nil, err
	}
	if err := sub.Queue.Ack(lease.GetId(), int(lease.GetIndex())); err != nil {
		return nil, status.Errorf(codes.Internal, "ack failed: %v", err)
	}
	return &riftpb.Confirmation{Status: riftpb.ConfirmationStatus_COMMITTED}, nil
}

// Nack settles the lease negatively, returning the message to the backlog.
func (s *PubSubServer) Nack(ctx context.Context, lease *riftpb.Lease) (*riftpb.Confirmation, error) {
	sub, err := s.resolve(lease)
	if err != nil {
		return nil, err
	}
	if err := sub.Queue.Nack(lease.GetId(), int(lease.GetIndex())); err != nil {
		return nil, status.Errorf(codes.Internal, "nack failed: %v", err)
	}
	return &riftpb.Confirmation{Status: riftpb.ConfirmationStatus_COMMITTED}, nil
}

// Subscribe streams leased messages from the named subscription until the
// client goes away. Each stream is one consumer; concurrent streams on the
// same subscription steal work from each other.
func (s *PubSubServer) Subscribe(ref *riftpb.SubscriptionRef, stream riftpb.PubSub_SubscribeServer) error {
	topic, ok := s.registry.Get(ref.GetTopic())
	if !ok {
		return topicNotFound(ref.GetTopic())
	}
	sub, ok := topic.Subscription(ref.GetName())
	if !ok {
		return subscriptionNotFound(ref.GetName(), ref.GetTopic())
	}

	ctx := stream.Context()
	consumer := pubsub.NewStream(sub.Queue)
	for {
		tag, index, msg, err := consumer.Next(ctx)
		if err != nil {
			// Client cancellation is the only way out of the stream.
			return status.FromContextError(err).Err()
		}
		leased := &riftpb.LeasedMessage{
			Lease:   leaseFromTag(tag, ref.GetTopic(), ref.GetName(), index),
			Message: msg,
		}
		if err := stream.Send(leased); err != nil {
			return err
		}
	}
}

func (s *PubSubServer) resolve(lease *riftpb.Lease) (*pubsub.Subscription[*riftpb.Message], error) {
	topic, ok := s.registry.Get(lease.GetTopic())
	if !ok {
		return nil, topicNotFound(lease.GetTopic())
	}
	sub, ok := topic.Subscription(lease.GetSubscription())
	if !ok {
		return nil, subscriptionNotFound(lease.GetSubscription(), lease.GetTopic())
	}
	return sub, nil
}

// leaseFromTag converts a core lease tag into its wire representation.
func leaseFromTag(tag pubsub.LeaseTag, topic, subscription string, index int) *riftpb.Lease {
	return &riftpb.Lease{
		Id:           tag.ID,
		Topic:        topic,
		Subscription: subscription,
		Index:        uint64(index),
		TtlMs:        uint64(tag.TTL.Milliseconds()),
		Leased:       timestamppb.New(tag.LeasedAt),
		Deadline:     timestamppb.New(tag.Deadline),
	}
}
