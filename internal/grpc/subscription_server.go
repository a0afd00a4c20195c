package grpc

import (
	"context"
	"sort"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/csaide/riftdb/api/proto/riftpb"
	"github.com/csaide/riftdb/internal/pubsub"
)

// SubscriptionServer implements the rift.v1.Subscriptions service.
type SubscriptionServer struct {
	riftpb.UnimplementedSubscriptionsServer
	registry *Registry
}

// NewSubscriptionServer creates the subscription control plane over the
// supplied registry.
func NewSubscriptionServer(registry *Registry) *SubscriptionServer {
	return &SubscriptionServer{registry: registry}
}

// Create creates the named subscription within its topic, returning the
// existing one if present.
func (s *SubscriptionServer) Create(ctx context.Context, req *riftpb.CreateSubscriptionRequest) (*riftpb.Subscription, error) {
	if req.GetName() == "" {
		return nil, status.Error(codes.InvalidArgument, "subscription name must be non-empty")
	}
	topic, ok := s.registry.Get(req.GetTopic())
	if !ok {
		return nil, topicNotFound(req.GetTopic())
	}
	sub := topic.CreateSubscription(req.GetName())
	return subscriptionFromInner(req.GetName(), req.GetTopic(), sub), nil
}

// Get retrieves the named subscription.
func (s *SubscriptionServer) Get(ctx context.Context, req *riftpb.GetSubscriptionRequest) (*riftpb.Subscription, error) {
	topic, ok := s.registry.Get(req.GetTopic())
	if !ok {
		return nil, topicNotFound(req.GetTopic())
	}
	sub, ok := topic.Subscription(req.GetName())
	if !ok {
		return nil, subscriptionNotFound(req.GetName(), req.GetTopic())
	}
	return subscriptionFromInner(req.GetName(), req.GetTopic(), sub), nil
}

// List streams a snapshot of the topic's subscriptions in ascending name
// order.
func (s *SubscriptionServer) List(req *riftpb.ListSubscriptionsRequest, stream riftpb.Subscriptions_ListServer) error {
	topic, ok := s.registry.Get(req.GetTopic())
	if !ok {
		return topicNotFound(req.GetTopic())
	}

	var subs []*riftpb.Subscription
	topic.Range(func(name string, sub *pubsub.Subscription[*riftpb.Message]) bool {
		subs = append(subs, subscriptionFromInner(name, req.GetTopic(), sub))
		return true
	})
	sort.Slice(subs, func(i, j int) bool { return subs[i].Name < subs[j].Name })

	for _, sub := range subs {
		if err := stream.Send(sub); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the named subscription and its queue.
func (s *SubscriptionServer) Delete(ctx context.Context, req *riftpb.DeleteSubscriptionRequest) (*riftpb.Subscription, error) {
	topic, ok := s.registry.Get(req.GetTopic())
	if !ok {
		return nil, topicNotFound(req.GetTopic())
	}
	sub, ok := topic.RemoveSubscription(req.GetName())
	if !ok {
		return nil, subscriptionNotFound(req.GetName(), req.GetTopic())
	}
	return subscriptionFromInner(req.GetName(), req.GetTopic(), sub), nil
}

// Update is not supported.
func (s *SubscriptionServer) Update(ctx context.Context, req *riftpb.UpdateSubscriptionRequest) (*riftpb.Subscription, error) {
	return nil, status.Error(codes.Unimplemented, "subscription updates are not implemented")
}

func subscriptionFromInner(name, topic string, sub *pubsub.Subscription[*riftpb.Message]) *riftpb.Subscription {
	return &riftpb.Subscription{
		Name:    name,
		Topic:   topic,
		Created: timestamppb.New(sub.Created),
		Updated: timestampOrNil(sub.Updated),
	}
}
