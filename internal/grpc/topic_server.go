package grpc

import (
	"context"
	"sort"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/csaide/riftdb/api/proto/riftpb"
	"github.com/csaide/riftdb/internal/pubsub"
)

// TopicServer implements the rift.v1.Topics service.
type TopicServer struct {
	riftpb.UnimplementedTopicsServer
	registry *Registry
}

// NewTopicServer creates the topic control plane over the supplied registry.
func NewTopicServer(registry *Registry) *TopicServer {
	return &TopicServer{registry: registry}
}

// Create creates the named topic, returning the existing one if present.
func (s *TopicServer) Create(ctx context.Context, req *riftpb.CreateTopicRequest) (*riftpb.Topic, error) {
	if req.GetName() == "" {
		return nil, status.Error(codes.InvalidArgument, "topic name must be non-empty")
	}
	topic := s.registry.Create(req.GetName())
	return topicFromInner(req.GetName(), topic), nil
}

// Get retrieves the named topic.
func (s *TopicServer) Get(ctx context.Context, req *riftpb.GetTopicRequest) (*riftpb.Topic, error) {
	topic, ok := s.registry.Get(req.GetName())
	if !ok {
		return nil, topicNotFound(req.GetName())
	}
	return topicFromInner(req.GetName(), topic), nil
}

// List streams a snapshot of all topics in ascending name order.
func (s *TopicServer) List(_ *riftpb.ListTopicsRequest, stream riftpb.Topics_ListServer) error {
	var topics []*riftpb.Topic
	s.registry.Range(func(name string, topic *pubsub.Topic[*riftpb.Message]) bool {
		topics = append(topics, topicFromInner(name, topic))
		return true
	})
	sort.Slice(topics, func(i, j int) bool { return topics[i].Name < topics[j].Name })

	for _, topic := range topics {
		if err := stream.Send(topic); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the named topic along with its subscriptions and queues.
func (s *TopicServer) Delete(ctx context.Context, req *riftpb.DeleteTopicRequest) (*riftpb.Topic, error) {
	topic, ok := s.registry.Delete(req.GetName())
	if !ok {
		return nil, topicNotFound(req.GetName())
	}
	return topicFromInner(req.GetName(), topic), nil
}

// Update is not supported.
func (s *TopicServer) Update(ctx context.Context, req *riftpb.UpdateTopicRequest) (*riftpb.Topic, error) {
	return nil, status.Error(codes.Unimplemented, "topic updates are not implemented")
}

func topicFromInner(name string, topic *pubsub.Topic[*riftpb.Message]) *riftpb.Topic {
	return &riftpb.Topic{
		Name:    name,
		Created: timestamppb.New(topic.Created),
		Updated: timestampOrNil(topic.Updated),
	}
}

func timestampOrNil(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}
