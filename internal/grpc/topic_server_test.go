package grpc

import (
	"context"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/csaide/riftdb/api/proto/riftpb"
)

type fakeTopicListStream struct {
	grpc.ServerStream
	sent []*riftpb.Topic
}

func (f *fakeTopicListStream) Send(m *riftpb.Topic) error {
	f.sent = append(f.sent, m)
	return nil
}

func TestTopicCreateGetDelete(t *testing.T) {
	srv := NewTopicServer(newTestRegistry())
	ctx := context.Background()

	created, err := srv.Create(ctx, &riftpb.CreateTopicRequest{Name: "topic"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.GetName() != "topic" || created.GetCreated() == nil {
		t.Fatalf("expected a named topic with a creation timestamp, got %v", created)
	}
	if created.GetUpdated() != nil {
		t.Fatalf("expected no update timestamp on a fresh topic, got %v", created.GetUpdated())
	}

	// Idempotent create returns the same entity.
	again, err := srv.Create(ctx, &riftpb.CreateTopicRequest{Name: "topic"})
	if err != nil {
		t.Fatalf("repeated create failed: %v", err)
	}
	if !again.GetCreated().AsTime().Equal(created.GetCreated().AsTime()) {
		t.Fatal("expected repeated create to keep the original creation timestamp")
	}

	got, err := srv.Get(ctx, &riftpb.GetTopicRequest{Name: "topic"})
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.GetName() != "topic" {
		t.Fatalf("expected topic, got %q", got.GetName())
	}

	if _, err := srv.Delete(ctx, &riftpb.DeleteTopicRequest{Name: "topic"}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := srv.Get(ctx, &riftpb.GetTopicRequest{Name: "topic"}); status.Code(err) != codes.NotFound {
		t.Fatalf("get after delete: expected NotFound, got %v", err)
	}
	if _, err := srv.Delete(ctx, &riftpb.DeleteTopicRequest{Name: "topic"}); status.Code(err) != codes.NotFound {
		t.Fatalf("repeated delete: expected NotFound, got %v", err)
	}
}

func TestTopicCreateValidation(t *testing.T) {
	srv := NewTopicServer(newTestRegistry())
	if _, err := srv.Create(context.Background(), &riftpb.CreateTopicRequest{}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for an empty name, got %v", err)
	}
}

func TestTopicListIsSorted(t *testing.T) {
	srv := NewTopicServer(newTestRegistry())
	ctx := context.Background()

	for _, name := range []string{"b", "a", "c"} {
		if _, err := srv.Create(ctx, &riftpb.CreateTopicRequest{Name: name}); err != nil {
			t.Fatalf("create %q failed: %v", name, err)
		}
	}

	stream := &fakeTopicListStream{}
	if err := srv.List(&riftpb.ListTopicsRequest{}, stream); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(stream.sent) != 3 {
		t.Fatalf("expected 3 topics, got %d", len(stream.sent))
	}
	for i, want := range []string{"a", "b", "c"} {
		if stream.sent[i].GetName() != want {
			t.Fatalf("expected topic %q at position %d, got %q", want, i, stream.sent[i].GetName())
		}
	}
}

func TestTopicUpdateUnimplemented(t *testing.T) {
	srv := NewTopicServer(newTestRegistry())
	if _, err := srv.Update(context.Background(), &riftpb.UpdateTopicRequest{Name: "t"}); status.Code(err) != codes.Unimplemented {
		t.Fatalf("expected Unimplemented, got %v", err)
	}
}

// TestTopicDeletePropagatesToAck covers settle-after-delete: once the topic
// is gone its leases can no longer be resolved.
func TestTopicDeletePropagatesToAck(t *testing.T) {
	registry := newTestRegistry()
	topics := NewTopicServer(registry)
	pubSub := NewPubSubServer(registry)
	ctx := context.Background()

	if _, err := topics.Create(ctx, &riftpb.CreateTopicRequest{Name: "t"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	topic, _ := registry.Get("t")
	topic.CreateSubscription("s")

	if _, err := topics.Delete(ctx, &riftpb.DeleteTopicRequest{Name: "t"}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	_, err := pubSub.Ack(ctx, &riftpb.Lease{Topic: "t", Subscription: "s"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("ack after delete: expected NotFound, got %v", err)
	}
}
