package grpc

import (
	"context"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/csaide/riftdb/api/proto/riftpb"
)

type fakeSubscriptionListStream struct {
	grpc.ServerStream
	sent []*riftpb.Subscription
}

func (f *fakeSubscriptionListStream) Send(m *riftpb.Subscription) error {
	f.sent = append(f.sent, m)
	return nil
}

func TestSubscriptionCreateGetDelete(t *testing.T) {
	registry := newTestRegistry()
	registry.Create("t")
	srv := NewSubscriptionServer(registry)
	ctx := context.Background()

	created, err := srv.Create(ctx, &riftpb.CreateSubscriptionRequest{Topic: "t", Name: "s"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.GetName() != "s" || created.GetTopic() != "t" || created.GetCreated() == nil {
		t.Fatalf("expected a scoped subscription with a creation timestamp, got %v", created)
	}

	again, err := srv.Create(ctx, &riftpb.CreateSubscriptionRequest{Topic: "t", Name: "s"})
	if err != nil {
		t.Fatalf("repeated create failed: %v", err)
	}
	if !again.GetCreated().AsTime().Equal(created.GetCreated().AsTime()) {
		t.Fatal("expected repeated create to keep the original creation timestamp")
	}

	got, err := srv.Get(ctx, &riftpb.GetSubscriptionRequest{Topic: "t", Name: "s"})
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.GetName() != "s" {
		t.Fatalf("expected subscription s, got %q", got.GetName())
	}

	if _, err := srv.Delete(ctx, &riftpb.DeleteSubscriptionRequest{Topic: "t", Name: "s"}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := srv.Get(ctx, &riftpb.GetSubscriptionRequest{Topic: "t", Name: "s"}); status.Code(err) != codes.NotFound {
		t.Fatalf("get after delete: expected NotFound, got %v", err)
	}
}

func TestSubscriptionUnknownTopic(t *testing.T) {
	srv := NewSubscriptionServer(newTestRegistry())
	ctx := context.Background()

	if _, err := srv.Create(ctx, &riftpb.CreateSubscriptionRequest{Topic: "nope", Name: "s"}); status.Code(err) != codes.NotFound {
		t.Fatalf("create: expected NotFound, got %v", err)
	}
	if _, err := srv.Get(ctx, &riftpb.GetSubscriptionRequest{Topic: "nope", Name: "s"}); status.Code(err) != codes.NotFound {
		t.Fatalf("get: expected NotFound, got %v", err)
	}
	if err := srv.List(&riftpb.ListSubscriptionsRequest{Topic: "nope"}, &fakeSubscriptionListStream{}); status.Code(err) != codes.NotFound {
		t.Fatalf("list: expected NotFound, got %v", err)
	}
	if _, err := srv.Delete(ctx, &riftpb.DeleteSubscriptionRequest{Topic: "nope", Name: "s"}); status.Code(err) != codes.NotFound {
		t.Fatalf("delete: expected NotFound, got %v", err)
	}
}

func TestSubscriptionListIsSorted(t *testing.T) {
	registry := newTestRegistry()
	topic := registry.Create("t")
	for _, name := range []string{"z", "m", "a"} {
		topic.CreateSubscription(name)
	}
	srv := NewSubscriptionServer(registry)

	stream := &fakeSubscriptionListStream{}
	if err := srv.List(&riftpb.ListSubscriptionsRequest{Topic: "t"}, stream); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(stream.sent) != 3 {
		t.Fatalf("expected 3 subscriptions, got %d", len(stream.sent))
	}
	for i, want := range []string{"a", "m", "z"} {
		if stream.sent[i].GetName() != want {
			t.Fatalf("expected subscription %q at position %d, got %q", want, i, stream.sent[i].GetName())
		}
	}
}

func TestSubscriptionUpdateUnimplemented(t *testing.T) {
	srv := NewSubscriptionServer(newTestRegistry())
	if _, err := srv.Update(context.Background(), &riftpb.UpdateSubscriptionRequest{Topic: "t", Name: "s"}); status.Code(err) != codes.Unimplemented {
		t.Fatalf("expected Unimplemented, got %v", err)
	}
}
