package pubsub

import (
	"errors"
	"testing"
)

func TestTopicCreateSubscriptionIsIdempotent(t *testing.T) {
	topic := NewTopic[int](QueueConfig{})

	first := topic.CreateSubscription("sub")
	second := topic.CreateSubscription("sub")
	if first != second {
		t.Fatal("expected repeated create to return the same subscription")
	}
	if !first.Created.Equal(second.Created) {
		t.Fatalf("expected matching creation timestamps, got %v and %v", first.Created, second.Created)
	}

	other := topic.CreateSubscription("other")
	if other == first {
		t.Fatal("expected a distinct subscription for a distinct name")
	}
}

func TestTopicPublishFansOut(t *testing.T) {
	topic := NewTopic[int](QueueConfig{})
	a := topic.CreateSubscription("a")
	b := topic.CreateSubscription("b")

	if err := topic.Publish(7); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	for name, sub := range map[string]*Subscription[int]{"a": a, "b": b} {
		_, _, value, ok := sub.Queue.Next()
		if !ok {
			t.Fatalf("subscription %q: expected a delivered message", name)
		}
		if value != 7 {
			t.Fatalf("subscription %q: expected value 7, got %d", name, value)
		}
	}
}

func TestTopicPublishWithoutSubscriptions(t *testing.T) {
	topic := NewTopic[int](QueueConfig{})
	if err := topic.Publish(1); !errors.Is(err, ErrNoSubscriptions) {
		t.Fatalf("expected ErrNoSubscriptions, got %v", err)
	}

	// Adding a subscription afterwards does not retroactively deliver.
	sub := topic.CreateSubscription("late")
	if _, _, _, ok := sub.Queue.Next(); ok {
		t.Fatal("expected no retroactive delivery for a failed publish")
	}
}

func TestTopicPublishReportsFirstErrorAfterFullFanOut(t *testing.T) {
	topic := NewTopic[int](QueueConfig{MaxSlots: 1})
	full := topic.CreateSubscription("full")
	open := topic.CreateSubscription("open")

	// Saturate one subscription's bounded queue.
	if err := full.Queue.Push(0); err != nil {
		t.Fatalf("saturating push failed: %v", err)
	}
	if _, _, _, ok := open.Queue.Next(); ok {
		t.Fatal("expected the other queue to start empty")
	}
	tag, idx, _, ok := full.Queue.Next()
	if !ok {
		t.Fatal("expected the saturating message to be deliverable")
	}
	if err := full.Queue.Nack(tag.ID, idx); err != nil {
		t.Fatalf("nack failed: %v", err)
	}

	err := topic.Publish(9)
	if !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull from the saturated subscription, got %v", err)
	}

	// The publish still reached the subscription with room.
	_, _, value, ok := open.Queue.Next()
	if !ok || value != 9 {
		t.Fatalf("expected best-effort delivery of 9, got value=%d ok=%v", value, ok)
	}
}

func TestTopicRemoveSubscription(t *testing.T) {
	topic := NewTopic[int](QueueConfig{})
	topic.CreateSubscription("sub")

	if _, ok := topic.RemoveSubscription("sub"); !ok {
		t.Fatal("expected removal of an existing subscription")
	}
	if _, ok := topic.Subscription("sub"); ok {
		t.Fatal("expected the subscription to be gone")
	}
	if _, ok := topic.RemoveSubscription("sub"); ok {
		t.Fatal("expected repeated removal to miss")
	}
}

func TestTopicRange(t *testing.T) {
	topic := NewTopic[int](QueueConfig{})
	topic.CreateSubscription("a")
	topic.CreateSubscription("b")

	count := 0
	topic.Range(func(string, *Subscription[int]) bool {
		count++
		return true
	})
	if count != 2 {
		t.Fatalf("expected 2 subscriptions, got %d", count)
	}
}
