package pubsub

import (
	"context"
	"testing"
	"time"
)

func TestStreamDrainsInOrder(t *testing.T) {
	q := NewQueue[int](QueueConfig{})
	for i := 0; i < 3; i++ {
		if err := q.Push(i); err != nil {
			t.Fatalf("push %d failed: %v", i, err)
		}
	}

	s := NewStream(q)
	for i := 0; i < 3; i++ {
		_, idx, value, ok := s.Poll()
		if !ok {
			t.Fatalf("poll %d: expected a message", i)
		}
		if value != i || idx != i {
			t.Fatalf("poll %d: expected value %d at index %d, got value=%d idx=%d", i, i, i, value, idx)
		}
	}

	if _, _, _, ok := s.Poll(); ok {
		t.Fatal("expected pending poll on drained queue")
	}
}

// TestStreamNackRedeliversBeforeLaterMessages pins the pull-paced delivery
// order: a nacked message reappears at its original index ahead of messages
// pushed after it.
func TestStreamNackRedeliversBeforeLaterMessages(t *testing.T) {
	q := NewQueue[int](QueueConfig{})
	if err := q.Push(1); err != nil {
		t.Fatalf("push failed: %v", err)
	}
	if err := q.Push(2); err != nil {
		t.Fatalf("push failed: %v", err)
	}

	s := NewStream(q)

	tag, idx, value, ok := s.Poll()
	if !ok || value != 1 || idx != 0 {
		t.Fatalf("expected value 1 at index 0, got value=%d idx=%d ok=%v", value, idx, ok)
	}
	if err := q.Nack(tag.ID, idx); err != nil {
		t.Fatalf("nack failed: %v", err)
	}

	tag2, idx2, value, ok := s.Poll()
	if !ok || value != 1 || idx2 != 0 {
		t.Fatalf("expected redelivery of 1 at index 0, got value=%d idx=%d ok=%v", value, idx2, ok)
	}
	if tag2.ID == tag.ID {
		t.Fatal("expected a fresh lease id on redelivery")
	}

	tag3, idx3, value, ok := s.Poll()
	if !ok || value != 2 || idx3 != 1 {
		t.Fatalf("expected value 2 at index 1, got value=%d idx=%d ok=%v", value, idx3, ok)
	}

	if err := q.Ack(tag2.ID, idx2); err != nil {
		t.Fatalf("ack failed: %v", err)
	}
	if err := q.Ack(tag3.ID, idx3); err != nil {
		t.Fatalf("ack failed: %v", err)
	}

	if _, _, _, ok := s.Poll(); ok {
		t.Fatal("expected pending poll once everything is settled")
	}
}

func TestStreamWokenByPush(t *testing.T) {
	q := NewQueue[int](QueueConfig{})
	s := NewStream(q)

	got := make(chan int, 1)
	go func() {
		_, _, value, err := s.Next(context.Background())
		if err != nil {
			return
		}
		got <- value
	}()

	// Give the consumer a moment to park before publishing.
	time.Sleep(10 * time.Millisecond)
	if err := q.Push(41); err != nil {
		t.Fatalf("push failed: %v", err)
	}

	select {
	case value := <-got:
		if value != 41 {
			t.Fatalf("expected value 41, got %d", value)
		}
	case <-time.After(time.Second):
		t.Fatal("parked consumer was never woken")
	}
}

func TestStreamNextHonoursContext(t *testing.T) {
	q := NewQueue[int](QueueConfig{})
	s := NewStream(q)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, _, _, err := s.Next(ctx); err == nil {
		t.Fatal("expected context error from Next on an empty queue")
	}
}

func TestStreamRepolledParkKeepsSingleWakerSlot(t *testing.T) {
	q := NewQueue[int](QueueConfig{})
	s := NewStream(q)

	// Park twice; the second registration must replace the first.
	s.Poll()
	s.Poll()

	q.mu.Lock()
	parked := q.waker.Len()
	q.mu.Unlock()
	if parked != 1 {
		t.Fatalf("expected a single waker registration, got %d", parked)
	}
}
