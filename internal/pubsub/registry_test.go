package pubsub

import "testing"

func TestRegistryCreateIsIdempotent(t *testing.T) {
	reg := NewRegistry[int](QueueConfig{})

	first := reg.Create("test")
	second := reg.Create("test")
	if first != second {
		t.Fatal("expected repeated create to return the same topic")
	}
	if !first.Created.Equal(second.Created) {
		t.Fatalf("expected matching creation timestamps, got %v and %v", first.Created, second.Created)
	}

	other := reg.Create("woot")
	if other == first {
		t.Fatal("expected a distinct topic for a distinct name")
	}
}

func TestRegistryGetDelete(t *testing.T) {
	reg := NewRegistry[int](QueueConfig{})
	created := reg.Create("test")

	got, ok := reg.Get("test")
	if !ok || got != created {
		t.Fatalf("expected to get the created topic back, got %v ok=%v", got, ok)
	}

	deleted, ok := reg.Delete("test")
	if !ok || deleted != created {
		t.Fatal("expected delete to return the created topic")
	}
	if _, ok := reg.Get("test"); ok {
		t.Fatal("expected get after delete to miss")
	}
	if _, ok := reg.Delete("test"); ok {
		t.Fatal("expected repeated delete to miss")
	}
}

func TestRegistryRange(t *testing.T) {
	reg := NewRegistry[int](QueueConfig{})
	reg.Create("a")
	reg.Create("b")

	count := 0
	reg.Range(func(string, *Topic[int]) bool {
		count++
		return true
	})
	if count != 2 {
		t.Fatalf("expected 2 topics, got %d", count)
	}
}
