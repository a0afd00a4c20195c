package pubsub

import (
	"errors"
	"testing"
	"time"
)

func TestSlotTransitions(t *testing.T) {
	var s slot[int]

	if err := s.ack(1); !errors.Is(err, ErrMustBeLocked) {
		t.Fatalf("ack on empty slot: expected ErrMustBeLocked, got %v", err)
	}
	if err := s.nack(1); !errors.Is(err, ErrMustBeLocked) {
		t.Fatalf("nack on empty slot: expected ErrMustBeLocked, got %v", err)
	}
	if _, _, err := s.lock(time.Second); !errors.Is(err, ErrMustBeFilled) {
		t.Fatalf("lock on empty slot: expected ErrMustBeFilled, got %v", err)
	}

	if err := s.fill(42); err != nil {
		t.Fatalf("fill failed: %v", err)
	}
	if err := s.fill(43); !errors.Is(err, ErrMustBeEmpty) {
		t.Fatalf("fill on filled slot: expected ErrMustBeEmpty, got %v", err)
	}

	tag, value, err := s.lock(time.Second)
	if err != nil {
		t.Fatalf("lock failed: %v", err)
	}
	if value != 42 {
		t.Fatalf("expected locked value 42, got %d", value)
	}

	// Nack returns the slot to filled with the original value.
	if err := s.nack(tag.ID); err != nil {
		t.Fatalf("nack failed: %v", err)
	}
	if s.state != slotFilled || s.value != 42 {
		t.Fatalf("expected filled slot holding 42 after nack, got state=%d value=%d", s.state, s.value)
	}

	tag, _, err = s.lock(time.Second)
	if err != nil {
		t.Fatalf("relock failed: %v", err)
	}
	if err := s.ack(tag.ID); err != nil {
		t.Fatalf("ack failed: %v", err)
	}
	if s.state != slotEmpty {
		t.Fatalf("expected empty slot after ack, got state=%d", s.state)
	}

	// A late settle against the now-empty slot must fail.
	if err := s.ack(tag.ID); !errors.Is(err, ErrMustBeLocked) {
		t.Fatalf("double ack: expected ErrMustBeLocked, got %v", err)
	}
}

func TestSlotLeaseMismatch(t *testing.T) {
	var s slot[string]
	if err := s.fill("payload"); err != nil {
		t.Fatalf("fill failed: %v", err)
	}
	tag, _, err := s.lock(time.Second)
	if err != nil {
		t.Fatalf("lock failed: %v", err)
	}

	if err := s.ack(tag.ID + 1); !errors.Is(err, ErrInvalidOrExpiredLease) {
		t.Fatalf("ack with wrong id: expected ErrInvalidOrExpiredLease, got %v", err)
	}
	if err := s.nack(tag.ID + 1); !errors.Is(err, ErrInvalidOrExpiredLease) {
		t.Fatalf("nack with wrong id: expected ErrInvalidOrExpiredLease, got %v", err)
	}

	// The original lease is still settleable.
	if err := s.ack(tag.ID); err != nil {
		t.Fatalf("ack with matching id failed: %v", err)
	}
}

func TestSlotZeroTTLExpiresImmediately(t *testing.T) {
	var s slot[int]
	if err := s.fill(1); err != nil {
		t.Fatalf("fill failed: %v", err)
	}
	if _, _, err := s.lock(0); err != nil {
		t.Fatalf("lock failed: %v", err)
	}
	if !s.expired() {
		t.Fatal("expected a zero ttl lease to be observationally expired")
	}
	s.expire()
	if s.state != slotFilled {
		t.Fatalf("expected filled slot after expiry, got state=%d", s.state)
	}
}
