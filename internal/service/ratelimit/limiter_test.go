package ratelimit

import (
	"testing"
	"time"
)

func TestAllowConsumesCapacity(t *testing.T) {
	l := New()

	for i := 0; i < 3; i++ {
		if !l.Allow("k", 3, 0) {
			t.Fatalf("expected allow at %d", i)
		}
	}
	if l.Allow("k", 3, 0) {
		t.Fatalf("expected deny after capacity exhausted")
	}
}

func TestAllowRefills(t *testing.T) {
	l := New()

	if !l.Allow("k", 1, 100) {
		t.Fatalf("expected first allow")
	}
	if l.Allow("k", 1, 100) {
		t.Fatalf("expected deny while empty")
	}

	time.Sleep(50 * time.Millisecond)
	if !l.Allow("k", 1, 100) {
		t.Fatalf("expected allow after refill")
	}
}

func TestAllowKeysAreIndependent(t *testing.T) {
	l := New()

	if !l.Allow("a", 1, 0) {
		t.Fatalf("expected allow for a")
	}
	if l.Allow("a", 1, 0) {
		t.Fatalf("expected deny for a")
	}
	if !l.Allow("b", 1, 0) {
		t.Fatalf("expected independent bucket for b")
	}
}
