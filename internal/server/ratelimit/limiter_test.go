package ratelimit

import (
	"testing"
	"time"
)

func TestLimiter_Allow(t *testing.T) {
	l := NewLimiter(5, time.Minute, 5)
	defer l.Close()

	for i := range 5 {
		result := l.Allow("test:key")
		if !result.Allowed {
			t.Errorf("request %d should be allowed", i+1)
		}
		if result.Limit != 5 {
			t.Errorf("expected Limit=5, got %d", result.Limit)
		}
	}
	result := l.Allow("test:key")
	if result.Allowed {
		t.Error("6th request should be rate limited")
	}
	if result.Remaining != 0 {
		t.Errorf("expected Remaining=0, got %d", result.Remaining)
	}
	if result.RetryAfter < time.Second {
		t.Errorf("expected RetryAfter >= 1s, got %v", result.RetryAfter)
	}
}

func TestLimiter_DifferentKeys(t *testing.T) {
	l := NewLimiter(5, time.Minute, 5)
	defer l.Close()

	for range 5 {
		l.Allow("key1")
	}
	if l.Allow("key1").Allowed {
		t.Error("key1 should be rate limited")
	}
	for range 5 {
		if !l.Allow("key2").Allowed {
			t.Error("key2 should not be rate limited")
		}
	}
	if got := l.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestLimiter_Result(t *testing.T) {
	l := NewLimiter(10, time.Minute, 10)
	defer l.Close()

	result := l.Allow("test:result")
	if !result.Allowed {
		t.Error("first request should be allowed")
	}
	if result.Remaining < 0 || result.Remaining > 10 {
		t.Errorf("Remaining out of range: %d", result.Remaining)
	}
	if result.ResetAt.IsZero() {
		t.Error("ResetAt should not be zero")
	}
	if result.RetryAfter != 0 {
		t.Errorf("RetryAfter should be 0 for allowed requests, got %v", result.RetryAfter)
	}
}

func TestLimiter_Evict(t *testing.T) {
	l := NewLimiter(60, time.Minute, 10)
	defer l.Close()

	l.get("idle", time.Now().Add(-time.Hour))
	l.Allow("busy")
	l.evict(time.Now().Add(-idleTimeout))
	if got := l.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1", got)
	}
	if _, ok := l.buckets["busy"]; !ok {
		t.Error("partially drained bucket must be kept")
	}
}

func TestLimiter_CloseTwice(t *testing.T) {
	l := NewLimiter(1, time.Minute, 1)
	l.Close()
	l.Close()
}
