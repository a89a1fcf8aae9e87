package bandwidth

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestLimiter(t *testing.T) {
	t.Run("Reserve", func(t *testing.T) {
		tests := []struct {
			name        string
			bytesPerSec int64
			n           int64
			expectWait  bool
		}{
			{"no wait when tokens available", 1000, 100, false},
			{"wait when tokens exhausted", 1000, 1500, true},
			{"zero limit means unlimited", 0, 1000, false},
			{"negative limit means unlimited", -1, 1000, false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				wait := NewLimiter(tt.bytesPerSec).Reserve(tt.n)
				if (wait > 0) != tt.expectWait {
					t.Errorf("expectWait=%v, got wait=%v", tt.expectWait, wait)
				}
			})
		}
	})

	t.Run("Queue", func(t *testing.T) {
		l := NewLimiter(1000)
		l.Reserve(1000)
		w1 := l.Reserve(500)
		w2 := l.Reserve(500)
		if w1 <= 0 || w2 <= w1 {
			t.Errorf("debt must accumulate: w1=%v w2=%v", w1, w2)
		}
		if w2 > 1100*time.Millisecond {
			t.Errorf("w2 = %v, want about 1s", w2)
		}
	})

	t.Run("UpdateToUnlimited", func(t *testing.T) {
		l := NewLimiter(100)
		l.Reserve(100)
		l.Update(0)
		if wait := l.Reserve(1000); wait != 0 {
			t.Errorf("unlimited limiter should not wait, got %v", wait)
		}
		if l.Limit() != 0 {
			t.Errorf("Limit() = %d", l.Limit())
		}
	})

	t.Run("UpdateClampsTokens", func(t *testing.T) {
		l := NewLimiter(1000)
		l.Update(10)
		if wait := l.Reserve(10); wait != 0 {
			t.Errorf("wait = %v", wait)
		}
		if wait := l.Reserve(10); wait <= 0 {
			t.Error("bucket must be clamped to the new limit")
		}
	})
}

func TestMiddleware(t *testing.T) {
	body := strings.Repeat("x", chunkSize*2+10)
	h := Middleware(NewLimiter(1<<30), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, body)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	if rec.Body.String() != body {
		t.Errorf("body length %d, want %d", rec.Body.Len(), len(body))
	}
}

func TestResponseWriter_Cancelled(t *testing.T) {
	l := NewLimiter(10)
	l.Reserve(10)
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	rec := httptest.NewRecorder()
	n, err := NewResponseWriter(ctx, rec, l).Write([]byte("hello"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
	if n != 0 || rec.Body.Len() != 0 {
		t.Errorf("nothing should be written, got %d", n)
	}
}

func TestNewResponseWriter_Nil(t *testing.T) {
	rec := httptest.NewRecorder()
	if NewResponseWriter(t.Context(), rec, nil) != http.ResponseWriter(rec) {
		t.Error("nil limiter must return w unchanged")
	}
}
