// Package bandwidth throttles egress traffic with a shared token bucket.
package bandwidth

import (
	"sync"
	"time"
)

// Limiter is a byte token bucket holding at most one second of traffic.
// A limit of 0 means unlimited.
type Limiter struct {
	mu          sync.Mutex
	bytesPerSec int64
	tokens      float64
	last        time.Time
}

// NewLimiter creates a limiter allowing bytesPerSec bytes per second.
func NewLimiter(bytesPerSec int64) *Limiter {
	return &Limiter{bytesPerSec: bytesPerSec, tokens: float64(bytesPerSec), last: time.Now()}
}

// Reserve takes n bytes from the bucket and returns how long the caller must
// wait before sending them. The debt is accounted for immediately so
// concurrent callers queue behind each other.
func (l *Limiter) Reserve(n int64) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.bytesPerSec <= 0 {
		return 0
	}
	now := time.Now()
	if now.After(l.last) {
		l.tokens = min(l.tokens+now.Sub(l.last).Seconds()*float64(l.bytesPerSec), float64(l.bytesPerSec))
		l.last = now
	}
	if l.tokens >= float64(n) {
		l.tokens -= float64(n)
		return 0
	}
	wait := time.Duration((float64(n) - l.tokens) / float64(l.bytesPerSec) * float64(time.Second))
	l.tokens = 0
	l.last = l.last.Add(wait)
	return l.last.Sub(now)
}

// Update changes the limit. 0 means unlimited.
func (l *Limiter) Update(bytesPerSec int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bytesPerSec = bytesPerSec
	if bytesPerSec > 0 && l.tokens > float64(bytesPerSec) {
		l.tokens = float64(bytesPerSec)
	}
}

// Limit returns the current limit in bytes per second.
func (l *Limiter) Limit() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bytesPerSec
}
