// Throttles HTTP response bodies.

package bandwidth

import (
	"context"
	"net/http"
	"time"
)

// chunkSize bounds how many bytes are reserved at once so large bodies are
// paced smoothly.
const chunkSize = 16 << 10

type responseWriter struct {
	http.ResponseWriter
	ctx context.Context
	l   *Limiter
}

// NewResponseWriter returns a writer that paces body writes through l. A
// write stops early with the context error when ctx is cancelled.
func NewResponseWriter(ctx context.Context, w http.ResponseWriter, l *Limiter) http.ResponseWriter {
	if l == nil {
		return w
	}
	return &responseWriter{ResponseWriter: w, ctx: ctx, l: l}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	written := 0
	for len(b) > 0 {
		n := min(len(b), chunkSize)
		if err := sleep(rw.ctx, rw.l.Reserve(int64(n))); err != nil {
			return written, err
		}
		m, err := rw.ResponseWriter.Write(b[:n])
		written += m
		if err != nil {
			return written, err
		}
		b = b[n:]
	}
	return written, nil
}

// Unwrap returns the underlying ResponseWriter for http.ResponseController.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Middleware throttles every response body of next through l.
func Middleware(l *Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(NewResponseWriter(r.Context(), w, l), r)
	})
}
