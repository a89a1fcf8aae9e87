// Provides request-scoped middleware shared by every route.

package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/maruel/cltog/internal/server/ipgeo"
	"github.com/maruel/cltog/internal/server/ratelimit"
	"github.com/maruel/cltog/internal/server/reqctx"
	"github.com/maruel/ksid"
)

// withRequestMetadata stores the request ID, client IP, User-Agent,
// Accept-Language and country code in the request context.
func withRequestMetadata(geo *ipgeo.Checker, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ksid.NewID()
		ip := reqctx.GetClientIP(r)
		ctx := r.Context()
		ctx = reqctx.WithRequestID(ctx, id)
		ctx = reqctx.WithClientIP(ctx, ip)
		ctx = reqctx.WithUserAgent(ctx, r.Header.Get("User-Agent"))
		ctx = reqctx.WithAcceptLanguage(ctx, r.Header.Get("Accept-Language"))
		ctx = reqctx.WithCountryCode(ctx, geo.CountryCode(ip))
		w.Header().Set("X-Request-ID", id.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusRecorder captures the status code and body size for the access log.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += int64(n)
	return n, err
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

// accessLog logs one line per request once it is served.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		ctx := r.Context()
		level := slog.LevelInfo
		if rec.status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		slog.Log(ctx, level, "http",
			"m", r.Method,
			"p", r.URL.Path,
			"s", rec.status,
			"b", rec.bytes,
			"d", time.Since(start).Round(time.Microsecond),
			"ip", reqctx.ClientIP(ctx),
			"cc", reqctx.CountryCode(ctx),
			"rid", reqctx.RequestID(ctx).String(),
		)
	})
}

// limitPages applies the page tier to HTML responses.
func limitPages(limiters *ratelimit.Config, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		if w, ok = ratelimit.Check(w, limiters.Match(r.Method, r.URL.Path), reqctx.ClientIP(r.Context()), writeRateLimitPage); !ok {
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeRateLimitPage(w http.ResponseWriter, _ ratelimit.Result) {
	http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}

// cacheStatic marks embedded assets as cacheable for a day.
func cacheStatic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=86400")
		next.ServeHTTP(w, r)
	})
}
