// Defines rate limit tiers and routing rules.

package ratelimit

import (
	"strings"
	"time"
)

// Scope defines how rate limit keys are determined.
type Scope int

const (
	// ScopeIP uses client IP address as the rate limit key.
	ScopeIP Scope = iota
)

// Tier defines a rate limit tier with its limiter and scope.
type Tier struct {
	Name    string
	Limiter *Limiter
	Scope   Scope
}

// Rates is the per-minute budget of each tier. 0 disables the tier.
type Rates struct {
	APIPerMin   int
	PagesPerMin int
}

// Config holds rate limiters for different tiers. A nil tier is unlimited.
type Config struct {
	API   *Tier
	Pages *Tier
}

// NewConfig creates the tiers. The burst is a sixth of the per-minute rate,
// at least one request.
func NewConfig(r Rates) *Config {
	return &Config{
		API:   newTier("api", r.APIPerMin),
		Pages: newTier("pages", r.PagesPerMin),
	}
}

func newTier(name string, perMin int) *Tier {
	if perMin <= 0 {
		return nil
	}
	return &Tier{
		Name:    name,
		Limiter: NewLimiter(perMin, time.Minute, max(perMin/6, 1)),
		Scope:   ScopeIP,
	}
}

// Match returns the tier for a request.
// Returns nil for paths that should not be rate limited.
func (c *Config) Match(method, path string) *Tier {
	if c == nil {
		return nil
	}
	switch {
	case path == "/api/health":
		return nil
	case strings.HasPrefix(path, "/static/"), path == "/robots.txt":
		return nil
	case strings.HasPrefix(path, "/api/"):
		return c.API
	case method == "GET" || method == "HEAD":
		return c.Pages
	}
	return nil
}

// Close stops all limiter cleanup goroutines.
func (c *Config) Close() {
	if c == nil {
		return
	}
	for _, t := range []*Tier{c.API, c.Pages} {
		if t != nil {
			t.Limiter.Close()
		}
	}
}
