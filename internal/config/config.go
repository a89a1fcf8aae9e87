// Package config manages server configuration stored in server_config.json.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the configuration file name inside the data directory.
const FileName = "server_config.json"

// ServerConfig stores all server-wide configuration.
// Loaded from server_config.json, created with defaults if missing.
type ServerConfig struct {
	// Quotas defines server-wide resource limits.
	Quotas Quotas `json:"quotas"`

	// RateLimits defines rate limiting configuration.
	RateLimits RateLimits `json:"rate_limits"`
}

// RateLimits defines per client IP rate limits in requests per minute.
type RateLimits struct {
	// APIRatePerMin limits /api/ calls. 0 means unlimited.
	APIRatePerMin int `json:"api_rate_per_min"`

	// PagesRatePerMin limits HTML pages and the sitemap. 0 means unlimited.
	PagesRatePerMin int `json:"pages_rate_per_min"`
}

// Validate checks that rate limit values are non-negative.
func (r *RateLimits) Validate() error {
	if r.APIRatePerMin < 0 {
		return errors.New("api_rate_per_min must be non-negative")
	}
	if r.PagesRatePerMin < 0 {
		return errors.New("pages_rate_per_min must be non-negative")
	}
	return nil
}

// DefaultRateLimits returns the default rate limits.
func DefaultRateLimits() RateLimits {
	return RateLimits{
		APIRatePerMin:   600,
		PagesRatePerMin: 1200,
	}
}

// Quotas defines server-wide resource limits.
type Quotas struct {
	// MaxRequestBodyBytes limits the size of any single API request body.
	MaxRequestBodyBytes int64 `json:"max_request_body_bytes"`

	// MaxEgressBandwidthBps limits total egress bandwidth in bytes per second.
	// 0 means unlimited.
	MaxEgressBandwidthBps int64 `json:"max_egress_bandwidth_bps"`
}

// Validate checks the quota values.
func (q *Quotas) Validate() error {
	if q.MaxRequestBodyBytes <= 0 {
		return errors.New("max_request_body_bytes must be positive")
	}
	if q.MaxEgressBandwidthBps < 0 {
		return errors.New("max_egress_bandwidth_bps must be non-negative")
	}
	return nil
}

// DefaultQuotas returns the default server-wide quotas.
func DefaultQuotas() Quotas {
	return Quotas{
		MaxRequestBodyBytes:   64 * 1024, // 64 KiB
		MaxEgressBandwidthBps: 0,         // unlimited
	}
}

// Default returns the configuration written on first start.
func Default() *ServerConfig {
	return &ServerConfig{Quotas: DefaultQuotas(), RateLimits: DefaultRateLimits()}
}

// Validate checks that the configuration is valid.
func (c *ServerConfig) Validate() error {
	if err := c.Quotas.Validate(); err != nil {
		return fmt.Errorf("quotas: %w", err)
	}
	if err := c.RateLimits.Validate(); err != nil {
		return fmt.Errorf("rate_limits: %w", err)
	}
	return nil
}

// Load loads configuration from dataDir/server_config.json.
// Creates the file with defaults if it doesn't exist. Fields missing from the
// file keep their default value.
func Load(dataDir string) (*ServerConfig, error) {
	path := filepath.Join(dataDir, FileName)
	cfg := Default()
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is constructed from dataDir, not user input
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := cfg.Save(dataDir); err != nil {
			return nil, err
		}
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	return cfg, nil
}

// Save saves configuration to dataDir/server_config.json.
func (c *ServerConfig) Save(dataDir string) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(filepath.Join(dataDir, FileName), data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", FileName, err)
	}
	return nil
}
