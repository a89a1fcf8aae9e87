// Defines shared service dependencies for handlers.

package handlers

import (
	"github.com/maruel/cltog/internal/config"
	"github.com/maruel/cltog/internal/substance"
	"github.com/maruel/cltog/internal/web"
)

// Services holds all service dependencies for handlers.
type Services struct {
	Substances *substance.Store
	Renderer   *web.Renderer
}

// Config holds configuration values needed by handlers.
type Config struct {
	// BaseURL is the public origin used in canonical links and the sitemap,
	// without trailing slash.
	BaseURL string
	Version string
	Quotas  config.Quotas
}
