// Package server implements the HTTP server and routing logic.
package server

import (
	"net/http"

	"github.com/maruel/cltog/internal/server/bandwidth"
	"github.com/maruel/cltog/internal/server/dto"
	"github.com/maruel/cltog/internal/server/handlers"
	"github.com/maruel/cltog/internal/server/ipgeo"
	"github.com/maruel/cltog/internal/server/ratelimit"
	"github.com/maruel/cltog/internal/web"
)

// Options are the optional cross-cutting services of the router. Zero
// values disable the matching feature.
type Options struct {
	Limiters *ratelimit.Config
	Geo      *ipgeo.Checker
	Egress   *bandwidth.Limiter
}

// NewRouter creates and configures the HTTP router.
// Serves the JSON API at /api/*, embedded assets at /static/ and the site
// everywhere else.
func NewRouter(svc *handlers.Services, cfg *handlers.Config, opts Options) http.Handler {
	mux := &http.ServeMux{}
	lim := opts.Limiters

	hh := handlers.NewHealthHandler(cfg.Version)
	ch := handlers.NewConvertHandler(svc.Substances)
	sh := handlers.NewSubstanceHandler(svc.Substances)
	ph := handlers.NewPageHandler(svc, cfg)

	// API
	mux.Handle("GET /api/health", Wrap(hh.Health, cfg, lim))
	mux.Handle("GET /api/v1/convert", Wrap(ch.Convert, cfg, lim))
	mux.Handle("POST /api/v1/convert", Wrap(ch.Convert, cfg, lim))
	mux.Handle("GET /api/v1/substances", Wrap(sh.List, cfg, lim))
	mux.Handle("GET /api/v1/substances/schema", Wrap(sh.Schema, cfg, lim))
	apiNotFound := func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, dto.NotFound("endpoint "+r.URL.Path))
	}
	mux.HandleFunc("GET /api/", apiNotFound)
	mux.HandleFunc("POST /api/", apiNotFound)

	// Assets
	static := cacheStatic(http.FileServerFS(web.Static()))
	mux.Handle("GET /static/", bandwidth.Middleware(opts.Egress, http.StripPrefix("/static", static)))
	mux.HandleFunc("GET /robots.txt", ph.Robots)

	// Site
	mux.Handle("GET /sitemap.xml", limitPages(lim, http.HandlerFunc(ph.Sitemap)))
	mux.Handle("GET /", limitPages(lim, bandwidth.Middleware(opts.Egress, ph)))

	return withRequestMetadata(opts.Geo, accessLog(mux))
}
