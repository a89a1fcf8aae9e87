// Package main is the entry point for the cltog server.
//
// cltog serves the volume/mass converter site in every supported language and
// a JSON API over the same conversion. Configuration is read from CLI flags,
// a .env file in the data directory, and server_config.json (rate limits and
// quotas).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/lmittmann/tint"
	"github.com/maruel/cltog/internal/config"
	"github.com/maruel/cltog/internal/server"
	"github.com/maruel/cltog/internal/server/bandwidth"
	"github.com/maruel/cltog/internal/server/handlers"
	"github.com/maruel/cltog/internal/server/ipgeo"
	"github.com/maruel/cltog/internal/server/ratelimit"
	"github.com/maruel/cltog/internal/substance"
	"github.com/maruel/cltog/internal/web"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := mainImpl(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "cltog: %v\n", err)
		os.Exit(1)
	}
}

func mainImpl() error {
	version := flag.Bool("version", false, "Print version and exit")
	httpAddr := flag.String("http", "localhost:8080", "Address to listen on (e.g., localhost:8080, :8080, 0.0.0.0:8080). Use 0.0.0.0:port to listen on all interfaces.")
	dataDir := flag.String("data-dir", "./data", "Data directory")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	baseURL := flag.String("base-url", "http://localhost", "Public base URL used in canonical links and the sitemap (e.g., https://example.com)")
	substancesPath := flag.String("substances", "", "Path to a substance catalog YAML file replacing the built-in one; reloaded on change (optional)")
	geoDB := flag.String("geo-db", "", "Path to MaxMind MMDB file for IP geolocation (optional)")
	flag.Parse()
	if len(flag.Args()) > 0 {
		return fmt.Errorf("unknown arguments: %v", flag.Args())
	}

	if *version {
		printVersion()
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()
	ll := &slog.LevelVar{}
	ll.Set(slog.LevelInfo)
	slog.SetDefault(newLogger(ll))

	if err := os.MkdirAll(*dataDir, 0o755); err != nil { //nolint:gosec // G301: 0o755 is intentional for data directories
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	env, err := loadDotEnv(*dataDir)
	if err != nil {
		return err
	}
	serverCfg, err := config.Load(*dataDir)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", config.FileName, err)
	}

	// Override with .env file values if not explicitly set via flags
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	for _, o := range []struct {
		flag string
		key  string
		dst  *string
	}{
		{"http", "HTTP", httpAddr},
		{"log-level", "LOG_LEVEL", logLevel},
		{"base-url", "BASE_URL", baseURL},
		{"substances", "SUBSTANCES", substancesPath},
		{"geo-db", "GEO_DB", geoDB},
	} {
		if v := env[o.key]; !set[o.flag] && v != "" {
			*o.dst = v
		}
	}

	// Normalize addr: ":8080" becomes "localhost:8080"
	addr := *httpAddr
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	// Append port to base URL if localhost and no port specified
	if u, err := url.Parse(*baseURL); err == nil && u.Port() == "" && u.Hostname() == "localhost" {
		if _, p, err := net.SplitHostPort(addr); err == nil {
			u.Host = net.JoinHostPort(u.Hostname(), p)
			*baseURL = u.String()
		}
	}

	if err := setLevel(ll, *logLevel); err != nil {
		return err
	}

	store := substance.NewStore(substance.Default())
	if *substancesPath != "" {
		if err := store.Reload(*substancesPath); err != nil {
			return fmt.Errorf("failed to load substances: %w", err)
		}
		if err := store.Watch(ctx, *substancesPath); err != nil {
			return fmt.Errorf("failed to watch substances: %w", err)
		}
		slog.InfoContext(ctx, "Substance catalog loaded", "path", *substancesPath, "count", len(store.Get().All()))
	}

	// Watch own executable for modifications (for development restarts)
	if err := watchExecutable(ctx, stop); err != nil {
		return fmt.Errorf("failed to watch executable: %w", err)
	}

	// Open IP geolocation database if configured
	var geoChecker *ipgeo.Checker
	if *geoDB != "" {
		geoChecker, err = ipgeo.Open(*geoDB)
		if err != nil {
			return fmt.Errorf("failed to open geo database: %w", err)
		}
		defer func() { _ = geoChecker.Close() }()
		slog.InfoContext(ctx, "IP geolocation enabled", "db", *geoDB)
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		return err
	}
	limiters := ratelimit.NewConfig(ratelimit.Rates{
		APIPerMin:   serverCfg.RateLimits.APIRatePerMin,
		PagesPerMin: serverCfg.RateLimits.PagesRatePerMin,
	})
	defer limiters.Close()
	egress := bandwidth.NewLimiter(serverCfg.Quotas.MaxEgressBandwidthBps)
	go reloadOnHangup(ctx, *dataDir, egress)

	buildVersion, _, _, _ := getBuildInfo()
	svc := &handlers.Services{Substances: store, Renderer: renderer}
	cfg := &handlers.Config{
		BaseURL: strings.TrimRight(*baseURL, "/"),
		Version: buildVersion,
		Quotas:  serverCfg.Quotas,
	}
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.NewRouter(svc, cfg, server.Options{Limiters: limiters, Geo: geoChecker, Egress: egress}),
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "Starting server", "addr", addr, "baseURL", *baseURL, "version", buildVersion)
		serverErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		slog.InfoContext(ctx, "Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		slog.InfoContext(ctx, "Server stopped")
	}
	return nil
}

func newLogger(ll *slog.LevelVar) *slog.Logger {
	// Skip timestamps when running under systemd (it adds its own).
	underSystemd := os.Getenv("JOURNAL_STREAM") != ""
	return slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      ll,
		TimeFormat: "15:04:05.000", // Like time.TimeOnly plus milliseconds.
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if underSystemd && a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			if dropAttr(a) {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// dropAttr reports whether a carries no information worth a log column.
func dropAttr(a slog.Attr) bool {
	if a.Key == "ip" {
		if v := a.Value.String(); v == "127.0.0.1" || v == "::1" {
			return true
		}
	}
	switch t := a.Value.Any().(type) {
	case string:
		return t == ""
	case bool:
		return !t
	case uint64:
		return t == 0
	case int64:
		return t == 0
	case float64:
		return t == 0
	case time.Time:
		return t.IsZero()
	case time.Duration:
		return t == 0
	case nil:
		return true
	}
	return false
}

func setLevel(ll *slog.LevelVar, level string) error {
	switch level {
	case "debug":
		ll.Set(slog.LevelDebug)
	case "info":
		ll.Set(slog.LevelInfo)
	case "warn":
		ll.Set(slog.LevelWarn)
	case "error":
		ll.Set(slog.LevelError)
	default:
		return fmt.Errorf("unknown log level: %q", level)
	}
	return nil
}

// reloadOnHangup re-reads server_config.json on SIGHUP and applies the new
// egress limit. Rate limits apply at the next restart.
func reloadOnHangup(ctx context.Context, dataDir string, egress *bandwidth.Limiter) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	defer signal.Stop(c)
	for {
		select {
		case <-ctx.Done():
			return
		case <-c:
			cfg, err := config.Load(dataDir)
			if err != nil {
				slog.WarnContext(ctx, "Failed to reload config", "err", err)
				continue
			}
			egress.Update(cfg.Quotas.MaxEgressBandwidthBps)
			slog.InfoContext(ctx, "Config reloaded", "egress_bps", cfg.Quotas.MaxEgressBandwidthBps)
		}
	}
}

func printVersion() {
	version, goVersion, revision, dirty := getBuildInfo()
	fmt.Printf("cltog %s\n", version)
	fmt.Printf("  Go version: %s\n", goVersion)
	fmt.Printf("  Revision:   %s\n", revision)
	if dirty {
		fmt.Printf("  Modified:   true\n")
	}
}

func getBuildInfo() (version, goVersion, revision string, dirty bool) {
	version = "unknown"
	goVersion = "unknown"
	revision = "unknown"
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	version = info.Main.Version
	if version == "" || version == "(devel)" {
		version = "dev"
	}
	goVersion = info.GoVersion
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	return
}

// watchExecutable watches the current executable for modifications and calls
// stop to trigger graceful shutdown when detected.
func watchExecutable(ctx context.Context, stop context.CancelFunc) error {
	exe, err := os.Executable()
	if err != nil {
		return err
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(exe); err != nil {
		_ = w.Close()
		return err
	}
	go func() {
		defer func() { _ = w.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Chmod) {
					slog.InfoContext(ctx, "Executable modified, initiating shutdown")
					stop()
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.WarnContext(ctx, "Error watching executable", "err", err)
			}
		}
	}()
	return nil
}
