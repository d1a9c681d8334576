// Package serverfx assembles the activity service: config, store,
// middleware, router, and the HTTP server lifecycle.
package serverfx

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/mergington/activities/pkg/feed"
	"github.com/mergington/activities/pkg/manifest"
	"github.com/mergington/activities/pkg/middleware/auth"
	"github.com/mergington/activities/pkg/middleware/logger"
	"github.com/mergington/activities/pkg/middleware/metrics"
	"github.com/mergington/activities/pkg/registry"
	"github.com/mergington/activities/pkg/server"
	"github.com/mergington/activities/pkg/transport/httpx"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ---------- Options ----------

type Config struct {
	Service         string // for logs only
	ManifestEnv     string // e.g., ACTIVITIES_MANIFEST
	DefaultManifest string // e.g., "activities.toml"
	ListenEnv       string // overrides [server].listen when set
	TLSCertEnv      string
	TLSKeyEnv       string
}

type Option func(*Config)

func WithService(s string) Option            { return func(c *Config) { c.Service = s } }
func WithManifestEnv(k string) Option        { return func(c *Config) { c.ManifestEnv = k } }
func WithDefaultManifest(path string) Option { return func(c *Config) { c.DefaultManifest = path } }
func WithListenEnv(k string) Option          { return func(c *Config) { c.ListenEnv = k } }
func WithTLSCertKeyEnv(cert, key string) Option {
	return func(c *Config) { c.TLSCertEnv, c.TLSKeyEnv = cert, key }
}

func defaultConfig() Config {
	return Config{
		Service:         "activities",
		ManifestEnv:     "ACTIVITIES_MANIFEST",
		DefaultManifest: "activities.toml",
		ListenEnv:       "SERVER_LISTEN_ADDRESS",
		TLSCertEnv:      "SSL_SERVER_CERTIFICATE",
		TLSKeyEnv:       "SSL_SERVER_KEY",
	}
}

// Module returns a complete Fx option set; add app-specific fx.Invoke(...) alongside.
func Module(opts ...Option) fx.Option {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return fx.Options(
		// Core middleware
		auth.Module,
		logger.Module,
		fx.Provide(fx.Annotate(metrics.ProvideMetrics, fx.ResultTags(`name:"metrics"`))),
		// Router impl
		fx.Provide(httpx.NewChi),
		// Config into DI
		fx.Provide(func() Config { return cfg }),
		// Manifest, registry, roster feed
		fx.Provide(provideManifest),
		fx.Provide(provideStore),
		feed.Module,
		// Router (named "app")
		fx.Provide(fx.Annotate(
			provideRouter,
			fx.ParamTags(``, ``, ``, `name:"metrics"`, ``, ``, ``, ``),
			fx.ResultTags(`name:"app"`),
		)),
		// Lifecycle
		fx.Invoke(registerHooks),
	)
}

// ---------- Providers ----------

func provideManifest(cfg Config, zl *zap.Logger) manifest.Config {
	path := envOr(cfg.ManifestEnv, cfg.DefaultManifest)
	man, err := manifest.LoadConfig(path)
	if err != nil {
		zl.Fatal("manifest load failed", zap.Error(err), zap.String("path", path))
	}
	return man
}

func provideStore(man manifest.Config, zl *zap.Logger) *registry.Store {
	seed := make(map[string]registry.Activity, len(man.Activities))
	for _, a := range man.Activities {
		seed[a.Name] = registry.Activity{
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    a.Participants,
		}
	}
	st := registry.NewStore(seed)
	zl.Info("activity registry seeded", zap.Int("activities", st.Len()))
	return st
}

func provideRouter(
	man manifest.Config,
	a *auth.Middleware,
	lm *logger.Middleware,
	/* name:"metrics" */ m http.Handler,
	st *registry.Store,
	fd feed.Feed,
	r httpx.Router,
	zl *zap.Logger,
) http.Handler {
	if man.Server.GuardWrites && !a.Enabled() {
		zl.Warn("guard_writes is on but no JWT secret is configured; all writes will be refused")
	}
	return server.BuildRouter(man.Server, server.BuildDeps{
		Auth:    a,
		LogMW:   lm,
		Metrics: m,
		Store:   st,
		Feed:    fd,
		Router:  r,
		Log:     zl,
	})
}

// ---------- Lifecycle ----------

type serverDeps struct {
	fx.In
	Logger *zap.Logger
	Man    manifest.Config
	App    http.Handler `name:"app"`
}

func registerHooks(lc fx.Lifecycle, cfg Config, d serverDeps) {
	addr := envOr(cfg.ListenEnv, d.Man.Server.Listen)
	cert := os.Getenv(cfg.TLSCertEnv)
	key := os.Getenv(cfg.TLSKeyEnv)

	srv := &http.Server{
		Addr:         addr,
		Handler:      d.App,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		TLSConfig:    &tls.Config{MinVersion: tls.VersionTLS13, MaxVersion: tls.VersionTLS13},
	}
	useTLS := fileExists(cert) && fileExists(key)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if useTLS {
				d.Logger.Info("server starting (TLS)",
					zap.String("service", cfg.Service),
					zap.String("addr", addr),
					zap.String("cert", cert),
				)
				go func() {
					if err := srv.ListenAndServeTLS(cert, key); err != nil && !errors.Is(err, http.ErrServerClosed) {
						d.Logger.Fatal("server failed", zap.Error(err))
					}
				}()
			} else {
				d.Logger.Info("server starting (PLAINTEXT)",
					zap.String("service", cfg.Service),
					zap.String("addr", addr),
				)
				go func() {
					srv.TLSConfig = nil
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						d.Logger.Fatal("server failed", zap.Error(err))
					}
				}()
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			d.Logger.Info("server stopping", zap.String("service", cfg.Service))
			return srv.Shutdown(ctx)
		},
	})
}

// ---------- tiny helpers ----------

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
