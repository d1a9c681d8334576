package server

import (
	"net/http"

	chimd "github.com/go-chi/chi/v5/middleware"
	"github.com/mergington/activities/pkg/feed"
	"github.com/mergington/activities/pkg/manifest"
	"github.com/mergington/activities/pkg/middleware/auth"
	"github.com/mergington/activities/pkg/middleware/logger"
	hmetrics "github.com/mergington/activities/pkg/middleware/metrics"
	"github.com/mergington/activities/pkg/registry"
	"github.com/mergington/activities/pkg/transport/httpx"
	"go.uber.org/zap"
)

type BuildDeps struct {
	Auth    *auth.Middleware
	LogMW   *logger.Middleware
	Metrics http.Handler
	Store   *registry.Store
	Feed    feed.Feed
	Router  httpx.Router
	Log     *zap.Logger
}

// BuildRouter assembles the full HTTP surface: middleware chain, ops
// endpoints, static front-end, and the activity API.
func BuildRouter(cfg manifest.Server, d BuildDeps) http.Handler {
	r := d.Router
	r.Use(chimd.RequestID, chimd.Recoverer, chimd.Heartbeat("/ping"))

	if d.Auth != nil {
		r.Use(d.Auth.Middleware())
	}
	if d.LogMW != nil {
		r.Use(d.LogMW.Middleware(d.Auth))
	}
	r.Use(hmetrics.Collect())

	if d.Metrics != nil {
		r.Handle(http.MethodGet, "/metrics", d.Metrics)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})

	// Front-end: root redirects to the static index, query string ignored.
	r.Get("/", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/static/index.html", http.StatusTemporaryRedirect)
	}))
	r.Handle(http.MethodGet, "/static/*", staticFiles(cfg.StaticDir))

	h := &Handlers{Store: d.Store, Feed: d.Feed, Log: d.Log}

	r.Get("/activities", http.HandlerFunc(h.ListActivities))
	r.Post("/activities/{name}/signup",
		withWriteGuard(h.Signup, d.Auth, cfg.GuardWrites))
	r.Delete("/activities/{name}/unregister",
		withWriteGuard(h.Unregister, d.Auth, cfg.GuardWrites))

	return r.Mux()
}
