package server

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mergington/activities/pkg/feed"
	"github.com/mergington/activities/pkg/middleware/metrics"
	"github.com/mergington/activities/pkg/registry"
	"go.uber.org/zap"
)

// Handlers serves the activity API against an injected store.
type Handlers struct {
	Store *registry.Store
	Feed  feed.Feed
	Log   *zap.Logger
}

// ListActivities returns the full activity mapping.
func (h *Handlers) ListActivities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.List())
}

// Signup adds the email query value to the named activity's roster.
func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email, ok := requireEmail(w, r)
	if !ok {
		return
	}

	if err := h.Store.Signup(name, email); err != nil {
		renderError(w, err)
		return
	}

	metrics.ObserveSignup(name)
	h.publish(r, feed.EventSignup, name, email)
	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

// Unregister removes the email query value from the named activity's roster.
func (h *Handlers) Unregister(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email, ok := requireEmail(w, r)
	if !ok {
		return
	}

	if err := h.Store.Unregister(name, email); err != nil {
		renderError(w, err)
		return
	}

	metrics.ObserveUnregistration(name)
	h.publish(r, feed.EventUnregister, name, email)
	writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// publish emits a roster event; delivery failures are logged, never
// surfaced to the caller.
func (h *Handlers) publish(r *http.Request, kind, activity, email string) {
	if h.Feed == nil {
		return
	}
	ev := feed.Event{
		ID:       uuid.NewString(),
		Kind:     kind,
		Activity: activity,
		Email:    email,
		At:       time.Now().UTC(),
	}
	if err := h.Feed.Publish(r.Context(), ev); err != nil && h.Log != nil {
		h.Log.Error("roster event publish failed",
			zap.String("kind", kind),
			zap.String("activity", activity),
			zap.Error(err),
		)
	}
}

// activityName extracts the {name} path segment. Activity names contain
// spaces, so the raw segment may arrive percent-encoded.
func activityName(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

func requireEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeDetail(w, http.StatusBadRequest, "email query parameter is required")
		return "", false
	}
	return email, true
}
