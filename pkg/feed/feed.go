// Package feed publishes roster-change events to an external relay.
// The feed is best-effort: handlers log publish failures and still
// confirm the roster change to the caller.
package feed

import (
	"context"
	"time"
)

const (
	EventSignup       = "signup"
	EventUnregister   = "unregister"
	topicRosterEvents = "roster-events"
)

// Event is one roster change.
type Event struct {
	ID       string    `json:"id"`
	Kind     string    `json:"kind"`
	Activity string    `json:"activity"`
	Email    string    `json:"email"`
	At       time.Time `json:"at"`
}

// Feed accepts roster events for delivery.
type Feed interface {
	Publish(ctx context.Context, ev Event) error
}

// noopFeed accepts events and discards them; used when no target is
// configured.
type noopFeed struct{}

func (noopFeed) Publish(context.Context, Event) error { return nil }
