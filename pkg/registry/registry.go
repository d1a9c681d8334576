// Package registry holds the in-memory activity roster.
//
// The set of activities is fixed at construction time; only participant
// lists mutate afterwards. A Store is meant to be owned by the server
// wiring and handed to handlers, not reached through a package global.
package registry

import (
	"sync"

	"github.com/samber/lo"
)

// Activity is one extracurricular offering. MaxParticipants is advisory:
// signups past capacity are allowed.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

func (a Activity) clone() Activity {
	out := a
	// Non-nil even when empty so rosters serialize as [] rather than null.
	out.Participants = append(make([]string, 0, len(a.Participants)), a.Participants...)
	return out
}

// Store maps activity name -> activity record. The mutex covers the
// check-then-mutate step in Signup/Unregister so concurrent requests
// cannot lose updates.
type Store struct {
	mu         sync.RWMutex
	activities map[string]*Activity
}

// NewStore seeds a store from the given activities. Seed data is copied;
// callers keep no aliases into the store's state.
func NewStore(seed map[string]Activity) *Store {
	acts := make(map[string]*Activity, len(seed))
	for name, a := range seed {
		c := a.clone()
		acts[name] = &c
	}
	return &Store{activities: acts}
}

// List returns a snapshot of every activity with its current participants.
func (s *Store) List() map[string]Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Activity, len(s.activities))
	for name, a := range s.activities {
		out[name] = a.clone()
	}
	return out
}

// Signup appends email to the activity's roster. It fails with
// KindNotFound for an unknown activity and KindConflict when the email
// is already on the roster.
func (s *Store) Signup(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return NotFoundError(name)
	}
	if lo.Contains(a.Participants, email) {
		return AlreadySignedUpError(name, email)
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// Unregister removes email from the activity's roster. It fails with
// KindNotFound for an unknown activity and KindConflict when the email
// is not on the roster.
func (s *Store) Unregister(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return NotFoundError(name)
	}
	if !lo.Contains(a.Participants, email) {
		return NotRegisteredError(name, email)
	}
	// At most one entry exists; the no-duplicates invariant is kept by Signup.
	a.Participants = lo.Without(a.Participants, email)
	return nil
}

// Len reports the number of seeded activities.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.activities)
}
