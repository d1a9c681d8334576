package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate normalizes defaults and rejects manifests the service cannot
// seed from: missing names, duplicate names, non-positive capacity,
// malformed or duplicate participant emails, seeds over capacity.
func (c *Config) Validate() error {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8000"
	}
	if c.Server.StaticDir == "" {
		c.Server.StaticDir = "static"
	}

	if len(c.Activities) == 0 {
		return errors.New("no activities defined")
	}

	seen := make(map[string]struct{}, len(c.Activities))
	for i := range c.Activities {
		a := &c.Activities[i]
		a.Name = strings.TrimSpace(a.Name)

		if err := validate.Struct(a); err != nil {
			return fmt.Errorf("activity %d (%q): %w", i, a.Name, err)
		}
		if _, dup := seen[a.Name]; dup {
			return fmt.Errorf("activity %d: duplicate name %q", i, a.Name)
		}
		seen[a.Name] = struct{}{}

		emails := make(map[string]struct{}, len(a.Participants))
		for _, p := range a.Participants {
			if _, dup := emails[p]; dup {
				return fmt.Errorf("activity %q: duplicate participant %q", a.Name, p)
			}
			emails[p] = struct{}{}
		}
		if len(a.Participants) > a.MaxParticipants {
			return fmt.Errorf("activity %q: %d seeded participants exceed max_participants %d",
				a.Name, len(a.Participants), a.MaxParticipants)
		}
	}
	return nil
}
