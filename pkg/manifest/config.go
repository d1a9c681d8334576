// Package manifest defines the TOML manifest that seeds the service:
// server settings plus the fixed activity catalog.
package manifest

// Config is the top-level manifest.
type Config struct {
	Server     Server     `toml:"server"`
	Activities []Activity `toml:"activity"`
}

// Server holds transport-level settings.
type Server struct {
	Listen    string `toml:"listen"`
	StaticDir string `toml:"static_dir"`

	// GuardWrites requires an authenticated caller on signup/unregister.
	// Off by default; listing and static assets are always open.
	GuardWrites bool `toml:"guard_writes"`
}

// Activity is one seeded activity block ([[activity]]).
type Activity struct {
	Name            string   `toml:"name" validate:"required"`
	Description     string   `toml:"description"`
	Schedule        string   `toml:"schedule"`
	MaxParticipants int      `toml:"max_participants" validate:"gt=0"`
	Participants    []string `toml:"participants" validate:"dive,required,email"`
}
