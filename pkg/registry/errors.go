package registry

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable error kind. Callers branch on kinds rather
// than matching detail strings.
type Kind string

const (
	// KindUnknown represents an error the registry did not produce.
	KindUnknown Kind = "UNKNOWN"

	// KindNotFound: the activity name is not in the registry.
	KindNotFound Kind = "NOT_FOUND"

	// KindConflict: duplicate signup, or unregistering an absent email.
	KindConflict Kind = "CONFLICT"
)

// Error carries the kind plus the activity/email it refers to. The
// human-readable detail is fixed at construction so transports can
// render it without knowing which operation failed.
type Error struct {
	Kind     Kind
	Activity string
	Email    string

	detail string
}

func (e *Error) Error() string { return e.detail }

// Detail is the client-facing message for this error.
func (e *Error) Detail() string { return e.detail }

func NotFoundError(activity string) *Error {
	return &Error{
		Kind:     KindNotFound,
		Activity: activity,
		detail:   "Activity not found",
	}
}

func AlreadySignedUpError(activity, email string) *Error {
	return &Error{
		Kind:     KindConflict,
		Activity: activity,
		Email:    email,
		detail:   fmt.Sprintf("%s is already signed up for %s", email, activity),
	}
}

func NotRegisteredError(activity, email string) *Error {
	return &Error{
		Kind:     KindConflict,
		Activity: activity,
		Email:    email,
		detail:   fmt.Sprintf("%s is not registered for %s", email, activity),
	}
}

// KindOf extracts the kind from err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
