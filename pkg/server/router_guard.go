package server

import (
	"net/http"

	"github.com/mergington/activities/pkg/middleware/auth"
)

// withWriteGuard requires an authenticated caller when guarding is on.
// With no auth middleware wired, a guarded route always refuses.
func withWriteGuard(next http.HandlerFunc, a *auth.Middleware, required bool) http.HandlerFunc {
	if !required {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if a == nil || !a.IsAuthenticated(r.Context()) {
			writeDetail(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next(w, r)
	}
}
