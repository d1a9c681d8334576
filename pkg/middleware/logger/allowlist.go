package logger

import (
	"net/http"
	"strings"
)

// rosterEmail returns the email query value for signup/unregister
// requests, and "" for everything else.
func rosterEmail(r *http.Request) string {
	if r.Method != http.MethodPost && r.Method != http.MethodDelete {
		return ""
	}
	p := r.URL.Path
	if !strings.HasPrefix(p, "/activities/") {
		return ""
	}
	if !strings.HasSuffix(p, "/signup") && !strings.HasSuffix(p, "/unregister") {
		return ""
	}
	return r.URL.Query().Get("email")
}
