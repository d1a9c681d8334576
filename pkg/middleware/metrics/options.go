package metrics

import (
	"net/http"
	"strings"
	"sync"
)

var (
	skipMu    sync.RWMutex
	skipPaths = map[string]struct{}{"/metrics": {}}

	normMu         sync.RWMutex
	pathNormalizer = defaultNormalizer
)

// defaultNormalizer collapses the per-activity roster routes into one
// label each so activity names don't blow up the uri cardinality.
func defaultNormalizer(r *http.Request) string {
	p := r.URL.Path
	if strings.HasPrefix(p, "/activities/") {
		if strings.HasSuffix(p, "/signup") {
			return "/activities/{name}/signup"
		}
		if strings.HasSuffix(p, "/unregister") {
			return "/activities/{name}/unregister"
		}
	}
	if strings.HasPrefix(p, "/static/") {
		return "/static/*"
	}
	return p
}

// AddMetricsSkipPaths lets callers extend the skip list (default keeps only "/metrics").
func AddMetricsSkipPaths(paths ...string) {
	skipMu.Lock()
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p != "" {
			skipPaths[p] = struct{}{}
		}
	}
	skipMu.Unlock()
}

// SetPathNormalizer overrides the uri label normalization.
func SetPathNormalizer(fn func(*http.Request) string) {
	if fn == nil {
		return
	}
	normMu.Lock()
	pathNormalizer = fn
	normMu.Unlock()
}

func isSkipPath(r *http.Request) bool {
	skipMu.RLock()
	_, ok := skipPaths[r.URL.Path]
	skipMu.RUnlock()
	return ok
}

func normalizePath(r *http.Request) string {
	normMu.RLock()
	fn := pathNormalizer
	normMu.RUnlock()
	return fn(r)
}
