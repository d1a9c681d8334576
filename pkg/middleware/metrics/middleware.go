package metrics

import (
	"net/http"
	"strconv"
	"time"

	chimd "github.com/go-chi/chi/v5/middleware"
)

// Collect produces the HTTP middleware that records the counters/histogram.
func Collect() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimd.NewWrapResponseWriter(w, r.ProtoMajor)
			startTime := time.Now()

			defer func() {
				elapsed := time.Since(startTime)
				if !isSkipPath(r) {
					code := strconv.Itoa(ww.Status())
					uri := normalizePath(r) // path only; avoid cardinality explosion
					totalHttpRequestsToUri.WithLabelValues(code, uri, r.Method).Inc()
					totalHttpRequests.WithLabelValues(code, r.Method).Inc()
					responseTime.Observe(elapsed.Seconds())
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
