package server

import "net/http"

// staticFiles serves the front-end. FileServer 301s any path ending in
// /index.html back to the directory, which would turn the root redirect
// into a chain; rewrite those requests to the directory so the index is
// served with a 200 instead.
func staticFiles(dir string) http.Handler {
	fs := http.StripPrefix("/static/", http.FileServer(http.Dir(dir)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/static/index.html" {
			r = r.Clone(r.Context())
			r.URL.Path = "/static/"
			r.URL.RawPath = ""
		}
		fs.ServeHTTP(w, r)
	})
}
