package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultNormalizer(t *testing.T) {
	req := require.New(t)

	cases := []struct {
		target string
		want   string
	}{
		{"/activities/Chess%20Club/signup", "/activities/{name}/signup"},
		{"/activities/Chess%20Club/unregister", "/activities/{name}/unregister"},
		{"/static/app.js", "/static/*"},
		{"/activities", "/activities"},
		{"/ping", "/ping"},
	}
	for _, c := range cases {
		r := httptest.NewRequest(http.MethodGet, c.target, nil)
		req.Equal(c.want, defaultNormalizer(r), c.target)
	}
}

func TestAddMetricsSkipPaths(t *testing.T) {
	req := require.New(t)

	req.True(isSkipPath(httptest.NewRequest(http.MethodGet, "/metrics", nil)))
	req.False(isSkipPath(httptest.NewRequest(http.MethodGet, "/healthz", nil)))

	AddMetricsSkipPaths("/healthz", " ", "")
	req.True(isSkipPath(httptest.NewRequest(http.MethodGet, "/healthz", nil)))
	req.False(isSkipPath(httptest.NewRequest(http.MethodGet, "/activities", nil)))
}

func TestSetPathNormalizer(t *testing.T) {
	req := require.New(t)
	t.Cleanup(func() { SetPathNormalizer(defaultNormalizer) })

	SetPathNormalizer(func(*http.Request) string { return "/custom" })
	req.Equal("/custom", normalizePath(httptest.NewRequest(http.MethodGet, "/anything", nil)))

	// nil is ignored, the current normalizer stays
	SetPathNormalizer(nil)
	req.Equal("/custom", normalizePath(httptest.NewRequest(http.MethodGet, "/anything", nil)))
}
