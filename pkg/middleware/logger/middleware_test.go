package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMiddleware_AccessLog(t *testing.T) {
	req := require.New(t)

	core, logs := observer.New(zap.InfoLevel)
	prev := httpAccessLogger
	SetAccessLogger(zap.New(core))
	t.Cleanup(func() { SetAccessLogger(prev) })

	m := &Middleware{}
	h := m.Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))

	r := httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup?email=ava@mergington.edu", nil)
	h.ServeHTTP(httptest.NewRecorder(), r)

	req.Equal(1, logs.Len())
	fields := logs.All()[0].ContextMap()
	req.Equal("POST", fields["httpMethod"])
	req.Equal(int64(http.StatusOK), fields["status"])
	req.Equal(false, fields["isAuthenticated"])
	req.Equal("ava@mergington.edu", fields["email"])
}

func TestMiddleware_AccessLog_NoEmailOutsideRosterWrites(t *testing.T) {
	req := require.New(t)

	core, logs := observer.New(zap.InfoLevel)
	prev := httpAccessLogger
	SetAccessLogger(zap.New(core))
	t.Cleanup(func() { SetAccessLogger(prev) })

	m := &Middleware{}
	h := m.Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/activities?email=ava@mergington.edu", nil))

	req.Equal(1, logs.Len())
	req.NotContains(logs.All()[0].ContextMap(), "email")
}
