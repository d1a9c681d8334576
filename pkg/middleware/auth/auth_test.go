package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret, sub, role string) string {
	t.Helper()
	claims := struct {
		jwt.RegisteredClaims
		Role string `json:"role"`
	}{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: role,
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

// runThrough passes the request through the middleware and reports what
// the downstream handler observed.
func runThrough(m *Middleware, r *http.Request) (got User, authed, admin bool) {
	h := m.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = m.GetUser(r.Context())
		authed = m.IsAuthenticated(r.Context())
		admin = m.IsAdmin(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), r)
	return got, authed, admin
}

func TestMiddleware_ValidBearer(t *testing.T) {
	req := require.New(t)
	m := NewStatic("s3cret", "teacher")

	r := httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup?email=a@mergington.edu", nil)
	r.Header.Set("Authorization", "Bearer "+signToken(t, "s3cret", "rodriguez", "teacher"))

	u, authed, admin := runThrough(m, r)
	req.True(authed)
	req.True(admin)
	req.Equal("rodriguez", u.Username)
	req.Equal("teacher", u.Role.Name)
}

func TestMiddleware_WrongSecret_Unauthenticated(t *testing.T) {
	req := require.New(t)
	m := NewStatic("s3cret", "")

	r := httptest.NewRequest(http.MethodGet, "/activities", nil)
	r.Header.Set("Authorization", "Bearer "+signToken(t, "other", "rodriguez", ""))

	_, authed, _ := runThrough(m, r)
	req.False(authed)
}

func TestMiddleware_ExpiredToken_Unauthenticated(t *testing.T) {
	req := require.New(t)
	m := &Middleware{secret: []byte("s3cret"), leeway: time.Second}

	claims := jwt.RegisteredClaims{
		Subject:   "rodriguez",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s3cret"))
	req.NoError(err)

	r := httptest.NewRequest(http.MethodGet, "/activities", nil)
	r.Header.Set("Authorization", "Bearer "+raw)

	_, authed, _ := runThrough(m, r)
	req.False(authed)
}

func TestMiddleware_NoToken_Unauthenticated(t *testing.T) {
	req := require.New(t)
	m := NewStatic("s3cret", "")

	_, authed, _ := runThrough(m, httptest.NewRequest(http.MethodGet, "/activities", nil))
	req.False(authed)
}

func TestMiddleware_Disabled_IgnoresTokens(t *testing.T) {
	req := require.New(t)
	m := NewStatic("", "")
	req.False(m.Enabled())

	r := httptest.NewRequest(http.MethodGet, "/activities", nil)
	r.Header.Set("Authorization", "Bearer garbage")

	_, authed, _ := runThrough(m, r)
	req.False(authed)
}

func TestMiddleware_DevBypassHeaders(t *testing.T) {
	req := require.New(t)
	m := &Middleware{devBypass: true, adminRole: "teacher"}

	r := httptest.NewRequest(http.MethodGet, "/activities", nil)
	r.Header.Set("X-Dev-User", "principal")
	r.Header.Set("X-Dev-Role", "teacher")

	u, authed, admin := runThrough(m, r)
	req.True(authed)
	req.True(admin)
	req.Equal("principal", u.Username)
}
