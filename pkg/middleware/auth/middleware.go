package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Middleware struct {
	secret    []byte
	adminRole string
	devBypass bool
	leeway    time.Duration
}

// NewStatic builds a verifier with a fixed secret; used by tests and by
// callers that do not read env.
func NewStatic(secret, adminRole string) *Middleware {
	return &Middleware{secret: []byte(secret), adminRole: adminRole, leeway: time.Minute}
}

// Enabled reports whether bearer verification is configured.
func (m *Middleware) Enabled() bool { return len(m.secret) > 0 }

// Middleware attaches the verified User to the request context. Requests
// without a token, or with an invalid one, continue unauthenticated;
// route guards decide whether that matters.
func (m *Middleware) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Dev bypass for local testing (NEVER enable in prod)
			if m.devBypass {
				if u := devUserFromHeaders(r); u.Username != "" {
					next.ServeHTTP(w, r.WithContext(withUser(r.Context(), u)))
					return
				}
			}

			if m.Enabled() {
				if raw := bearerToken(r); raw != "" {
					if u, err := m.verify(raw); err == nil && u.Username != "" {
						next.ServeHTTP(w, r.WithContext(withUser(r.Context(), u)))
						return
					}
					// fall through unauthenticated on a bad token
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (m *Middleware) verify(raw string) (User, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(m.leeway),
	)

	var claims struct {
		jwt.RegisteredClaims
		Role string `json:"role"`
	}

	tok, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		return User{}, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return User{}, errors.New("missing subject")
	}

	return User{
		Username: claims.Subject,
		Role:     Role{Name: claims.Role},
	}, nil
}

func withUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userCtxKey, u)
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}
