package auth

import (
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/fx"
)

// ProvideAuthentication wires the verifier from env:
//
//	ACTIVITIES_JWT_SECRET   HS256 signing secret; verification is off when unset
//	ADMIN_ROLE_NAME         role treated as admin by IsAdmin
//	AUTH_LEEWAY_SECONDS     clock-skew leeway (default 60)
//	AUTH_DEV_BYPASS         "true" accepts X-Dev-User / X-Dev-Role headers
func ProvideAuthentication() *Middleware {
	leeway := 60 * time.Second
	if v := strings.TrimSpace(os.Getenv("AUTH_LEEWAY_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			leeway = time.Duration(n) * time.Second
		}
	}

	return &Middleware{
		secret:    []byte(strings.TrimSpace(os.Getenv("ACTIVITIES_JWT_SECRET"))),
		adminRole: os.Getenv("ADMIN_ROLE_NAME"),
		devBypass: os.Getenv("AUTH_DEV_BYPASS") == "true",
		leeway:    leeway,
	}
}

var Module = fx.Options(
	fx.Provide(ProvideAuthentication),
)
