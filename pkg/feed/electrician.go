package feed

import (
	"context"
	"crypto/tls"
	"fmt"
	"os"
	"strings"

	"github.com/joeydtaylor/electrician/pkg/builder"
	"github.com/mergington/activities/pkg/codec"
	"go.uber.org/fx"
)

// builderFeed streams JSON-encoded events into an Electrician
// ForwardRelay[[]byte]. Builder internals are captured by closures, not
// stored on the struct.
type builderFeed struct {
	submit func(context.Context, []byte) error
}

func (f *builderFeed) Publish(ctx context.Context, ev Event) error {
	b, err := codec.JSONStrict.Marshal(ev)
	if err != nil {
		return fmt.Errorf("feed encode: %w", err)
	}
	return f.submit(ctx, b)
}

// NewFromEnv returns a roster feed wired from env:
//
//	ROSTER_FEED_TARGET       = "host:port[,host2:port2]"  (required to enable)
//	ROSTER_FEED_TLS_ENABLE   = "true" | "false"
//	ROSTER_FEED_TLS_CRT      = path (default: keys/tls/client.crt)
//	ROSTER_FEED_TLS_KEY      = path (default: keys/tls/client.key)
//	ROSTER_FEED_TLS_CA       = path (default: keys/tls/ca.crt)
//	ROSTER_FEED_COMPRESS     = "snappy" | ""
//
// When ROSTER_FEED_TARGET is unset the feed is a no-op.
func NewFromEnv() (Feed, error) {
	raw := strings.TrimSpace(os.Getenv("ROSTER_FEED_TARGET"))
	if raw == "" {
		return noopFeed{}, nil
	}
	targets := strings.Split(raw, ",")

	useTLS := strings.EqualFold(os.Getenv("ROSTER_FEED_TLS_ENABLE"), "true")
	tlsCrt := envOr("ROSTER_FEED_TLS_CRT", "keys/tls/client.crt")
	tlsKey := envOr("ROSTER_FEED_TLS_KEY", "keys/tls/client.key")
	tlsCA := envOr("ROSTER_FEED_TLS_CA", "keys/tls/ca.crt")
	useSnappy := strings.EqualFold(os.Getenv("ROSTER_FEED_COMPRESS"), "snappy")

	logger := builder.NewLogger(builder.LoggerWithDevelopment(true))

	ctx := context.Background()
	wire := builder.NewWire[[]byte](ctx, builder.WireWithLogger[[]byte](logger))

	perf := builder.NewPerformanceOptions(useSnappy, builder.COMPRESS_SNAPPY)
	tlsCfg := builder.NewTlsClientConfig(
		useTLS,
		tlsCrt, tlsKey, tlsCA,
		tls.VersionTLS13, tls.VersionTLS13,
	)

	relay := builder.NewForwardRelay[[]byte](
		ctx,
		builder.ForwardRelayWithLogger[[]byte](logger),
		builder.ForwardRelayWithTarget[[]byte](targets...),
		builder.ForwardRelayWithPerformanceOptions[[]byte](perf),
		builder.ForwardRelayWithTLSConfig[[]byte](tlsCfg),
		builder.ForwardRelayWithStaticHeaders[[]byte](map[string]string{"x-topic": topicRosterEvents}),
		builder.ForwardRelayWithInput(wire),
	)

	if err := wire.Start(ctx); err != nil {
		return nil, fmt.Errorf("feed wire start: %w", err)
	}
	if err := relay.Start(ctx); err != nil {
		return nil, fmt.Errorf("feed relay start: %w", err)
	}

	return &builderFeed{
		submit: func(ctx context.Context, b []byte) error { return wire.Submit(ctx, b) },
	}, nil
}

var Module = fx.Options(
	fx.Provide(NewFromEnv),
)

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
