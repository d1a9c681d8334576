package main

import (
	"github.com/mergington/activities/pkg/serverfx"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		serverfx.Module(
			serverfx.WithService("activities"),
			serverfx.WithDefaultManifest("activities.toml"),
		),
	).Run()
}
