package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tphakala/hamkit/cmd"
	"github.com/tphakala/hamkit/internal/buildinfo"
)

// Set at build time with -ldflags "-X main.version=... -X main.buildDate=...".
var (
	version   = "dev"
	buildDate = buildinfo.UnknownValue
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	build := buildinfo.NewContext(version, buildDate)
	if err := cmd.RootCommand(build).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
