package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/smsshield/internal/cli"
)

// Build variables set by ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return cli.Execute(ctx, cli.NewRootCommand(version, commit, date))
}
