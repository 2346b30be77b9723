package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/healthdsl/healthdsl-backend/internal/cli"
	"github.com/healthdsl/healthdsl-backend/internal/config"
)

// overridden during build with ldflags
var version = "dev"

func main() {
	// 1. Load configuration (.env first, environment wins)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Cancel on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Run the command tree
	if err := cli.NewCommand(cfg, version).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
