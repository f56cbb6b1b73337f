package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/minutes/internal/app"
	mcpinternal "github.com/felixgeelhaar/minutes/internal/mcp"
	"github.com/felixgeelhaar/minutes/pkg/config"
	"github.com/felixgeelhaar/minutes/pkg/observability"
)

var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		observability.LoggerFor("", "", "", version).Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.LoggerFor(cfg.AppEnv, cfg.LogLevel, cfg.LogFormat, version)

	container, err := app.NewContainer(ctx, cfg, logger, app.Options{})
	if err != nil {
		logger.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	deps := mcpinternal.DependenciesFromContainer(container)
	if err := mcpinternal.Serve(ctx, cfg, deps, version, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
