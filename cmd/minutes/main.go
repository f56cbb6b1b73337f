package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/minutes/adapter/cli"
	"github.com/felixgeelhaar/minutes/adapter/cli/attendance"
	"github.com/felixgeelhaar/minutes/adapter/cli/attendee"
	"github.com/felixgeelhaar/minutes/adapter/cli/mcp"
	"github.com/felixgeelhaar/minutes/adapter/cli/meeting"
	"github.com/felixgeelhaar/minutes/internal/app"
	"github.com/felixgeelhaar/minutes/pkg/config"
	"github.com/felixgeelhaar/minutes/pkg/observability"
)

func main() {
	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{AppEnv: "development"}
	}

	logger := observability.LoggerFor(cfg.AppEnv, cfg.LogLevel, cfg.LogFormat, cli.Version)
	cli.SetLogger(logger)

	// A missing store setting is reported by the first command that needs
	// the store; version and schema still work without one.
	container, err := app.NewContainer(ctx, cfg, logger, app.Options{})
	if err != nil {
		logger.Debug("store unavailable", "error", err)
		cli.SetInitError(err)
	} else {
		defer container.Close()
		cli.SetApp(cli.FromContainer(container))
	}

	cli.AddCommand(meeting.Cmd)
	cli.AddCommand(attendee.Cmd)
	cli.AddCommand(attendance.Cmd)
	cli.AddCommand(mcp.Cmd)

	cli.RootCmd().SetContext(ctx)
	cli.Execute()
}
