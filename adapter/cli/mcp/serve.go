package mcp

import (
	"context"
	"errors"

	"github.com/felixgeelhaar/minutes/adapter/cli"
	mcplocal "github.com/felixgeelhaar/minutes/adapter/mcp"
	mcpinternal "github.com/felixgeelhaar/minutes/internal/mcp"
	"github.com/spf13/cobra"
)

var addr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start an MCP server over HTTP. Every store operation is exposed as a
tool returning the same {data, error, success} envelope as --json.

Requests need "Authorization: Bearer $MCP_AUTH_TOKEN" when the token is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := cli.RequireApp()
		if err != nil {
			return err
		}

		cfg := *app.Config
		if addr != "" {
			cfg.MCPAddr = addr
		}

		deps := mcplocal.ToolDependencies{
			Meetings:    app.Meetings,
			Attendees:   app.Attendees,
			Memberships: app.Memberships,
			Health:      app.Health,
		}

		err = mcpinternal.Serve(cmd.Context(), &cfg, deps, cli.Version, cli.Logger())
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (default $MCP_ADDR or 127.0.0.1:8082)")
}
