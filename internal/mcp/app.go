package mcp

import (
	mcplocal "github.com/felixgeelhaar/minutes/adapter/mcp"
	"github.com/felixgeelhaar/minutes/internal/app"
)

// DependenciesFromContainer exposes the container's services to the MCP tools.
func DependenciesFromContainer(container *app.Container) mcplocal.ToolDependencies {
	return mcplocal.ToolDependencies{
		Meetings:    container.Meetings,
		Attendees:   container.Attendees,
		Memberships: container.Memberships,
		Health:      container.Health,
	}
}
