package mcp

import (
	"context"

	"github.com/felixgeelhaar/mcp-go"
)

type healthOutput struct {
	Healthy bool `json:"healthy"`
}

func registerStoreTools(srv *mcp.Server, h handlers) {
	srv.Tool("store.health").
		Description("Check that the meeting minutes store answers a minimal read").
		Handler(h.storeHealth)
}

func (h handlers) storeHealth(ctx context.Context, _ struct{}) (healthOutput, error) {
	return healthOutput{Healthy: h.deps.Health.Check(ctx)}, nil
}
