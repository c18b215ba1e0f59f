// Package airouter forwards AI requests to the endpoint matching the configured mode.
// Routing is a static switch on the mode; no fallback between targets.
package airouter

import (
	"context"

	"github.com/mcoot/mockify/internal/client"
	"github.com/mcoot/mockify/internal/model"
)

const (
	LocalEndpoint = "/ai/local"
	CloudEndpoint = "/ai/cloud"
)

// Poster sends a JSON body to an endpoint
type Poster interface {
	Post(ctx context.Context, endpoint string, body any) client.Result
}

// Router sends AI requests to the local or cloud endpoint
type Router struct {
	requester Poster
	mode      model.AIMode
}

// New creates a Router for mode
func New(requester Poster, mode model.AIMode) *Router {
	return &Router{requester: requester, mode: mode}
}

// Mode returns the configured AI mode
func (r *Router) Mode() model.AIMode {
	return r.mode
}

// AskAI posts req to the endpoint for the configured mode
func (r *Router) AskAI(ctx context.Context, req model.AIRequest) client.Result {
	return r.requester.Post(ctx, EndpointFor(r.mode), req)
}

// EndpointFor returns /ai/local for local mode and /ai/cloud for anything else
func EndpointFor(mode model.AIMode) string {
	if mode == model.AIModeLocal {
		return LocalEndpoint
	}
	return CloudEndpoint
}
