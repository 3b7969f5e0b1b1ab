package mcp

import (
	"context"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/usecases"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	routeRequestTool = "route_request"
	routerStatusTool = "router_status"
)

// RouteRequestInput is the argument of the route_request tool.
type RouteRequestInput struct {
	Request string  `json:"request" jsonschema:"free-text request to route to an agent"`
	Default *string `json:"default,omitempty" jsonschema:"destination returned when no route matches"`
}

// RouteRequestOutput is the answer of the route_request tool.
type RouteRequestOutput struct {
	Destination string  `json:"destination"`
	Accuracy    float64 `json:"accuracy"`
	Found       bool    `json:"found"`
}

// RouterStatusInput is the (empty) argument of the router_status tool.
type RouterStatusInput struct{}

// RouterStatusOutput is the answer of the router_status tool.
type RouterStatusOutput struct {
	Ready        bool     `json:"ready"`
	Embeddings   int      `json:"embeddings"`
	Destinations []string `json:"destinations"`
}

type routerTools struct {
	router usecases.SemanticRouter
}

func (rt routerTools) routeRequest(ctx context.Context, _ *sdk.CallToolRequest, in RouteRequestInput) (*sdk.CallToolResult, RouteRequestOutput, error) {
	destination, found, err := rt.router.Route(ctx, in.Request, in.Default)
	if err != nil {
		return nil, RouteRequestOutput{}, err
	}
	return nil, RouteRequestOutput{
		Destination: destination.Destination,
		Accuracy:    destination.Accuracy,
		Found:       found,
	}, nil
}

func (rt routerTools) routerStatus(_ context.Context, _ *sdk.CallToolRequest, _ RouterStatusInput) (*sdk.CallToolResult, RouterStatusOutput, error) {
	status := rt.router.Status()
	destinations := status.Destinations
	if destinations == nil {
		destinations = []string{}
	}
	return nil, RouterStatusOutput{
		Ready:        status.Ready,
		Embeddings:   status.Embeddings,
		Destinations: destinations,
	}, nil
}

// NewServer creates an MCP server exposing the semantic router as tools.
func NewServer(router usecases.SemanticRouter) *sdk.Server {
	server := sdk.NewServer(&sdk.Implementation{Name: "agentgateway-router", Version: "v1.0.0"}, nil)
	tools := routerTools{router: router}

	sdk.AddTool(server, &sdk.Tool{
		Name:        routeRequestTool,
		Description: "Finds the agent destination whose routes are closest to a free-text request.",
	}, tools.routeRequest)
	sdk.AddTool(server, &sdk.Tool{
		Name:        routerStatusTool,
		Description: "Reports whether the router finished warming up and how many routes it holds.",
	}, tools.routerStatus)

	return server
}
