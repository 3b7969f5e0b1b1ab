package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// SemanticAgentResolver resolves agents by routing the last user message through the
// semantic router. Route destinations are agent names.
type SemanticAgentResolver struct {
	router        SemanticRouter
	agentProvider domain.AgentProvider
	logger        *log.Logger
}

// NewSemanticAgentResolver creates a new instance of SemanticAgentResolver.
func NewSemanticAgentResolver(router SemanticRouter, agentProvider domain.AgentProvider, logger *log.Logger) SemanticAgentResolver {
	return SemanticAgentResolver{
		router:        router,
		agentProvider: agentProvider,
		logger:        logger,
	}
}

// ResolveAgent returns the agent whose routes best match the last user message.
func (r SemanticAgentResolver) ResolveAgent(ctx context.Context, agentName *string, req domain.AgentRequest) (domain.Agent, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	msg, ok := req.LastUserMessage()
	if !ok || msg.Content == "" {
		return nil, false, nil
	}

	destination, found, err := r.router.Route(spanCtx, msg.Content, nil)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	agent, ok := r.agentProvider.GetAgent(destination.Destination)
	if !ok {
		r.logger.Printf("SemanticAgentResolver: route destination %q is not a registered agent", destination.Destination)
		return nil, false, nil
	}
	return agent, true, nil
}

// InitSemanticAgentResolver registers the SemanticAgentResolver as the domain.AgentResolver.
type InitSemanticAgentResolver struct {
	Router        SemanticRouter       `resolve:""`
	AgentProvider domain.AgentProvider `resolve:""`
	Logger        *log.Logger          `resolve:""`
}

// Initialize registers the resolver in the dependency container.
func (i InitSemanticAgentResolver) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.AgentResolver](NewSemanticAgentResolver(i.Router, i.AgentProvider, i.Logger))
	return ctx, nil
}
