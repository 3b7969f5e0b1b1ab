package usecases

import (
	"context"
	"fmt"
	"log"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// RegisterRoute defines the interface for the RegisterRoute use case.
type RegisterRoute interface {
	// Execute persists the route embeddings and adds them to the live router.
	Execute(ctx context.Context, route domain.Route) ([]domain.Embedding, error)
}

// RegisterRouteImpl is the implementation of the RegisterRoute use case.
type RegisterRouteImpl struct {
	router     SemanticRouter
	repository domain.RouteRepository
	logger     *log.Logger
}

// NewRegisterRouteImpl creates a new instance of RegisterRouteImpl.
func NewRegisterRouteImpl(router SemanticRouter, repository domain.RouteRepository, logger *log.Logger) RegisterRouteImpl {
	return RegisterRouteImpl{
		router:     router,
		repository: repository,
		logger:     logger,
	}
}

// Execute embeds the route, stores the embeddings, and only then adds them to the live
// router as a precomputed route. A route that could not be stored never becomes routable.
func (rr RegisterRouteImpl) Execute(ctx context.Context, route domain.Route) ([]domain.Embedding, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	embeddings, err := rr.router.PrepareRoute(spanCtx, route)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	if err := rr.repository.SaveRoute(spanCtx, route.Destination, embeddings); err != nil {
		err = fmt.Errorf("failed to persist route %q: %w", route.Destination, err)
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	added, err := rr.router.AddRoute(spanCtx, domain.NewPrecomputedRoute(route.Destination, embeddings...))
	if err != nil {
		rr.logger.Printf("RegisterRoute: route %q was persisted but not added to the router: %v", route.Destination, err)
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	return added, nil
}

// InitRegisterRoute initializes the RegisterRoute use case and registers it in the dependency container.
type InitRegisterRoute struct {
	Router     SemanticRouter         `resolve:""`
	Repository domain.RouteRepository `resolve:""`
	Logger     *log.Logger            `resolve:""`
}

// Initialize registers the RegisterRoute implementation in the dependency container.
func (irr InitRegisterRoute) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RegisterRoute](NewRegisterRouteImpl(irr.Router, irr.Repository, irr.Logger))
	return ctx, nil
}
