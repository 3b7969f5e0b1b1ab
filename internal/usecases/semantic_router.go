package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"sync/atomic"
	"time"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ErrRouterAlreadyStarted is returned by the warm-up handle of a second Start call.
var ErrRouterAlreadyStarted = errors.New("semantic router already started")

// RouterStatus is a point-in-time view of the router.
type RouterStatus struct {
	Ready        bool
	Embeddings   int
	Destinations []string
}

// SemanticRouter maps free-text requests to destinations by embedding similarity.
type SemanticRouter interface {
	// Start embeds the initial routes in the background and marks the router ready when done.
	Start(ctx context.Context, initialRoutes []domain.Route) *RouterWarmup
	// AddRoute embeds a route when needed and appends it to the routing table.
	// It returns the labeled embeddings that were added.
	AddRoute(ctx context.Context, route domain.Route) ([]domain.Embedding, error)
	// PrepareRoute validates and embeds a route without touching the routing table.
	// It returns the labeled embeddings AddRoute would append.
	PrepareRoute(ctx context.Context, route domain.Route) ([]domain.Embedding, error)
	// Route returns the destination for the request. The boolean is false when there is
	// no match and no default destination.
	Route(ctx context.Context, request string, defaultDestination *string) (domain.Destination, bool, error)
	// Status reports readiness and the size of the routing table.
	Status() RouterStatus
}

// RouterWarmup tracks the background warm-up started by SemanticRouter.Start.
type RouterWarmup struct {
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

func newRouterWarmup(cancel context.CancelFunc) *RouterWarmup {
	return &RouterWarmup{cancel: cancel, done: make(chan struct{})}
}

// Done is closed when the warm-up finished, successfully or not.
func (w *RouterWarmup) Done() <-chan struct{} {
	return w.done
}

// Wait blocks until the warm-up finished and returns its error.
func (w *RouterWarmup) Wait() error {
	<-w.done
	return w.err
}

// Cancel stops the warm-up. A cancelled warm-up never marks the router ready.
func (w *RouterWarmup) Cancel() {
	w.cancel()
}

// SemanticRouterImpl is the implementation of the SemanticRouter use case.
// The routing table is an immutable collection swapped atomically on every update,
// so Route never observes a partially appended route.
type SemanticRouterImpl struct {
	embedder     domain.TextEmbedder
	publisher    domain.EventPublisher
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
	since        func(time.Time) time.Duration

	routes  atomic.Pointer[domain.EmbeddingCollection]
	ready   atomic.Bool
	started atomic.Bool
}

// NewSemanticRouterImpl creates a new instance of SemanticRouterImpl.
func NewSemanticRouterImpl(
	embedder domain.TextEmbedder,
	publisher domain.EventPublisher,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
) *SemanticRouterImpl {
	sr := &SemanticRouterImpl{
		embedder:     embedder,
		publisher:    publisher,
		timeProvider: timeProvider,
		logger:       logger,
		since:        time.Since,
	}
	sr.routes.Store(domain.NewEmbeddingCollection())
	return sr
}

// Start launches the warm-up in a separate goroutine and returns immediately.
func (sr *SemanticRouterImpl) Start(ctx context.Context, initialRoutes []domain.Route) *RouterWarmup {
	warmCtx, cancel := context.WithCancel(ctx)
	w := newRouterWarmup(cancel)

	if !sr.started.CompareAndSwap(false, true) {
		w.err = ErrRouterAlreadyStarted
		close(w.done)
		return w
	}

	routes := slices.Clone(initialRoutes)
	go func() {
		defer close(w.done)
		w.err = sr.warmUp(warmCtx, routes)
	}()
	return w
}

func (sr *SemanticRouterImpl) warmUp(ctx context.Context, routes []domain.Route) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("routes", len(routes)),
	))
	defer span.End()

	for _, route := range routes {
		if err := spanCtx.Err(); telemetry.RecordErrorAndStatus(span, err) {
			return err
		}
		if _, err := sr.AddRoute(spanCtx, route); err != nil {
			if ctxErr := spanCtx.Err(); telemetry.RecordErrorAndStatus(span, ctxErr) {
				return ctxErr
			}
			sr.logger.Printf("SemanticRouter: skipping initial route %q: %v", route.Destination, err)
		}
	}

	sr.ready.Store(true)
	sr.logger.Printf("SemanticRouter: ready with %d embeddings", sr.routes.Load().Len())
	sr.publisher.Publish(spanCtx, domain.RouterReadyEvent{
		Routes: len(routes),
		At:     sr.timeProvider.Now(),
	})
	return nil
}

// AddRoute embeds the route when needed and appends its embeddings to the routing table.
func (sr *SemanticRouterImpl) AddRoute(ctx context.Context, route domain.Route) ([]domain.Embedding, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("destination", route.Destination),
		attribute.String("kind", string(route.Kind)),
	))
	defer span.End()

	labeled, err := sr.labeledEmbeddings(spanCtx, route)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	for {
		current := sr.routes.Load()
		if err := checkDimension(current, labeled); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		if sr.routes.CompareAndSwap(current, current.Append(labeled...)) {
			break
		}
	}

	sr.publisher.Publish(spanCtx, domain.RouteAddedEvent{
		Destination: route.Destination,
		Kind:        route.Kind,
		Embeddings:  len(labeled),
		At:          sr.timeProvider.Now(),
	})
	return labeled, nil
}

// PrepareRoute returns the labeled embeddings of a route, checked against the current
// routing table, without appending them.
func (sr *SemanticRouterImpl) PrepareRoute(ctx context.Context, route domain.Route) ([]domain.Embedding, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("destination", route.Destination),
		attribute.String("kind", string(route.Kind)),
	))
	defer span.End()

	labeled, err := sr.labeledEmbeddings(spanCtx, route)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if err := checkDimension(sr.routes.Load(), labeled); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return labeled, nil
}

func (sr *SemanticRouterImpl) labeledEmbeddings(ctx context.Context, route domain.Route) ([]domain.Embedding, error) {
	if err := route.Validate(); err != nil {
		return nil, err
	}

	embeddings, err := sr.flattenRoute(ctx, route)
	if err != nil {
		return nil, err
	}

	labeled := make([]domain.Embedding, len(embeddings))
	for i, e := range embeddings {
		labeled[i] = e.WithLabels(route.Destination)
	}
	return labeled, nil
}

// flattenRoute turns any route variant into the embeddings it contributes.
func (sr *SemanticRouterImpl) flattenRoute(ctx context.Context, route domain.Route) ([]domain.Embedding, error) {
	switch route.Kind {
	case domain.RouteKind_Raw:
		embeddings, err := sr.embedder.Embed(ctx, route.Phrases)
		if err != nil {
			return nil, domain.NewProviderErr("failed to embed route phrases", err)
		}
		if len(embeddings) != len(route.Phrases) {
			return nil, domain.NewProviderErr(
				fmt.Sprintf("embedding provider returned %d vectors for %d phrases", len(embeddings), len(route.Phrases)),
				nil,
			)
		}
		return embeddings, nil
	case domain.RouteKind_Precomputed:
		return slices.Clone(route.Embeddings), nil
	default:
		return nil, domain.NewValidationErr(fmt.Sprintf("unknown route kind %q", route.Kind))
	}
}

// checkDimension rejects embeddings that could never be compared with the routing table.
func checkDimension(current *domain.EmbeddingCollection, embeddings []domain.Embedding) error {
	want := 0
	if items := current.Items(); len(items) > 0 {
		want = len(items[0].Vector)
	} else if len(embeddings) > 0 {
		want = len(embeddings[0].Vector)
	}
	for _, e := range embeddings {
		if len(e.Vector) == 0 || len(e.Vector) != want {
			return domain.NewValidationErr(fmt.Sprintf(
				"embedding for %q has dimension %d, routing table uses %d", e.Text, len(e.Vector), want,
			))
		}
	}
	return nil
}

// Route answers a routing request. Every call emits a RouterRoutedEvent.
func (sr *SemanticRouterImpl) Route(ctx context.Context, request string, defaultDestination *string) (domain.Destination, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	start := time.Now()
	ready := sr.ready.Load()
	destination, found, outcome, err := sr.route(spanCtx, ready, request, defaultDestination)
	elapsed := sr.since(start)

	var routed *domain.Destination
	if found {
		routed = &destination
	}
	sr.publisher.Publish(spanCtx, domain.RouterRoutedEvent{
		Request:     request,
		Destination: routed,
		Duration:    elapsed,
		Ready:       ready,
		At:          sr.timeProvider.Now(),
	})
	RecordRouting(spanCtx, outcome, elapsed)

	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Destination{}, false, err
	}
	span.SetAttributes(attribute.String("outcome", outcome))
	return destination, found, nil
}

func (sr *SemanticRouterImpl) route(
	ctx context.Context,
	ready bool,
	request string,
	defaultDestination *string,
) (domain.Destination, bool, string, error) {
	if !ready {
		return fallbackDestination(defaultDestination)
	}

	embeddings, err := sr.embedder.Embed(ctx, []string{request})
	if err != nil {
		return domain.Destination{}, false, routeOutcome_Error, domain.NewProviderErr("failed to embed request", err)
	}
	if len(embeddings) == 0 {
		return domain.Destination{}, false, routeOutcome_Error, domain.NewProviderErr("embedding provider returned no vectors", nil)
	}

	closest, score, err := sr.routes.Load().FindClosest(embeddings[0].Vector)
	if errors.Is(err, domain.ErrEmptyCollection) {
		return fallbackDestination(defaultDestination)
	}
	if err != nil {
		return domain.Destination{}, false, routeOutcome_Error, err
	}
	if len(closest.Labels) == 0 {
		return fallbackDestination(defaultDestination)
	}

	return domain.Destination{Destination: closest.Labels[0], Accuracy: score}, true, routeOutcome_Matched, nil
}

func fallbackDestination(defaultDestination *string) (domain.Destination, bool, string, error) {
	if defaultDestination == nil {
		return domain.Destination{}, false, routeOutcome_None, nil
	}
	return domain.Destination{
		Destination: *defaultDestination,
		Accuracy:    domain.NoAccuracy,
	}, true, routeOutcome_Default, nil
}

// Status reports readiness and the size of the routing table.
func (sr *SemanticRouterImpl) Status() RouterStatus {
	routes := sr.routes.Load()
	return RouterStatus{
		Ready:        sr.ready.Load(),
		Embeddings:   routes.Len(),
		Destinations: routes.Labels(),
	}
}

// InitSemanticRouter initializes the SemanticRouter use case and registers it in the dependency container.
type InitSemanticRouter struct {
	Embedder     domain.TextEmbedder        `resolve:""`
	Publisher    domain.EventPublisher      `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
}

// Initialize registers the SemanticRouter implementation in the dependency container.
func (isr InitSemanticRouter) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SemanticRouter](NewSemanticRouterImpl(isr.Embedder, isr.Publisher, isr.TimeProvider, isr.Logger))
	return ctx, nil
}
