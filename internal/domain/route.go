package domain

import (
	"context"
	"fmt"
)

// NoAccuracy marks a destination that was not produced by a similarity match.
const NoAccuracy = -1.0

// RouteKind identifies how a route provides its embeddings.
type RouteKind string

const (
	// RouteKind_Raw is a route defined by phrases that still need to be embedded.
	RouteKind_Raw RouteKind = "RAW"
	// RouteKind_Precomputed is a route that already carries its embeddings.
	RouteKind_Precomputed RouteKind = "PRECOMPUTED"
)

// Route maps a destination to the phrases or embeddings that should resolve to it.
type Route struct {
	Destination string
	Kind        RouteKind
	Phrases     []string
	Embeddings  []Embedding
}

// NewRawRoute creates a route from phrases.
func NewRawRoute(destination string, phrases ...string) Route {
	return Route{
		Destination: destination,
		Kind:        RouteKind_Raw,
		Phrases:     phrases,
	}
}

// NewPrecomputedRoute creates a route from embeddings that were computed elsewhere.
func NewPrecomputedRoute(destination string, embeddings ...Embedding) Route {
	return Route{
		Destination: destination,
		Kind:        RouteKind_Precomputed,
		Embeddings:  embeddings,
	}
}

// Validate checks whether the route is well formed.
func (r Route) Validate() error {
	if r.Destination == "" {
		return NewValidationErr("route destination is required")
	}
	switch r.Kind {
	case RouteKind_Raw:
		if len(r.Phrases) == 0 {
			return NewValidationErr("raw route requires at least one phrase")
		}
	case RouteKind_Precomputed:
		if len(r.Embeddings) == 0 {
			return NewValidationErr("precomputed route requires at least one embedding")
		}
		dim := len(r.Embeddings[0].Vector)
		for _, e := range r.Embeddings {
			if len(e.Vector) == 0 || len(e.Vector) != dim {
				return NewValidationErr("precomputed route embeddings must share a non-zero dimension")
			}
		}
	default:
		return NewValidationErr(fmt.Sprintf("unknown route kind %q", r.Kind))
	}
	return nil
}

// Destination is the answer of the semantic router.
type Destination struct {
	Destination string  `json:"destination"`
	Accuracy    float64 `json:"accuracy"`
}

// IsMatch reports whether the destination came from a similarity match.
func (d Destination) IsMatch() bool {
	return d.Accuracy != NoAccuracy
}

// RouteRepository persists precomputed routes so they survive restarts.
type RouteRepository interface {
	// SaveRoute appends the embeddings of a route to the ones already stored for the destination.
	SaveRoute(ctx context.Context, destination string, embeddings []Embedding) error
	// ListRoutes returns every stored route as a precomputed route, one per destination,
	// with embeddings in insertion order.
	ListRoutes(ctx context.Context) ([]Route, error)
}

// RouteCatalog lists the routes that are configured statically, such as the routing
// phrases declared for each agent.
type RouteCatalog interface {
	Routes() []Route
}
