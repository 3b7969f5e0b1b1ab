package app

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// introspectionGraphName is the named dependency served by GET /introspect.
const introspectionGraphName = "introspection-graph-mermaid"

// MermaidGraphIntrospector renders the gateway dependency graph as Mermaid once the
// application is wired and registers it for the REST API.
type MermaidGraphIntrospector struct{}

// Introspect registers the Mermaid graph of the report.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	depend.RegisterNamed(mermaid.GenerateIntrospectionGraph(r), introspectionGraphName)
	return nil
}
