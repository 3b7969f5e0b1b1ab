package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"
)

// introspectionGraph is the name the app registers its mermaid dependency graph under.
const introspectionGraph = "introspection-graph-mermaid"

//go:embed templates/introspect.gohtml
var templateFS embed.FS

var introspectPage = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))

type introspectView struct {
	Graph        string
	Ready        bool
	Embeddings   int
	Destinations []string
}

// Introspect renders the dependency graph next to the router status. With ?format=mermaid
// the raw graph source is returned instead.
func (api GatewayServer) Introspect(w http.ResponseWriter, r *http.Request) {
	graph, err := depend.ResolveNamed[string](introspectionGraph)
	if err != nil {
		respondError(w, ErrorResp{Error: Error{Code: INTERNALERROR, Message: "dependency graph is not available"}})
		return
	}

	if r.URL.Query().Get("format") == "mermaid" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(graph)) //nolint:errcheck
		return
	}

	status := api.Router.Status()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = introspectPage.Execute(w, introspectView{
		Graph:        graph,
		Ready:        status.Ready,
		Embeddings:   status.Embeddings,
		Destinations: status.Destinations,
	})
	if err != nil {
		api.Logger.Printf("GatewayServer: failed to render introspection page: %v", err)
	}
}
