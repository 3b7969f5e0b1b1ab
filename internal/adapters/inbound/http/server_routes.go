package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	"github.com/oapi-codegen/runtime"
)

// RegisterRoute handles POST /v1/routes.
func (api GatewayServer) RegisterRoute(w http.ResponseWriter, r *http.Request) {
	var req RegisterRouteReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	route, err := toRoute(req)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	embeddings, err := api.RegisterRouteUseCase.Execute(r.Context(), route)
	if err != nil {
		api.Logger.Printf("GatewayServer: error registering route %q: %v", req.Destination, err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, RegisterRouteResp{
		Destination: route.Destination,
		Kind:        string(route.Kind),
		Embeddings:  len(embeddings),
	})
}

// RouteRequest handles POST /v1/route.
func (api GatewayServer) RouteRequest(w http.ResponseWriter, r *http.Request) {
	var req RouteReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}
	api.route(w, r, req.Request, req.Default)
}

// RouteQuery handles GET /v1/route?request=...&default=...
func (api GatewayServer) RouteQuery(w http.ResponseWriter, r *http.Request) {
	var params RouteParams
	if err := runtime.BindQueryParameter("form", true, true, "request", r.URL.Query(), &params.Request); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid format for parameter request: %v", err)))
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "default", r.URL.Query(), &params.Default); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid format for parameter default: %v", err)))
		return
	}
	api.route(w, r, params.Request, params.Default)
}

func (api GatewayServer) route(w http.ResponseWriter, r *http.Request, request string, defaultDestination *string) {
	destination, found, err := api.Router.Route(r.Context(), request, defaultDestination)
	if err != nil {
		api.Logger.Printf("GatewayServer: error routing request: %v", err)
		respondError(w, toError(err))
		return
	}
	if !found {
		respondError(w, toError(domain.NewNotFoundErr("no destination found for the request")))
		return
	}
	respondJSON(w, http.StatusOK, toDestinationResp(destination))
}

// RouterStatus handles GET /v1/router/status.
func (api GatewayServer) RouterStatus(w http.ResponseWriter, r *http.Request) {
	status := api.Router.Status()
	destinations := status.Destinations
	if destinations == nil {
		destinations = []string{}
	}
	respondJSON(w, http.StatusOK, RouterStatusResp{
		Ready:        status.Ready,
		Embeddings:   status.Embeddings,
		Destinations: destinations,
	})
}
