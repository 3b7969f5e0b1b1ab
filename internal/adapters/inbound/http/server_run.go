package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/usecases"
	"github.com/rs/cors"
)

// GatewayServer is the REST API of the agent gateway router.
type GatewayServer struct {
	Port                 int                     `config:"HTTP_PORT" default:"8080"`
	Logger               *log.Logger             `resolve:""`
	RegisterRouteUseCase usecases.RegisterRoute  `resolve:""`
	Router               usecases.SemanticRouter `resolve:""`
}

// Handler returns the HTTP handler with every API route registered.
func (api GatewayServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", api.Health)
	mux.HandleFunc("GET /introspect", api.Introspect)

	mux.HandleFunc("POST /v1/routes", api.RegisterRoute)
	mux.HandleFunc("POST /v1/route", api.RouteRequest)
	mux.HandleFunc("GET /v1/route", api.RouteQuery)
	mux.HandleFunc("GET /v1/router/status", api.RouterStatus)

	h := telemetry.Middleware("agentgateway-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Health answers liveness probes.
func (api GatewayServer) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Run starts the HTTP server for the GatewayServer.
func (api GatewayServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("GatewayServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("GatewayServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("GatewayServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the GatewayServer is ready by performing a health check.
func (api GatewayServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d", api.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
