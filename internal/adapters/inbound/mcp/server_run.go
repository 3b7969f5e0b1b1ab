package mcp

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/usecases"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// RouterMCPServer serves the router tools over the streamable HTTP MCP transport on /mcp.
type RouterMCPServer struct {
	Port   int                     `config:"MCP_PORT" default:"8095"`
	Logger *log.Logger             `resolve:""`
	Router usecases.SemanticRouter `resolve:""`
}

// Handler returns the HTTP handler of the MCP endpoint.
func (s RouterMCPServer) Handler() http.Handler {
	server := NewServer(s.Router)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("/mcp", sdk.NewStreamableHTTPHandler(func(*http.Request) *sdk.Server {
		return server
	}, nil))

	return telemetry.Middleware("agentgateway-mcp")(mux)
}

// Run starts the MCP server.
func (s RouterMCPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		Addr:              fmt.Sprintf(":%d", s.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Printf("RouterMCPServer: Listening on port %d", s.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		if err != nil {
			s.Logger.Printf("RouterMCPServer: error during shutdown: %v", err)
		} else {
			s.Logger.Println("RouterMCPServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the RouterMCPServer answers its health probe.
func (s RouterMCPServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d", s.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
