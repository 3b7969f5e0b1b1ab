package websocket

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/usecases"
	ws "github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/trace"
)

// StreamServer accepts WebSocket connections on /v1/stream and runs one streaming
// session per connection.
type StreamServer struct {
	Port         int                    `config:"WS_PORT" default:"8090"`
	ReadLimit    int                    `config:"WS_READ_LIMIT" default:"16777216"`
	WriteTimeout time.Duration          `config:"WS_WRITE_TIMEOUT" default:"10s"`
	Logger       *log.Logger            `resolve:""`
	Session      usecases.StreamSession `resolve:""`
}

// Handler returns the HTTP handler serving the streaming endpoint. Sessions run until
// they complete on their own.
func (s StreamServer) Handler() http.Handler {
	return s.handler(context.Background(), &sync.WaitGroup{})
}

func (s StreamServer) handler(baseCtx context.Context, sessions *sync.WaitGroup) http.Handler {
	upgrader := ws.Upgrader{
		CheckOrigin:     func(*http.Request) bool { return true },
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /v1/stream", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			s.Logger.Printf("StreamServer: upgrade failed: %v", err)
			return
		}
		if s.ReadLimit > 0 {
			conn.SetReadLimit(int64(s.ReadLimit))
		}

		// Hijacked connections outlive the request context, so the session is bound to
		// the server lifetime and only keeps the request trace.
		ctx := trace.ContextWithSpanContext(baseCtx, trace.SpanContextFromContext(r.Context()))

		sessions.Add(1)
		defer sessions.Done()
		s.serve(ctx, NewFrameConn(conn, s.WriteTimeout))
	})

	return telemetry.Middleware("agentgateway-stream")(mux)
}

func (s StreamServer) serve(ctx context.Context, conn *FrameConn) {
	err := s.Session.Serve(ctx, conn)
	var sessionErr *usecases.SessionError
	switch {
	case err == nil:
	case errors.As(err, &sessionErr) && sessionErr.Code == domain.CloseCode_GoingAway:
		s.Logger.Printf("StreamServer: session %s ended: %s", sessionErr.SessionID, sessionErr.Reason)
	default:
		s.Logger.Printf("StreamServer: %v", err)
	}
	// Serve closes the connection itself. This only matters when it panicked halfway.
	_ = conn.Close(domain.CloseCode_InternalError, "internal error")
}

// Run starts the WebSocket server and waits for open sessions on shutdown.
func (s StreamServer) Run(ctx context.Context) error {
	var sessions sync.WaitGroup
	srv := &http.Server{
		Handler:           s.handler(ctx, &sessions),
		Addr:              fmt.Sprintf(":%d", s.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Printf("StreamServer: Listening on port %d", s.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		sessions.Wait()
		if err != nil {
			s.Logger.Printf("StreamServer: error during shutdown: %v", err)
		} else {
			s.Logger.Println("StreamServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the StreamServer answers its health probe.
func (s StreamServer) IsReady(ctx context.Context) error {
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
