package workers

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, embedder domain.TextEmbedder) *usecases.SemanticRouterImpl {
	publisher := domain.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Maybe()
	timeProvider := domain.NewMockCurrentTimeProvider(t)
	timeProvider.EXPECT().Now().Return(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)).Maybe()
	return usecases.NewSemanticRouterImpl(embedder, publisher, timeProvider, log.New(io.Discard, "", 0))
}

func TestRouterWarmer_Run(t *testing.T) {
	weather := domain.NewPrecomputedRoute("weather", domain.Embedding{Text: "rain", Vector: []float64{1, 0}})
	travel := domain.NewPrecomputedRoute("travel", domain.Embedding{Text: "flight", Vector: []float64{0, 1}})

	tests := map[string]struct {
		setupMocks           func(*domain.MockRouteCatalog, *domain.MockRouteRepository)
		expectedEmbeddings   int
		expectedDestinations []string
	}{
		"catalog-and-stored-routes": {
			setupMocks: func(c *domain.MockRouteCatalog, r *domain.MockRouteRepository) {
				c.EXPECT().Routes().Return([]domain.Route{weather})
				r.EXPECT().ListRoutes(mock.Anything).Return([]domain.Route{travel}, nil)
			},
			expectedEmbeddings:   2,
			expectedDestinations: []string{"weather", "travel"},
		},
		"repository-error": {
			setupMocks: func(c *domain.MockRouteCatalog, r *domain.MockRouteRepository) {
				c.EXPECT().Routes().Return([]domain.Route{weather})
				r.EXPECT().ListRoutes(mock.Anything).Return(nil, errors.New("connection refused"))
			},
			expectedEmbeddings:   1,
			expectedDestinations: []string{"weather"},
		},
		"no-routes": {
			setupMocks: func(c *domain.MockRouteCatalog, r *domain.MockRouteRepository) {
				c.EXPECT().Routes().Return(nil)
				r.EXPECT().ListRoutes(mock.Anything).Return(nil, nil)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			catalog := domain.NewMockRouteCatalog(t)
			repository := domain.NewMockRouteRepository(t)
			tt.setupMocks(catalog, repository)
			router := newTestRouter(t, domain.NewMockTextEmbedder(t))

			signalChan := make(chan error)
			rw := RouterWarmer{
				Router:              router,
				Catalog:             catalog,
				Repository:          repository,
				Logger:              log.New(io.Discard, "", 0),
				workerExecutionChan: signalChan,
			}

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() { done <- rw.Run(ctx) }()

			select {
			case err := <-signalChan:
				require.NoError(t, err)
			case <-time.After(time.Second):
				t.Fatal("timeout waiting for the router warm-up")
			}

			status := router.Status()
			assert.True(t, status.Ready)
			assert.Equal(t, tt.expectedEmbeddings, status.Embeddings)
			assert.ElementsMatch(t, tt.expectedDestinations, status.Destinations)

			cancel()
			assert.NoError(t, <-done)
		})
	}
}

func TestRouterWarmer_Run_CancelsWarmupOnShutdown(t *testing.T) {
	embedding := make(chan struct{})
	embedder := domain.NewMockTextEmbedder(t)
	embedder.EXPECT().Embed(mock.Anything, []string{"rain"}).
		RunAndReturn(func(ctx context.Context, _ []string) ([]domain.Embedding, error) {
			close(embedding)
			<-ctx.Done()
			return nil, ctx.Err()
		})

	catalog := domain.NewMockRouteCatalog(t)
	catalog.EXPECT().Routes().Return([]domain.Route{domain.NewRawRoute("weather", "rain")})
	repository := domain.NewMockRouteRepository(t)
	repository.EXPECT().ListRoutes(mock.Anything).Return(nil, nil)
	router := newTestRouter(t, embedder)

	rw := RouterWarmer{
		Router:     router,
		Catalog:    catalog,
		Repository: repository,
		Logger:     log.New(io.Discard, "", 0),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- rw.Run(ctx) }()

	select {
	case <-embedding:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for the warm-up to embed")
	}
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("RouterWarmer did not stop")
	}
	assert.False(t, router.Status().Ready)
}
