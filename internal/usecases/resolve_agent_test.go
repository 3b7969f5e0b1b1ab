package usecases

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSemanticAgentResolver_ResolveAgent(t *testing.T) {
	weatherAgent := domain.NewMockAgent(t)
	withMessage := func(content string) domain.AgentRequest {
		return domain.AgentRequest{Messages: []domain.Message{
			domain.NewAssistantMessage("how can I help?", nil),
			domain.NewUserMessage(content, nil),
		}}
	}

	tests := map[string]struct {
		req           domain.AgentRequest
		setupMocks    func(*MockSemanticRouter, *domain.MockAgentProvider)
		expectedAgent domain.Agent
		expectedFound bool
		expectedErr   bool
	}{
		"routes-last-user-message": {
			req: withMessage("will it rain?"),
			setupMocks: func(r *MockSemanticRouter, p *domain.MockAgentProvider) {
				r.EXPECT().Route(mock.Anything, "will it rain?", (*string)(nil)).
					Return(domain.Destination{Destination: "weather", Accuracy: 0.9}, true, nil)
				p.EXPECT().GetAgent("weather").Return(weatherAgent, true)
			},
			expectedAgent: weatherAgent,
			expectedFound: true,
		},
		"no-user-message": {
			req:        domain.AgentRequest{Messages: []domain.Message{domain.NewAssistantMessage("hi", nil)}},
			setupMocks: func(*MockSemanticRouter, *domain.MockAgentProvider) {},
		},
		"empty-user-message": {
			req:        withMessage(""),
			setupMocks: func(*MockSemanticRouter, *domain.MockAgentProvider) {},
		},
		"no-destination": {
			req: withMessage("hello"),
			setupMocks: func(r *MockSemanticRouter, p *domain.MockAgentProvider) {
				r.EXPECT().Route(mock.Anything, "hello", (*string)(nil)).Return(domain.Destination{}, false, nil)
			},
		},
		"destination-is-not-an-agent": {
			req: withMessage("pay my invoice"),
			setupMocks: func(r *MockSemanticRouter, p *domain.MockAgentProvider) {
				r.EXPECT().Route(mock.Anything, "pay my invoice", (*string)(nil)).
					Return(domain.Destination{Destination: "billing", Accuracy: 0.7}, true, nil)
				p.EXPECT().GetAgent("billing").Return(nil, false)
			},
		},
		"router-error": {
			req: withMessage("hello"),
			setupMocks: func(r *MockSemanticRouter, p *domain.MockAgentProvider) {
				r.EXPECT().Route(mock.Anything, "hello", (*string)(nil)).
					Return(domain.Destination{}, false, errors.New("embedder down"))
			},
			expectedErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			router := NewMockSemanticRouter(t)
			provider := domain.NewMockAgentProvider(t)
			tt.setupMocks(router, provider)

			resolver := NewSemanticAgentResolver(router, provider, log.New(io.Discard, "", 0))
			agent, found, err := resolver.ResolveAgent(context.Background(), nil, tt.req)
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedFound, found)
			assert.Equal(t, tt.expectedAgent, agent)
		})
	}
}

func TestInitSemanticAgentResolver_Initialize(t *testing.T) {
	i := InitSemanticAgentResolver{
		Router:        NewMockSemanticRouter(t),
		AgentProvider: domain.NewMockAgentProvider(t),
		Logger:        log.New(io.Discard, "", 0),
	}

	_, err := i.Initialize(context.Background())
	require.NoError(t, err)

	resolver, err := depend.Resolve[domain.AgentResolver]()
	require.NoError(t, err)
	assert.IsType(t, SemanticAgentResolver{}, resolver)
}
