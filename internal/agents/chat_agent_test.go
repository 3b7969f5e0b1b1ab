package agents

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/common"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func streamDeltas(deltas ...string) func(context.Context, domain.LLMChatRequest, domain.LLMStreamEventCallback) error {
	return func(_ context.Context, _ domain.LLMChatRequest, onEvent domain.LLMStreamEventCallback) error {
		for _, d := range deltas {
			if err := onEvent(domain.LLMStreamEventType_Delta, domain.LLMStreamEventDelta{Text: d}); err != nil {
				return err
			}
		}
		return onEvent(domain.LLMStreamEventType_Done, domain.LLMStreamEventDone{
			Usage: domain.LLMUsage{PromptTokens: 10, CompletionTokens: 2, TotalTokens: 12},
		})
	}
}

func TestChatAgent_Execute(t *testing.T) {
	request := domain.AgentRequest{
		Messages: []domain.Message{
			domain.NewUserMessage("will it rain?", nil),
			domain.NewAssistantMessage("where are you?", nil),
			{Role: domain.MessageRole_User, Content: "  ", Format: domain.DefaultMessageFormat},
			domain.NewUserMessage("in <CITY_1>", nil),
		},
		ConversationContext: domain.ConversationContext{
			ConversationID: "conv-1",
			AnonymizationEntities: []domain.AnonymizationEntity{
				{Type: "city", Value: "Lisbon", Replacement: "<CITY_1>"},
			},
		},
		SystemContext: []domain.ContextEntry{{Key: "channel", Value: "mobile"}},
		UserContext:   &domain.UserContext{Profile: []domain.ContextEntry{{Key: "units", Value: "metric"}}},
	}

	tests := map[string]struct {
		def             AgentDefinition
		setExpectations func(llm *domain.MockLLMClient)
		publishErr      error
		expectedOutput  domain.AgentOutput
		expectedPublish []domain.Message
		expectErr       bool
	}{
		"answer": {
			def: AgentDefinition{Name: "weather", Model: "ai/gemma3", SystemPrompt: "You talk about weather.", Temperature: common.Ptr(0.3)},
			setExpectations: func(llm *domain.MockLLMClient) {
				llm.EXPECT().ChatStream(mock.Anything, mock.MatchedBy(func(req domain.LLMChatRequest) bool {
					if req.Model != "ai/gemma3" || !req.Stream || req.Temperature == nil || *req.Temperature != 0.3 {
						return false
					}
					if len(req.Messages) != 4 || req.Messages[0].Role != domain.LLMChatRole_System {
						return false
					}
					system := req.Messages[0].Content
					return assert.ObjectsAreEqual([]domain.LLMChatMessage{
						{Role: domain.LLMChatRole_User, Content: "will it rain?"},
						{Role: domain.LLMChatRole_Assistant, Content: "where are you?"},
						{Role: domain.LLMChatRole_User, Content: "in <CITY_1>"},
					}, req.Messages[1:]) &&
						containsAll(system, "You talk about weather.", "conv-1", "mobile", "metric", "<CITY_1>")
				}), mock.Anything).RunAndReturn(streamDeltas("Light ", "rain ", "expected. "))
			},
			expectedOutput: domain.AgentOutput{
				Status:  "completed",
				Message: domain.NewAssistantMessage("Light rain expected.", common.Ptr("4")),
			},
		},
		"acknowledgement-first": {
			def: AgentDefinition{Name: "weather", Model: "ai/gemma3", Acknowledgement: "Checking..."},
			setExpectations: func(llm *domain.MockLLMClient) {
				llm.EXPECT().ChatStream(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(streamDeltas("Sunny."))
			},
			expectedPublish: []domain.Message{domain.NewAssistantMessage("Checking...", common.Ptr("4"))},
			expectedOutput: domain.AgentOutput{
				Status:  "completed",
				Message: domain.NewAssistantMessage("Sunny.", common.Ptr("4")),
			},
		},
		"acknowledgement-rejected": {
			def:             AgentDefinition{Name: "weather", Model: "ai/gemma3", Acknowledgement: "Checking..."},
			setExpectations: func(llm *domain.MockLLMClient) {},
			publishErr:      errors.New("session closed"),
			expectErr:       true,
		},
		"llm-error": {
			def: AgentDefinition{Name: "weather", Model: "ai/gemma3"},
			setExpectations: func(llm *domain.MockLLMClient) {
				llm.EXPECT().ChatStream(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("model unavailable"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			llm := domain.NewMockLLMClient(t)
			tt.setExpectations(llm)

			var published []domain.Message
			publish := func(_ context.Context, msg domain.Message) error {
				if tt.publishErr != nil {
					return tt.publishErr
				}
				published = append(published, msg)
				return nil
			}

			agent := NewChatAgent(tt.def, llm)
			out, err := agent.Execute(context.Background(), domain.AgentCall{
				Request: request,
				TurnID:  "4",
				Inbound: domain.NewClosedDataStream(nil),
			}, publish)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedOutput, out)
			assert.Equal(t, tt.expectedPublish, published)
		})
	}
}

func TestChatAgent_NameAndDescription(t *testing.T) {
	agent := NewChatAgent(AgentDefinition{Name: "weather", Description: "Weather questions"}, nil)
	assert.Equal(t, "weather", agent.Name())
	assert.Equal(t, "Weather questions", agent.Description())
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
