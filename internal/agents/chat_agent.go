package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/usecases"
	"github.com/toon-format/toon-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ChatAgent answers a conversation with an LLM.
type ChatAgent struct {
	def AgentDefinition
	llm domain.LLMClient
}

// NewChatAgent creates a chat agent from its definition.
func NewChatAgent(def AgentDefinition, llm domain.LLMClient) ChatAgent {
	return ChatAgent{def: def, llm: llm}
}

func (a ChatAgent) Name() string        { return a.def.Name }
func (a ChatAgent) Description() string { return a.def.Description }

// Execute streams the model answer and returns it as the assistant message of the turn.
func (a ChatAgent) Execute(ctx context.Context, call domain.AgentCall, publish domain.MessagePublisher) (domain.AgentOutput, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("agent", a.def.Name),
		attribute.String("model", a.def.Model),
	))
	defer span.End()

	messages, err := a.buildMessages(call.Request)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AgentOutput{}, err
	}

	if a.def.Acknowledgement != "" {
		err := publish(spanCtx, domain.NewAssistantMessage(a.def.Acknowledgement, &call.TurnID))
		if telemetry.RecordErrorAndStatus(span, err) {
			return domain.AgentOutput{}, err
		}
	}

	var content strings.Builder
	err = a.llm.ChatStream(spanCtx, domain.LLMChatRequest{
		Model:       a.def.Model,
		Stream:      true,
		Temperature: a.def.Temperature,
		Messages:    messages,
	}, func(eventType domain.LLMStreamEventType, data any) error {
		switch eventType {
		case domain.LLMStreamEventType_Delta:
			delta := data.(domain.LLMStreamEventDelta)
			content.WriteString(delta.Text)
		case domain.LLMStreamEventType_Done:
			done := data.(domain.LLMStreamEventDone)
			usecases.RecordLLMTokensUsed(spanCtx, done.Usage.PromptTokens, done.Usage.CompletionTokens)
		}
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AgentOutput{}, fmt.Errorf("chat with model %s failed: %w", a.def.Model, err)
	}

	return domain.AgentOutput{
		Status:  "completed",
		Message: domain.NewAssistantMessage(strings.TrimSpace(content.String()), &call.TurnID),
	}, nil
}

// promptContext is the request context given to the model.
type promptContext struct {
	ConversationID string         `toon:"conversationId"`
	System         []contextEntry `toon:"system,omitempty"`
	Profile        []contextEntry `toon:"profile,omitempty"`
	// Placeholders lists the anonymized values the model must keep untouched.
	Placeholders []string `toon:"placeholders,omitempty"`
}

type contextEntry struct {
	Key   string `toon:"key"`
	Value string `toon:"value"`
}

func toContextEntries(entries []domain.ContextEntry) []contextEntry {
	out := make([]contextEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, contextEntry{Key: e.Key, Value: e.Value})
	}
	return out
}

// buildMessages renders the system prompt followed by the conversation.
func (a ChatAgent) buildMessages(req domain.AgentRequest) ([]domain.LLMChatMessage, error) {
	pc := promptContext{
		ConversationID: req.ConversationContext.ConversationID,
		System:         toContextEntries(req.SystemContext),
	}
	if req.UserContext != nil {
		pc.Profile = toContextEntries(req.UserContext.Profile)
	}
	for _, e := range req.ConversationContext.AnonymizationEntities {
		pc.Placeholders = append(pc.Placeholders, e.Replacement)
	}

	contextTOON, err := toon.MarshalString(pc, toon.WithLengthMarkers(true))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal prompt context: %w", err)
	}

	system := strings.TrimSpace(a.def.SystemPrompt)
	if system != "" {
		system += "\n\n"
	}
	system += "Context:\n" + contextTOON

	messages := []domain.LLMChatMessage{{Role: domain.LLMChatRole_System, Content: system}}
	for _, msg := range req.Messages {
		role, ok := chatRoles[msg.Role]
		if !ok || strings.TrimSpace(msg.Content) == "" {
			continue
		}
		messages = append(messages, domain.LLMChatMessage{Role: role, Content: msg.Content})
	}
	return messages, nil
}

var chatRoles = map[domain.MessageRole]domain.LLMChatRole{
	domain.MessageRole_User:      domain.LLMChatRole_User,
	domain.MessageRole_Assistant: domain.LLMChatRole_Assistant,
	domain.MessageRole_System:    domain.LLMChatRole_System,
}
