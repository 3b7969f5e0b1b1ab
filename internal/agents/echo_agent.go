package agents

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
)

// EchoAgent repeats the last user message and returns the inbound binary data unchanged.
type EchoAgent struct {
	name        string
	description string
}

// NewEchoAgent creates an echo agent.
func NewEchoAgent(name, description string) EchoAgent {
	return EchoAgent{name: name, description: description}
}

func (a EchoAgent) Name() string        { return a.name }
func (a EchoAgent) Description() string { return a.description }

// Execute waits for the inbound stream to close before answering.
func (a EchoAgent) Execute(ctx context.Context, call domain.AgentCall, _ domain.MessagePublisher) (domain.AgentOutput, error) {
	data, err := call.Inbound.ReadAll(ctx)
	if err != nil {
		return domain.AgentOutput{}, fmt.Errorf("failed to read inbound data: %w", err)
	}

	var content string
	if msg, ok := call.Request.LastUserMessage(); ok {
		content = msg.Content
	}

	out := domain.AgentOutput{
		Status:  "completed",
		Message: domain.NewAssistantMessage(content, &call.TurnID),
	}
	if len(data) > 0 {
		out.Data = domain.NewClosedDataStream(data)
	}
	return out, nil
}
