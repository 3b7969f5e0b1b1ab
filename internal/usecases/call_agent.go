package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/common"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// errAgentCallFinished is returned to agents that publish after their call returned.
var errAgentCallFinished = errors.New("agent call already finished")

// AgentResultHandler receives every result of an agent call, in order. Data is nil for
// intermediate results and for final results without binary content.
type AgentResultHandler func(ctx context.Context, result domain.AgentResult, data *domain.DataStream) error

// CallAgent defines the interface for the CallAgent use case.
type CallAgent interface {
	// Execute picks an agent for the request, runs it and reports every result to onResult.
	Execute(
		ctx context.Context,
		agentName *string,
		req domain.AgentRequest,
		inbound *domain.DataStream,
		onResult AgentResultHandler,
	) error
}

// CallAgentImpl is the implementation of the CallAgent use case.
type CallAgentImpl struct {
	agentProvider domain.AgentProvider
	agentResolver domain.AgentResolver
	publisher     domain.EventPublisher
	timeProvider  domain.CurrentTimeProvider
	logger        *log.Logger
	since         func(time.Time) time.Duration
}

// NewCallAgentImpl creates a new instance of CallAgentImpl.
func NewCallAgentImpl(
	agentProvider domain.AgentProvider,
	agentResolver domain.AgentResolver,
	publisher domain.EventPublisher,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
) CallAgentImpl {
	return CallAgentImpl{
		agentProvider: agentProvider,
		agentResolver: agentResolver,
		publisher:     publisher,
		timeProvider:  timeProvider,
		logger:        logger,
		since:         time.Since,
	}
}

// Execute runs one agent call. Intermediate messages published by the agent are reported
// as results without data before the final result.
func (ca CallAgentImpl) Execute(
	ctx context.Context,
	agentName *string,
	req domain.AgentRequest,
	inbound *domain.DataStream,
	onResult AgentResultHandler,
) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("conversation_id", req.ConversationContext.ConversationID),
	))
	defer span.End()

	if err := req.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	agent, err := ca.findAgent(spanCtx, agentName, req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	span.SetAttributes(attribute.String("agent", agent.Name()))

	if inbound == nil {
		inbound = domain.NewClosedDataStream(nil)
	}

	entities := req.ConversationContext.AnonymizationEntities
	turnID := req.CurrentTurnID()
	start := time.Now()

	var (
		mu       sync.Mutex
		finished bool
	)
	publish := func(ctx context.Context, msg domain.Message) error {
		mu.Lock()
		defer mu.Unlock()
		if finished {
			return errAgentCallFinished
		}
		return onResult(ctx, domain.AgentResult{
			ResponseTime:          ca.secondsSince(start),
			Messages:              []domain.Message{normalizeAgentMessage(msg, turnID)},
			AnonymizationEntities: entities,
		}, nil)
	}

	output, err := agent.Execute(spanCtx, domain.AgentCall{
		Request: req,
		TurnID:  turnID,
		Inbound: inbound,
	}, publish)

	mu.Lock()
	finished = true
	mu.Unlock()

	responseTime := ca.secondsSince(start)
	ca.publisher.Publish(spanCtx, domain.AgentCalledEvent{
		AgentName:      agent.Name(),
		ConversationID: req.ConversationContext.ConversationID,
		Status:         output.Status,
		ResponseTime:   responseTime,
		Failed:         err != nil,
		At:             ca.timeProvider.Now(),
	})
	RecordAgentCall(spanCtx, agent.Name(), err != nil, responseTime)

	if err != nil {
		err = domain.NewProviderErr(fmt.Sprintf("agent %s failed", agent.Name()), err)
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	result := domain.AgentResult{
		ResponseTime:          responseTime,
		Messages:              buildOutputMessages(output, turnID),
		AnonymizationEntities: entities,
	}
	if output.Status != "" {
		result.Status = common.Ptr(output.Status)
	}

	err = onResult(spanCtx, result, output.Data)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// findAgent looks the agent up by name, then asks the resolver, then falls back to the
// first registered agent.
func (ca CallAgentImpl) findAgent(ctx context.Context, agentName *string, req domain.AgentRequest) (domain.Agent, error) {
	if agentName != nil {
		if agent, ok := ca.agentProvider.GetAgent(*agentName); ok {
			return agent, nil
		}
		ca.logger.Printf("CallAgent: agent %q not found, resolving", *agentName)
	}

	if ca.agentResolver != nil {
		agent, ok, err := ca.agentResolver.ResolveAgent(ctx, agentName, req)
		if err != nil {
			ca.logger.Printf("CallAgent: agent resolution failed: %v", err)
		} else if ok {
			return agent, nil
		}
	}

	if agents := ca.agentProvider.ListAgents(); len(agents) > 0 {
		return agents[0], nil
	}
	return nil, domain.ErrNoAgent
}

func (ca CallAgentImpl) secondsSince(start time.Time) float64 {
	return ca.since(start).Seconds()
}

// buildOutputMessages echoes the user transcript, when present, before the agent answer.
func buildOutputMessages(output domain.AgentOutput, turnID string) []domain.Message {
	messages := make([]domain.Message, 0, 2)
	if output.UserTranscript != nil && *output.UserTranscript != "" {
		messages = append(messages, domain.NewUserMessage(*output.UserTranscript, common.Ptr(turnID)))
	}
	return append(messages, normalizeAgentMessage(output.Message, turnID))
}

func normalizeAgentMessage(msg domain.Message, turnID string) domain.Message {
	if msg.Role == "" {
		msg.Role = domain.MessageRole_Assistant
	}
	if msg.Format == "" {
		msg.Format = domain.DefaultMessageFormat
	}
	if msg.TurnID == nil {
		msg.TurnID = common.Ptr(turnID)
	}
	return msg
}

// InitCallAgent initializes the CallAgent use case and registers it in the dependency container.
type InitCallAgent struct {
	AgentProvider domain.AgentProvider       `resolve:""`
	AgentResolver domain.AgentResolver       `resolve:""`
	Publisher     domain.EventPublisher      `resolve:""`
	TimeProvider  domain.CurrentTimeProvider `resolve:""`
	Logger        *log.Logger                `resolve:""`
}

// Initialize registers the CallAgent implementation in the dependency container.
func (ica InitCallAgent) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CallAgent](NewCallAgentImpl(
		ica.AgentProvider,
		ica.AgentResolver,
		ica.Publisher,
		ica.TimeProvider,
		ica.Logger,
	))
	return ctx, nil
}
