package workers

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
)

// InitEventLogger subscribes a handler that writes every gateway event to the log.
type InitEventLogger struct {
	Logger     *log.Logger            `resolve:""`
	Subscriber domain.EventSubscriber `resolve:""`
	Enabled    bool                   `config:"LOG_EVENTS" default:"true"`
}

// Initialize subscribes the event logger to every event type.
func (i InitEventLogger) Initialize(ctx context.Context) (context.Context, error) {
	if !i.Enabled {
		return ctx, nil
	}
	handler := EventLogger{logger: i.Logger}.Handle
	for _, eventType := range []domain.EventType{
		domain.EventType_ROUTER_READY,
		domain.EventType_ROUTER_ROUTED,
		domain.EventType_ROUTE_ADDED,
		domain.EventType_SESSION_OPENED,
		domain.EventType_SESSION_CLOSED,
		domain.EventType_AGENT_CALLED,
	} {
		i.Subscriber.Subscribe(eventType, handler)
	}
	return ctx, nil
}

// EventLogger formats gateway events as log lines.
type EventLogger struct {
	logger *log.Logger
}

// Handle writes one event to the log.
func (el EventLogger) Handle(_ context.Context, event domain.Event) error {
	switch e := event.(type) {
	case domain.RouterReadyEvent:
		el.logger.Printf("Event %s: %d routes", e.Type(), e.Routes)
	case domain.RouterRoutedEvent:
		if e.Destination == nil {
			el.logger.Printf("Event %s: %q -> no destination (ready=%t, %s)", e.Type(), e.Request, e.Ready, e.Duration)
			return nil
		}
		el.logger.Printf("Event %s: %q -> %s (accuracy=%.3f, ready=%t, %s)",
			e.Type(), e.Request, e.Destination.Destination, e.Destination.Accuracy, e.Ready, e.Duration)
	case domain.RouteAddedEvent:
		el.logger.Printf("Event %s: %s route %q with %d embeddings", e.Type(), e.Kind, e.Destination, e.Embeddings)
	case domain.SessionOpenedEvent:
		agent := "<routed>"
		if e.AgentName != nil {
			agent = *e.AgentName
		}
		el.logger.Printf("Event %s: session %s for agent %s in conversation %s", e.Type(), e.SessionID, agent, e.ConversationID)
	case domain.SessionClosedEvent:
		el.logger.Printf("Event %s: session %s closed with %d (%s) after %d results in %s",
			e.Type(), e.SessionID, e.Code, e.Reason, e.Results, e.Duration)
	case domain.AgentCalledEvent:
		el.logger.Printf("Event %s: agent %s answered %q in %.3fs (failed=%t)",
			e.Type(), e.AgentName, e.Status, e.ResponseTime, e.Failed)
	default:
		el.logger.Printf("Event %s at %s", event.Type(), event.OccurredAt().Format("2006-01-02T15:04:05Z07:00"))
	}
	return nil
}
