package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ForwardedEventTypes are the event types published to Pub/Sub.
var ForwardedEventTypes = []domain.EventType{
	domain.EventType_ROUTER_READY,
	domain.EventType_ROUTER_ROUTED,
	domain.EventType_ROUTE_ADDED,
	domain.EventType_SESSION_OPENED,
	domain.EventType_SESSION_CLOSED,
	domain.EventType_AGENT_CALLED,
}

// EventForwarder publishes gateway events to a Pub/Sub topic as JSON messages.
type EventForwarder struct {
	publisher *pubsubV2.Publisher
	topic     string
}

// NewEventForwarder creates a forwarder for the given topic.
func NewEventForwarder(client *pubsubV2.Client, topic string) EventForwarder {
	return EventForwarder{
		publisher: client.Publisher(topic),
		topic:     topic,
	}
}

// Forward publishes one event and waits for the server to acknowledge it.
func (f EventForwarder) Forward(ctx context.Context, event domain.Event) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("event_type", string(event.Type())),
			attribute.String("topic", f.topic),
		),
	)
	defer span.End()

	payload, err := json.Marshal(event)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to encode %s event: %w", event.Type(), err)
	}

	result := f.publisher.Publish(spanCtx, &pubsubV2.Message{
		Data: payload,
		Attributes: map[string]string{
			"event_type":  string(event.Type()),
			"occurred_at": event.OccurredAt().UTC().Format(time.RFC3339Nano),
		},
	})

	_, err = result.Get(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// Stop flushes pending messages and stops the underlying publisher.
func (f EventForwarder) Stop() {
	f.publisher.Stop()
}

// InitEventForwarder subscribes the forwarder to the event bus when Pub/Sub is enabled.
type InitEventForwarder struct {
	Logger     *log.Logger            `resolve:""`
	Subscriber domain.EventSubscriber `resolve:""`
	ProjectID  string                 `config:"PUBSUB_PROJECT_ID" default:"-"`
	TopicID    string                 `config:"ROUTER_EVENTS_TOPIC_ID" default:"agent-gateway-events"`
	client     *pubsubV2.Client
	forwarder  *EventForwarder
}

// Initialize creates the forwarder and subscribes it to every forwarded event type.
func (i *InitEventForwarder) Initialize(ctx context.Context) (context.Context, error) {
	if i.ProjectID == disabledProjectID && i.client == nil {
		i.Logger.Println("InitEventForwarder: pubsub disabled, events stay in-process")
		return ctx, nil
	}

	if i.client == nil {
		client, err := depend.Resolve[*pubsubV2.Client]()
		if err != nil {
			return ctx, fmt.Errorf("failed to resolve pubsub client: %w", err)
		}
		i.client = client
	}

	forwarder := NewEventForwarder(i.client, i.TopicID)
	i.forwarder = &forwarder
	for _, eventType := range ForwardedEventTypes {
		i.Subscriber.Subscribe(eventType, forwarder.Forward)
	}
	i.Logger.Printf("InitEventForwarder: forwarding events to topic %s", i.TopicID)
	return ctx, nil
}

// Close stops the publisher.
func (i *InitEventForwarder) Close() {
	if i.forwarder != nil {
		i.forwarder.Stop()
	}
}
