package domain

import (
	"context"
	"time"
)

type EventType string

const (
	// EventType_ROUTER_READY represents the event when the router finished its initial warm-up.
	EventType_ROUTER_READY EventType = "ROUTER.READY"
	// EventType_ROUTER_ROUTED represents the event when a request was routed.
	EventType_ROUTER_ROUTED EventType = "ROUTER.ROUTED"
	// EventType_ROUTE_ADDED represents the event when a route was added to the router.
	EventType_ROUTE_ADDED EventType = "ROUTER.ROUTE_ADDED"
	// EventType_SESSION_OPENED represents the event when a streaming session received its envelope.
	EventType_SESSION_OPENED EventType = "SESSION.OPENED"
	// EventType_SESSION_CLOSED represents the event when a streaming session ended.
	EventType_SESSION_CLOSED EventType = "SESSION.CLOSED"
	// EventType_AGENT_CALLED represents the event when an agent call finished.
	EventType_AGENT_CALLED EventType = "AGENT.CALLED"
)

// CurrentTimeProvider stamps events and measures routing and session durations.
type CurrentTimeProvider interface {
	Now() time.Time
}

// Event is a domain event. Every variant reports its own type tag.
type Event interface {
	Type() EventType
	OccurredAt() time.Time
}

// RouterReadyEvent is emitted once the router becomes ready.
type RouterReadyEvent struct {
	Routes int       `json:"routes"`
	At     time.Time `json:"at"`
}

func (e RouterReadyEvent) Type() EventType       { return EventType_ROUTER_READY }
func (e RouterReadyEvent) OccurredAt() time.Time { return e.At }

// RouterRoutedEvent is emitted for every routing call. Destination is nil when
// nothing was found.
type RouterRoutedEvent struct {
	Request     string        `json:"request"`
	Destination *Destination  `json:"destination"`
	Duration    time.Duration `json:"duration"`
	Ready       bool          `json:"ready"`
	At          time.Time     `json:"at"`
}

func (e RouterRoutedEvent) Type() EventType       { return EventType_ROUTER_ROUTED }
func (e RouterRoutedEvent) OccurredAt() time.Time { return e.At }

// RouteAddedEvent is emitted when a route is appended to the router.
type RouteAddedEvent struct {
	Destination string    `json:"destination"`
	Kind        RouteKind `json:"kind"`
	Embeddings  int       `json:"embeddings"`
	At          time.Time `json:"at"`
}

func (e RouteAddedEvent) Type() EventType       { return EventType_ROUTE_ADDED }
func (e RouteAddedEvent) OccurredAt() time.Time { return e.At }

// SessionOpenedEvent is emitted when a streaming session accepted its request envelope.
type SessionOpenedEvent struct {
	SessionID      string    `json:"sessionId"`
	AgentName      *string   `json:"agentName"`
	ConversationID string    `json:"conversationId"`
	At             time.Time `json:"at"`
}

func (e SessionOpenedEvent) Type() EventType       { return EventType_SESSION_OPENED }
func (e SessionOpenedEvent) OccurredAt() time.Time { return e.At }

// SessionClosedEvent is emitted when a streaming session ends.
type SessionClosedEvent struct {
	SessionID string        `json:"sessionId"`
	Code      CloseCode     `json:"code"`
	Reason    string        `json:"reason"`
	Results   int           `json:"results"`
	Duration  time.Duration `json:"duration"`
	At        time.Time     `json:"at"`
}

func (e SessionClosedEvent) Type() EventType       { return EventType_SESSION_CLOSED }
func (e SessionClosedEvent) OccurredAt() time.Time { return e.At }

// AgentCalledEvent is emitted when an agent finished executing.
type AgentCalledEvent struct {
	AgentName      string    `json:"agentName"`
	ConversationID string    `json:"conversationId"`
	Status         string    `json:"status"`
	ResponseTime   float64   `json:"responseTime"`
	Failed         bool      `json:"failed"`
	At             time.Time `json:"at"`
}

func (e AgentCalledEvent) Type() EventType       { return EventType_AGENT_CALLED }
func (e AgentCalledEvent) OccurredAt() time.Time { return e.At }

// EventPublisher publishes domain events.
// Publish is fire-and-forget: it never blocks the caller and never fails back into it.
type EventPublisher interface {
	Publish(ctx context.Context, event Event)
}

// EventHandler handles one published event.
type EventHandler func(ctx context.Context, event Event) error

// EventSubscriber registers handlers for event types.
type EventSubscriber interface {
	Subscribe(eventType EventType, handler EventHandler)
}
