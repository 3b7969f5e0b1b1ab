package eventbus

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	meter        = otel.Meter("eventbus")
	droppedTotal metric.Int64Counter
)

func init() {
	var err error
	droppedTotal, err = meter.Int64Counter(
		"event_bus_dropped_total",
		metric.WithDescription("Events dropped because the bus buffer was full"),
	)
	if err != nil {
		panic(err)
	}
}

type queuedEvent struct {
	ctx   context.Context
	event domain.Event
}

// Bus is an in-process event bus. Publish never blocks: events are buffered and
// delivered by Run to the handlers subscribed to their type, in publish order.
// When the buffer is full the event is dropped and counted.
type Bus struct {
	logger   *log.Logger
	events   chan queuedEvent
	mu       sync.RWMutex
	handlers map[domain.EventType][]domain.EventHandler
}

// NewBus creates a bus that buffers up to size events.
func NewBus(size int, logger *log.Logger) *Bus {
	if size < 1 {
		size = 1
	}
	return &Bus{
		logger:   logger,
		events:   make(chan queuedEvent, size),
		handlers: make(map[domain.EventType][]domain.EventHandler),
	}
}

// Subscribe registers a handler for one event type.
func (b *Bus) Subscribe(eventType domain.EventType, handler domain.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish queues the event for delivery. The caller's span is linked to the delivery,
// its cancellation is not.
func (b *Bus) Publish(ctx context.Context, event domain.Event) {
	deliveryCtx := trace.ContextWithSpanContext(context.Background(), trace.SpanContextFromContext(ctx))
	select {
	case b.events <- queuedEvent{ctx: deliveryCtx, event: event}:
	default:
		droppedTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("event_type", string(event.Type()))))
		b.logger.Printf("EventBus: buffer full, dropping %s event", event.Type())
	}
}

// Run delivers events until ctx is done. Events still buffered at that point are delivered
// before Run returns.
func (b *Bus) Run(ctx context.Context) error {
	b.logger.Println("EventBus: running...")
	for {
		select {
		case q := <-b.events:
			b.dispatch(q)
		case <-ctx.Done():
			b.drain()
			b.logger.Println("EventBus: stopping...")
			return nil
		}
	}
}

func (b *Bus) drain() {
	for {
		select {
		case q := <-b.events:
			b.dispatch(q)
		default:
			return
		}
	}
}

func (b *Bus) dispatch(q queuedEvent) {
	b.mu.RLock()
	handlers := b.handlers[q.event.Type()]
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}

	spanCtx, span := telemetry.Start(q.ctx, trace.WithAttributes(
		attribute.String("event_type", string(q.event.Type())),
	))
	defer span.End()

	for _, handler := range handlers {
		if err := b.handle(spanCtx, handler, q.event); err != nil {
			telemetry.RecordErrorAndStatus(span, err)
			b.logger.Printf("EventBus: handler failed for %s event: %v", q.event.Type(), err)
		}
	}
}

func (b *Bus) handle(ctx context.Context, handler domain.EventHandler, event domain.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return handler(ctx, event)
}

// InitEventBus creates the bus and registers it as the event publisher and subscriber.
type InitEventBus struct {
	Logger     *log.Logger `resolve:""`
	BufferSize int         `config:"EVENT_BUS_BUFFER" default:"256"`
}

// Initialize registers the bus in the dependency container.
func (i InitEventBus) Initialize(ctx context.Context) (context.Context, error) {
	bus := NewBus(i.BufferSize, i.Logger)
	depend.Register(bus)
	depend.Register[domain.EventPublisher](bus)
	depend.Register[domain.EventSubscriber](bus)
	return ctx, nil
}

// Dispatcher is the runnable that delivers the events published on the bus.
type Dispatcher struct {
	Bus *Bus `resolve:""`
}

// Run delivers events until ctx is done.
func (d Dispatcher) Run(ctx context.Context) error {
	return d.Bus.Run(ctx)
}
