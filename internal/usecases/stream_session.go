package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	frameDirection_Inbound  = "inbound"
	frameDirection_Outbound = "outbound"
)

var errClientDisconnected = errors.New("client disconnected")

// SessionState is the lifecycle state of a streaming session.
type SessionState int32

const (
	// SessionState_AwaitingControlFrame waits for the request envelope.
	SessionState_AwaitingControlFrame SessionState = iota
	// SessionState_Streaming accepts binary data while the agent runs.
	SessionState_Streaming
	// SessionState_Closing flushes pending frames before closing the connection.
	SessionState_Closing
	// SessionState_Closed is the terminal state.
	SessionState_Closed
)

// SessionError describes a session that did not complete normally.
type SessionError struct {
	SessionID string
	Code      domain.CloseCode
	Reason    string
	Err       error
}

func (e *SessionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("session %s closed with %d (%s): %v", e.SessionID, e.Code, e.Reason, e.Err)
	}
	return fmt.Sprintf("session %s closed with %d (%s)", e.SessionID, e.Code, e.Reason)
}

func (e *SessionError) Unwrap() error {
	return e.Err
}

// StreamSession defines the interface for the StreamSession use case.
type StreamSession interface {
	// Serve runs one session on the connection until it closes. It returns a *SessionError
	// when the session did not complete normally.
	Serve(ctx context.Context, conn domain.FrameConn) error
}

// StreamSessionImpl is the implementation of the StreamSession use case.
type StreamSessionImpl struct {
	callAgent    CallAgent
	publisher    domain.EventPublisher
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
	newSessionID func() string
	since        func(time.Time) time.Duration
}

// NewStreamSessionImpl creates a new instance of StreamSessionImpl.
func NewStreamSessionImpl(
	callAgent CallAgent,
	publisher domain.EventPublisher,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
) StreamSessionImpl {
	return StreamSessionImpl{
		callAgent:    callAgent,
		publisher:    publisher,
		timeProvider: timeProvider,
		logger:       logger,
		newSessionID: uuid.NewString,
		since:        time.Since,
	}
}

// Serve runs the session. The first text frame is the request envelope, binary frames
// feed the agent inbound stream, and a <FIN> text frame ends the inbound stream.
// Every agent result is sent as a text frame, followed by a binary frame when the
// result carries data.
func (ss StreamSessionImpl) Serve(ctx context.Context, conn domain.FrameConn) error {
	s := &streamSession{
		id:        ss.newSessionID(),
		conn:      conn,
		callAgent: ss.callAgent,
		publisher: ss.publisher,
		now:       ss.timeProvider.Now,
		logger:    ss.logger,
		outbound:  newOutboundQueue(),
	}

	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("session_id", s.id),
	))
	defer span.End()

	StreamSessionsActive.Add(spanCtx, 1)
	defer StreamSessionsActive.Add(spanCtx, -1)

	started := time.Now()
	err := s.run(spanCtx)
	code, reason := s.outcome()

	ss.publisher.Publish(spanCtx, domain.SessionClosedEvent{
		SessionID: s.id,
		Code:      code,
		Reason:    reason,
		Results:   int(s.results.Load()),
		Duration:  ss.since(started),
		At:        s.now(),
	})
	RecordSessionClosed(spanCtx, code)
	span.SetAttributes(attribute.Int("close_code", int(code)))

	if code == domain.CloseCode_Normal {
		telemetry.RecordErrorAndStatus(span, nil)
		return nil
	}
	sessionErr := &SessionError{SessionID: s.id, Code: code, Reason: reason, Err: err}
	telemetry.RecordErrorAndStatus(span, sessionErr)
	return sessionErr
}

// streamSession holds the state of one connection.
type streamSession struct {
	id        string
	conn      domain.FrameConn
	callAgent CallAgent
	publisher domain.EventPublisher
	now       func() time.Time
	logger    *log.Logger

	outbound *outboundQueue
	state    atomic.Int32
	results  atomic.Int32
	closing  atomic.Bool

	// inbound is owned by the inbound pump.
	inbound *domain.DataStream

	outcomeMu   sync.Mutex
	outcomeSet  bool
	closeCode   domain.CloseCode
	closeReason string

	closeOnce sync.Once
	forwardMu sync.Mutex
}

func (s *streamSession) run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	stop := context.AfterFunc(gctx, s.closeConn)
	defer stop()

	g.Go(func() (err error) {
		defer s.recoverPanic("inbound pump", &err)
		return s.pumpInbound(gctx, g)
	})
	g.Go(func() (err error) {
		defer s.recoverPanic("outbound pump", &err)
		return s.pumpOutbound(gctx)
	})

	err := g.Wait()
	s.closeConn()
	s.setState(SessionState_Closed)
	return err
}

// pumpInbound reads frames until the connection closes.
func (s *streamSession) pumpInbound(ctx context.Context, g *errgroup.Group) error {
	defer func() {
		if s.inbound != nil {
			_ = s.inbound.Close()
		}
	}()

	for {
		frame, err := s.conn.ReadFrame(ctx)
		if err != nil {
			if s.closing.Load() || ctx.Err() != nil {
				return nil
			}
			s.finish(domain.CloseCode_GoingAway, "client disconnected")
			return fmt.Errorf("%w: %v", errClientDisconnected, err)
		}
		RecordFrame(ctx, frameDirection_Inbound, frame.Type)

		switch frame.Type {
		case domain.FrameType_Text:
			s.handleText(ctx, g, frame.Data)
		case domain.FrameType_Binary:
			s.handleBinary(frame.Data)
		default:
			s.logger.Printf("StreamSession[%s]: ignoring frame of unknown type %d", s.id, frame.Type)
		}
	}
}

func (s *streamSession) handleText(ctx context.Context, g *errgroup.Group, data []byte) {
	switch s.currentState() {
	case SessionState_AwaitingControlFrame:
		env, err := domain.ParseRequestEnvelope(data)
		if err != nil {
			s.logger.Printf("StreamSession[%s]: rejecting request envelope: %v", s.id, err)
			s.finish(domain.CloseCode_ProtocolError, "invalid request envelope")
			return
		}

		s.inbound = domain.NewDataStream()
		s.setState(SessionState_Streaming)
		s.publisher.Publish(ctx, domain.SessionOpenedEvent{
			SessionID:      s.id,
			AgentName:      env.AgentName,
			ConversationID: env.Payload.ConversationContext.ConversationID,
			At:             s.now(),
		})

		inbound := s.inbound
		g.Go(func() (err error) {
			defer s.recoverPanic("agent dispatch", &err)
			s.dispatch(ctx, env, inbound)
			return nil
		})
	case SessionState_Streaming:
		if string(data) == domain.StreamEndSentinel {
			_ = s.inbound.Close()
			return
		}
		s.logger.Printf("StreamSession[%s]: ignoring unexpected text frame", s.id)
	default:
		s.logger.Printf("StreamSession[%s]: ignoring text frame while closing", s.id)
	}
}

func (s *streamSession) handleBinary(data []byte) {
	if s.inbound == nil {
		s.logger.Printf("StreamSession[%s]: ignoring binary frame received before the request envelope", s.id)
		return
	}
	if _, err := s.inbound.Write(data); err != nil {
		s.logger.Printf("StreamSession[%s]: ignoring binary frame: %v", s.id, err)
	}
}

func (s *streamSession) dispatch(ctx context.Context, env domain.RequestEnvelope, inbound *domain.DataStream) {
	err := s.callAgent.Execute(ctx, env.AgentName, env.Payload, inbound, s.forwardResult)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Printf("StreamSession[%s]: agent call failed: %v", s.id, err)
		}
		s.finish(domain.CloseCode_InternalError, "agent call failed")
		return
	}
	s.finish(domain.CloseCode_Normal, "session completed")
}

// forwardResult queues the result as a text frame and its data, once fully written, as
// the binary frame right after it.
func (s *streamSession) forwardResult(ctx context.Context, result domain.AgentResult, data *domain.DataStream) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode agent result: %w", err)
	}

	s.forwardMu.Lock()
	defer s.forwardMu.Unlock()

	if !s.outbound.Push(domain.TextFrame(string(payload))) {
		return fmt.Errorf("session %s is closing", s.id)
	}
	if data != nil {
		bytes, err := data.ReadAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to read agent output data: %w", err)
		}
		if !s.outbound.Push(domain.BinaryFrame(bytes)) {
			return fmt.Errorf("session %s is closing", s.id)
		}
	}
	s.results.Add(1)
	StreamOutboundQueueDepth.Record(ctx, int64(s.outbound.Len()))
	return nil
}

// pumpOutbound is the only writer of data frames. Once the queue is closed and drained it
// closes the connection with the recorded outcome.
func (s *streamSession) pumpOutbound(ctx context.Context) error {
	for {
		frame, ok := s.outbound.Pop(ctx)
		if !ok {
			break
		}
		if err := s.conn.WriteFrame(ctx, frame); err != nil {
			s.finish(domain.CloseCode_GoingAway, "client disconnected")
			return fmt.Errorf("%w: %v", errClientDisconnected, err)
		}
		RecordFrame(ctx, frameDirection_Outbound, frame.Type)
	}

	if ctx.Err() == nil {
		s.closeConn()
	}
	return nil
}

// finish records the first outcome and stops accepting outbound frames.
func (s *streamSession) finish(code domain.CloseCode, reason string) {
	s.outcomeMu.Lock()
	if !s.outcomeSet {
		s.outcomeSet = true
		s.closeCode = code
		s.closeReason = reason
	}
	s.outcomeMu.Unlock()

	s.setState(SessionState_Closing)
	s.outbound.Close()
}

func (s *streamSession) outcome() (domain.CloseCode, string) {
	s.outcomeMu.Lock()
	defer s.outcomeMu.Unlock()
	if !s.outcomeSet {
		return domain.CloseCode_GoingAway, "server shutting down"
	}
	return s.closeCode, s.closeReason
}

func (s *streamSession) closeConn() {
	s.closeOnce.Do(func() {
		s.closing.Store(true)
		code, reason := s.outcome()
		if err := s.conn.Close(code, reason); err != nil {
			s.logger.Printf("StreamSession[%s]: closing connection: %v", s.id, err)
		}
	})
}

func (s *streamSession) recoverPanic(where string, err *error) {
	if r := recover(); r != nil {
		s.logger.Printf("StreamSession[%s]: panic in %s: %v\n%s", s.id, where, r, debug.Stack())
		s.finish(domain.CloseCode_InternalError, "internal error")
		*err = fmt.Errorf("panic in %s: %v", where, r)
	}
}

func (s *streamSession) currentState() SessionState {
	return SessionState(s.state.Load())
}

func (s *streamSession) setState(state SessionState) {
	s.state.Store(int32(state))
}

// InitStreamSession initializes the StreamSession use case and registers it in the dependency container.
type InitStreamSession struct {
	CallAgent    CallAgent                  `resolve:""`
	Publisher    domain.EventPublisher      `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
}

// Initialize registers the StreamSession implementation in the dependency container.
func (iss InitStreamSession) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[StreamSession](NewStreamSessionImpl(iss.CallAgent, iss.Publisher, iss.TimeProvider, iss.Logger))
	return ctx, nil
}
