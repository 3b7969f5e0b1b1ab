package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/common"
	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errConnClosed = errors.New("connection closed")

// fakeConn is an in-memory domain.FrameConn. Tests play the client by sending on in
// and close in to simulate a client disconnect.
type fakeConn struct {
	in chan domain.Frame

	mu      sync.Mutex
	written []domain.Frame

	closeOnce sync.Once
	closed    chan struct{}
	code      domain.CloseCode
	reason    string
}

func newFakeConn(frames ...domain.Frame) *fakeConn {
	c := &fakeConn{
		in:     make(chan domain.Frame, len(frames)+16),
		closed: make(chan struct{}),
	}
	for _, f := range frames {
		c.in <- f
	}
	return c
}

func (c *fakeConn) ReadFrame(ctx context.Context) (domain.Frame, error) {
	select {
	case f, ok := <-c.in:
		if !ok {
			return domain.Frame{}, errConnClosed
		}
		return f, nil
	case <-c.closed:
		return domain.Frame{}, errConnClosed
	}
}

func (c *fakeConn) WriteFrame(ctx context.Context, frame domain.Frame) error {
	select {
	case <-c.closed:
		return errConnClosed
	default:
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.written = append(c.written, frame)
	return nil
}

func (c *fakeConn) Close(code domain.CloseCode, reason string) error {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.code = code
		c.reason = reason
		c.mu.Unlock()
		close(c.closed)
	})
	return nil
}

func (c *fakeConn) Written() []domain.Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Frame(nil), c.written...)
}

func (c *fakeConn) CloseCode() domain.CloseCode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.code
}

func envelopeFrame(t *testing.T, agentName *string) domain.Frame {
	t.Helper()
	b, err := json.Marshal(domain.RequestEnvelope{
		AgentName: agentName,
		Payload: domain.AgentRequest{
			Messages:            []domain.Message{domain.NewUserMessage("hello", common.Ptr("t1"))},
			ConversationContext: domain.ConversationContext{ConversationID: "c1"},
		},
	})
	require.NoError(t, err)
	return domain.TextFrame(string(b))
}

func finFrame() domain.Frame {
	return domain.TextFrame(domain.StreamEndSentinel)
}

func decodeResult(t *testing.T, frame domain.Frame) domain.AgentResult {
	t.Helper()
	require.Equal(t, domain.FrameType_Text, frame.Type)
	var result domain.AgentResult
	require.NoError(t, json.Unmarshal(frame.Data, &result))
	return result
}

// callAgentFunc adapts a function to CallAgent. Sessions hand it live streams, so it
// must not go through mock argument matching, which reads them without locking.
type callAgentFunc func(context.Context, *string, domain.AgentRequest, *domain.DataStream, AgentResultHandler) error

func (f callAgentFunc) Execute(
	ctx context.Context,
	agentName *string,
	req domain.AgentRequest,
	inbound *domain.DataStream,
	onResult AgentResultHandler,
) error {
	return f(ctx, agentName, req, inbound, onResult)
}

// countingCallAgent records how often it was called and the agent names it saw.
type countingCallAgent struct {
	mu     sync.Mutex
	names  []*string
	handle callAgentFunc
}

func (c *countingCallAgent) Execute(
	ctx context.Context,
	agentName *string,
	req domain.AgentRequest,
	inbound *domain.DataStream,
	onResult AgentResultHandler,
) error {
	c.mu.Lock()
	c.names = append(c.names, agentName)
	c.mu.Unlock()
	if c.handle == nil {
		return nil
	}
	return c.handle(ctx, agentName, req, inbound, onResult)
}

func (c *countingCallAgent) Names() []*string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*string(nil), c.names...)
}

func newTestStreamSession(t *testing.T, callAgent CallAgent) StreamSessionImpl {
	ss := NewStreamSessionImpl(callAgent, newQuietPublisher(t), newTestTimeProvider(t), newTestLogger())
	ss.newSessionID = func() string { return "session-1" }
	ss.since = func(time.Time) time.Duration { return 0 }
	return ss
}

func serveWithTimeout(t *testing.T, ss StreamSessionImpl, conn domain.FrameConn) error {
	t.Helper()
	errCh := make(chan error, 1)
	go func() { errCh <- ss.Serve(context.Background(), conn) }()
	select {
	case err := <-errCh:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("session did not finish")
		return nil
	}
}

// drainingAgent reads the whole inbound stream before answering.
func drainingAgent(chunks *[][]byte) callAgentFunc {
	return func(ctx context.Context, agentName *string, req domain.AgentRequest, inbound *domain.DataStream, onResult AgentResultHandler) error {
		r := inbound.Subscribe()
		for {
			chunk, err := r.Next(ctx)
			if err != nil {
				break
			}
			*chunks = append(*chunks, chunk)
		}
		return onResult(ctx, domain.AgentResult{
			Status:   common.Ptr("DONE"),
			Messages: []domain.Message{domain.NewAssistantMessage("ok", req.Messages[0].TurnID)},
		}, nil)
	}
}

func TestStreamSession_EnvelopeThenFinYieldsOneResult(t *testing.T) {
	var chunks [][]byte
	callAgent := &countingCallAgent{handle: drainingAgent(&chunks)}

	conn := newFakeConn(envelopeFrame(t, common.Ptr("weather")), finFrame())
	err := serveWithTimeout(t, newTestStreamSession(t, callAgent), conn)
	require.NoError(t, err)

	written := conn.Written()
	require.Len(t, written, 1)
	result := decodeResult(t, written[0])
	assert.Equal(t, common.Ptr("DONE"), result.Status)
	assert.Equal(t, "ok", result.Messages[0].Content)
	assert.Empty(t, chunks)
	assert.Equal(t, []*string{common.Ptr("weather")}, callAgent.Names())
	assert.Equal(t, domain.CloseCode_Normal, conn.CloseCode())
}

func TestStreamSession_BinaryChunksReachAgentInOrder(t *testing.T) {
	var chunks [][]byte
	callAgent := &countingCallAgent{handle: drainingAgent(&chunks)}

	frames := []domain.Frame{
		domain.BinaryFrame([]byte("early")),
		envelopeFrame(t, nil),
		domain.BinaryFrame([]byte("one")),
		domain.BinaryFrame([]byte("two")),
		domain.TextFrame("not a sentinel"),
		domain.BinaryFrame([]byte("three")),
		finFrame(),
		domain.BinaryFrame([]byte("after-fin")),
	}
	conn := newFakeConn(frames...)
	err := serveWithTimeout(t, newTestStreamSession(t, callAgent), conn)
	require.NoError(t, err)

	assert.Equal(t, [][]byte{[]byte("one"), []byte("two"), []byte("three")}, chunks)
	assert.Equal(t, []*string{nil}, callAgent.Names())
	assert.Len(t, conn.Written(), 1)
}

func TestStreamSession_ResultDataFollowsItsResult(t *testing.T) {
	callAgent := callAgentFunc(
		func(ctx context.Context, _ *string, _ domain.AgentRequest, _ *domain.DataStream, onResult AgentResultHandler) error {
			if err := onResult(ctx, domain.AgentResult{Messages: []domain.Message{domain.NewAssistantMessage("partial", nil)}}, nil); err != nil {
				return err
			}

			data := domain.NewDataStream()
			go func() {
				for _, c := range []string{"au", "di", "o"} {
					_, _ = data.Write([]byte(c))
					time.Sleep(5 * time.Millisecond)
				}
				_ = data.Close()
			}()
			if err := onResult(ctx, domain.AgentResult{Messages: []domain.Message{domain.NewAssistantMessage("first", nil)}}, data); err != nil {
				return err
			}
			return onResult(ctx, domain.AgentResult{
				Messages: []domain.Message{domain.NewAssistantMessage("second", nil)},
			}, domain.NewClosedDataStream([]byte("tail")))
		})

	conn := newFakeConn(envelopeFrame(t, nil), finFrame())
	err := serveWithTimeout(t, newTestStreamSession(t, callAgent), conn)
	require.NoError(t, err)

	written := conn.Written()
	require.Len(t, written, 5)
	assert.Equal(t, "partial", decodeResult(t, written[0]).Messages[0].Content)
	assert.Equal(t, "first", decodeResult(t, written[1]).Messages[0].Content)
	assert.Equal(t, domain.BinaryFrame([]byte("audio")), written[2])
	assert.Equal(t, "second", decodeResult(t, written[3]).Messages[0].Content)
	assert.Equal(t, domain.BinaryFrame([]byte("tail")), written[4])
}

func TestStreamSession_AbnormalEndings(t *testing.T) {
	tests := map[string]struct {
		frames       func(t *testing.T) []domain.Frame
		handle       callAgentFunc
		wantCalls    int
		disconnect   bool
		wantCode     domain.CloseCode
		wantWritten  int
		wantSentinel error
	}{
		"invalid-envelope": {
			frames: func(t *testing.T) []domain.Frame {
				return []domain.Frame{domain.TextFrame(`{"agentName":`)}
			},
			wantCode: domain.CloseCode_ProtocolError,
		},
		"sentinel-before-envelope": {
			frames: func(t *testing.T) []domain.Frame {
				return []domain.Frame{finFrame()}
			},
			wantCode: domain.CloseCode_ProtocolError,
		},
		"agent-call-fails": {
			frames: func(t *testing.T) []domain.Frame {
				return []domain.Frame{envelopeFrame(t, nil), finFrame()}
			},
			handle: func(context.Context, *string, domain.AgentRequest, *domain.DataStream, AgentResultHandler) error {
				return assert.AnError
			},
			wantCalls: 1,
			wantCode:  domain.CloseCode_InternalError,
		},
		"intermediate-results-are-flushed-before-failure": {
			frames: func(t *testing.T) []domain.Frame {
				return []domain.Frame{envelopeFrame(t, nil), finFrame()}
			},
			handle: func(ctx context.Context, _ *string, _ domain.AgentRequest, _ *domain.DataStream, onResult AgentResultHandler) error {
				_ = onResult(ctx, domain.AgentResult{Messages: []domain.Message{domain.NewAssistantMessage("thinking", nil)}}, nil)
				return assert.AnError
			},
			wantCalls:   1,
			wantCode:    domain.CloseCode_InternalError,
			wantWritten: 1,
		},
		"agent-panics": {
			frames: func(t *testing.T) []domain.Frame {
				return []domain.Frame{envelopeFrame(t, nil), finFrame()}
			},
			handle: func(context.Context, *string, domain.AgentRequest, *domain.DataStream, AgentResultHandler) error {
				panic("agent exploded")
			},
			wantCalls: 1,
			wantCode:  domain.CloseCode_InternalError,
		},
		"client-disconnects-while-agent-waits": {
			frames: func(t *testing.T) []domain.Frame {
				return []domain.Frame{envelopeFrame(t, nil), domain.BinaryFrame([]byte("partial"))}
			},
			handle: func(ctx context.Context, _ *string, _ domain.AgentRequest, inbound *domain.DataStream, _ AgentResultHandler) error {
				_, err := inbound.ReadAll(ctx)
				if err != nil {
					return err
				}
				<-ctx.Done()
				return ctx.Err()
			},
			wantCalls:    1,
			disconnect:   true,
			wantCode:     domain.CloseCode_GoingAway,
			wantSentinel: errClientDisconnected,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			callAgent := &countingCallAgent{handle: tt.handle}

			conn := newFakeConn(tt.frames(t)...)
			if tt.disconnect {
				go func() {
					time.Sleep(20 * time.Millisecond)
					close(conn.in)
				}()
			}

			err := serveWithTimeout(t, newTestStreamSession(t, callAgent), conn)

			var sessionErr *SessionError
			require.ErrorAs(t, err, &sessionErr)
			assert.Equal(t, tt.wantCode, sessionErr.Code)
			assert.Equal(t, "session-1", sessionErr.SessionID)
			if tt.wantSentinel != nil {
				assert.ErrorIs(t, err, tt.wantSentinel)
			}
			assert.Equal(t, tt.wantCode, conn.CloseCode())
			assert.Len(t, conn.Written(), tt.wantWritten)
			assert.Len(t, callAgent.Names(), tt.wantCalls)
		})
	}
}

func TestStreamSession_PublishesLifecycleEvents(t *testing.T) {
	callAgent := callAgentFunc(
		func(ctx context.Context, _ *string, _ domain.AgentRequest, _ *domain.DataStream, onResult AgentResultHandler) error {
			return onResult(ctx, domain.AgentResult{Messages: []domain.Message{domain.NewAssistantMessage("ok", nil)}}, nil)
		})

	pub := domain.NewMockEventPublisher(t)
	pub.EXPECT().Publish(mock.Anything, domain.SessionOpenedEvent{
		SessionID:      "session-1",
		AgentName:      common.Ptr("weather"),
		ConversationID: "c1",
		At:             fixedTime,
	}).Once()
	pub.EXPECT().Publish(mock.Anything, domain.SessionClosedEvent{
		SessionID: "session-1",
		Code:      domain.CloseCode_Normal,
		Reason:    "session completed",
		Results:   1,
		At:        fixedTime,
	}).Once()

	ss := NewStreamSessionImpl(callAgent, pub, newTestTimeProvider(t), newTestLogger())
	ss.newSessionID = func() string { return "session-1" }
	ss.since = func(time.Time) time.Duration { return 0 }

	conn := newFakeConn(envelopeFrame(t, common.Ptr("weather")), finFrame())
	require.NoError(t, serveWithTimeout(t, ss, conn))
}

func TestOutboundQueue(t *testing.T) {
	q := newOutboundQueue()
	assert.True(t, q.Push(domain.TextFrame("a"), domain.BinaryFrame([]byte("b"))))
	assert.Equal(t, 2, q.Len())
	q.Close()
	assert.False(t, q.Push(domain.TextFrame("late")))

	f, ok := q.Pop(context.Background())
	require.True(t, ok)
	assert.Equal(t, domain.TextFrame("a"), f)
	f, ok = q.Pop(context.Background())
	require.True(t, ok)
	assert.Equal(t, domain.BinaryFrame([]byte("b")), f)
	_, ok = q.Pop(context.Background())
	assert.False(t, ok)

	blocked := newOutboundQueue()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok = blocked.Pop(ctx)
	assert.False(t, ok)
}
