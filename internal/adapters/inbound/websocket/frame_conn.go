package websocket

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
	ws "github.com/gorilla/websocket"
)

// maxCloseReason is the longest reason a close frame can carry.
const maxCloseReason = 123

// FrameConn adapts a gorilla WebSocket connection to domain.FrameConn.
type FrameConn struct {
	conn         *ws.Conn
	writeTimeout time.Duration
	closeOnce    sync.Once
	closeErr     error
}

// NewFrameConn wraps an upgraded connection.
func NewFrameConn(conn *ws.Conn, writeTimeout time.Duration) *FrameConn {
	return &FrameConn{conn: conn, writeTimeout: writeTimeout}
}

// ReadFrame blocks until the next text or binary message arrives.
// Close unblocks it.
func (c *FrameConn) ReadFrame(ctx context.Context) (domain.Frame, error) {
	for {
		if err := ctx.Err(); err != nil {
			return domain.Frame{}, err
		}
		messageType, data, err := c.conn.ReadMessage()
		if err != nil {
			return domain.Frame{}, err
		}
		switch messageType {
		case ws.TextMessage:
			return domain.Frame{Type: domain.FrameType_Text, Data: data}, nil
		case ws.BinaryMessage:
			return domain.Frame{Type: domain.FrameType_Binary, Data: data}, nil
		}
	}
}

// WriteFrame sends the frame as a text or binary message.
func (c *FrameConn) WriteFrame(ctx context.Context, frame domain.Frame) error {
	var messageType int
	switch frame.Type {
	case domain.FrameType_Text:
		messageType = ws.TextMessage
	case domain.FrameType_Binary:
		messageType = ws.BinaryMessage
	default:
		return fmt.Errorf("unsupported frame type %s", frame.Type)
	}

	deadline := time.Now().Add(c.writeTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return err
	}
	return c.conn.WriteMessage(messageType, frame.Data)
}

// Close sends a close frame with the code and reason, then closes the connection.
// Only the first call has an effect.
func (c *FrameConn) Close(code domain.CloseCode, reason string) error {
	c.closeOnce.Do(func() {
		if len(reason) > maxCloseReason {
			reason = reason[:maxCloseReason]
		}
		msg := ws.FormatCloseMessage(int(code), reason)
		// The peer may already be gone, the connection is closed either way.
		_ = c.conn.WriteControl(ws.CloseMessage, msg, time.Now().Add(time.Second))
		c.closeErr = c.conn.Close()
	})
	return c.closeErr
}
