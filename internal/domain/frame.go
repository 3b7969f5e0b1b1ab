package domain

import "context"

// FrameType distinguishes control frames from data frames on a streaming connection.
type FrameType int

const (
	FrameType_Text FrameType = iota + 1
	FrameType_Binary
)

func (t FrameType) String() string {
	switch t {
	case FrameType_Text:
		return "text"
	case FrameType_Binary:
		return "binary"
	default:
		return "unknown"
	}
}

// CloseCode tells the client how a streaming session ended.
type CloseCode int

const (
	// CloseCode_Normal means the session completed.
	CloseCode_Normal CloseCode = 1000
	// CloseCode_GoingAway means the server is shutting down.
	CloseCode_GoingAway CloseCode = 1001
	// CloseCode_ProtocolError means the client sent a frame the session could not accept.
	CloseCode_ProtocolError CloseCode = 1002
	// CloseCode_InternalError means the agent call or the session itself failed.
	CloseCode_InternalError CloseCode = 1011
)

// Frame is one message on a streaming connection.
type Frame struct {
	Type FrameType
	Data []byte
}

// TextFrame creates a text frame.
func TextFrame(s string) Frame {
	return Frame{Type: FrameType_Text, Data: []byte(s)}
}

// BinaryFrame creates a binary frame.
func BinaryFrame(b []byte) Frame {
	return Frame{Type: FrameType_Binary, Data: b}
}

// FrameConn is a message based, bidirectional connection.
// ReadFrame is called from a single goroutine and WriteFrame from another single
// goroutine. Close may be called concurrently with both and unblocks ReadFrame.
type FrameConn interface {
	// ReadFrame blocks until the next frame arrives. It returns an error once the
	// connection is closed by either side.
	ReadFrame(ctx context.Context) (Frame, error)
	// WriteFrame sends a frame to the peer.
	WriteFrame(ctx context.Context, frame Frame) error
	// Close ends the connection with the given code and reason.
	Close(code CloseCode, reason string) error
}
