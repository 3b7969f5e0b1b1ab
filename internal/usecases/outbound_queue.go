package usecases

import (
	"context"
	"sync"

	"github.com/cleitonmarx/symbiont-agent-gateway/internal/domain"
)

// outboundQueue is an unbounded FIFO of frames with a single consumer.
// Producers never block, so a slow client cannot stall the agent.
type outboundQueue struct {
	mu     sync.Mutex
	frames []domain.Frame
	closed bool
	signal chan struct{}
}

func newOutboundQueue() *outboundQueue {
	return &outboundQueue{signal: make(chan struct{}, 1)}
}

// Push appends frames atomically. It returns false once the queue is closed.
func (q *outboundQueue) Push(frames ...domain.Frame) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.frames = append(q.frames, frames...)
	q.notify()
	return true
}

// Close stops accepting frames. Frames already queued can still be popped.
func (q *outboundQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		q.notify()
	}
}

// Pop blocks until a frame is available. It returns false when the queue is closed and
// drained, or when ctx is done.
func (q *outboundQueue) Pop(ctx context.Context) (domain.Frame, bool) {
	for {
		q.mu.Lock()
		if len(q.frames) > 0 {
			frame := q.frames[0]
			q.frames[0] = domain.Frame{}
			q.frames = q.frames[1:]
			q.mu.Unlock()
			return frame, true
		}
		if q.closed {
			q.mu.Unlock()
			return domain.Frame{}, false
		}
		q.mu.Unlock()

		select {
		case <-q.signal:
		case <-ctx.Done():
			return domain.Frame{}, false
		}
	}
}

// Len returns the number of queued frames.
func (q *outboundQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.frames)
}

// notify wakes the consumer. Callers hold q.mu.
func (q *outboundQueue) notify() {
	select {
	case q.signal <- struct{}{}:
	default:
	}
}
