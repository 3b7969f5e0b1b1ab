package domain

import (
	"bytes"
	"context"
	"io"
	"slices"
	"sync"
)

// DataStream is an append-only log of binary chunks.
// Writers append chunks and eventually close the stream. Every subscriber reads all
// chunks from the beginning, so a subscriber created after Close still drains
// everything that was written.
type DataStream struct {
	mu     sync.Mutex
	chunks [][]byte
	size   int
	closed bool
	signal chan struct{}
}

// NewDataStream creates an open, empty data stream.
func NewDataStream() *DataStream {
	return &DataStream{signal: make(chan struct{})}
}

// NewClosedDataStream creates a data stream holding data that is already closed.
func NewClosedDataStream(data []byte) *DataStream {
	s := NewDataStream()
	if len(data) > 0 {
		_, _ = s.Write(data)
	}
	_ = s.Close()
	return s
}

// Write appends a copy of p as one chunk.
func (s *DataStream) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrStreamClosed
	}
	s.chunks = append(s.chunks, slices.Clone(p))
	s.size += len(p)
	s.broadcast()
	return len(p), nil
}

// Close marks the end of the stream and wakes up blocked readers.
// Closing an already closed stream is a no-op.
func (s *DataStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.broadcast()
	return nil
}

// IsClosed reports whether the stream was closed.
func (s *DataStream) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Size returns the number of bytes written so far.
func (s *DataStream) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

// Subscribe creates an independent reader positioned at the first chunk.
func (s *DataStream) Subscribe() *DataStreamReader {
	return &DataStreamReader{stream: s}
}

// ReadAll blocks until the stream is closed and returns all written bytes.
func (s *DataStream) ReadAll(ctx context.Context) ([]byte, error) {
	var buf bytes.Buffer
	r := s.Subscribe()
	for {
		chunk, err := r.Next(ctx)
		if err == io.EOF {
			return buf.Bytes(), nil
		}
		if err != nil {
			return nil, err
		}
		buf.Write(chunk)
	}
}

// broadcast must be called with mu held.
func (s *DataStream) broadcast() {
	close(s.signal)
	s.signal = make(chan struct{})
}

// DataStreamReader is a single-pass cursor over a DataStream.
type DataStreamReader struct {
	stream *DataStream
	next   int
}

// Next returns the next chunk, blocking until one is available.
// It returns io.EOF once the stream is closed and every chunk was read, or the
// context error if ctx is done first. Returned chunks must not be modified.
func (r *DataStreamReader) Next(ctx context.Context) ([]byte, error) {
	for {
		r.stream.mu.Lock()
		if r.next < len(r.stream.chunks) {
			chunk := r.stream.chunks[r.next]
			r.next++
			r.stream.mu.Unlock()
			return chunk, nil
		}
		if r.stream.closed {
			r.stream.mu.Unlock()
			return nil, io.EOF
		}
		signal := r.stream.signal
		r.stream.mu.Unlock()

		select {
		case <-signal:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
