package tuitest

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
)

// stream collects program output and wakes waiters whenever it grows.
type stream struct {
	mu      sync.Mutex
	buf     bytes.Buffer
	changed chan struct{}
}

func newStream() *stream {
	return &stream{changed: make(chan struct{})}
}

func (s *stream) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := s.buf.Write(p)
	close(s.changed)
	s.changed = make(chan struct{})
	return n, err
}

// Bytes returns a copy of everything written so far.
func (s *stream) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.buf.Bytes()...)
}

// pump copies r into the stream until r fails, letting the responder see
// each chunk first.
func (s *stream) pump(r io.Reader, responder *terminalResponder) {
	chunk := make([]byte, 4096)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			responder.Process(chunk[:n])
			_, _ = s.Write(chunk[:n])
		}
		if err != nil {
			return
		}
	}
}

// waitFor blocks until the plain text of the output contains needle.
func (s *stream) waitFor(ctx context.Context, needle string) error {
	for {
		s.mu.Lock()
		seen := strings.Contains(stripANSI(s.buf.String()), needle)
		changed := s.changed
		s.mu.Unlock()
		if seen {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-changed:
		}
	}
}
