package client

import (
	"sync"

	"github.com/logsink/logsink/internal"
)

// MockSocket records frames and fails sends on demand. It can stand in for
// the collector connection in tests.
type MockSocket struct {
	mu     sync.Mutex
	frames [][][]byte
	errs   []error
	closed bool
}

// NewMockSocket returns a new instance of a MockSocket
func NewMockSocket() *MockSocket {
	return &MockSocket{}
}

// FailNext queues errors to be returned by the next sends, in order.
func (s *MockSocket) FailNext(errs ...error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = append(s.errs, errs...)
}

// Writev implements Socket
func (s *MockSocket) Writev(segments [][]byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		if err != nil {
			return 0, err
		}
	}

	frame := make([][]byte, len(segments))
	for i, seg := range segments {
		frame[i] = internal.CopyBytes(seg)
	}
	s.frames = append(s.frames, frame)

	n := 0
	for _, seg := range segments {
		n += len(seg)
	}
	return n, nil
}

// Close implements Socket
func (s *MockSocket) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Closed reports whether Close was called
func (s *MockSocket) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Frames returns the recorded frames
func (s *MockSocket) Frames() [][][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// MockDialer hands out mock sockets and counts connect attempts. It can be
// scripted to fail dials.
type MockDialer struct {
	mu       sync.Mutex
	connects int
	dialErrs []error
	socks    []*MockSocket
}

// NewMockDialer returns a new instance of a MockDialer
func NewMockDialer() *MockDialer {
	return &MockDialer{}
}

// FailNext queues errors to be returned by the next dials, in order.
func (d *MockDialer) FailNext(errs ...error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dialErrs = append(d.dialErrs, errs...)
}

// Dial implements Dialer
func (d *MockDialer) Dial(path string) (Socket, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.connects++
	if len(d.dialErrs) > 0 {
		err := d.dialErrs[0]
		d.dialErrs = d.dialErrs[1:]
		if err != nil {
			return nil, err
		}
	}

	sock := NewMockSocket()
	d.socks = append(d.socks, sock)
	return sock, nil
}

// Connects returns the number of dial attempts
func (d *MockDialer) Connects() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.connects
}

// Socket returns the nth socket handed out by the dialer
func (d *MockDialer) Socket(n int) *MockSocket {
	d.mu.Lock()
	defer d.mu.Unlock()
	if n >= len(d.socks) {
		return nil
	}
	return d.socks[n]
}
