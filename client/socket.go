package client

import (
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Socket is a connected datagram descriptor to the collector. It can be used
// for mocking in tests.
type Socket interface {
	// Writev sends one frame as a single vectorized write. It never blocks;
	// an overloaded collector surfaces EAGAIN instead of a stall.
	Writev(segments [][]byte) (int, error)
	Close() error
}

// Dialer defines an interface for connecting to the collector. It can be
// used for mocking in tests.
type Dialer interface {
	Dial(path string) (Socket, error)
}

type unixDialer struct{}

// Dial creates a non-blocking unix datagram socket connected to the
// collector's fixed address.
func (ud *unixDialer) Dial(path string) (Socket, error) {
	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC|unix.SOCK_NONBLOCK, 0)
	if err != nil {
		return nil, errors.Wrap(err, "creating collector socket failed")
	}

	if err := unix.Connect(fd, &unix.SockaddrUnix{Name: path}); err != nil {
		unix.Close(fd)
		return nil, errors.Wrapf(err, "connecting to %s failed", path)
	}

	return &unixSocket{fd: fd}, nil
}

type unixSocket struct {
	fd int

	mu     sync.Mutex
	closed bool
}

func (s *unixSocket) Writev(segments [][]byte) (int, error) {
	return unix.Writev(s.fd, segments)
}

func (s *unixSocket) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return unix.Close(s.fd)
}
