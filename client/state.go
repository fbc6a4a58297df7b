package client

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sys/unix"

	"github.com/logsink/logsink/config"
	"github.com/logsink/logsink/internal"
	"github.com/logsink/logsink/protocol"
)

type dispatchState uint32

const (
	stateUninitialized dispatchState = iota
	stateNull
	stateActive
)

func (s dispatchState) String() string {
	switch s {
	case stateUninitialized:
		return "UNINITIALIZED"
	case stateNull:
		return "NULL"
	case stateActive:
		return "ACTIVE"
	default:
		return "<invalid dispatchState value>"
	}
}

// sockRef wraps the active socket so writers can compare the descriptor they
// failed on against the current one.
type sockRef struct {
	sock Socket
}

// Transport owns the connection to the collector and dispatches frames to
// it. One Transport serves a whole process; every entry point funnels into
// Write.
//
// Initialization, reconnect, and close are serialized by a single mutex.
// The send path takes no lock: it loads the current descriptor atomically,
// which is safe because reconnect only ever replaces the descriptor. A
// writer racing Close may observe a stale descriptor and fail with
// ErrBadDescriptor; that race is accepted rather than paying for a lock on
// every write.
type Transport struct {
	conf   *Config
	gconf  *config.Config
	fb     *protocol.FrameBuilder
	dialer Dialer
	stats  *internal.Stats

	mu      sync.Mutex
	state   atomic.Uint32
	sock    atomic.Pointer[sockRef]
	initErr error

	// the caller uid is captured once, on the first write. If the process
	// changes privileges after that, the cached value goes stale; carried
	// over from the original behavior.
	uidOnce sync.Once
	uid     int

	probeOnce sync.Once
	probeOK   bool
}

// NewTransport returns a new instance of Transport in the uninitialized
// state. No connection is attempted until the first write.
func NewTransport(conf *Config) *Transport {
	gconf := conf.ToGeneralConfig()
	return &Transport{
		conf:   conf,
		gconf:  gconf,
		fb:     protocol.NewFrameBuilder(gconf),
		dialer: &unixDialer{},
		stats:  internal.NewStats(),
	}
}

// WithDialer sets a dialer on the transport. It should be called as part of
// initialization.
func (t *Transport) WithDialer(d Dialer) *Transport {
	t.dialer = d
	return t
}

// Stats returns the transport's internal counters.
func (t *Transport) Stats() *internal.Stats {
	return t.stats
}

func (t *Transport) loadState() dispatchState {
	return dispatchState(t.state.Load())
}

func (t *Transport) storeState(s dispatchState) {
	t.state.Store(uint32(s))
}

// ensureInitialized connects to the collector exactly once per
// initialization cycle. Concurrent first-time callers are serialized;
// losers of the race reuse the winner's result. A failed connect is sticky:
// the transport stays in the null state, returning the original error,
// until an explicit Close resets it.
func (t *Transport) ensureInitialized() error {
	switch t.loadState() {
	case stateActive:
		return nil
	case stateNull:
		return t.initErr
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.loadState() {
	case stateActive:
		return nil
	case stateNull:
		return t.initErr
	}

	internal.Debugf(t.gconf, "connecting to %s", t.conf.SocketPath)
	sock, err := t.dialer.Dial(t.conf.SocketPath)
	if err != nil {
		t.stats.Incr("connect_errors")
		t.initErr = err
		t.storeState(stateNull)
		return err
	}

	t.sock.Store(&sockRef{sock: sock})
	t.storeState(stateActive)
	return nil
}

// reconnect refreshes an active descriptor after a writer observed a
// disconnect on it. It never changes the null or uninitialized states. If
// the dial fails the stale descriptor stays in place and the transport
// remains active; the error is surfaced per-call.
func (t *Transport) reconnect(stale *sockRef) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.loadState() != stateActive {
		return ErrBadDescriptor
	}
	if t.sock.Load() != stale {
		// another writer already refreshed the descriptor
		return nil
	}

	t.stats.Incr("reconnects")
	internal.IgnoreError(t.conf.Verbose, stale.sock.Close())

	internal.Debugf(t.gconf, "reconnecting to %s", t.conf.SocketPath)
	sock, err := t.dialer.Dial(t.conf.SocketPath)
	if err != nil {
		t.stats.Incr("connect_errors")
		return err
	}

	t.sock.Store(&sockRef{sock: sock})
	return nil
}

// Close releases the collector connection and resets the transport to the
// uninitialized state. The next write re-initializes. Close does not wait
// for writers already in flight; they may fail with ErrBadDescriptor.
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	internal.Debugf(t.gconf, "closing transport (state: %s)", t.loadState())
	var err error
	if ref := t.sock.Load(); ref != nil {
		err = ref.sock.Close()
	}
	t.sock.Store(nil)
	t.initErr = nil
	t.storeState(stateUninitialized)
	return err
}

// Available reports whether the collector device exists on this system. The
// probe runs once per process lifetime and the result is cached forever.
func (t *Transport) Available() bool {
	t.probeOnce.Do(func() {
		t.probeOK = unix.Access(t.conf.ProbePath, unix.W_OK) == nil
	})
	return t.probeOK
}
