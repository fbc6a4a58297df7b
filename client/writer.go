package client

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/logsink/logsink/internal"
	"github.com/logsink/logsink/protocol"
)

// ErrDropped is returned when the collector is overloaded and the message
// was discarded. Dropped messages are never retried or queued.
var ErrDropped = errors.New("collector overloaded, message dropped")

// ErrBadDescriptor is returned when a write raced an explicit close of the
// transport.
var ErrBadDescriptor = errors.New("log socket closed")

// Write sends one entry's payload segments on the given channel, stamping
// the header fields on the way out. It never blocks and never queues: an
// unreachable collector yields an immediate error, an overloaded one drops
// the message. The returned count covers payload bytes only.
//
// A send that fails because the collector went away triggers one reconnect
// and one retry; any further failure goes back to the caller.
func (t *Transport) Write(ch protocol.Channel, segments [][]byte) (int, error) {
	t.uidOnce.Do(func() { t.uid = os.Geteuid() })
	if t.uid == t.conf.CollectorUID {
		// the collector must never log through its own transport
		return 0, nil
	}

	if err := t.ensureInitialized(); err != nil {
		return 0, err
	}

	now := time.Now()
	hdr := protocol.Header{
		TID:  uint16(unix.Gettid()),
		Sec:  uint64(now.Unix()),
		Nsec: uint32(now.Nanosecond()),
	}
	frame := t.fb.Build(ch, hdr, segments)

	ref := t.sock.Load()
	if ref == nil {
		return 0, ErrBadDescriptor
	}

	n, err := ref.sock.Writev(frame)
	if err != nil && isNotConnected(err) {
		internal.Debugf(t.gconf, "send failed (%v), reconnecting", err)
		if rerr := t.reconnect(ref); rerr != nil {
			t.stats.Incr("write_errors")
			return 0, rerr
		}
		ref = t.sock.Load()
		if ref == nil {
			return 0, ErrBadDescriptor
		}
		n, err = ref.sock.Writev(frame)
	}
	if err != nil {
		return 0, t.sendError(err)
	}

	if n > protocol.HeaderLen {
		n -= protocol.HeaderLen
	}
	t.stats.Incr("total_writes")
	t.stats.Add("total_bytes_written", int64(n))
	return n, nil
}

// isNotConnected reports whether a send failed because the collector died
// or restarted, in which case the descriptor is worth refreshing.
func isNotConnected(err error) bool {
	return err == unix.ENOTCONN || err == unix.ECONNRESET
}

func (t *Transport) sendError(err error) error {
	switch err {
	case unix.EAGAIN:
		t.stats.Incr("drops")
		return ErrDropped
	case unix.EBADF:
		t.stats.Incr("write_errors")
		return ErrBadDescriptor
	}
	t.stats.Incr("write_errors")
	return errors.Wrap(err, "sending to collector failed")
}
