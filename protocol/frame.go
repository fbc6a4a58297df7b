package protocol

import (
	"encoding/binary"

	"github.com/logsink/logsink/config"
)

// HeaderLen is the total size of the three header segments prepended to
// every frame.
const HeaderLen = 4 + 2 + 12

// MaxPayload is the default post-header payload budget per frame.
const MaxPayload = 4076

// Header carries the per-entry fields the transport provides on behalf of
// the caller.
type Header struct {
	TID  uint16
	Sec  uint64
	Nsec uint32
}

// FrameBuilder assembles wire frames from caller payload segments.
type FrameBuilder struct {
	conf *config.Config
}

// NewFrameBuilder returns a new instance of FrameBuilder
func NewFrameBuilder(conf *config.Config) *FrameBuilder {
	return &FrameBuilder{conf: conf}
}

// Build prepends the channel tag, thread id, and timestamp segments to the
// caller's payload segments. The running payload total is capped at the
// configured maximum: the segment crossing the boundary is cut to exactly
// fill the remaining budget and everything after it is dropped. Segments
// before the boundary pass through untouched. Build never fails; truncation
// is the degradation policy for oversize entries.
func (fb *FrameBuilder) Build(ch Channel, hdr Header, segments [][]byte) [][]byte {
	max := fb.conf.MaxPayload

	logID := make([]byte, 4)
	binary.LittleEndian.PutUint32(logID, uint32(ch))
	tid := make([]byte, 2)
	binary.LittleEndian.PutUint16(tid, hdr.TID)
	ts := make([]byte, 12)
	binary.LittleEndian.PutUint64(ts, hdr.Sec)
	binary.LittleEndian.PutUint32(ts[8:], hdr.Nsec)

	frame := make([][]byte, 0, 3+len(segments))
	frame = append(frame, logID, tid, ts)

	total := 0
	for _, seg := range segments {
		total += len(seg)
		if total > max {
			if over := total - max; over < len(seg) {
				frame = append(frame, seg[:len(seg)-over])
			}
			break
		}
		frame = append(frame, seg)
	}
	return frame
}

// TextSegments builds the payload segments for a text entry. Tag and
// message are NUL terminated on the wire.
func TextSegments(prio Priority, tag, msg string) [][]byte {
	t := make([]byte, len(tag)+1)
	copy(t, tag)
	m := make([]byte, len(msg)+1)
	copy(m, msg)
	return [][]byte{{byte(prio)}, t, m}
}
