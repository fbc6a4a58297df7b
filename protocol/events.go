package protocol

import (
	"encoding/binary"
)

// Binary event payload type codes.
const (
	EventTypeInt    byte = 0
	EventTypeLong   byte = 1
	EventTypeString byte = 2
	EventTypeList   byte = 3
	EventTypeFloat  byte = 4
)

func eventTag(tag int32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(tag))
	return b
}

// EventSegments builds a raw binary event payload: the event tag followed by
// opaque payload bytes.
func EventSegments(tag int32, payload []byte) [][]byte {
	return [][]byte{eventTag(tag), payload}
}

// TypedEventSegments builds a binary event payload carrying a single typed
// value. Handy for dumping one scalar into the events channel.
func TypedEventSegments(tag int32, typ byte, payload []byte) [][]byte {
	return [][]byte{eventTag(tag), {typ}, payload}
}

// StringEventSegments builds a binary event payload for a string value: tag,
// string type marker, byte length, then the raw bytes with no terminator.
func StringEventSegments(tag int32, s string) [][]byte {
	length := make([]byte, 4)
	binary.LittleEndian.PutUint32(length, uint32(len(s)))
	return [][]byte{eventTag(tag), {EventTypeString}, length, []byte(s)}
}
