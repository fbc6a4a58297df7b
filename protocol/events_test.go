package protocol

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestEventSegments(t *testing.T) {
	segments := EventSegments(2718, []byte("raw bytes"))
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments but got %d", len(segments))
	}
	if n := int32(binary.LittleEndian.Uint32(segments[0])); n != 2718 {
		t.Errorf("expected event tag 2718 but got %d", n)
	}
	if !bytes.Equal(segments[1], []byte("raw bytes")) {
		t.Errorf("expected raw payload but got %q", segments[1])
	}
}

func TestTypedEventSegments(t *testing.T) {
	payload := make([]byte, 8)
	binary.LittleEndian.PutUint64(payload, 31337)
	segments := TypedEventSegments(100, EventTypeLong, payload)
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments but got %d", len(segments))
	}
	if !bytes.Equal(segments[1], []byte{EventTypeLong}) {
		t.Errorf("expected type segment %v but got %v", []byte{EventTypeLong}, segments[1])
	}
	if !bytes.Equal(segments[2], payload) {
		t.Errorf("expected payload passed through but got %v", segments[2])
	}
}

func TestStringEventSegments(t *testing.T) {
	segments := StringEventSegments(-42, "hello")
	if len(segments) != 4 {
		t.Fatalf("expected 4 segments but got %d", len(segments))
	}
	if n := int32(binary.LittleEndian.Uint32(segments[0])); n != -42 {
		t.Errorf("expected event tag -42 but got %d", n)
	}
	if !bytes.Equal(segments[1], []byte{EventTypeString}) {
		t.Errorf("expected string type marker but got %v", segments[1])
	}
	if n := binary.LittleEndian.Uint32(segments[2]); n != 5 {
		t.Errorf("expected length 5 but got %d", n)
	}
	// no terminator on the string bytes
	if !bytes.Equal(segments[3], []byte("hello")) {
		t.Errorf("expected %q but got %q", "hello", segments[3])
	}
}
