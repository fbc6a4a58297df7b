package client

import (
	"bytes"
	"testing"
)

func TestMockSocketRecordsCopies(t *testing.T) {
	sock := NewMockSocket()
	seg := []byte("hello")
	if _, err := sock.Writev([][]byte{seg}); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	seg[0] = 'x'
	frames := sock.Frames()
	if len(frames) != 1 {
		t.Fatalf("expected 1 recorded frame but got %d", len(frames))
	}
	if !bytes.Equal(frames[0][0], []byte("hello")) {
		t.Errorf("expected recorded frame to be unaffected by segment reuse, got %q", frames[0][0])
	}
}
