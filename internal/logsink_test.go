package internal

import (
	"bytes"
	"testing"
)

func TestCopyBytes(t *testing.T) {
	orig := []byte("segment")
	b := CopyBytes(orig)
	if !bytes.Equal(b, orig) {
		t.Fatalf("expected %q but got %q", orig, b)
	}

	orig[0] = 'x'
	if b[0] == 'x' {
		t.Error("expected an independent copy")
	}
}
