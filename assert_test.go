package logsink

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

var errTestDial = errors.New("dial failed")

func withTestTrap(t *testing.T) *int {
	t.Helper()
	trapped := 0
	old := trap
	trap = func() { trapped++ }
	t.Cleanup(func() { trap = old })
	return &trapped
}

func TestAssertRendersCondition(t *testing.T) {
	l, d := newTestLogger(t)
	h := NewMockCrashHandler()
	l.WithCrashHandler(h)
	trapped := withTestTrap(t)

	l.Assert("x>0", "TAG", "")

	if *trapped != 1 {
		t.Fatalf("expected the process trap to fire once, fired %d times", *trapped)
	}

	frame := lastFrame(t, d)
	if !bytes.Equal(frame[3], []byte{byte(Fatal)}) {
		t.Errorf("expected fatal priority byte but got %v", frame[3])
	}
	if want := []byte("Assertion failed: x>0\x00"); !bytes.Equal(frame[5], want) {
		t.Errorf("expected %q but got %q", want, frame[5])
	}

	msgs := h.Messages()
	if len(msgs) != 1 || msgs[0] != "Assertion failed: x>0" {
		t.Errorf("expected the crash handler to receive the message, got %v", msgs)
	}
}

func TestAssertUnspecified(t *testing.T) {
	l, d := newTestLogger(t)
	trapped := withTestTrap(t)

	l.Assert("", "TAG", "")

	if *trapped != 1 {
		t.Fatalf("expected the process trap to fire once, fired %d times", *trapped)
	}
	frame := lastFrame(t, d)
	if want := []byte("Unspecified assertion failed\x00"); !bytes.Equal(frame[5], want) {
		t.Errorf("expected %q but got %q", want, frame[5])
	}
}

func TestAssertFormatted(t *testing.T) {
	l, d := newTestLogger(t)
	trapped := withTestTrap(t)

	// the condition is ignored when a format is given
	l.Assert("n%d == 0", "TAG", "bad block count: %d", 3)

	if *trapped != 1 {
		t.Fatalf("expected the process trap to fire once, fired %d times", *trapped)
	}
	frame := lastFrame(t, d)
	if want := []byte("bad block count: 3\x00"); !bytes.Equal(frame[5], want) {
		t.Errorf("expected %q but got %q", want, frame[5])
	}
}

func TestAssertTrapsWhenDeliveryFails(t *testing.T) {
	l, d := newTestLogger(t)
	trapped := withTestTrap(t)
	d.FailNext(errTestDial)

	l.Assert("x>0", "TAG", "")

	if *trapped != 1 {
		t.Fatalf("expected the trap to fire despite delivery failure, fired %d times", *trapped)
	}
}
