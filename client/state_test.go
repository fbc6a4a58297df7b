package client

import (
	"testing"
)

func TestDispatchStateString(t *testing.T) {
	cases := map[dispatchState]string{
		stateUninitialized: "UNINITIALIZED",
		stateNull:          "NULL",
		stateActive:        "ACTIVE",
		dispatchState(99):  "<invalid dispatchState value>",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("expected %q but got %q", want, got)
		}
	}
}

func TestAvailableCachesProbe(t *testing.T) {
	conf := DefaultTestConfig(testing.Verbose())
	conf.ProbePath = "/nonexistent/logsink-probe-path"
	tr := NewTransport(conf).WithDialer(NewMockDialer())

	if tr.Available() {
		t.Fatal("expected the probe to fail for a nonexistent path")
	}

	// cached forever, even if the path shows up later
	tr.conf.ProbePath = "/"
	if tr.Available() {
		t.Fatal("expected the cached probe result")
	}
}
