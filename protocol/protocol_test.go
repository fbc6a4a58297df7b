package protocol

import (
	"testing"
)

func TestParseChannel(t *testing.T) {
	for _, ch := range []Channel{Main, Radio, Events, System, Crash} {
		parsed, err := ParseChannel(ch.String())
		if err != nil {
			t.Fatalf("unexpected error parsing %q: %+v", ch.String(), err)
		}
		if parsed != ch {
			t.Errorf("expected channel %d but got %d", ch, parsed)
		}
	}

	if _, err := ParseChannel("nope"); err == nil {
		t.Error("expected an error for an unknown channel")
	}
}

func TestParsePriority(t *testing.T) {
	cases := map[string]Priority{
		"verbose": PriorityVerbose,
		"V":       PriorityVerbose,
		"debug":   PriorityDebug,
		"info":    PriorityInfo,
		"I":       PriorityInfo,
		"warn":    PriorityWarn,
		"error":   PriorityError,
		"E":       PriorityError,
		"fatal":   PriorityFatal,
		"A":       PriorityFatal,
		"silent":  PrioritySilent,
	}

	for s, want := range cases {
		got, err := ParsePriority(s)
		if err != nil {
			t.Fatalf("unexpected error parsing %q: %+v", s, err)
		}
		if got != want {
			t.Errorf("%q: expected priority %d but got %d", s, want, got)
		}
	}

	if _, err := ParsePriority("loud"); err == nil {
		t.Error("expected an error for an unknown priority")
	}
}
