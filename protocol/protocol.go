package protocol

// one frame per datagram, laid out as ordered segments:
//
// <log-id: u32 LE>
// <thread-id: u16 LE>
// <seconds: u64 LE><nanos: u32 LE>
// <caller payload segments...>
//
// text payloads look like:
//
// <priority: u8><tag\0><message\0>
//
// binary event payloads (events channel only):
//
// <tag: i32 LE><payload>
// <tag: i32 LE><type: u8><payload>
// <tag: i32 LE><type=string: u8><len: u32 LE><bytes>
//
// the collector reads one frame per receive call. Anything past MaxPayload
// bytes of payload is cut at the boundary, not rejected.

import (
	"github.com/pkg/errors"
)

// Channel selects the logical log partition a frame lands in. Each channel
// maps to one wire log-id.
type Channel uint32

const (
	Main Channel = iota
	Radio
	Events
	System
	Crash
	numChannels
)

var channelNames = [numChannels]string{
	Main:   "main",
	Radio:  "radio",
	Events: "events",
	System: "system",
	Crash:  "crash",
}

func (c Channel) String() string {
	if c >= numChannels {
		return channelNames[Main]
	}
	return channelNames[c]
}

// ParseChannel returns the channel named by s.
func ParseChannel(s string) (Channel, error) {
	for c, name := range channelNames {
		if s == name {
			return Channel(c), nil
		}
	}
	return Main, errors.Errorf("unknown channel %q", s)
}

// Priority is the severity of a text entry. The wire carries it as a single
// byte ahead of the tag.
type Priority uint8

const (
	PriorityUnknown Priority = iota
	PriorityDefault
	PriorityVerbose
	PriorityDebug
	PriorityInfo
	PriorityWarn
	PriorityError
	PriorityFatal
	PrioritySilent
)

func (p Priority) String() string {
	switch p {
	case PriorityVerbose:
		return "verbose"
	case PriorityDebug:
		return "debug"
	case PriorityInfo:
		return "info"
	case PriorityWarn:
		return "warn"
	case PriorityError:
		return "error"
	case PriorityFatal:
		return "fatal"
	case PrioritySilent:
		return "silent"
	case PriorityDefault:
		return "default"
	default:
		return "unknown"
	}
}

// ParsePriority accepts a priority name or its single-letter code.
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "verbose", "V":
		return PriorityVerbose, nil
	case "debug", "D":
		return PriorityDebug, nil
	case "info", "I":
		return PriorityInfo, nil
	case "warn", "W":
		return PriorityWarn, nil
	case "error", "E":
		return PriorityError, nil
	case "fatal", "F", "A":
		return PriorityFatal, nil
	case "silent", "S":
		return PrioritySilent, nil
	}
	return PriorityUnknown, errors.Errorf("unknown priority %q", s)
}
