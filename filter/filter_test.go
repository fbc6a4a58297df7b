package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logsink/logsink/filter"
	"github.com/logsink/logsink/protocol"
)

func TestIsLoggableTagOverride(t *testing.T) {
	f := filter.New(filter.MapStore{
		"log.tag.MyApp": "E",
	})

	assert.False(t, f.IsLoggable(protocol.PriorityInfo, "MyApp"))
	assert.False(t, f.IsLoggable(protocol.PriorityWarn, "MyApp"))
	assert.True(t, f.IsLoggable(protocol.PriorityError, "MyApp"))
	assert.True(t, f.IsLoggable(protocol.PriorityFatal, "MyApp"))

	// other tags fall back to the compile-time default
	assert.True(t, f.IsLoggable(protocol.PriorityInfo, "OtherApp"))
	assert.False(t, f.IsLoggable(protocol.PriorityDebug, "OtherApp"))
}

func TestIsLoggableDefaultKey(t *testing.T) {
	f := filter.New(filter.MapStore{
		"log.tag.DEFAULT": "W",
	})

	assert.False(t, f.IsLoggable(protocol.PriorityInfo, "Anything"))
	assert.True(t, f.IsLoggable(protocol.PriorityWarn, "Anything"))
}

func TestIsLoggableCodes(t *testing.T) {
	cases := []struct {
		code string
		prio protocol.Priority
		want bool
	}{
		{"V", protocol.PriorityVerbose, true},
		{"D", protocol.PriorityVerbose, false},
		{"D", protocol.PriorityDebug, true},
		{"I", protocol.PriorityInfo, true},
		{"W", protocol.PriorityInfo, false},
		{"E", protocol.PriorityError, true},
		{"S", protocol.PriorityFatal, false},
	}

	for _, tc := range cases {
		f := filter.New(filter.MapStore{"log.tag.X": tc.code})
		assert.Equalf(t, tc.want, f.IsLoggable(tc.prio, "X"),
			"code %s, priority %s", tc.code, tc.prio)
	}
}

func TestIsLoggableInvalidCode(t *testing.T) {
	f := filter.New(filter.MapStore{"log.tag.X": "Q"})

	// unspecified or invalid codes use the fallback
	assert.True(t, f.IsLoggable(protocol.PriorityInfo, "X"))
	assert.False(t, f.IsLoggable(protocol.PriorityDebug, "X"))
}

func TestIsLoggableEmptyTag(t *testing.T) {
	f := filter.New(filter.MapStore{"log.tag.DEFAULT": "D"})
	assert.True(t, f.IsLoggable(protocol.PriorityDebug, ""))
}

func TestWithFallback(t *testing.T) {
	f := filter.New(filter.MapStore{}).WithFallback(protocol.PriorityVerbose)
	require.True(t, f.IsLoggable(protocol.PriorityVerbose, "Anything"))
}
