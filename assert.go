package logsink

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/logsink/logsink/internal"
)

// trap terminates the process after an assertion failure. SIGABRT leaves a
// debuggable stop; the exit is a fallback for when the signal is blocked.
var trap = func() {
	internal.LogError(unix.Kill(unix.Getpid(), unix.SIGABRT))
	os.Exit(134)
}

// Assert emits an assertion failure at FATAL priority and terminates the
// process. It never returns.
//
// If format is empty, the message falls back to the condition text. The
// condition is never used as a format string; it can contain spurious '%'
// syntax.
func (l *Logger) Assert(cond, tag, format string, args ...interface{}) {
	var msg string
	switch {
	case format != "":
		msg = l.render(format, args...)
	case cond != "":
		msg = "Assertion failed: " + cond
	default:
		msg = "Unspecified assertion failed"
	}

	// delivery is best effort even here; the trap happens regardless
	if _, err := l.Write(Fatal, tag, msg); err != nil {
		internal.IgnoreError(l.conf.Verbose, err)
	}
	trap()
}

// Assert emits an assertion failure through the default Logger and
// terminates the process.
func Assert(cond, tag, format string, args ...interface{}) {
	Default().Assert(cond, tag, format, args...)
}
