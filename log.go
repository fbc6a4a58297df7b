package logsink

import (
	"fmt"
	"strings"
	"sync"

	"github.com/logsink/logsink/client"
	"github.com/logsink/logsink/config"
	"github.com/logsink/logsink/filter"
	"github.com/logsink/logsink/protocol"
)

// Priority aliases protocol.Priority for callers that only import the
// facade.
type Priority = protocol.Priority

// Entry priorities.
const (
	Verbose = protocol.PriorityVerbose
	Debug   = protocol.PriorityDebug
	Info    = protocol.PriorityInfo
	Warn    = protocol.PriorityWarn
	Error   = protocol.PriorityError
	Fatal   = protocol.PriorityFatal
)

// radio subsystem tags still log through the main entry points in the wild.
// They are rerouted to the radio channel with a marker telling their owners
// where such logs belong.
var radioTags = map[string]bool{
	"HTC_RIL": true,
	"AT":      true,
	"GSM":     true,
	"STK":     true,
	"CDMA":    true,
	"PHONE":   true,
	"SMS":     true,
}

var radioTagPrefixes = []string{"RIL", "IMS"}

const radioTagMarker = "use-Rlog/RLOG-"

func rerouteRadioTag(ch protocol.Channel, tag string) (protocol.Channel, string) {
	if ch == protocol.Radio {
		return ch, tag
	}
	if !radioTags[tag] {
		matched := false
		for _, prefix := range radioTagPrefixes {
			if strings.HasPrefix(tag, prefix) {
				matched = true
				break
			}
		}
		if !matched {
			return ch, tag
		}
	}
	return protocol.Radio, radioTagMarker + tag
}

// Logger builds logical entries and hands them to the transport.
type Logger struct {
	conf   *client.Config
	gconf  *config.Config
	t      *client.Transport
	crash  CrashHandler
	filter *filter.Filter
}

// New returns a new instance of Logger. The transport connects lazily on
// the first write.
func New(conf *client.Config) *Logger {
	return &Logger{
		conf:  conf,
		gconf: conf.ToGeneralConfig(),
		t:     client.NewTransport(conf),
		crash: &NoopCrashHandler{},
	}
}

// WithTransport sets the transport. It should be called as part of
// initialization.
func (l *Logger) WithTransport(t *client.Transport) *Logger {
	l.t = t
	return l
}

// WithCrashHandler sets a crash handler, which receives every FATAL
// message. It should be called as part of initialization.
func (l *Logger) WithCrashHandler(h CrashHandler) *Logger {
	l.crash = h
	return l
}

// WithFilter sets a severity filter consulted by Loggable. It should be
// called as part of initialization.
func (l *Logger) WithFilter(f *filter.Filter) *Logger {
	l.filter = f
	return l
}

// Loggable reports whether an entry at prio for tag clears the configured
// severity threshold. Without a filter everything is loggable; the entry
// points do not consult the filter themselves.
func (l *Logger) Loggable(prio Priority, tag string) bool {
	if l.filter == nil {
		return true
	}
	return l.filter.IsLoggable(prio, tag)
}

// Transport returns the underlying transport.
func (l *Logger) Transport() *client.Transport {
	return l.t
}

// Close releases the collector connection. The next write re-acquires it.
func (l *Logger) Close() error {
	return l.t.Close()
}

// Available reports whether the collector device exists on this system.
func (l *Logger) Available() bool {
	return l.t.Available()
}

// Write sends a text entry on the main channel.
func (l *Logger) Write(prio Priority, tag, msg string) (int, error) {
	return l.BufWrite(protocol.Main, prio, tag, msg)
}

// BufWrite sends a text entry on the given channel.
func (l *Logger) BufWrite(ch protocol.Channel, prio Priority, tag, msg string) (int, error) {
	ch, tag = rerouteRadioTag(ch, tag)
	if prio == Fatal {
		// fire and forget; crash reporting is not part of delivery
		l.crash.Set(msg)
	}
	return l.t.Write(ch, protocol.TextSegments(prio, tag, msg))
}

// Print renders a formatted text entry and sends it on the main channel.
// Rendered messages are cut silently at the configured buffer size.
func (l *Logger) Print(prio Priority, tag, format string, args ...interface{}) (int, error) {
	return l.Write(prio, tag, l.render(format, args...))
}

// BufPrint renders a formatted text entry and sends it on the given
// channel.
func (l *Logger) BufPrint(ch protocol.Channel, prio Priority, tag, format string, args ...interface{}) (int, error) {
	return l.BufWrite(ch, prio, tag, l.render(format, args...))
}

// render formats into a bounded buffer. The bound counts the wire NUL, so
// the message keeps at most FormatBufSize-1 bytes.
func (l *Logger) render(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	if max := l.gconf.FormatBufSize; len(msg) >= max {
		msg = msg[:max-1]
	}
	return msg
}

// Event sends a raw binary event entry on the events channel.
func (l *Logger) Event(tag int32, payload []byte) (int, error) {
	return l.t.Write(protocol.Events, protocol.EventSegments(tag, payload))
}

// TypedEvent sends a binary event entry carrying a single typed value.
func (l *Logger) TypedEvent(tag int32, typ byte, payload []byte) (int, error) {
	return l.t.Write(protocol.Events, protocol.TypedEventSegments(tag, typ, payload))
}

// StringEvent sends a string-valued binary event entry.
func (l *Logger) StringEvent(tag int32, s string) (int, error) {
	return l.t.Write(protocol.Events, protocol.StringEventSegments(tag, s))
}

var defaultLogger *Logger
var defaultOnce sync.Once

// Default returns the process-wide Logger, creating it on first use.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(client.DefaultConfig)
	})
	return defaultLogger
}

// Write sends a text entry through the default Logger.
func Write(prio Priority, tag, msg string) (int, error) {
	return Default().Write(prio, tag, msg)
}

// Print renders and sends a text entry through the default Logger.
func Print(prio Priority, tag, format string, args ...interface{}) (int, error) {
	return Default().Print(prio, tag, format, args...)
}

// Event sends a binary event entry through the default Logger.
func Event(tag int32, payload []byte) (int, error) {
	return Default().Event(tag, payload)
}

// Close releases the default Logger's collector connection.
func Close() error {
	return Default().Close()
}
