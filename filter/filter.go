// Package filter decides whether an entry's priority clears the severity
// threshold configured for its tag.
//
// Thresholds live in a property store keyed by tag: `log.tag.<tag>` holds a
// single-letter code, with `log.tag.DEFAULT` as the global fallback. Lookups
// are never cached; either key can change at any time.
package filter

import (
	"github.com/logsink/logsink/protocol"
)

const (
	// Prefix is prepended to the tag to form the store lookup key.
	Prefix = "log.tag."

	// DefaultKey holds the global threshold used when a tag has no entry.
	DefaultKey = "log.tag.DEFAULT"
)

// FallbackPriority applies when neither the tag key nor the default key
// exists in the store.
const FallbackPriority = protocol.PriorityInfo

// Store looks up severity codes by key. Implementations must be safe for
// concurrent use.
type Store interface {
	Get(key string) (string, bool)
}

// MapStore is an in-memory Store for tests and static configuration. It is
// read-only after construction.
type MapStore map[string]string

// Get implements Store
func (m MapStore) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Filter answers loggability queries against a Store.
type Filter struct {
	store    Store
	fallback protocol.Priority
}

// New returns a new instance of Filter
func New(store Store) *Filter {
	return &Filter{store: store, fallback: FallbackPriority}
}

// WithFallback overrides the compile-time fallback priority.
func (f *Filter) WithFallback(p protocol.Priority) *Filter {
	f.fallback = p
	return f
}

// IsLoggable reports whether prio meets or exceeds the threshold for tag.
func (f *Filter) IsLoggable(prio protocol.Priority, tag string) bool {
	return prio >= f.threshold(tag)
}

func (f *Filter) threshold(tag string) protocol.Priority {
	v, ok := "", false
	if tag != "" {
		v, ok = f.store.Get(Prefix + tag)
	}
	if !ok {
		v, ok = f.store.Get(DefaultKey)
	}
	if !ok || v == "" {
		return f.fallback
	}

	switch v[0] {
	case 'V':
		return protocol.PriorityVerbose
	case 'D':
		return protocol.PriorityDebug
	case 'I':
		return protocol.PriorityInfo
	case 'W':
		return protocol.PriorityWarn
	case 'E':
		return protocol.PriorityError
	case 'S':
		return protocol.PrioritySilent
	}
	// unspecified or invalid
	return f.fallback
}
