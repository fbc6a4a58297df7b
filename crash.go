package logsink

import (
	"sync"
)

// CrashHandler receives the message of every FATAL entry so it can be
// attached to an OS crash report. Handlers must not log through the
// transport.
type CrashHandler interface {
	Set(msg string)
}

// NoopCrashHandler discards input
type NoopCrashHandler struct{}

// Set implements CrashHandler
func (h *NoopCrashHandler) Set(msg string) {}

// MockCrashHandler saves messages so they can be read in tests
type MockCrashHandler struct {
	mu   sync.Mutex
	msgs []string
}

// NewMockCrashHandler returns a new instance of MockCrashHandler
func NewMockCrashHandler() *MockCrashHandler {
	return &MockCrashHandler{}
}

// Set implements CrashHandler
func (h *MockCrashHandler) Set(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.msgs = append(h.msgs, msg)
}

// Messages returns the recorded messages
func (h *MockCrashHandler) Messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.msgs
}
