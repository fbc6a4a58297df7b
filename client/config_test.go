package client

import (
	"testing"
)

func TestConfigValidate(t *testing.T) {
	conf := &Config{}
	*conf = *DefaultConfig
	if err := conf.Validate(); err != nil {
		t.Fatalf("unexpected error validating defaults: %+v", err)
	}

	conf.SocketPath = ""
	if err := conf.Validate(); err == nil {
		t.Error("expected an error for socket-path")
	}

	*conf = *DefaultConfig
	conf.MaxPayload = 0
	if err := conf.Validate(); err == nil {
		t.Error("expected an error for max-payload")
	}
}

func TestToGeneralConfig(t *testing.T) {
	conf := DefaultTestConfig(testing.Verbose())
	conf.MaxPayload = 128
	conf.FilterPath = "/tmp/logsink-filter.props"

	gconf := conf.ToGeneralConfig()
	if gconf.SocketPath != conf.SocketPath {
		t.Errorf("expected socket path %q but got %q", conf.SocketPath, gconf.SocketPath)
	}
	if gconf.MaxPayload != 128 {
		t.Errorf("expected max payload 128 but got %d", gconf.MaxPayload)
	}
	if gconf.FormatBufSize != 1024 {
		t.Errorf("expected format buf size carried from defaults, got %d", gconf.FormatBufSize)
	}
	if gconf.FilterPath != conf.FilterPath {
		t.Errorf("expected filter path %q but got %q", conf.FilterPath, gconf.FilterPath)
	}
}
