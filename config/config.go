package config

import (
	"fmt"

	"github.com/pkg/errors"
)

// Config holds configuration variables shared across modules.
type Config struct {
	// File is the path of a file from which configuration is read.
	File string `json:"config-file"`

	// Verbose prints debugging information.
	Verbose bool `json:"verbose"`

	// SocketPath is the collector's datagram socket address.
	SocketPath string `json:"socket-path"`

	// ProbePath is checked for writability to decide whether the collector
	// device exists on this system. The result is cached for the process
	// lifetime.
	ProbePath string `json:"probe-path"`

	// CollectorUID is the uid the collector daemon runs as after dropping
	// privileges. Writes from that uid are discarded so the collector never
	// logs through its own transport.
	CollectorUID int `json:"collector-uid"`

	// MaxPayload defines the maximum post-header frame size. Oversize
	// entries are truncated, not rejected.
	MaxPayload int `json:"max-payload"`

	// FormatBufSize bounds rendered message length for the formatting entry
	// points. Overflow is cut silently.
	FormatBufSize int `json:"format-buf-size"`

	// FilterPath is the severity filter property file, if any.
	FilterPath string `json:"filter-path"`
}

// New returns a new configuration object
func New() *Config {
	return &Config{}
}

func (c *Config) String() string {
	return fmt.Sprintf("%+v", *c)
}

// Validate returns an error pointing to incorrect values for the
// configuration, if any.
func (c *Config) Validate() error {
	if c.MaxPayload <= 0 {
		return errors.New("max-payload must be > 0")
	}
	if c.FormatBufSize <= 0 {
		return errors.New("format-buf-size must be > 0")
	}
	return nil
}

// Default is the default application config
var Default = &Config{
	SocketPath:    "/dev/socket/logdw",
	ProbePath:     "/dev/socket/logdw",
	CollectorUID:  1036,
	MaxPayload:    4076,
	FormatBufSize: 1024,
}
