package client

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/logsink/logsink/config"
)

// Config is used for transport configuration
type Config struct {
	Verbose      bool   `json:"verbose"`
	SocketPath   string `json:"socket-path"`
	ProbePath    string `json:"probe-path"`
	CollectorUID int    `json:"collector-uid"`
	MaxPayload   int    `json:"max-payload"`
	FilterPath   string `json:"filter-path"`
	Count        bool   `json:"count"`
}

// DefaultConfig is the default transport configuration
var DefaultConfig = &Config{
	Verbose:      false,
	SocketPath:   "/dev/socket/logdw",
	ProbePath:    "/dev/socket/logdw",
	CollectorUID: 1036,
	MaxPayload:   4076,
}

// Validate returns an error pointing to incorrect values for the
// configuration, if any.
func (c *Config) Validate() error {
	if c.SocketPath == "" {
		return errors.New("socket-path must be set")
	}
	if c.MaxPayload <= 0 {
		return errors.New("max-payload must be > 0")
	}
	return nil
}

func (c *Config) String() string {
	return fmt.Sprintf("%+v", *c)
}

// ToGeneralConfig copies what is needed for shared modules (internal,
// protocol) to the general config struct.
func (c *Config) ToGeneralConfig() *config.Config {
	gconf := &config.Config{}
	*gconf = *config.Default
	gconf.Verbose = c.Verbose
	gconf.SocketPath = c.SocketPath
	gconf.ProbePath = c.ProbePath
	gconf.CollectorUID = c.CollectorUID
	gconf.MaxPayload = c.MaxPayload
	gconf.FilterPath = c.FilterPath
	return gconf
}

// DefaultTestConfig returns a testing configuration
func DefaultTestConfig(verbose bool) *Config {
	c := &Config{}
	*c = *DefaultConfig
	c.Verbose = verbose
	c.SocketPath = "/dev/socket/logdw.test"
	c.ProbePath = "/dev/socket/logdw.test"
	// tests never run as the collector
	c.CollectorUID = -1
	return c
}
