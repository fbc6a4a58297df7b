package testhelper

import (
	"github.com/logsink/logsink/config"
)

// TestConfig returns a general configuration for tests
func TestConfig(verbose bool) *config.Config {
	conf := config.New()
	*conf = *config.Default
	conf.Verbose = verbose
	conf.SocketPath = "/dev/socket/logdw.test"
	conf.ProbePath = "/dev/socket/logdw.test"
	return conf
}
