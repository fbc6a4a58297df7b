package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logsink/logsink"
	"github.com/logsink/logsink/client"
	"github.com/logsink/logsink/internal"
)

var StatsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"s"},
	Short:   "Print transport counters",
	Long:    ``,
	Run: func(cmd *cobra.Command, args []string) {
		internal.Debugf(tmpConfig.ToGeneralConfig(), "%+v", tmpConfig)
		fmt.Printf("%s", doStats(tmpConfig))
	},
}

func doStats(conf *client.Config) []byte {
	logger := logsink.New(conf)
	defer logger.Close()
	return logger.Transport().Stats().Bytes()
}
