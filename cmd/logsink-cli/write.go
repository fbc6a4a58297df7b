package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/logsink/logsink"
	"github.com/logsink/logsink/client"
	"github.com/logsink/logsink/filter"
	"github.com/logsink/logsink/internal"
	"github.com/logsink/logsink/protocol"
)

var priorityFlag string
var tagFlag string
var channelFlag string

func init() {
	pflags := WriteCmd.PersistentFlags()

	pflags.StringVarP(&priorityFlag, "priority", "p", "info",
		"a `PRIORITY` name or single-letter code for the entries")
	pflags.StringVarP(&tagFlag, "tag", "t", "logsink-cli",
		"a `TAG` for the entries")
	pflags.StringVar(&channelFlag, "channel", "main",
		"a `CHANNEL` for the entries")
}

var WriteCmd = &cobra.Command{
	Use:     "write [messages]",
	Aliases: []string{"w"},
	Short:   "Write text entries to the collector",
	Long:    ``,
	Run: func(cmd *cobra.Command, args []string) {
		internal.Debugf(tmpConfig.ToGeneralConfig(), "%+v", tmpConfig)
		if err := doWrite(tmpConfig, args); err != nil {
			panic(err)
		}
	},
}

func doWrite(conf *client.Config, args []string) error {
	prio, err := protocol.ParsePriority(priorityFlag)
	if err != nil {
		return err
	}
	ch, err := protocol.ParseChannel(channelFlag)
	if err != nil {
		return err
	}

	logger := logsink.New(conf)
	defer logger.Close()

	if conf.FilterPath != "" {
		store, ferr := filter.OpenFileStore(conf.FilterPath)
		if ferr != nil {
			return ferr
		}
		defer store.Close()
		logger.WithFilter(filter.New(store))
	}

	for _, msg := range args {
		if !logger.Loggable(prio, tagFlag) {
			continue
		}
		if _, err := logger.BufWrite(ch, prio, tagFlag, msg); err != nil {
			return err
		}
	}

	// check if there's data in stdin
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Split(bufio.ScanLines)
		for scanner.Scan() {
			if !logger.Loggable(prio, tagFlag) {
				continue
			}
			if _, err := logger.BufWrite(ch, prio, tagFlag, scanner.Text()); err != nil {
				return err
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	}

	if conf.Count {
		fmt.Printf("%s", logger.Transport().Stats().Bytes())
	}
	return nil
}
