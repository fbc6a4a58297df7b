package main

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/logsink/logsink"
	"github.com/logsink/logsink/client"
	"github.com/logsink/logsink/internal"
	"github.com/logsink/logsink/protocol"
)

var intFlag int32
var longFlag int64
var floatFlag float32
var stringFlag string

func init() {
	pflags := EventCmd.PersistentFlags()

	pflags.Int32Var(&intFlag, "int", 0, "send a typed int `VALUE`")
	pflags.Int64Var(&longFlag, "long", 0, "send a typed long `VALUE`")
	pflags.Float32Var(&floatFlag, "float", 0, "send a typed float `VALUE`")
	pflags.StringVar(&stringFlag, "string", "", "send a string `VALUE`")
}

var EventCmd = &cobra.Command{
	Use:     "event TAG [payload]",
	Aliases: []string{"e"},
	Short:   "Write a binary event entry to the collector",
	Long:    ``,
	Args:    cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		internal.Debugf(tmpConfig.ToGeneralConfig(), "%+v", tmpConfig)
		if err := doEvent(tmpConfig, cmd, args); err != nil {
			panic(err)
		}
	},
}

func doEvent(conf *client.Config, c *cobra.Command, args []string) error {
	tag64, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		return err
	}
	tag := int32(tag64)

	logger := logsink.New(conf)
	defer logger.Close()

	flags := c.PersistentFlags()
	switch {
	case flags.Changed("string"):
		_, err = logger.StringEvent(tag, stringFlag)
	case flags.Changed("int"):
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, uint32(intFlag))
		_, err = logger.TypedEvent(tag, protocol.EventTypeInt, b)
	case flags.Changed("long"):
		b := make([]byte, 8)
		binary.LittleEndian.PutUint64(b, uint64(longFlag))
		_, err = logger.TypedEvent(tag, protocol.EventTypeLong, b)
	case flags.Changed("float"):
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, math.Float32bits(floatFlag))
		_, err = logger.TypedEvent(tag, protocol.EventTypeFloat, b)
	case len(args) > 1:
		_, err = logger.Event(tag, []byte(args[1]))
	default:
		err = fmt.Errorf("event requires a typed flag or a raw payload")
	}
	if err != nil {
		return err
	}

	if conf.Count {
		fmt.Printf("%s", logger.Transport().Stats().Bytes())
	}
	return nil
}
