package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/logsink/logsink/client"
	"github.com/logsink/logsink/internal"
)

var tmpConfig = &client.Config{}
var cfgFile string

var RootCmd = &cobra.Command{
	Use:   "logsink-cli",
	Short: "Send log entries to the local collector daemon",
	Long:  ``,
}

func init() {
	*tmpConfig = *client.DefaultConfig

	pflags := RootCmd.PersistentFlags()
	dconf := client.DefaultConfig

	pflags.StringVar(&cfgFile, "config", "",
		"load configuration from `FILE`")
	pflags.BoolVarP(&tmpConfig.Verbose, "verbose", "v", dconf.Verbose,
		"print debug output")
	pflags.StringVar(&tmpConfig.SocketPath, "socket-path", dconf.SocketPath,
		"the collector's datagram socket `PATH`")
	pflags.StringVar(&tmpConfig.ProbePath, "probe-path", dconf.ProbePath,
		"the `PATH` probed for collector availability")
	pflags.IntVar(&tmpConfig.CollectorUID, "collector-uid", dconf.CollectorUID,
		"the `UID` the collector runs as")
	pflags.IntVar(&tmpConfig.MaxPayload, "max-payload", dconf.MaxPayload,
		"maximum post-header frame size, in `BYTES`")
	pflags.StringVar(&tmpConfig.FilterPath, "filter-path", dconf.FilterPath,
		"skip entries below the thresholds in the property `FILE`")
	pflags.BoolVar(&tmpConfig.Count, "count", false,
		"print transport counters on exit")

	internal.PanicOnError(viper.BindPFlag("verbose", pflags.Lookup("verbose")))
	internal.PanicOnError(viper.BindPFlag("socket-path", pflags.Lookup("socket-path")))
	internal.PanicOnError(viper.BindPFlag("probe-path", pflags.Lookup("probe-path")))
	internal.PanicOnError(viper.BindPFlag("collector-uid", pflags.Lookup("collector-uid")))
	internal.PanicOnError(viper.BindPFlag("max-payload", pflags.Lookup("max-payload")))
	internal.PanicOnError(viper.BindPFlag("filter-path", pflags.Lookup("filter-path")))

	RootCmd.AddCommand(WriteCmd)
	RootCmd.AddCommand(EventCmd)
	RootCmd.AddCommand(ProbeCmd)
	RootCmd.AddCommand(StatsCmd)
	RootCmd.AddCommand(VersionCmd)
}

func initConfig() {
	viper.SetEnvPrefix("logsink")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("logsink")
		viper.AddConfigPath("/etc/logsink")
		viper.AddConfigPath(".")
	}
	if err := viper.ReadInConfig(); err == nil {
		internal.Debugf(tmpConfig.ToGeneralConfig(), "using config file %s", viper.ConfigFileUsed())
	}

	tmpConfig.Verbose = viper.GetBool("verbose")
	tmpConfig.SocketPath = viper.GetString("socket-path")
	tmpConfig.ProbePath = viper.GetString("probe-path")
	tmpConfig.CollectorUID = viper.GetInt("collector-uid")
	tmpConfig.MaxPayload = viper.GetInt("max-payload")
	tmpConfig.FilterPath = viper.GetString("filter-path")

	internal.PanicOnError(tmpConfig.Validate())
}

func main() {
	cobra.OnInitialize(initConfig)
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
