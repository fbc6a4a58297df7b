package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/logsink/logsink/client"
)

var ProbeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check whether the collector device is available",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		t := client.NewTransport(tmpConfig)
		if !t.Available() {
			fmt.Println("not available")
			os.Exit(1)
		}
		fmt.Println("available")
	},
}
