package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rtakeda/flowdoc"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of flowdoc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("flowdoc version %s\n", strings.TrimSpace(flowdoc.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
