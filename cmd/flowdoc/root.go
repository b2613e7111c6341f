package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "flowdoc",
	Short: "Flowdoc keeps Mermaid flow diagrams in your docs in sync",
	Long: `Flowdoc renders a flow graph as a Mermaid diagram and splices it into a
marker-delimited region of a markdown document, leaving the rest of the file
untouched.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("flow", "flow.yaml", "Path to the flow definition file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable verbose logging")
}
