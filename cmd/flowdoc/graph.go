package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rtakeda/flowdoc"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the flow graph visualization",
	Long:  `Reads the flow definition and outputs a Mermaid diagram (graph TD) representing the flow.`,
	Run: func(cmd *cobra.Command, args []string) {
		flowPath, _ := cmd.Flags().GetString("flow")
		if !cmd.Flags().Changed("flow") && len(args) > 0 {
			flowPath = args[0]
		}

		engine, err := flowdoc.New(flowPath)
		if err != nil {
			fmt.Printf("Error initializing flowdoc: %v\n", err)
			os.Exit(1)
		}

		output, err := engine.Mermaid()
		if err != nil {
			fmt.Printf("Error rendering graph: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(output)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
