package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rtakeda/flowdoc"
	"github.com/rtakeda/flowdoc/internal/cli"
)

var syncCmd = &cobra.Command{
	Use:   "sync [doc]",
	Short: "Regenerate the diagram block inside a document",
	Long: `Renders the flow graph as Mermaid text and replaces the content between the
diagram markers in the target document. The document is left untouched when it
is already up to date, and on any error.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		flowPath, _ := cmd.Flags().GetString("flow")
		debug, _ := cmd.Flags().GetBool("debug")
		docPath, _ := cmd.Flags().GetString("doc")
		checkOnly, _ := cmd.Flags().GetBool("check")
		watch, _ := cmd.Flags().GetBool("watch")
		if len(args) > 0 {
			docPath = args[0]
		}

		logger := cli.CreateLogger(debug)

		engine, err := flowdoc.New(flowPath, flowdoc.WithLogger(logger))
		if err != nil {
			fmt.Printf("Error initializing flowdoc: %v\n", err)
			os.Exit(1)
		}

		if checkOnly {
			inSync, err := engine.Check(context.Background(), docPath)
			if err != nil {
				fmt.Printf("Error checking document: %v\n", err)
				os.Exit(1)
			}
			if !inSync {
				fmt.Printf("%s is out of date, run 'flowdoc sync'\n", docPath)
				os.Exit(1)
			}
			fmt.Printf("%s is up to date\n", docPath)
			return
		}

		if watch {
			sigCtx := cli.NewSignalContext(context.Background())
			defer sigCtx.Cancel()

			err := cli.RunWatch(sigCtx, cli.WatchOptions{
				Engine:  engine,
				DocPath: docPath,
				Logger:  logger,
				Banner:  true,
			})
			if err != nil {
				fmt.Printf("Watcher error: %v\n", err)
				os.Exit(1)
			}
			return
		}

		if err := engine.Sync(context.Background(), docPath); err != nil {
			fmt.Printf("Error syncing document: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().String("doc", "README.md", "Path to the target document")
	syncCmd.Flags().Bool("check", false, "Fail without writing if the document is out of date")
	syncCmd.Flags().Bool("watch", false, "Re-sync whenever the flow definition changes")
}
