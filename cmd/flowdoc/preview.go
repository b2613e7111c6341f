package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rtakeda/flowdoc"
	"github.com/rtakeda/flowdoc/internal/adapters/file"
	"github.com/rtakeda/flowdoc/internal/docsync"
	"github.com/rtakeda/flowdoc/internal/presentation/tui"
)

var previewCmd = &cobra.Command{
	Use:   "preview [doc]",
	Short: "Preview a document with its diagram refreshed",
	Long: `Computes the synced version of the document in memory (nothing is written)
and renders it to the terminal. Falls back to plain markdown when stdout is
not a TTY.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		flowPath, _ := cmd.Flags().GetString("flow")
		docPath, _ := cmd.Flags().GetString("doc")
		if len(args) > 0 {
			docPath = args[0]
		}

		engine, err := flowdoc.New(flowPath)
		if err != nil {
			fmt.Printf("Error initializing flowdoc: %v\n", err)
			os.Exit(1)
		}

		diagram, err := engine.Mermaid()
		if err != nil {
			fmt.Printf("Error rendering graph: %v\n", err)
			os.Exit(1)
		}

		store := file.New()
		doc, err := store.ReadDocument(context.Background(), docPath)
		if err != nil {
			fmt.Printf("Error reading document: %v\n", err)
			os.Exit(1)
		}

		patched, err := docsync.Patch(doc, docsync.StartMarker, docsync.EndMarker, diagram)
		if err != nil {
			fmt.Printf("Error patching document: %v\n", err)
			os.Exit(1)
		}

		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Print(patched)
			return
		}

		render := tui.NewRenderer()
		out, err := render(patched)
		if err != nil {
			// Glamour failures should not hide the content.
			fmt.Print(patched)
			return
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().String("doc", "README.md", "Path to the target document")
}
