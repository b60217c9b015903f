package main

import (
	"fmt"
	"os"

	"github.com/blackcoderx/postdoc/pkg/storage"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Render a generated Markdown doc in the terminal",
	Long: `Renders a generated Markdown file with terminal styling. Without an
argument it lists the docs found under the configured output directory.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			listDocs()
			return
		}
		if err := renderDoc(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func listDocs() {
	docsDir := viper.GetString("output.docs")
	docs, err := storage.ListDocs(docsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(docs) == 0 {
		fmt.Printf("No docs found under %s. Run postdoc first.\n", docsDir)
		return
	}
	for _, doc := range docs {
		fmt.Println(doc)
	}
}

func renderDoc(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read doc: %w", err)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Println(string(data)) // Fallback to raw output
		return nil
	}

	out, err := renderer.Render(string(data))
	if err != nil {
		fmt.Println(string(data)) // Fallback
		return nil
	}

	fmt.Print(out)
	return nil
}
