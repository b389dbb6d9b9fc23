package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "0.1.0"

var verbose bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "palimpsest",
	Short: "Palimpsest - PDF text layout reconstruction and editing",
	Long: `Palimpsest reconstructs the text layout of PDF pages and writes
edited text back over the original content.

It supports:
- parse: reconstruct a document's paragraph blocks as JSON
- apply: draw a save payload's overlays onto the source document

The parse output and the apply payload share the block/overlay JSON
shape, so a payload can be built by editing parse output.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log per-page diagnostics to stderr")
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(applyCmd)
}

// newLogger builds the CLI's logger; diagnostics are opt-in
func newLogger() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	config := zap.NewDevelopmentConfig()
	return config.Build()
}
