package main

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/tsawler/palimpsest"
	"github.com/tsawler/palimpsest/model"
)

var (
	applyPayloadPath string
	applyOutputPath  string
)

var applyCmd = &cobra.Command{
	Use:   "apply <input.pdf>",
	Short: "Draw a save payload's overlays onto the source document",
	Long: `Apply a save payload to a PDF document: each overlay's original
region is masked and its edited text drawn in place. The edited
document is written to the output path.

Examples:
  # Apply a payload and write the edited document
  palimpsest apply document.pdf --payload payload.json --output edited.pdf
`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVarP(&applyPayloadPath, "payload", "p", "", "Path to the save payload JSON (required)")
	applyCmd.Flags().StringVarP(&applyOutputPath, "output", "o", "edited.pdf", "Output file path")
	applyCmd.MarkFlagRequired("payload")
}

func runApply(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()

	raw, err := os.ReadFile(applyPayloadPath)
	if err != nil {
		return fmt.Errorf("failed to read payload: %w", err)
	}

	var payload model.SavePayload
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}

	if err := palimpsest.Open(args[0]).
		WithLogger(logger).
		ApplyToFile(payload, applyOutputPath); err != nil {
		return fmt.Errorf("failed to apply payload: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Wrote %s\n", applyOutputPath)
	return nil
}
