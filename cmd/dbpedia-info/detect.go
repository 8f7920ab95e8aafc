// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/dbpedia-info/internal/blocks"
	"github.com/pdiddy/dbpedia-info/internal/detect"
	"github.com/pdiddy/dbpedia-info/pkg/types"
)

var detectCmd = &cobra.Command{
	Use:   "detect FILE",
	Short: "Detect Wikipedia references in a submission and register their cards",
	Long: `Detect reads a submission file of annotated blocks, finds the blocks whose
innermost annotation references an English Wikipedia article, and registers
one info card per reference. Hints this plugin previously registered inside
the submitted blocks are removed first.

The submission id defaults to the file's submission_id, or a fresh UUID.`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func runDetect(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	jsonOutput, _ := cmd.Flags().GetBool("json")
	submissionID, _ := cmd.Flags().GetString("submission-id")

	reg, release, err := openRegistry(cfg.Registry)
	if err != nil {
		return err
	}
	defer release()

	cards, err := submitFile(cmd.Context(), args[0], submissionID, cfg.Detect, reg)
	if err != nil {
		return err
	}
	return writeCards(os.Stdout, cards, jsonOutput)
}

// submitFile loads a submission and runs the plugin over it against reg.
func submitFile(ctx context.Context, path, submissionID string, cfg types.DetectConfig, reg detect.HintsRegistry) ([]types.Card, error) {
	sub, err := blocks.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if submissionID == "" {
		submissionID = sub.ID
	}
	if submissionID == "" {
		submissionID = uuid.NewString()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	plugin := detect.NewPlugin(detect.NewDetector(cfg, logger), logger)
	cards, err := plugin.Execute(ctx, submissionID, sub.Blocks, reg)
	if err != nil {
		return nil, err
	}
	logger.Info("submission registered",
		zap.String("file", path),
		zap.String("submission", submissionID),
		zap.Int("blocks", len(sub.Blocks)),
		zap.Int("cards", len(cards)))
	return cards, nil
}

func writeCards(w io.Writer, cards []types.Card, jsonOutput bool) error {
	if cards == nil {
		cards = []types.Card{}
	}
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cards)
	}
	if len(cards) == 0 {
		fmt.Fprintln(w, "No Wikipedia references found.")
		return nil
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(cards)
}

func init() {
	detectCmd.Flags().String("submission-id", "", "submission id (default: file's submission_id or a new UUID)")
	detectCmd.Flags().Bool("json", false, "output cards as JSON")

	rootCmd.AddCommand(detectCmd)
}
