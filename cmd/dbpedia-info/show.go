// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pdiddy/dbpedia-info/internal/blocks"
	"github.com/pdiddy/dbpedia-info/internal/card"
	"github.com/pdiddy/dbpedia-info/internal/detect"
	"github.com/pdiddy/dbpedia-info/internal/lookup"
	"github.com/pdiddy/dbpedia-info/internal/tui"
	"github.com/pdiddy/dbpedia-info/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show [FILE]",
	Short: "Display info cards in the terminal",
	Long: `Show renders an info card for each hint. With FILE, the hints are detected
from that submission without touching the registry; otherwise the cards
stored in the registry are shown. Each card fetches its description and
image from DBpedia when it first appears. Press q to quit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	infos, err := cardsToShow(cmd, cfg, args)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("No cards to show.")
		return nil
	}

	client := lookup.NewClient(cfg.Lookup, nil, logger)
	cards := make([]*card.Card, len(infos))
	for i, info := range infos {
		cards[i] = card.New(info, client, logger)
	}

	model := tui.New(cmd.Context(), cards)
	defer model.Close()

	_, err = tea.NewProgram(model).Run()
	return err
}

func cardsToShow(cmd *cobra.Command, cfg types.Config, args []string) ([]types.Card, error) {
	if len(args) == 1 {
		sub, err := blocks.LoadFile(args[0])
		if err != nil {
			return nil, err
		}
		hints := detect.NewDetector(cfg.Detect, logger).Detect(sub.Blocks)
		out := make([]types.Card, len(hints))
		for i, h := range hints {
			out[i] = detect.NewCard(h)
		}
		return out, nil
	}

	reg, release, err := openRegistry(cfg.Registry)
	if err != nil {
		return nil, err
	}
	defer release()

	entries, err := reg.Hints(cmd.Context(), detect.ComponentID)
	if err != nil {
		return nil, err
	}
	out := make([]types.Card, len(entries))
	for i, e := range entries {
		out[i] = e.Card
	}
	return out, nil
}

func init() {
	rootCmd.AddCommand(showCmd)
}
