// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/dbpedia-info/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Re-run detection every time a submission file changes",
	Long: `Watch runs detect on FILE, then again each time FILE is saved, until
interrupted. Every run replaces the hints the previous run registered for
the same blocks.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		debounce, _ := cmd.Flags().GetDuration("debounce")

		reg, release, err := openRegistry(cfg.Registry)
		if err != nil {
			return err
		}
		defer release()

		path := args[0]
		fmt.Fprintf(os.Stderr, "Watching %s (Ctrl+C to stop)\n", path)
		return watch.New(path, debounce, logger).Run(cmd.Context(), func(ctx context.Context) error {
			cards, err := submitFile(ctx, path, "", cfg.Detect, reg)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "%s  %d card(s) registered\n", time.Now().Format(time.TimeOnly), len(cards))
			return nil
		})
	},
}

func init() {
	watchCmd.Flags().Duration("debounce", watch.DefaultDebounce, "quiet period after a change before re-running")

	rootCmd.AddCommand(watchCmd)
}
