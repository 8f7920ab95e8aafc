// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/dbpedia-info/internal/detect"
	"github.com/pdiddy/dbpedia-info/internal/registry"
)

var hintsCmd = &cobra.Command{
	Use:   "hints",
	Short: "List the info cards stored in the hints registry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		reg, release, err := openRegistry(loadConfig().Registry)
		if err != nil {
			return err
		}
		defer release()

		entries, err := reg.Hints(cmd.Context(), detect.ComponentID)
		if err != nil {
			return err
		}

		if jsonOutput {
			if entries == nil {
				entries = []registry.Entry{}
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}
		formatEntries(os.Stdout, entries)
		return nil
	},
}

func formatEntries(w io.Writer, entries []registry.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No hints registered.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-40s  %-14s  %s\n", "Rank", "Term", "Location", "Submission")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for i, e := range entries {
		term := e.Card.Info.Term
		if r := []rune(term); len(r) > 40 {
			term = string(r[:37]) + "..."
		}
		loc := fmt.Sprintf("[%d,%d]", e.Card.Location[0], e.Card.Location[1])
		fmt.Fprintf(w, "%-4d  %-40s  %-14s  %s\n", i+1, term, loc, e.SubmissionID)
	}
	fmt.Fprintf(w, "\n%d hints\n", len(entries))
}

func init() {
	hintsCmd.Flags().Bool("json", false, "output hints as JSON")

	rootCmd.AddCommand(hintsCmd)
}
