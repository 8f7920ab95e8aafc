// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/dbpedia-info/internal/lookup"
	"github.com/pdiddy/dbpedia-info/pkg/types"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup TERM...",
	Short: "Look up the DBpedia description and image for terms",
	Long: `Lookup queries the DBpedia SPARQL endpoint for each term's English label
and prints the English description and thumbnail image it finds. Terms are
looked up concurrently. A term DBpedia knows nothing about is reported on
stderr and does not fail the command.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

type lookupOutput struct {
	Term        string                 `json:"term"`
	Description types.Optional[string] `json:"description"`
	Image       types.Optional[string] `json:"image"`
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	jsonOutput, _ := cmd.Flags().GetBool("json")
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	client := lookup.NewClient(cfg.Lookup, nil, logger)
	outcomes := lookup.LookupAll(cmd.Context(), client, args, concurrency)

	var found []lookupOutput
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", o.Err)
			continue
		}
		found = append(found, lookupOutput{Term: o.Term, Description: o.Result.Description, Image: o.Result.Image})
	}

	if jsonOutput {
		if found == nil {
			found = []lookupOutput{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(found)
	}
	formatLookups(os.Stdout, found)
	return nil
}

func formatLookups(w io.Writer, found []lookupOutput) {
	if len(found) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}
	for i, f := range found {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, f.Term)
		fmt.Fprintf(w, "  description: %s\n", f.Description.OrElse("(none)"))
		fmt.Fprintf(w, "  image:       %s\n", f.Image.OrElse("(none)"))
	}
}

func init() {
	lookupCmd.Flags().Bool("json", false, "output results as JSON")
	lookupCmd.Flags().Int("concurrency", 4, "maximum concurrent lookups (0 = unlimited)")

	rootCmd.AddCommand(lookupCmd)
}
