// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lookup

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/dbpedia-info/pkg/types"
)

// Lookuper resolves a term to its knowledge-graph description and image.
type Lookuper interface {
	Lookup(ctx context.Context, term string) (types.LookupResult, error)
}

// Outcome is the result of looking up one term of a batch.
type Outcome struct {
	Term   string
	Result types.LookupResult
	Err    error
}

// LookupAll looks up every term independently, at most limit at a time
// (limit <= 0 means no limit). Outcomes are returned in term order; a
// failed term does not cancel the others.
func LookupAll(ctx context.Context, l Lookuper, terms []string, limit int) []Outcome {
	outcomes := make([]Outcome, len(terms))
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, term := range terms {
		i, term := i, term
		g.Go(func() error {
			res, err := l.Lookup(ctx, term)
			outcomes[i] = Outcome{Term: term, Result: res, Err: err}
			return nil
		})
	}
	g.Wait()
	return outcomes
}
