// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/dbpedia-info/internal/detect"
	"github.com/pdiddy/dbpedia-info/pkg/types"
)

// hintsRegistry is what the CLI needs from either implementation.
type hintsRegistry interface {
	detect.HintsRegistry
	Hints(ctx context.Context, pluginID string) ([]Entry, error)
}

var (
	_ hintsRegistry = (*Memory)(nil)
	_ hintsRegistry = (*Store)(nil)
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.RegistryConfig{Path: filepath.Join(t.TempDir(), "index", "hints.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func registries(t *testing.T) map[string]hintsRegistry {
	return map[string]hintsRegistry{
		"memory": NewMemory(),
		"sqlite": testStore(t),
	}
}

func card(term string, start, end int) types.Card {
	return detect.NewCard(types.Hint{Term: term, Location: types.Location{start, end}})
}

func terms(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Card.Info.Term
	}
	return out
}

func TestRegistry_AddAndList(t *testing.T) {
	ctx := context.Background()
	for name, reg := range registries(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, reg.AddHints(ctx, "sub-1", detect.ComponentID, []types.Card{
				card("Wales", 40, 45),
				card("Scotland", 12, 20),
			}))
			require.NoError(t, reg.AddHints(ctx, "sub-1", "editor-plugins/date-card", []types.Card{
				card("tomorrow", 0, 8),
			}))

			got, err := reg.Hints(ctx, detect.ComponentID)
			require.NoError(t, err)
			assert.Equal(t, []string{"Scotland", "Wales"}, terms(got))
			assert.Equal(t, "sub-1", got[0].SubmissionID)
			assert.Equal(t, card("Scotland", 12, 20), got[0].Card)
		})
	}
}

func TestRegistry_RemoveInRegion(t *testing.T) {
	ctx := context.Background()
	for name, reg := range registries(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, reg.AddHints(ctx, "sub-1", detect.ComponentID, []types.Card{
				card("Scotland", 12, 20),
				card("Wales", 40, 45),
				card("Straddles", 18, 30),
			}))
			require.NoError(t, reg.AddHints(ctx, "sub-1", "editor-plugins/date-card", []types.Card{
				card("today", 14, 19),
			}))

			require.NoError(t, reg.RemoveHintsInRegion(ctx, types.Region{Start: 10, End: 22}, "sub-2", detect.ComponentID))

			got, err := reg.Hints(ctx, detect.ComponentID)
			require.NoError(t, err)
			assert.Equal(t, []string{"Straddles", "Wales"}, terms(got))

			other, err := reg.Hints(ctx, "editor-plugins/date-card")
			require.NoError(t, err)
			assert.Equal(t, []string{"today"}, terms(other))
		})
	}
}

func TestRegistry_ResubmissionReplacesHints(t *testing.T) {
	ctx := context.Background()
	plugin := detect.NewPlugin(detect.NewDetector(types.DefaultDetectConfig(), nil), nil)

	blocks := []types.AnnotatedBlock{
		{
			Text: "Scotland", Start: 0, End: 8,
			SemanticContext: []types.AnnotationNode{{Object: types.Some("https://en.wikipedia.org/wiki/Scotland")}},
		},
	}

	for name, reg := range registries(t) {
		t.Run(name, func(t *testing.T) {
			_, err := plugin.Execute(ctx, "sub-1", blocks, reg)
			require.NoError(t, err)
			_, err = plugin.Execute(ctx, "sub-2", blocks, reg)
			require.NoError(t, err)

			got, err := reg.Hints(ctx, detect.ComponentID)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "sub-2", got[0].SubmissionID)
		})
	}
}

func TestStore_PersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "hints.db")

	s, err := NewStore(types.RegistryConfig{Path: path})
	require.NoError(t, err)
	require.NoError(t, s.AddHints(ctx, "sub-1", detect.ComponentID, []types.Card{card("Écosse", 3, 9)}))
	require.NoError(t, s.Close())

	s, err = NewStore(types.RegistryConfig{Path: path})
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Hints(ctx, detect.ComponentID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Écosse", got[0].Card.Info.Term)
	assert.Equal(t, types.Location{3, 9}, got[0].Card.Location)
	assert.True(t, got[0].Card.Options.NoHighlight)
}

func TestNewStore_EmptyPath(t *testing.T) {
	_, err := NewStore(types.RegistryConfig{})
	assert.Error(t, err)
}
