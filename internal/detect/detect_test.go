// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package detect

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/dbpedia-info/pkg/types"
)

// --- test helpers ---

func objectNode(uri string) types.AnnotationNode {
	return types.AnnotationNode{Object: types.Some(uri)}
}

func block(text string, start int, nodes ...types.AnnotationNode) types.AnnotatedBlock {
	return types.AnnotatedBlock{
		Text:            text,
		Start:           start,
		End:             start + len([]rune(text)),
		SemanticContext: nodes,
	}
}

// --- RelevantURI ---

func TestRelevantURI(t *testing.T) {
	d := NewDetector(types.DefaultDetectConfig(), nil)

	tests := []struct {
		name  string
		block types.AnnotatedBlock
		want  string
		ok    bool
	}{
		{
			name:  "object on innermost node",
			block: block("Scotland", 0, objectNode("http://schema.org/Place"), objectNode("https://en.wikipedia.org/wiki/Scotland")),
			want:  "https://en.wikipedia.org/wiki/Scotland",
			ok:    true,
		},
		{
			name:  "only outer node references wikipedia",
			block: block("Scotland", 0, objectNode("https://en.wikipedia.org/wiki/Scotland"), objectNode("http://schema.org/Place")),
		},
		{
			name:  "href fallback",
			block: block("Scotland", 0, types.AnnotationNode{Href: types.Some("https://en.wikipedia.org/wiki/Scotland")}),
			want:  "https://en.wikipedia.org/wiki/Scotland",
			ok:    true,
		},
		{
			name: "object preferred over href",
			block: block("Scotland", 0, types.AnnotationNode{
				Object: types.Some("http://example.org/scotland"),
				Href:   types.Some("https://en.wikipedia.org/wiki/Scotland"),
			}),
		},
		{
			name:  "other language wikipedia",
			block: block("Écosse", 0, objectNode("https://fr.wikipedia.org/wiki/%C3%89cosse")),
		},
		{
			name:  "plain http wikipedia",
			block: block("Scotland", 0, objectNode("http://en.wikipedia.org/wiki/Scotland")),
		},
		{
			name:  "no context",
			block: block("Scotland", 0),
		},
		{
			name:  "node without uri",
			block: block("Scotland", 0, types.AnnotationNode{Predicate: types.Some("rdfs:seeAlso")}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := d.RelevantURI(tt.block)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRelevantURI_RequiredPredicates(t *testing.T) {
	cfg := types.DefaultDetectConfig()
	cfg.RequiredPredicates = []string{"http://www.w3.org/2000/01/rdf-schema#seeAlso"}
	d := NewDetector(cfg, nil)

	seeAlso := types.AnnotationNode{
		Object:    types.Some("https://en.wikipedia.org/wiki/Scotland"),
		Predicate: types.Some("http://www.w3.org/2000/01/rdf-schema#seeAlso"),
	}
	_, ok := d.RelevantURI(block("Scotland", 0, seeAlso))
	assert.True(t, ok)

	other := seeAlso
	other.Predicate = types.Some("http://schema.org/about")
	_, ok = d.RelevantURI(block("Scotland", 0, other))
	assert.False(t, ok)

	missing := seeAlso
	missing.Predicate = types.None[string]()
	_, ok = d.RelevantURI(block("Scotland", 0, missing))
	assert.False(t, ok)
}

// --- TermFromURI ---

func TestTermFromURI(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"https://en.wikipedia.org/wiki/Scotland", "Scotland"},
		{"https://en.wikipedia.org/wiki/%C3%89cosse", "Écosse"},
		{"https://en.wikipedia.org/wiki/New_York_City", "New_York_City"},
		{"https://en.wikipedia.org/wiki/Scotland#History", "Scotland"},
		{"https://en.wikipedia.org/wiki/Scotland?oldid=1", "Scotland"},
		{"https://en.wikipedia.org/wiki/AC%2FDC", "AC/DC"},
		{"https://en.wikipedia.org/wiki/", ""},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			got, err := TermFromURI(tt.uri)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTermFromURI_Malformed(t *testing.T) {
	_, err := TermFromURI("https://en.wikipedia.org/wiki/Bad%zzTerm")
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "Bad%zzTerm", decodeErr.Segment)
}

// --- Locate ---

func TestLocate(t *testing.T) {
	trim := NewDetector(types.DefaultDetectConfig(), nil)
	raw := NewDetector(types.DetectConfig{TrimWhitespaceInSpan: false}, nil)

	tests := []struct {
		name     string
		block    types.AnnotatedBlock
		trimmed  types.Location
		rawRange types.Location
	}{
		{
			name:     "leading and trailing spaces",
			block:    types.AnnotatedBlock{Text: "  Scotland  ", Start: 10, End: 22},
			trimmed:  types.Location{12, 20},
			rawRange: types.Location{10, 22},
		},
		{
			name:     "no whitespace",
			block:    types.AnnotatedBlock{Text: "Scotland", Start: 5, End: 13},
			trimmed:  types.Location{5, 13},
			rawRange: types.Location{5, 13},
		},
		{
			name:     "trailing newline and tab",
			block:    types.AnnotatedBlock{Text: "Scotland\n\t", Start: 0, End: 10},
			trimmed:  types.Location{0, 8},
			rawRange: types.Location{0, 10},
		},
		{
			name:     "multibyte characters count once",
			block:    types.AnnotatedBlock{Text: " Écosse ", Start: 3, End: 11},
			trimmed:  types.Location{4, 10},
			rawRange: types.Location{3, 11},
		},
		{
			name:     "whitespace only",
			block:    types.AnnotatedBlock{Text: "   ", Start: 7, End: 10},
			trimmed:  types.Location{7, 7},
			rawRange: types.Location{7, 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := trim.Locate(tt.block)
			assert.Equal(t, tt.trimmed, got)
			assert.LessOrEqual(t, got[0], got[1])
			assert.True(t, tt.block.Region().Contains(got))

			assert.Equal(t, tt.rawRange, raw.Locate(tt.block))
		})
	}
}

// --- Detect ---

func TestDetect(t *testing.T) {
	d := NewDetector(types.DefaultDetectConfig(), nil)

	blocks := []types.AnnotatedBlock{
		block("  Scotland  ", 10, objectNode("https://en.wikipedia.org/wiki/Scotland")),
		block("Paris", 30, objectNode("https://www.wikidata.org/wiki/Q90")),
		block("broken", 40, objectNode("https://en.wikipedia.org/wiki/Bad%zz")),
		block("Écosse", 50, objectNode("https://en.wikipedia.org/wiki/%C3%89cosse")),
		block("nothing", 60),
	}

	got := d.Detect(blocks)
	want := []types.Hint{
		{Term: "Scotland", Location: types.Location{12, 20}},
		{Term: "Écosse", Location: types.Location{50, 56}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Detect() mismatch (-want +got):\n%s", diff)
	}
}

func TestDetect_NoWikipediaReferences(t *testing.T) {
	d := NewDetector(types.DefaultDetectConfig(), nil)
	blocks := []types.AnnotatedBlock{
		block("Paris", 0, objectNode("https://www.wikidata.org/wiki/Q90")),
		block("Rome", 10, objectNode("http://dbpedia.org/resource/Rome")),
		block("Oslo", 20, types.AnnotationNode{Href: types.Some("https://de.wikipedia.org/wiki/Oslo")}),
	}
	assert.Empty(t, d.Detect(blocks))
}

func TestDetect_UnderscoresAsSpaces(t *testing.T) {
	cfg := types.DefaultDetectConfig()
	cfg.UnderscoresAsSpaces = true
	d := NewDetector(cfg, nil)

	hints := d.Detect([]types.AnnotatedBlock{
		block("NYC", 0, objectNode("https://en.wikipedia.org/wiki/New_York_City")),
	})
	require.Len(t, hints, 1)
	assert.Equal(t, "New York City", hints[0].Term)
}

// --- NewCard ---

func TestNewCard(t *testing.T) {
	c := NewCard(types.Hint{Term: "Scotland", Location: types.Location{12, 20}})

	want := types.Card{
		Card:     ComponentID,
		Info:     types.CardInfo{Term: "Scotland"},
		Location: types.Location{12, 20},
		Options:  types.CardOptions{NoHighlight: true},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("NewCard() mismatch (-want +got):\n%s", diff)
	}
}
