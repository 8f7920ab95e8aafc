// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package detect finds annotated blocks that reference an English Wikipedia
// article and turns each into a hint anchored at its absolute location in
// the parent document.
package detect

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/pdiddy/dbpedia-info/pkg/types"
)

// WikipediaPrefix is the URI prefix a reference must carry to be hinted.
const WikipediaPrefix = "https://en.wikipedia.org/wiki/"

// DecodeError reports an article segment whose percent-encoding is malformed.
type DecodeError struct {
	Segment string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding article segment %q: %v", e.Segment, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Detector builds hints from annotated blocks.
type Detector struct {
	cfg    types.DetectConfig
	logger *zap.Logger
}

// NewDetector returns a Detector. A nil logger discards log output.
func NewDetector(cfg types.DetectConfig, logger *zap.Logger) *Detector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Detector{cfg: cfg, logger: logger}
}

// Detect returns one hint per block that references a Wikipedia article,
// in block order. Blocks whose article segment fails to decode are skipped.
func (d *Detector) Detect(blocks []types.AnnotatedBlock) []types.Hint {
	var hints []types.Hint
	for i, b := range blocks {
		h, ok, err := d.HintFor(b)
		if err != nil {
			d.logger.Debug("skipping block",
				zap.Int("block", i),
				zap.Stringer("region", b.Region()),
				zap.Error(err))
			continue
		}
		if ok {
			hints = append(hints, h)
		}
	}
	return hints
}

// HintFor builds the hint for a single block. It returns ok=false when the
// block does not reference a Wikipedia article, and a *DecodeError when it
// does but the article segment cannot be decoded.
func (d *Detector) HintFor(b types.AnnotatedBlock) (types.Hint, bool, error) {
	uri, ok := d.RelevantURI(b)
	if !ok {
		return types.Hint{}, false, nil
	}
	term, err := TermFromURI(uri)
	if err != nil {
		return types.Hint{}, false, err
	}
	if term == "" {
		return types.Hint{}, false, nil
	}
	if d.cfg.UnderscoresAsSpaces {
		term = strings.ReplaceAll(term, "_", " ")
	}
	return types.Hint{Term: term, Location: d.Locate(b)}, true, nil
}

// RelevantURI returns the reference URI of the block's innermost annotation
// when it points at an English Wikipedia article and, if predicates are
// configured, the annotation asserts one of them.
func (d *Detector) RelevantURI(b types.AnnotatedBlock) (string, bool) {
	node, ok := b.Innermost()
	if !ok {
		return "", false
	}
	uri, ok := node.ReferenceURI()
	if !ok || !strings.HasPrefix(uri, WikipediaPrefix) {
		return "", false
	}
	if len(d.cfg.RequiredPredicates) > 0 {
		pred, ok := node.Predicate.Get()
		if !ok || !slices.Contains(d.cfg.RequiredPredicates, pred) {
			return "", false
		}
	}
	return uri, true
}

// TermFromURI returns the percent-decoded last path segment of uri, ignoring
// any query string or fragment.
func TermFromURI(uri string) (string, error) {
	if i := strings.IndexByte(uri, '#'); i >= 0 {
		uri = uri[:i]
	}
	if i := strings.IndexByte(uri, '?'); i >= 0 {
		uri = uri[:i]
	}
	segment := uri[strings.LastIndexByte(uri, '/')+1:]
	term, err := url.PathUnescape(segment)
	if err != nil {
		return "", &DecodeError{Segment: segment, Err: err}
	}
	return term, nil
}

// Locate returns the absolute span to hint for b. Offsets count characters.
//
// With whitespace trimming the span starts after any leading whitespace and
// stops before any trailing whitespace; otherwise it is the block's range.
func (d *Detector) Locate(b types.AnnotatedBlock) types.Location {
	if !d.cfg.TrimWhitespaceInSpan {
		return types.Location{b.Start, b.End}
	}
	trimmed := strings.TrimRightFunc(b.Text, unicode.IsSpace)
	trimmedLen := utf8.RuneCountInString(trimmed)
	visibleLen := utf8.RuneCountInString(strings.TrimLeftFunc(trimmed, unicode.IsSpace))
	leading := trimmedLen - visibleLen
	return types.Location{b.Start + leading, b.Start + trimmedLen}
}

// NewCard wraps a hint in the card rendered by the info card component.
func NewCard(h types.Hint) types.Card {
	return types.Card{
		Card:     ComponentID,
		Info:     types.CardInfo{Term: h.Term},
		Location: h.Location,
		Options:  types.CardOptions{NoHighlight: true},
	}
}
